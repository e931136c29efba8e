// Package sales defines the sale record types: the loosely-typed form as
// parsed from the input file and the validated form used for aggregation.
package sales

import "fmt"

// RawRecord is a sale row exactly as decoded from the sales file. Fields are
// untyped because the input is not trusted: either may be absent, null, or of
// the wrong JSON type, and each such defect is reported as a row-level error
// rather than a parse failure.
type RawRecord struct {
	Product  any `json:"Product"`
	Quantity any `json:"Quantity"`
}

func (r RawRecord) String() string {
	return fmt.Sprintf("{Product: %v, Quantity: %v}", r.Product, r.Quantity)
}

// Record is a sale row that passed presence and type checks.
type Record struct {
	Product  string  `validate:"-"`
	Quantity float64 `validate:"gte=0"`
}
