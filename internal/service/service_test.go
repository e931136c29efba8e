package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mreyes/salesreport/internal/catalogue"
	"github.com/mreyes/salesreport/internal/sales"
)

func testService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func Test_Service_ComputeTotal(t *testing.T) {
	cat := []catalogue.Entry{
		{Title: "Apple", Price: 2.0},
		{Title: "Pear", Price: 1.5},
	}

	testCases := []struct {
		name           string
		entries        []catalogue.Entry
		records        []sales.RawRecord
		expectedTotal  float64
		expectedErrors []string
	}{
		{
			name:          "Success - single matching sale",
			entries:       cat,
			records:       []sales.RawRecord{{Product: "Apple", Quantity: float64(3)}},
			expectedTotal: 6.0,
		},
		{
			name:    "Success - multiple sales accumulate",
			entries: cat,
			records: []sales.RawRecord{
				{Product: "Apple", Quantity: float64(3)},
				{Product: "Pear", Quantity: float64(2)},
				{Product: "Apple", Quantity: float64(0.5)},
			},
			expectedTotal: 10.0,
		},
		{
			name:           "Success - empty sales sequence",
			entries:        cat,
			records:        nil,
			expectedTotal:  0.0,
			expectedErrors: nil,
		},
		{
			name:           "Error - unknown product",
			entries:        cat,
			records:        []sales.RawRecord{{Product: "Banana", Quantity: float64(1)}},
			expectedTotal:  0.0,
			expectedErrors: []string{"Banana not found in catalogue"},
		},
		{
			name:           "Error - missing product field",
			entries:        cat,
			records:        []sales.RawRecord{{Quantity: float64(1)}},
			expectedTotal:  0.0,
			expectedErrors: []string{"invalid sales record: {Product: <nil>, Quantity: 1}"},
		},
		{
			name:           "Error - missing quantity field",
			entries:        cat,
			records:        []sales.RawRecord{{Product: "Apple"}},
			expectedTotal:  0.0,
			expectedErrors: []string{"invalid sales record: {Product: Apple, Quantity: <nil>}"},
		},
		{
			name:           "Error - product is not a string",
			entries:        cat,
			records:        []sales.RawRecord{{Product: float64(7), Quantity: float64(1)}},
			expectedTotal:  0.0,
			expectedErrors: []string{"invalid sales record: {Product: 7, Quantity: 1}"},
		},
		{
			name:           "Error - non-numeric quantity",
			entries:        cat,
			records:        []sales.RawRecord{{Product: "Apple", Quantity: "two"}},
			expectedTotal:  0.0,
			expectedErrors: []string{"invalid quantity two for Apple"},
		},
		{
			name:           "Error - negative quantity",
			entries:        cat,
			records:        []sales.RawRecord{{Product: "Apple", Quantity: float64(-2)}},
			expectedTotal:  0.0,
			expectedErrors: []string{"invalid quantity -2 for Apple"},
		},
		{
			name:    "Mixed - bad rows skipped, good rows counted, order kept",
			entries: cat,
			records: []sales.RawRecord{
				{Product: "Apple", Quantity: float64(3)},
				{Product: "Banana", Quantity: float64(1)},
				{Product: "Pear", Quantity: "many"},
				{Product: "Pear", Quantity: float64(2)},
			},
			expectedTotal: 9.0,
			expectedErrors: []string{
				"Banana not found in catalogue",
				"invalid quantity many for Pear",
			},
		},
		{
			name: "Duplicate catalogue titles - last price wins",
			entries: []catalogue.Entry{
				{Title: "Apple", Price: 2.0},
				{Title: "Apple", Price: 5.0},
			},
			records:       []sales.RawRecord{{Product: "Apple", Quantity: float64(2)}},
			expectedTotal: 10.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := testService().ComputeTotal(tc.entries, tc.records)

			assert.InDelta(t, tc.expectedTotal, res.TotalCost, 1e-9)
			assert.Equal(t, tc.expectedErrors, res.Errors)
		})
	}
}

func Test_Service_ComputeTotal_ZeroQuantity(t *testing.T) {
	cat := []catalogue.Entry{{Title: "Apple", Price: 2.0}}
	records := []sales.RawRecord{{Product: "Apple", Quantity: float64(0)}}

	res := testService().ComputeTotal(cat, records)

	assert.Zero(t, res.TotalCost)
	assert.Empty(t, res.Errors)
}
