// Package catalogue defines the product-to-price reference data.
package catalogue

// Entry is one product listing in the price catalogue.
type Entry struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// PriceIndex builds a title-to-price lookup from catalogue entries.
// On duplicate titles the last entry wins; no dedup policy is enforced.
func PriceIndex(entries []Entry) map[string]float64 {
	prices := make(map[string]float64, len(entries))
	for _, e := range entries {
		prices[e.Title] = e.Price
	}
	return prices
}
