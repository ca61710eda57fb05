package domain

// Product is the catalog's record for a product id. The catalog service is
// the source of truth for existence, name and current price.
type Product struct {
	ID    int
	Name  string
	Price float64
}
