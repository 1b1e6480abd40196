package entities

// UserOrdersFilter narrows a customer's order history.
type UserOrdersFilter struct {
	Status Status
	Limit  int
}

// OrdersFilter is the admin order listing: optional status, free-text search
// over order number / customer name / email, page-based pagination.
type OrdersFilter struct {
	Status Status
	Search string
	Page   int
	Limit  int
}

type ProductsFilter struct {
	MainCategory string
	SubCategory  string
	Search       string
	ActiveOnly   bool
	FeaturedOnly bool
	Page         int
	Limit        int
}
