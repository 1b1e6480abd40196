package entities

import (
	"time"

	"github.com/google/uuid"
)

type CartStatus string

const (
	CartActive    CartStatus = "active"
	CartAbandoned CartStatus = "abandoned"
	CartConverted CartStatus = "converted"
)

type CartItem struct {
	ProductID uuid.UUID
	Size      string
	Quantity  int
}

// Cart holds a customer's pending selections. A customer has at most one
// active cart; items are deduplicated by (product, size).
type Cart struct {
	ID        uuid.UUID
	UserID    string
	Status    CartStatus
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// CartLine is a cart item joined with its product snapshot for display.
type CartLine struct {
	CartItem
	ProductName string
	UnitPrice   int
	Sellable    bool
}

func (l CartLine) LineTotal() int {
	return l.UnitPrice * l.Quantity
}

// CartView is what the cart read path returns: lines with product data
// plus computed totals.
type CartView struct {
	UserID     string
	Lines      []CartLine
	TotalItems int
	ItemsTotal int
	UpdatedAt  time.Time
}
