package repo

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
)

type Order struct {
	ID            uuid.UUID    `db:"id"`
	OrderNumber   string       `db:"order_number"`
	UserID        string       `db:"user_id"`
	Status        string       `db:"status"`
	CustomerName  string       `db:"customer_name"`
	CustomerEmail string       `db:"customer_email"`
	CustomerPhone string       `db:"customer_phone"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"`
	CancelledAt   sql.NullTime `db:"cancelled_at"`
	RefundedAt    sql.NullTime `db:"refunded_at"`
	RefundAmount  int          `db:"refund_amount"`
}

type Shipping struct {
	OrderID        uuid.UUID      `db:"order_id"`
	Recipient      string         `db:"recipient"`
	Phone          string         `db:"phone"`
	PostalCode     string         `db:"postal_code"`
	MainAddress    string         `db:"main_address"`
	DetailAddress  sql.NullString `db:"detail_address"`
	Message        sql.NullString `db:"message"`
	TrackingNumber sql.NullString `db:"tracking_number"`
	ShippedAt      sql.NullTime   `db:"shipped_at"`
	DeliveredAt    sql.NullTime   `db:"delivered_at"`
}

type Payment struct {
	OrderID       uuid.UUID      `db:"order_id"`
	ItemsTotal    int            `db:"items_total"`
	ShippingFee   int            `db:"shipping_fee"`
	FinalAmount   int            `db:"final_amount"`
	Method        string         `db:"method"`
	Status        string         `db:"status"`
	PaidAt        sql.NullTime   `db:"paid_at"`
	TransactionID sql.NullString `db:"transaction_id"`
}

type OrderItem struct {
	OrderID   uuid.UUID `db:"order_id"`
	LineNo    int       `db:"line_no"`
	ProductID uuid.UUID `db:"product_id"`
	Size      string    `db:"size"`
	Quantity  int       `db:"quantity"`
}

type Product struct {
	ID           uuid.UUID      `db:"id"`
	SKU          string         `db:"sku"`
	Name         string         `db:"name"`
	Description  sql.NullString `db:"description"`
	Price        int            `db:"price"`
	MainCategory string         `db:"main_category"`
	SubCategory  string         `db:"sub_category"`
	Brand        sql.NullString `db:"brand"`
	IsActive     bool           `db:"is_active"`
	IsFeatured   bool           `db:"is_featured"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type ProductSize struct {
	ProductID uuid.UUID `db:"product_id"`
	Size      string    `db:"size"`
	Stock     int       `db:"stock"`
}

type Cart struct {
	ID        uuid.UUID `db:"id"`
	UserID    string    `db:"user_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CartItem struct {
	CartID    uuid.UUID `db:"cart_id"`
	ProductID uuid.UUID `db:"product_id"`
	Size      string    `db:"size"`
	Quantity  int       `db:"quantity"`
}

func ShippingToEntity(s Shipping) entities.Shipping {
	return entities.Shipping{
		Recipient:      s.Recipient,
		Phone:          s.Phone,
		PostalCode:     s.PostalCode,
		MainAddress:    s.MainAddress,
		DetailAddress:  nullStringToString(s.DetailAddress),
		Message:        nullStringToString(s.Message),
		TrackingNumber: nullStringToString(s.TrackingNumber),
		ShippedAt:      nullTimeToPtr(s.ShippedAt),
		DeliveredAt:    nullTimeToPtr(s.DeliveredAt),
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		ItemsTotal:    p.ItemsTotal,
		ShippingFee:   p.ShippingFee,
		FinalAmount:   p.FinalAmount,
		Method:        entities.PaymentMethod(p.Method),
		Status:        entities.PaymentStatus(p.Status),
		PaidAt:        nullTimeToPtr(p.PaidAt),
		TransactionID: nullStringToString(p.TransactionID),
	}
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID,
		Size:      i.Size,
		Quantity:  i.Quantity,
	}
}

func OrderToEntity(o Order, s Shipping, p Payment, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Status:      entities.Status(o.Status),
		Customer: entities.Customer{
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
			Phone: o.CustomerPhone,
		},
		Shipping:     ShippingToEntity(s),
		Payment:      PaymentToEntity(p),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		CancelledAt:  nullTimeToPtr(o.CancelledAt),
		RefundedAt:   nullTimeToPtr(o.RefundedAt),
		RefundAmount: o.RefundAmount,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ProductToEntity(p Product, sizes []ProductSize) entities.Product {
	product := entities.Product{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  nullStringToString(p.Description),
		Price:        p.Price,
		MainCategory: p.MainCategory,
		SubCategory:  p.SubCategory,
		Brand:        nullStringToString(p.Brand),
		IsActive:     p.IsActive,
		IsFeatured:   p.IsFeatured,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	if len(sizes) > 0 {
		product.Sizes = make([]entities.SizeStock, 0, len(sizes))
		for _, s := range sizes {
			product.Sizes = append(product.Sizes, entities.SizeStock{Size: s.Size, Stock: s.Stock})
		}
	}

	return product
}

func CartToEntity(c Cart, items []CartItem) entities.Cart {
	cart := entities.Cart{
		ID:        c.ID,
		UserID:    c.UserID,
		Status:    entities.CartStatus(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if len(items) > 0 {
		cart.Items = make([]entities.CartItem, 0, len(items))
		for _, it := range items {
			cart.Items = append(cart.Items, entities.CartItem{
				ProductID: it.ProductID,
				Size:      it.Size,
				Quantity:  it.Quantity,
			})
		}
	}

	return cart
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
