package handler

import (
	"time"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
	"github.com/hyeonwoo-dev/atelier-shop/internal/service"

	"github.com/google/uuid"
)

type Customer struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type Address struct {
	PostalCode    string `json:"postal_code" validate:"required"`
	MainAddress   string `json:"main_address" validate:"required"`
	DetailAddress string `json:"detail_address,omitempty"`
}

type Shipping struct {
	Recipient      string     `json:"recipient" validate:"required"`
	Phone          string     `json:"phone" validate:"required"`
	Address        Address    `json:"address" validate:"required"`
	Message        string     `json:"message,omitempty" validate:"max=200"`
	TrackingNumber string     `json:"tracking_number,omitempty"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

type OrderItem struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type PaymentRequest struct {
	ItemsTotal  int    `json:"items_total" validate:"gte=0"`
	ShippingFee int    `json:"shipping_fee" validate:"gte=0"`
	FinalAmount int    `json:"final_amount" validate:"required,gt=0"`
	Method      string `json:"method" validate:"required"`
	ImpUID      string `json:"imp_uid,omitempty"`
	MerchantUID string `json:"merchant_uid,omitempty"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	UserID    string         `json:"user_id" validate:"required"`
	Customer  Customer       `json:"customer" validate:"required"`
	Shipping  Shipping       `json:"shipping" validate:"required"`
	Items     []OrderItem    `json:"items" validate:"required,min=1,dive"`
	Payment   PaymentRequest `json:"payment" validate:"required"`
	ClearCart bool           `json:"clear_cart"`
}

func (r CreateOrderRequest) ToInput() service.CreateOrderInput {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		id, _ := uuid.Parse(it.ProductID)
		items = append(items, entities.OrderItem{
			ProductID: id,
			Size:      it.Size,
			Quantity:  it.Quantity,
		})
	}

	return service.CreateOrderInput{
		UserID: r.UserID,
		Customer: entities.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		Shipping: entities.Shipping{
			Recipient:     r.Shipping.Recipient,
			Phone:         r.Shipping.Phone,
			PostalCode:    r.Shipping.Address.PostalCode,
			MainAddress:   r.Shipping.Address.MainAddress,
			DetailAddress: r.Shipping.Address.DetailAddress,
			Message:       r.Shipping.Message,
		},
		Items:       items,
		ItemsTotal:  r.Payment.ItemsTotal,
		ShippingFee: r.Payment.ShippingFee,
		FinalAmount: r.Payment.FinalAmount,
		Method:      entities.PaymentMethod(r.Payment.Method),
		PaymentUID:  r.Payment.ImpUID,
		MerchantUID: r.Payment.MerchantUID,
		ClearCart:   r.ClearCart,
	}
}

type Payment struct {
	ItemsTotal    int        `json:"items_total"`
	ShippingFee   int        `json:"shipping_fee"`
	FinalAmount   int        `json:"final_amount"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
}

// Order is the API representation of an order aggregate.
type Order struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"order_number"`
	UserID       string      `json:"user_id"`
	Status       string      `json:"status"`
	Customer     Customer    `json:"customer"`
	Shipping     Shipping    `json:"shipping"`
	Items        []OrderItem `json:"items"`
	Payment      Payment     `json:"payment"`
	TotalItems   int         `json:"total_items"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	CancelledAt  *time.Time  `json:"cancelled_at,omitempty"`
	RefundedAt   *time.Time  `json:"refunded_at,omitempty"`
	RefundAmount int         `json:"refund_amount,omitempty"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID.String(),
			Size:      it.Size,
			Quantity:  it.Quantity,
		})
	}

	return Order{
		ID:          o.ID.String(),
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Status:      string(o.Status),
		Customer: Customer{
			Name:  o.Customer.Name,
			Email: o.Customer.Email,
			Phone: o.Customer.Phone,
		},
		Shipping: Shipping{
			Recipient: o.Shipping.Recipient,
			Phone:     o.Shipping.Phone,
			Address: Address{
				PostalCode:    o.Shipping.PostalCode,
				MainAddress:   o.Shipping.MainAddress,
				DetailAddress: o.Shipping.DetailAddress,
			},
			Message:        o.Shipping.Message,
			TrackingNumber: o.Shipping.TrackingNumber,
			ShippedAt:      o.Shipping.ShippedAt,
			DeliveredAt:    o.Shipping.DeliveredAt,
		},
		Items: items,
		Payment: Payment{
			ItemsTotal:    o.Payment.ItemsTotal,
			ShippingFee:   o.Payment.ShippingFee,
			FinalAmount:   o.Payment.FinalAmount,
			Method:        string(o.Payment.Method),
			Status:        string(o.Payment.Status),
			PaidAt:        o.Payment.PaidAt,
			TransactionID: o.Payment.TransactionID,
		},
		TotalItems:   o.TotalItems(),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		CancelledAt:  o.CancelledAt,
		RefundedAt:   o.RefundedAt,
		RefundAmount: o.RefundAmount,
	}
}

type OrderList struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	Total       int `json:"total"`
	Limit       int `json:"limit"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RefundRequest struct {
	Amount int `json:"amount" validate:"gte=0"`
}

type SizeStock struct {
	Size  string `json:"size" validate:"required"`
	Stock int    `json:"stock" validate:"gte=0"`
}

type ProductRequest struct {
	SKU          string      `json:"sku" validate:"required"`
	Name         string      `json:"name" validate:"required,max=100"`
	Description  string      `json:"description,omitempty" validate:"max=1000"`
	Price        int         `json:"price" validate:"gte=0"`
	MainCategory string      `json:"main_category" validate:"required,oneof=women men accessories"`
	SubCategory  string      `json:"sub_category" validate:"required"`
	Brand        string      `json:"brand,omitempty" validate:"max=50"`
	IsActive     bool        `json:"is_active"`
	IsFeatured   bool        `json:"is_featured"`
	Sizes        []SizeStock `json:"sizes" validate:"dive"`
}

func (r ProductRequest) ToEntity() entities.Product {
	sizes := make([]entities.SizeStock, 0, len(r.Sizes))
	for _, s := range r.Sizes {
		sizes = append(sizes, entities.SizeStock{Size: s.Size, Stock: s.Stock})
	}

	return entities.Product{
		SKU:          r.SKU,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		MainCategory: r.MainCategory,
		SubCategory:  r.SubCategory,
		Brand:        r.Brand,
		IsActive:     r.IsActive,
		IsFeatured:   r.IsFeatured,
		Sizes:        sizes,
	}
}

type Product struct {
	ID           string      `json:"id"`
	SKU          string      `json:"sku"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Price        int         `json:"price"`
	MainCategory string      `json:"main_category"`
	SubCategory  string      `json:"sub_category"`
	Brand        string      `json:"brand,omitempty"`
	IsActive     bool        `json:"is_active"`
	IsFeatured   bool        `json:"is_featured"`
	Sizes        []SizeStock `json:"sizes"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func ProductEntityToJSON(p entities.Product) Product {
	sizes := make([]SizeStock, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		sizes = append(sizes, SizeStock{Size: s.Size, Stock: s.Stock})
	}

	return Product{
		ID:           p.ID.String(),
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		MainCategory: p.MainCategory,
		SubCategory:  p.SubCategory,
		Brand:        p.Brand,
		IsActive:     p.IsActive,
		IsFeatured:   p.IsFeatured,
		Sizes:        sizes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type ProductList struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required"`
}

type CartLine struct {
	ProductID   string `json:"product_id"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	ProductName string `json:"product_name,omitempty"`
	UnitPrice   int    `json:"unit_price"`
	LineTotal   int    `json:"line_total"`
	Sellable    bool   `json:"sellable"`
}

type CartView struct {
	UserID     string     `json:"user_id"`
	Lines      []CartLine `json:"items"`
	TotalItems int        `json:"total_items"`
	ItemsTotal int        `json:"items_total"`
	UpdatedAt  time.Time  `json:"updated_at,omitzero"`
}

func CartViewToJSON(v entities.CartView) CartView {
	lines := make([]CartLine, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, CartLine{
			ProductID:   l.ProductID.String(),
			Size:        l.Size,
			Quantity:    l.Quantity,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal(),
			Sellable:    l.Sellable,
		})
	}

	return CartView{
		UserID:     v.UserID,
		Lines:      lines,
		TotalItems: v.TotalItems,
		ItemsTotal: v.ItemsTotal,
		UpdatedAt:  v.UpdatedAt,
	}
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
