package entities

import "errors"

var (
	ErrInvalidOrder         = errors.New("invalid order request")
	ErrPaymentMismatch      = errors.New("payment verification mismatch")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrOrderDelivered       = errors.New("delivered order cannot be cancelled")
	ErrOrderNotFound        = errors.New("order not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductNotSellable   = errors.New("product is not sellable")
	ErrSizeNotFound         = errors.New("size not found for product")
	ErrCartNotFound         = errors.New("cart not found")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrDuplicateSKU         = errors.New("product sku already exists")
	ErrDuplicateTransaction = errors.New("order already exists for transaction")
	ErrOrderNumberConflict  = errors.New("order number already taken")
	ErrInvalidProduct       = errors.New("invalid product data")
)
