package api

import "github.com/shopspring/decimal"

// ProductStatus is the catalog lifecycle state of a product.
type ProductStatus string

const (
	ProductDraft    ProductStatus = "draft"
	ProductActive   ProductStatus = "active"
	ProductArchived ProductStatus = "archived"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderFulfilled  OrderStatus = "fulfilled"
	OrderCancelled  OrderStatus = "cancelled"
)

// Product is a catalog entry as served by the backend. Optional fields keep
// their zero value when the payload omitted them; Stock is a pointer so that
// "absent" and "zero stock" stay distinguishable.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Status      ProductStatus   `json:"status,omitempty"`
	Stock       *int            `json:"stock,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	CreatedAt   string          `json:"createdAt,omitempty"`
	UpdatedAt   string          `json:"updatedAt,omitempty"`
}

// OrderLineItem is one purchased product within an order.
type OrderLineItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
}

// Order is a customer order. LineItems is never nil after decoding; Total is
// not reconciled against the line items.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Status    OrderStatus     `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt,omitempty"`
	LineItems []OrderLineItem `json:"lineItems"`
}

// HealthResponse reports backend liveness plus per-dependency status.
type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version,omitempty"`
	Uptime       string            `json:"uptime,omitempty"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// APIError is the backend's structured error envelope. The client never
// surfaces it to callers; it only enriches the fallback diagnostics.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
