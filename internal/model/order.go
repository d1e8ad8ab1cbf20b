package model

type OrderStatus string

const (
	OrderActive OrderStatus = "active"
	OrderReady  OrderStatus = "ready"
)

// OrderItem is a price snapshot taken at order time, not a reference to a
// live MenuItem. Later price edits never change historical orders.
type OrderItem struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type Order struct {
	ID         int         `json:"id"`
	Table      int         `json:"table"`
	CustomerID int         `json:"customer_id,omitempty"` // 0 when the order names no registered customer
	Customer   string      `json:"customer"`
	Items      []OrderItem `json:"items" validate:"required,min=1,dive"`
	Total      float64     `json:"total"` // sum of item prices at creation, never recomputed
	Date       string      `json:"date"`  // YYYY-MM-DD
	Time       string      `json:"time"`  // HH:MM
	Status     OrderStatus `json:"status"`
}

// WalkInCustomer is the customer name used when none is given
const WalkInCustomer = "Walk-in"
