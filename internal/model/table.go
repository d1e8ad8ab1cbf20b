package model

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
)

// TableCount is the fixed number of dining tables, numbered 1..10
const TableCount = 10

type Table struct {
	Status  TableStatus `json:"status"`
	OrderID int         `json:"order_id,omitempty"` // active order currently seated, 0 if none
}
