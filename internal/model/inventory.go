package model

type StockStatus string

const (
	StockOK  StockStatus = "OK"
	StockLow StockStatus = "LOW"
)

// Defaults applied when a menu item implicitly creates its stock entry
const (
	DefaultStockQuantity = 50
	DefaultStockUnit     = "servings"
	DefaultMinStock      = 10
)

// InventoryEntry is keyed by item name in the state, not necessarily 1:1
// with MenuItem.
type InventoryEntry struct {
	Quantity int    `json:"quantity" validate:"gte=0"`
	Unit     string `json:"unit"`
	MinStock int    `json:"min_stock" validate:"gte=0"`
}

// Status classifies the entry as LOW when quantity has fallen to or below
// the configured minimum, boundary inclusive.
func (e InventoryEntry) Status() StockStatus {
	if e.Quantity <= e.MinStock {
		return StockLow
	}
	return StockOK
}

// StockLine is one row of the inventory status listing
type StockLine struct {
	Name   string         `json:"name"`
	Entry  InventoryEntry `json:"entry"`
	Status StockStatus    `json:"status"`
}
