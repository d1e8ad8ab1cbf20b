package service

import (
	"sort"
	"strconv"

	"go-restaurant-os/internal/model"
	"go-restaurant-os/internal/store"
)

type CatalogService interface {
	AddMenuItem(actor model.AccountInfo, category, name string, price, cost float64) (*model.MenuItem, error)
	UpsertInventory(actor model.AccountInfo, name, quantity, unit, minStock string) (*model.InventoryEntry, error)
	ListByCategory(category string) ([]model.MenuItem, error)
	Categories() []string
	InventoryStatus() []model.StockLine
}

type menuItemInput struct {
	Category string  `validate:"required,menucategory"`
	Name     string  `validate:"required"`
	Price    float64 `validate:"gte=0"`
	Cost     float64 `validate:"gte=0"`
}

type catalogService struct {
	store *store.Store
}

func NewCatalogService(st *store.Store) CatalogService {
	return &catalogService{store: st}
}

func (s *catalogService) AddMenuItem(actor model.AccountInfo, category, name string, price, cost float64) (*model.MenuItem, error) {
	if err := requirePerm(actor, model.ActionMenu); err != nil {
		return nil, err
	}
	in := menuItemInput{Category: category, Name: name, Price: price, Cost: cost}
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	state := s.store.State()
	item := model.MenuItem{Name: name, Price: price, Cost: cost}
	state.Menu[category] = append(state.Menu[category], item)

	// A new dish gets a stock entry with defaults unless one already exists
	if _, ok := state.Inventory[name]; !ok {
		state.Inventory[name] = model.InventoryEntry{
			Quantity: model.DefaultStockQuantity,
			Unit:     model.DefaultStockUnit,
			MinStock: model.DefaultMinStock,
		}
	}

	// Failed commits are surfaced via Store.Pending and retried on the
	// next mutation; the in-memory state stays authoritative.
	_ = s.store.Commit()
	return &item, nil
}

// UpsertInventory takes quantity and minStock as the raw form strings and
// rejects anything not parseable as a non-negative integer. An existing
// entry for the name is overwritten.
func (s *catalogService) UpsertInventory(actor model.AccountInfo, name, quantity, unit, minStock string) (*model.InventoryEntry, error) {
	if err := requirePerm(actor, model.ActionInventory); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, validationError("name", "must not be empty")
	}
	qty, err := strconv.Atoi(quantity)
	if err != nil || qty < 0 {
		return nil, validationError("quantity", "must be a non-negative integer")
	}
	min, err := strconv.Atoi(minStock)
	if err != nil || min < 0 {
		return nil, validationError("min stock", "must be a non-negative integer")
	}

	entry := model.InventoryEntry{Quantity: qty, Unit: unit, MinStock: min}
	s.store.State().Inventory[name] = entry

	_ = s.store.Commit()
	return &entry, nil
}

// ListByCategory returns the category's items in insertion order
func (s *catalogService) ListByCategory(category string) ([]model.MenuItem, error) {
	if !model.ValidCategory(category) {
		return nil, validationError("category", "unknown category")
	}
	items := s.store.State().Menu[category]
	out := make([]model.MenuItem, len(items))
	copy(out, items)
	return out, nil
}

func (s *catalogService) Categories() []string {
	return model.Categories
}

// InventoryStatus lists every stock entry with its derived status,
// sorted by item name for a deterministic order.
func (s *catalogService) InventoryStatus() []model.StockLine {
	inventory := s.store.State().Inventory
	lines := make([]model.StockLine, 0, len(inventory))
	for name, entry := range inventory {
		lines = append(lines, model.StockLine{Name: name, Entry: entry, Status: entry.Status()})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })
	return lines
}
