package service

import (
	"sort"
	"time"

	"go-restaurant-os/internal/model"
	"go-restaurant-os/internal/store"
)

type OrderService interface {
	PlaceOrder(actor model.AccountInfo, in PlaceOrderInput) (*model.Order, error)
	MarkReady(actor model.AccountInfo, orderID int) error
	OrderByID(orderID int) (*model.Order, error)
	ListOrders() []model.Order
	OrdersForDate(date string) []model.Order
	KitchenQueue(actor model.AccountInfo) ([]model.Order, error)
	DailySales(date string) float64
}

type PlaceOrderInput struct {
	Table      int               `validate:"min=1,max=10"`
	CustomerID int               `validate:"gte=0"`
	Customer   string            // defaults to Walk-in
	Items      []model.OrderItem `validate:"required,min=1,dive"`
}

type orderService struct {
	store *store.Store
	now   func() time.Time
}

func NewOrderService(st *store.Store) OrderService {
	return &orderService{store: st, now: time.Now}
}

// PlaceOrder creates an order in one atomic step: the order is appended
// to history and its total added to the daily sales bucket together,
// with no partial visibility.
func (s *orderService) PlaceOrder(actor model.AccountInfo, in PlaceOrderInput) (*model.Order, error) {
	if err := requirePerm(actor, model.ActionOrders); err != nil {
		return nil, err
	}
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	state := s.store.State()

	customer := in.Customer
	if in.CustomerID != 0 {
		record := state.FindCustomer(in.CustomerID)
		if record == nil {
			return nil, ErrCustomerNotFound
		}
		customer = record.Name
	}
	if customer == "" {
		customer = model.WalkInCustomer
	}

	total := 0.0
	for _, item := range in.Items {
		total += item.Price
	}

	now := s.now()
	order := model.Order{
		ID:         state.NextOrderID(),
		Table:      in.Table,
		CustomerID: in.CustomerID,
		Customer:   customer,
		Items:      append([]model.OrderItem(nil), in.Items...),
		Total:      total,
		Date:       now.Format("2006-01-02"),
		Time:       now.Format("15:04"),
		Status:     model.OrderActive,
	}

	state.Orders = append(state.Orders, order)
	state.DailySales[order.Date] += total
	if table := state.Tables[order.Table]; table != nil {
		table.Status = model.TableOccupied
		table.OrderID = order.ID
	}

	_ = s.store.Commit()
	return &order, nil
}

// MarkReady transitions an order from active to ready. Calling it on an
// order that is already ready is a no-op, not an error.
func (s *orderService) MarkReady(actor model.AccountInfo, orderID int) error {
	if err := requirePerm(actor, model.ActionKitchen); err != nil {
		return err
	}

	state := s.store.State()
	order := state.FindOrder(orderID)
	if order == nil {
		return ErrOrderNotFound
	}
	if order.Status == model.OrderReady {
		return nil
	}

	order.Status = model.OrderReady
	if table := state.Tables[order.Table]; table != nil && table.OrderID == order.ID {
		table.Status = model.TableAvailable
		table.OrderID = 0
	}

	_ = s.store.Commit()
	return nil
}

func (s *orderService) OrderByID(orderID int) (*model.Order, error) {
	order := s.store.State().FindOrder(orderID)
	if order == nil {
		return nil, ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

// ListOrders returns the full history, most recent first
func (s *orderService) ListOrders() []model.Order {
	orders := s.store.State().Orders
	out := make([]model.Order, len(orders))
	copy(out, orders)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (s *orderService) OrdersForDate(date string) []model.Order {
	var out []model.Order
	for _, o := range s.store.State().Orders {
		if o.Date == date {
			out = append(out, o)
		}
	}
	return out
}

// KitchenQueue returns the active orders oldest-first, the way the
// kitchen works through them.
func (s *orderService) KitchenQueue(actor model.AccountInfo) ([]model.Order, error) {
	if err := requirePerm(actor, model.ActionKitchen); err != nil {
		return nil, err
	}
	var out []model.Order
	for _, o := range s.store.State().Orders {
		if o.Status == model.OrderActive {
			out = append(out, o)
		}
	}
	return out, nil
}

// DailySales returns the accumulated revenue bucket for a date
func (s *orderService) DailySales(date string) float64 {
	return s.store.State().DailySales[date]
}
