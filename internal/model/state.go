package model

// Counters hold the monotonic id sources persisted next to their
// collections. Ids are assigned from these, never from collection length.
type Counters struct {
	Order       int `json:"order"`
	Customer    int `json:"customer"`
	Employee    int `json:"employee"`
	Reservation int `json:"reservation"`
	Supplier    int `json:"supplier"`
}

// State is the whole in-memory document owned by the running session.
// The persistence layer snapshots it as a single unit.
type State struct {
	Menu         map[string][]MenuItem     `json:"menu"`
	Inventory    map[string]InventoryEntry `json:"inventory"`
	Orders       []Order                   `json:"orders"`
	Employees    []Employee                `json:"employees"`
	Tables       map[int]*Table            `json:"tables"`
	DailySales   map[string]float64        `json:"daily_sales"`
	Expenses     []Expense                 `json:"expenses"`
	Customers    []Customer                `json:"customers"`
	Reservations []Reservation             `json:"reservations"`
	Suppliers    []Supplier                `json:"suppliers"`
	Coupons      []Coupon                  `json:"coupons"`
	TaxSettings  TaxSettings               `json:"tax_settings"`
	Counters     Counters                  `json:"counters"`
}

// NewState returns an empty state with the fixed categories, the ten
// tables and the default tax settings seeded.
func NewState() *State {
	s := &State{
		Menu:        make(map[string][]MenuItem, len(Categories)),
		Inventory:   make(map[string]InventoryEntry),
		Tables:      make(map[int]*Table, TableCount),
		DailySales:  make(map[string]float64),
		TaxSettings: DefaultTaxSettings,
	}
	for _, c := range Categories {
		s.Menu[c] = []MenuItem{}
	}
	for i := 1; i <= TableCount; i++ {
		s.Tables[i] = &Table{Status: TableAvailable}
	}
	return s
}

// Normalize repairs a freshly loaded state: nil maps are allocated,
// missing fixed entries (categories, tables, tax settings) are restored
// and every counter is clamped to at least the highest existing id.
func (s *State) Normalize() {
	if s.Menu == nil {
		s.Menu = make(map[string][]MenuItem, len(Categories))
	}
	for _, c := range Categories {
		if _, ok := s.Menu[c]; !ok {
			s.Menu[c] = []MenuItem{}
		}
	}
	if s.Inventory == nil {
		s.Inventory = make(map[string]InventoryEntry)
	}
	if s.Tables == nil {
		s.Tables = make(map[int]*Table, TableCount)
	}
	for i := 1; i <= TableCount; i++ {
		if s.Tables[i] == nil {
			s.Tables[i] = &Table{Status: TableAvailable}
		}
	}
	if s.DailySales == nil {
		s.DailySales = make(map[string]float64)
	}
	if s.TaxSettings == (TaxSettings{}) {
		s.TaxSettings = DefaultTaxSettings
	}

	for _, o := range s.Orders {
		if o.ID > s.Counters.Order {
			s.Counters.Order = o.ID
		}
	}
	for _, c := range s.Customers {
		if c.ID > s.Counters.Customer {
			s.Counters.Customer = c.ID
		}
	}
	for _, e := range s.Employees {
		if e.ID > s.Counters.Employee {
			s.Counters.Employee = e.ID
		}
	}
	for _, r := range s.Reservations {
		if r.ID > s.Counters.Reservation {
			s.Counters.Reservation = r.ID
		}
	}
	for _, sp := range s.Suppliers {
		if sp.ID > s.Counters.Supplier {
			s.Counters.Supplier = sp.ID
		}
	}
}

// FindOrder returns a pointer into the order slice, or nil if the id is
// unknown. Valid until the next append.
func (s *State) FindOrder(id int) *Order {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i]
		}
	}
	return nil
}

// FindCustomer looks a customer up by id
func (s *State) FindCustomer(id int) *Customer {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return &s.Customers[i]
		}
	}
	return nil
}

func (s *State) NextOrderID() int {
	s.Counters.Order++
	return s.Counters.Order
}

func (s *State) NextCustomerID() int {
	s.Counters.Customer++
	return s.Counters.Customer
}

func (s *State) NextEmployeeID() int {
	s.Counters.Employee++
	return s.Counters.Employee
}

func (s *State) NextReservationID() int {
	s.Counters.Reservation++
	return s.Counters.Reservation
}

func (s *State) NextSupplierID() int {
	s.Counters.Supplier++
	return s.Counters.Supplier
}
