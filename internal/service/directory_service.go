package service

import (
	"go-restaurant-os/internal/model"
	"go-restaurant-os/internal/store"
)

type DirectoryService interface {
	AddCustomer(actor model.AccountInfo, name, phone, email string) (*model.Customer, error)
	AddEmployee(actor model.AccountInfo, in EmployeeInput) (*model.Employee, error)
	AddReservation(actor model.AccountInfo, in ReservationInput) (*model.Reservation, error)
	AddSupplier(actor model.AccountInfo, in SupplierInput) (*model.Supplier, error)
	Customers() []model.Customer
	Employees() []model.Employee
	Reservations() []model.Reservation
	ReservationsForDate(date string) []model.Reservation
	Suppliers() []model.Supplier
}

type customerInput struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
}

type EmployeeInput struct {
	Name     string  `validate:"required"`
	Position string  `validate:"required"`
	Email    string  `validate:"omitempty,email"`
	Phone    string
	Salary   float64 `validate:"gte=0"`
}

type ReservationInput struct {
	Customer  string `validate:"required"`
	Table     int    `validate:"min=1,max=10"`
	Date      string `validate:"required"`
	Time      string
	PartySize int `validate:"gt=0"`
}

type SupplierInput struct {
	Name     string `validate:"required"`
	Contact  string
	Phone    string
	Supplies string
}

type directoryService struct {
	store *store.Store
}

func NewDirectoryService(st *store.Store) DirectoryService {
	return &directoryService{store: st}
}

// AddCustomer registers a customer with zeroed counters. Duplicate names
// are permitted; the id is what orders reference.
func (s *directoryService) AddCustomer(actor model.AccountInfo, name, phone, email string) (*model.Customer, error) {
	if err := requirePerm(actor, model.ActionOrders); err != nil {
		return nil, err
	}
	in := customerInput{Name: name, Email: email}
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	state := s.store.State()
	customer := model.Customer{
		ID:    state.NextCustomerID(),
		Name:  name,
		Phone: phone,
		Email: email,
	}
	state.Customers = append(state.Customers, customer)

	_ = s.store.Commit()
	return &customer, nil
}

func (s *directoryService) AddEmployee(actor model.AccountInfo, in EmployeeInput) (*model.Employee, error) {
	if err := requirePerm(actor, model.ActionEmployees); err != nil {
		return nil, err
	}
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	state := s.store.State()
	employee := model.Employee{
		ID:       state.NextEmployeeID(),
		Name:     in.Name,
		Position: in.Position,
		Email:    in.Email,
		Phone:    in.Phone,
		Salary:   in.Salary,
		Status:   model.EmployeeActive,
	}
	state.Employees = append(state.Employees, employee)

	_ = s.store.Commit()
	return &employee, nil
}

func (s *directoryService) AddReservation(actor model.AccountInfo, in ReservationInput) (*model.Reservation, error) {
	if err := requirePerm(actor, model.ActionOrders); err != nil {
		return nil, err
	}
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	state := s.store.State()
	reservation := model.Reservation{
		ID:        state.NextReservationID(),
		Customer:  in.Customer,
		Table:     in.Table,
		Date:      in.Date,
		Time:      in.Time,
		PartySize: in.PartySize,
		Status:    model.ReservationConfirmed,
	}
	state.Reservations = append(state.Reservations, reservation)

	_ = s.store.Commit()
	return &reservation, nil
}

func (s *directoryService) AddSupplier(actor model.AccountInfo, in SupplierInput) (*model.Supplier, error) {
	if err := requirePerm(actor, model.ActionInventory); err != nil {
		return nil, err
	}
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	state := s.store.State()
	supplier := model.Supplier{
		ID:       state.NextSupplierID(),
		Name:     in.Name,
		Contact:  in.Contact,
		Phone:    in.Phone,
		Supplies: in.Supplies,
	}
	state.Suppliers = append(state.Suppliers, supplier)

	_ = s.store.Commit()
	return &supplier, nil
}

func (s *directoryService) Customers() []model.Customer {
	customers := s.store.State().Customers
	out := make([]model.Customer, len(customers))
	copy(out, customers)
	return out
}

func (s *directoryService) Employees() []model.Employee {
	employees := s.store.State().Employees
	out := make([]model.Employee, len(employees))
	copy(out, employees)
	return out
}

func (s *directoryService) Reservations() []model.Reservation {
	reservations := s.store.State().Reservations
	out := make([]model.Reservation, len(reservations))
	copy(out, reservations)
	return out
}

func (s *directoryService) ReservationsForDate(date string) []model.Reservation {
	var out []model.Reservation
	for _, r := range s.store.State().Reservations {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

func (s *directoryService) Suppliers() []model.Supplier {
	suppliers := s.store.State().Suppliers
	out := make([]model.Supplier, len(suppliers))
	copy(out, suppliers)
	return out
}
