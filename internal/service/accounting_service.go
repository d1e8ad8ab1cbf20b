package service

import (
	"time"

	"github.com/google/uuid"

	"go-restaurant-os/internal/model"
	"go-restaurant-os/internal/store"
)

type AccountingService interface {
	AddExpense(actor model.AccountInfo, description string, amount float64) (*model.Expense, error)
	Expenses() []model.Expense
	AddCoupon(actor model.AccountInfo, description string, discount float64, expires string) (*model.Coupon, error)
	FindCoupon(code string) (*model.Coupon, error)
	Coupons() []model.Coupon
	TaxSettings() model.TaxSettings
	UpdateTaxSettings(actor model.AccountInfo, rate float64, name string) error
}

type expenseInput struct {
	Description string  `validate:"required"`
	Amount      float64 `validate:"gte=0"`
}

type couponInput struct {
	Description string  `validate:"required"`
	Discount    float64 `validate:"gte=0,lte=1"`
}

type accountingService struct {
	store *store.Store
	now   func() time.Time
}

func NewAccountingService(st *store.Store) AccountingService {
	return &accountingService{store: st, now: time.Now}
}

// AddExpense appends an expense stamped with today's date
func (s *accountingService) AddExpense(actor model.AccountInfo, description string, amount float64) (*model.Expense, error) {
	if err := requirePerm(actor, model.ActionReports); err != nil {
		return nil, err
	}
	in := expenseInput{Description: description, Amount: amount}
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	expense := model.Expense{
		Description: description,
		Amount:      amount,
		Date:        s.now().Format("2006-01-02"),
	}
	state := s.store.State()
	state.Expenses = append(state.Expenses, expense)

	_ = s.store.Commit()
	return &expense, nil
}

func (s *accountingService) Expenses() []model.Expense {
	expenses := s.store.State().Expenses
	out := make([]model.Expense, len(expenses))
	copy(out, expenses)
	return out
}

// AddCoupon registers a coupon under a generated code
func (s *accountingService) AddCoupon(actor model.AccountInfo, description string, discount float64, expires string) (*model.Coupon, error) {
	if err := requirePerm(actor, model.ActionSettings); err != nil {
		return nil, err
	}
	in := couponInput{Description: description, Discount: discount}
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	coupon := model.Coupon{
		Code:        uuid.New().String(),
		Description: description,
		Discount:    discount,
		Expires:     expires,
	}
	state := s.store.State()
	state.Coupons = append(state.Coupons, coupon)

	_ = s.store.Commit()
	return &coupon, nil
}

func (s *accountingService) FindCoupon(code string) (*model.Coupon, error) {
	for _, c := range s.store.State().Coupons {
		if c.Code == code {
			copied := c
			return &copied, nil
		}
	}
	return nil, ErrCouponNotFound
}

func (s *accountingService) Coupons() []model.Coupon {
	coupons := s.store.State().Coupons
	out := make([]model.Coupon, len(coupons))
	copy(out, coupons)
	return out
}

func (s *accountingService) TaxSettings() model.TaxSettings {
	return s.store.State().TaxSettings
}

// UpdateTaxSettings is the only settings mutation and is restricted to
// the Administrator role, not just a permission tag.
func (s *accountingService) UpdateTaxSettings(actor model.AccountInfo, rate float64, name string) error {
	if actor.Role != model.RoleAdministrator {
		return ErrForbidden
	}
	settings := model.TaxSettings{Rate: rate, Name: name}
	if err := validateInput(&settings); err != nil {
		return err
	}
	s.store.State().TaxSettings = settings

	_ = s.store.Commit()
	return nil
}
