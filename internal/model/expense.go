package model

// Expense is append-only
type Expense struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Date        string  `json:"date"`
}
