package model

// Customer is a directory entry. Visits and LoyaltyPoints default to zero
// and are not incremented by order placement.
type Customer struct {
	ID            int    `json:"id"`
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	Visits        int    `json:"visits"`
	LoyaltyPoints int    `json:"loyalty_points"`
}
