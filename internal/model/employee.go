package model

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

type Employee struct {
	ID       int            `json:"id"`
	Name     string         `json:"name" validate:"required"`
	Position string         `json:"position"`
	Email    string         `json:"email" validate:"omitempty,email"`
	Phone    string         `json:"phone"`
	Salary   float64        `json:"salary" validate:"gte=0"`
	Status   EmployeeStatus `json:"status"`
}
