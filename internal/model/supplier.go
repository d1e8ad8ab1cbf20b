package model

type Supplier struct {
	ID       int    `json:"id"`
	Name     string `json:"name" validate:"required"`
	Contact  string `json:"contact"`
	Phone    string `json:"phone"`
	Supplies string `json:"supplies"` // free-text description of what they deliver
}
