package model

// Categories is the fixed, ordered set of menu categories.
// Not user-extensible.
var Categories = []string{"Appetizers", "Main Courses", "Desserts", "Beverages"}

// ValidCategory reports whether name is one of the fixed categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

type MenuItem struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	Cost  float64 `json:"cost" validate:"gte=0"`
}

// Profit is always derived, never stored.
func (m MenuItem) Profit() float64 {
	return m.Price - m.Cost
}
