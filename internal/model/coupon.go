package model

// Coupon is a registry entry only; order totals are not discounted by it.
type Coupon struct {
	Code        string  `json:"code"`
	Description string  `json:"description" validate:"required"`
	Discount    float64 `json:"discount" validate:"gte=0,lte=1"` // fraction, 0.10 = 10%
	Expires     string  `json:"expires"`
}
