package model

// TaxSettings is a single global record, mutable by Administrator only
type TaxSettings struct {
	Rate float64 `json:"rate" validate:"gte=0,lte=1"`
	Name string  `json:"name" validate:"required"`
}

var DefaultTaxSettings = TaxSettings{Rate: 0.08, Name: "Sales Tax"}
