package model

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID        int               `json:"id"`
	Customer  string            `json:"customer" validate:"required"`
	Table     int               `json:"table" validate:"min=1,max=10"`
	Date      string            `json:"date" validate:"required"`
	Time      string            `json:"time"`
	PartySize int               `json:"party_size" validate:"gt=0"`
	Status    ReservationStatus `json:"status"`
}
