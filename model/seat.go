package model

const (
	SeatAvailable = "AVAILABLE"
	SeatBooked    = "BOOKED"
)

// Seat is one entry of a show's seat map. Status values other than
// AVAILABLE and BOOKED are server-defined and treated as non-selectable.
type Seat struct {
	SeatNumber string `json:"seatNumber"`
	Status     string `json:"status"`
}
