package model

const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
)

type Booking struct {
	Id               int64    `json:"id"`
	BookingReference string   `json:"bookingReference"`
	User             *User    `json:"user"`
	Show             Show     `json:"show"`
	SeatNumbers      []string `json:"seatNumbers"`
	NumberOfSeats    int      `json:"numberOfSeats"`
	TotalAmount      float64  `json:"totalAmount"`
	Status           string   `json:"status"`
	BookingTime      string   `json:"bookingTime"`
	Payment          *Payment `json:"payment"`
}

type Payment struct {
	Status        string `json:"status"`
	TransactionId string `json:"transactionId"`
	PaymentMethod string `json:"paymentMethod"`
}

// BookingRequest is the payload posted when a seat selection is submitted.
type BookingRequest struct {
	ShowId        int64    `json:"showId"`
	SeatNumbers   []string `json:"seatNumbers"`
	PaymentMethod string   `json:"paymentMethod"`
}
