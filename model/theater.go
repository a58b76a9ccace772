package model

type Theater struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Address     string `json:"address"`
	SeatsPerRow int    `json:"seatsPerRow"`
	TotalRows   int    `json:"totalRows"`
	TotalSeats  int    `json:"totalSeats"`
	Active      bool   `json:"active"`
}
