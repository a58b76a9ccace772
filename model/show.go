package model

// ShowRequest is the admin payload for scheduling a show.
type ShowRequest struct {
	MovieId   int64   `json:"movieId"`
	TheaterId int64   `json:"theaterId"`
	ShowDate  string  `json:"showDate"`
	ShowTime  string  `json:"showTime"`
	Price     float64 `json:"price"`
}

type Show struct {
	Id             int64   `json:"id"`
	Movie          Movie   `json:"movie"`
	Theater        Theater `json:"theater"`
	ShowDate       string  `json:"showDate"`
	ShowTime       string  `json:"showTime"`
	Price          float64 `json:"price"`
	AvailableSeats int     `json:"availableSeats"`
}
