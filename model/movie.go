package model

type Movie struct {
	Id          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       string   `json:"genre"`
	Language    string   `json:"language"`
	Duration    int      `json:"duration"`
	Rating      *float64 `json:"rating"`
	ReleaseDate string   `json:"releaseDate"`
	PosterUrl   string   `json:"posterUrl"`
	TrailerUrl  string   `json:"trailerUrl"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	Active      bool     `json:"active"`
}
