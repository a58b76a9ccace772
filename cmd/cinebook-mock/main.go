// Command cinebook-mock runs an in-memory stand-in for the booking backend.
// It serves the same REST surface the TUI talks to, with seeded movies,
// theaters and shows, so the client can be exercised without the real
// server or a database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"cinebook-cli/model"
)

type account struct {
	user     model.User
	password string
}

type server struct {
	mu sync.Mutex

	accounts map[string]account // by username
	tokens   map[string]string  // token -> username

	movies   []model.Movie
	theaters []model.Theater
	shows    []model.Show
	seats    map[int64][]model.Seat // by show id
	bookings []model.Booking

	nextMovieID   int64
	nextTheaterID int64
	nextShowID    int64
	nextBookingID int64
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	s := newServer()
	r := newRouter(s)

	log.Printf("cinebook-mock listening on %s", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatal(err)
	}
}

func newRouter(s *server) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/signup", s.handleSignup)
		r.With(s.requireAuth).Get("/auth/me", s.handleMe)

		r.Get("/movies", s.handleMovies)
		r.Get("/movies/search", s.handleSearchMovies)
		r.Get("/movies/genre/{genre}", s.handleMoviesByGenre)
		r.Get("/movies/{id}", s.handleMovie)

		r.Get("/theaters", s.handleTheaters)
		r.Get("/theaters/city/{city}", s.handleTheatersByCity)

		r.Get("/shows", s.handleShows)
		r.Get("/shows/{id}", s.handleShow)
		r.Get("/shows/movie/{movieId}", s.handleShowsByMovie)
		r.Get("/shows/movie/{movieId}/city/{city}", s.handleShowsByMovieAndCity)

		r.Get("/seats/show/{showId}", s.handleSeats)
		r.Get("/seats/show/{showId}/available", s.handleAvailableSeats)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/bookings", s.handleCreateBooking)
			r.Get("/bookings/my-bookings", s.handleMyBookings)
			r.Get("/bookings/{id}", s.handleBooking)
			r.Post("/bookings/{id}/confirm", s.handleConfirmBooking)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth, s.requireAdmin)
			r.Post("/admin/movies", s.handleCreateMovie)
			r.Delete("/admin/movies/{id}", s.handleDeleteMovie)
			r.Post("/admin/theaters", s.handleCreateTheater)
			r.Delete("/admin/theaters/{id}", s.handleDeleteTheater)
			r.Post("/admin/shows", s.handleCreateShow)
			r.Delete("/admin/shows/{id}", s.handleDeleteShow)
			r.Get("/admin/bookings", s.handleAllBookings)
		})
	})

	return r
}

func newServer() *server {
	s := &server{
		accounts: map[string]account{},
		tokens:   map[string]string{},
		seats:    map[int64][]model.Seat{},
	}
	s.seed()
	return s
}

func rate(v float64) *float64 { return &v }

func (s *server) seed() {
	s.accounts["admin"] = account{
		user:     model.User{Username: "admin", Email: "admin@cinebook.local", Role: model.RoleAdmin},
		password: "admin123",
	}
	s.accounts["user"] = account{
		user:     model.User{Username: "user", Email: "user@cinebook.local", Role: "ROLE_USER"},
		password: "user123",
	}

	s.movies = []model.Movie{
		{Title: "Interstellar Run", Description: "A crew races a collapsing wormhole.", Genre: "Sci-Fi",
			Language: "English", Duration: 162, Rating: rate(8.7), ReleaseDate: "2026-07-10",
			Director: "L. Moreau", Cast: []string{"A. Rao", "J. Kim"}, Active: true},
		{Title: "Monsoon Wedding Crashers", Description: "Two brothers gatecrash the season.", Genre: "Comedy",
			Language: "Hindi", Duration: 128, Rating: rate(7.4), ReleaseDate: "2026-08-01",
			Director: "P. Sharma", Cast: []string{"R. Kapoor", "N. Das"}, Active: true},
		{Title: "The Last Ledger", Description: "An auditor uncovers a city-wide scheme.", Genre: "Thriller",
			Language: "English", Duration: 141, Rating: rate(8.1), ReleaseDate: "2026-06-20",
			Director: "C. Okafor", Cast: []string{"M. Ali", "S. Chen"}, Active: true},
		{Title: "Paper Boats", Description: "A childhood promise across two cities.", Genre: "Drama",
			Language: "Hindi", Duration: 117, Rating: rate(7.9), ReleaseDate: "2026-08-15",
			Director: "V. Iyer", Cast: []string{"K. Menon"}, Active: true},
	}
	for i := range s.movies {
		s.movies[i].Id = int64(i + 1)
	}
	s.nextMovieID = int64(len(s.movies) + 1)

	s.theaters = []model.Theater{
		{Name: "PVR Phoenix", City: "Mumbai", Address: "Lower Parel", SeatsPerRow: 10, TotalRows: 8, Active: true},
		{Name: "INOX Megaplex", City: "Mumbai", Address: "Malad West", SeatsPerRow: 12, TotalRows: 6, Active: true},
		{Name: "Cinepolis Saket", City: "Delhi", Address: "Select Citywalk", SeatsPerRow: 10, TotalRows: 7, Active: true},
	}
	for i := range s.theaters {
		s.theaters[i].Id = int64(i + 1)
		s.theaters[i].TotalSeats = s.theaters[i].SeatsPerRow * s.theaters[i].TotalRows
	}
	s.nextTheaterID = int64(len(s.theaters) + 1)

	// Every movie plays twice a day in every theater for the next three days.
	today := time.Now()
	times := []string{"15:30", "21:00"}
	prices := []float64{250, 320, 280}
	for offset := 0; offset < 3; offset++ {
		date := today.AddDate(0, 0, offset).Format(time.DateOnly)
		for _, movie := range s.movies {
			for ti, theater := range s.theaters {
				for _, showTime := range times {
					s.addShowLocked(movie, theater, date, showTime, prices[ti])
				}
			}
		}
	}
}

func (s *server) addShowLocked(movie model.Movie, theater model.Theater, date, showTime string, price float64) model.Show {
	s.nextShowID++
	show := model.Show{
		Id:             s.nextShowID,
		Movie:          movie,
		Theater:        theater,
		ShowDate:       date,
		ShowTime:       showTime,
		Price:          price,
		AvailableSeats: theater.TotalSeats,
	}
	s.shows = append(s.shows, show)
	s.seats[show.Id] = buildSeatMap(theater)
	return show
}

func buildSeatMap(theater model.Theater) []model.Seat {
	seats := make([]model.Seat, 0, theater.TotalSeats)
	for row := 0; row < theater.TotalRows; row++ {
		letter := string(rune('A' + row))
		for n := 1; n <= theater.SeatsPerRow; n++ {
			seats = append(seats, model.Seat{
				SeatNumber: fmt.Sprintf("%s%d", letter, n),
				Status:     model.SeatAvailable,
			})
		}
	}
	return seats
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

type contextKey string

const userKey contextKey = "user"

func (s *server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		s.mu.Lock()
		username, ok := s.tokens[token]
		acct := s.accounts[username]
		s.mu.Unlock()
		if token == "" || !ok {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		next.ServeHTTP(w, requestWithUser(r, acct.user))
	})
}

func (s *server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestUser(r).Role != model.RoleAdmin {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestWithUser(r *http.Request, user model.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, user))
}

func requestUser(r *http.Request) model.User {
	user, _ := r.Context().Value(userKey).(model.User)
	return user
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[req.Username]
	if !ok || acct.password != req.Password {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	token := uuid.NewString()
	s.tokens[token] = req.Username
	writeJSON(w, http.StatusOK, model.AuthResponse{
		Token:    token,
		Username: acct.user.Username,
		Email:    acct.user.Email,
		Role:     acct.user.Role,
	})
}

func (s *server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[req.Username]; exists {
		writeError(w, http.StatusBadRequest, "Username is already taken")
		return
	}
	s.accounts[req.Username] = account{
		user:     model.User{Username: req.Username, Email: req.Email, Role: "ROLE_USER"},
		password: req.Password,
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (s *server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, requestUser(r))
}

func (s *server) handleMovies(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.movies)
}

func (s *server) handleMovie(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, movie := range s.movies {
		if movie.Id == id {
			writeJSON(w, http.StatusOK, movie)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Movie not found")
}

func (s *server) handleMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	genre := chi.URLParam(r, "genre")
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []model.Movie{}
	for _, movie := range s.movies {
		if strings.EqualFold(movie.Genre, genre) {
			matched = append(matched, movie)
		}
	}
	writeJSON(w, http.StatusOK, matched)
}

func (s *server) handleSearchMovies(w http.ResponseWriter, r *http.Request) {
	title := strings.ToLower(r.URL.Query().Get("title"))
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []model.Movie{}
	for _, movie := range s.movies {
		if strings.Contains(strings.ToLower(movie.Title), title) {
			matched = append(matched, movie)
		}
	}
	writeJSON(w, http.StatusOK, matched)
}

func (s *server) handleTheaters(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.theaters)
}

func (s *server) handleTheatersByCity(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []model.Theater{}
	for _, theater := range s.theaters {
		if strings.EqualFold(theater.City, city) {
			matched = append(matched, theater)
		}
	}
	writeJSON(w, http.StatusOK, matched)
}

func (s *server) handleShows(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.shows)
}

func (s *server) handleShow(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	if show, ok := s.findShowLocked(id); ok {
		writeJSON(w, http.StatusOK, show)
		return
	}
	writeError(w, http.StatusNotFound, "Show not found")
}

func (s *server) handleShowsByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, _ := strconv.ParseInt(chi.URLParam(r, "movieId"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []model.Show{}
	for _, show := range s.shows {
		if show.Movie.Id == movieID {
			matched = append(matched, show)
		}
	}
	writeJSON(w, http.StatusOK, matched)
}

func (s *server) handleShowsByMovieAndCity(w http.ResponseWriter, r *http.Request) {
	movieID, _ := strconv.ParseInt(chi.URLParam(r, "movieId"), 10, 64)
	city := chi.URLParam(r, "city")
	date := r.URL.Query().Get("date")

	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []model.Show{}
	for _, show := range s.shows {
		if show.Movie.Id != movieID || !strings.EqualFold(show.Theater.City, city) {
			continue
		}
		if date != "" && show.ShowDate != date {
			continue
		}
		matched = append(matched, show)
	}
	writeJSON(w, http.StatusOK, matched)
}

func (s *server) handleSeats(w http.ResponseWriter, r *http.Request) {
	showID, _ := strconv.ParseInt(chi.URLParam(r, "showId"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	seats, ok := s.seats[showID]
	if !ok {
		writeError(w, http.StatusNotFound, "Show not found")
		return
	}
	writeJSON(w, http.StatusOK, seats)
}

func (s *server) handleAvailableSeats(w http.ResponseWriter, r *http.Request) {
	showID, _ := strconv.ParseInt(chi.URLParam(r, "showId"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	seats, ok := s.seats[showID]
	if !ok {
		writeError(w, http.StatusNotFound, "Show not found")
		return
	}
	available := []model.Seat{}
	for _, seat := range seats {
		if seat.Status == model.SeatAvailable {
			available = append(available, seat)
		}
	}
	writeJSON(w, http.StatusOK, available)
}

func (s *server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.SeatNumbers) == 0 {
		writeError(w, http.StatusBadRequest, "At least one seat is required")
		return
	}
	if len(req.SeatNumbers) > 10 {
		writeError(w, http.StatusBadRequest, "Cannot book more than 10 seats")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	show, ok := s.findShowLocked(req.ShowId)
	if !ok {
		writeError(w, http.StatusNotFound, "Show not found")
		return
	}

	// Availability is checked and applied in one critical section so a
	// racing booking for the same seats cannot interleave.
	seats := s.seats[req.ShowId]
	index := map[string]int{}
	for i, seat := range seats {
		index[seat.SeatNumber] = i
	}
	for _, number := range req.SeatNumbers {
		i, exists := index[number]
		if !exists {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Seat %s does not exist", number))
			return
		}
		if seats[i].Status != model.SeatAvailable {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Seat %s is already booked", number))
			return
		}
	}
	for _, number := range req.SeatNumbers {
		seats[index[number]].Status = model.SeatBooked
	}
	s.adjustAvailableLocked(req.ShowId, -len(req.SeatNumbers))
	show, _ = s.findShowLocked(req.ShowId)

	s.nextBookingID++
	user := requestUser(r)
	booking := model.Booking{
		Id:               s.nextBookingID,
		BookingReference: "CB" + strings.ToUpper(uuid.NewString()[:8]),
		User:             &user,
		Show:             show,
		SeatNumbers:      req.SeatNumbers,
		NumberOfSeats:    len(req.SeatNumbers),
		TotalAmount:      float64(len(req.SeatNumbers)) * show.Price,
		Status:           model.BookingPending,
		BookingTime:      time.Now().Format(time.RFC3339),
	}
	s.bookings = append(s.bookings, booking)
	writeJSON(w, http.StatusCreated, booking)
}

func (s *server) handleBooking(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	user := requestUser(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, booking := range s.bookings {
		if booking.Id == id && booking.User != nil && booking.User.Username == user.Username {
			writeJSON(w, http.StatusOK, booking)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Booking not found")
}

func (s *server) handleConfirmBooking(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	var req struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "CARD"
	}

	user := requestUser(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, booking := range s.bookings {
		if booking.Id != id || booking.User == nil || booking.User.Username != user.Username {
			continue
		}
		if booking.Status != model.BookingPending {
			writeError(w, http.StatusBadRequest, "Booking is not pending")
			return
		}
		s.bookings[i].Status = model.BookingConfirmed
		s.bookings[i].Payment = &model.Payment{
			Status:        "SUCCESS",
			TransactionId: "TXN" + strings.ToUpper(uuid.NewString()[:10]),
			PaymentMethod: req.PaymentMethod,
		}
		writeJSON(w, http.StatusOK, s.bookings[i])
		return
	}
	writeError(w, http.StatusNotFound, "Booking not found")
}

func (s *server) handleMyBookings(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	mine := []model.Booking{}
	for _, booking := range s.bookings {
		if booking.User != nil && booking.User.Username == user.Username {
			mine = append(mine, booking)
		}
	}
	writeJSON(w, http.StatusOK, mine)
}

func (s *server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var movie model.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if movie.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	movie.Id = s.nextMovieID
	s.nextMovieID++
	movie.Active = true
	s.movies = append(s.movies, movie)
	writeJSON(w, http.StatusCreated, movie)
}

func (s *server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, movie := range s.movies {
		if movie.Id == id {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Movie deleted"})
			return
		}
	}
	writeError(w, http.StatusNotFound, "Movie not found")
}

func (s *server) handleCreateTheater(w http.ResponseWriter, r *http.Request) {
	var theater model.Theater
	if err := json.NewDecoder(r.Body).Decode(&theater); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if theater.Name == "" || theater.City == "" {
		writeError(w, http.StatusBadRequest, "Name and city are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	theater.Id = s.nextTheaterID
	s.nextTheaterID++
	theater.TotalSeats = theater.SeatsPerRow * theater.TotalRows
	theater.Active = true
	s.theaters = append(s.theaters, theater)
	writeJSON(w, http.StatusCreated, theater)
}

func (s *server) handleDeleteTheater(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, theater := range s.theaters {
		if theater.Id == id {
			s.theaters = append(s.theaters[:i], s.theaters[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Theater deleted"})
			return
		}
	}
	writeError(w, http.StatusNotFound, "Theater not found")
}

func (s *server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	var req model.ShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var movie *model.Movie
	for i := range s.movies {
		if s.movies[i].Id == req.MovieId {
			movie = &s.movies[i]
			break
		}
	}
	if movie == nil {
		writeError(w, http.StatusBadRequest, "Movie not found")
		return
	}
	var theater *model.Theater
	for i := range s.theaters {
		if s.theaters[i].Id == req.TheaterId {
			theater = &s.theaters[i]
			break
		}
	}
	if theater == nil {
		writeError(w, http.StatusBadRequest, "Theater not found")
		return
	}

	show := s.addShowLocked(*movie, *theater, req.ShowDate, req.ShowTime, req.Price)
	writeJSON(w, http.StatusCreated, show)
}

func (s *server) handleDeleteShow(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, show := range s.shows {
		if show.Id == id {
			s.shows = append(s.shows[:i], s.shows[i+1:]...)
			delete(s.seats, id)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Show deleted"})
			return
		}
	}
	writeError(w, http.StatusNotFound, "Show not found")
}

func (s *server) handleAllBookings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.bookings)
}

func (s *server) findShowLocked(id int64) (model.Show, bool) {
	for _, show := range s.shows {
		if show.Id == id {
			return show, true
		}
	}
	return model.Show{}, false
}

func (s *server) adjustAvailableLocked(showID int64, delta int) {
	for i := range s.shows {
		if s.shows[i].Id == showID {
			s.shows[i].AvailableSeats += delta
			return
		}
	}
}
