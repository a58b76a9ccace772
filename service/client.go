package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cinebook-cli/model"
)

const defaultBaseURL = "http://localhost:8080/api"

// Client wraps HTTP access to the booking backend. Every request in the
// application goes through it so that token attachment and 401 handling
// stay in one place.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	token        func() string
	unauthorized func()
}

// APIError is returned when the backend responds with a non-2xx status.
// Message holds the human-readable text extracted from the response body.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return "booking api error"
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether the error represents a 401 from the API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsNotFound reports whether the error represents a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// NewClient creates a new API client. token supplies the current session
// token ("" when logged out); unauthorized is invoked whenever the backend
// answers 401, before the error is returned, so the stored session can be
// wiped no matter which caller hit the endpoint.
func NewClient(httpClient *http.Client, baseURL string, token func() string, unauthorized func()) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if token == nil {
		token = func() string { return "" }
	}
	if unauthorized == nil {
		unauthorized = func() {}
	}
	return &Client{
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(baseURL, "/"),
		token:        token,
		unauthorized: unauthorized,
	}
}

// Login posts credentials and returns the issued token plus user projection.
func (c *Client) Login(ctx context.Context, username, password string) (model.AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var auth model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &auth); err != nil {
		return model.AuthResponse{}, err
	}
	return auth, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req model.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", req, nil)
}

// Me fetches the current-user profile, validating the session token.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Movies returns the full catalog of active movies.
func (c *Client) Movies(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.do(ctx, http.MethodGet, "/movies", nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Movie fetches one movie by id.
func (c *Client) Movie(ctx context.Context, id int64) (model.Movie, error) {
	var movie model.Movie
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/%d", id), nil, &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

// MoviesByGenre fetches the catalog filtered by genre server-side.
func (c *Client) MoviesByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
	if strings.TrimSpace(genre) == "" {
		return nil, errors.New("genre is required")
	}
	var movies []model.Movie
	if err := c.do(ctx, http.MethodGet, "/movies/genre/"+url.PathEscape(genre), nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// SearchMovies runs a server-side title search.
func (c *Client) SearchMovies(ctx context.Context, title string) ([]model.Movie, error) {
	var movies []model.Movie
	endpoint := "/movies/search?title=" + url.QueryEscape(title)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Theaters returns all theaters.
func (c *Client) Theaters(ctx context.Context) ([]model.Theater, error) {
	var theaters []model.Theater
	if err := c.do(ctx, http.MethodGet, "/theaters", nil, &theaters); err != nil {
		return nil, err
	}
	return theaters, nil
}

// TheatersByCity returns the theaters in one city.
func (c *Client) TheatersByCity(ctx context.Context, city string) ([]model.Theater, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.New("city is required")
	}
	var theaters []model.Theater
	if err := c.do(ctx, http.MethodGet, "/theaters/city/"+url.PathEscape(city), nil, &theaters); err != nil {
		return nil, err
	}
	return theaters, nil
}

// Shows returns all scheduled shows.
func (c *Client) Shows(ctx context.Context) ([]model.Show, error) {
	var shows []model.Show
	if err := c.do(ctx, http.MethodGet, "/shows", nil, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// Show fetches one show by id.
func (c *Client) Show(ctx context.Context, id int64) (model.Show, error) {
	var show model.Show
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/shows/%d", id), nil, &show); err != nil {
		return model.Show{}, err
	}
	return show, nil
}

// ShowsByMovie fetches all shows for a movie across cities and dates.
func (c *Client) ShowsByMovie(ctx context.Context, movieID int64) ([]model.Show, error) {
	var shows []model.Show
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/shows/movie/%d", movieID), nil, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// ShowsByMovieAndCity fetches the shows for a movie in a city on a date.
// The date is always sent as YYYY-MM-DD because availability is date-scoped
// server data.
func (c *Client) ShowsByMovieAndCity(ctx context.Context, movieID int64, city string, date time.Time) ([]model.Show, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.New("city is required")
	}
	endpoint := fmt.Sprintf("/shows/movie/%d/city/%s?date=%s",
		movieID, url.PathEscape(city), date.Format(time.DateOnly))
	var shows []model.Show
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// Seats fetches the full seat map for a show.
func (c *Client) Seats(ctx context.Context, showID int64) ([]model.Seat, error) {
	var seats []model.Seat
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/seats/show/%d", showID), nil, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// AvailableSeats fetches only the seats still open for a show.
func (c *Client) AvailableSeats(ctx context.Context, showID int64) ([]model.Seat, error) {
	var seats []model.Seat
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/seats/show/%d/available", showID), nil, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// CreateBooking submits a seat selection. The server is the sole authority
// for re-validating availability and preventing double booking; its
// rejection message comes back verbatim in the APIError.
func (c *Client) CreateBooking(ctx context.Context, req model.BookingRequest) (model.Booking, error) {
	if len(req.SeatNumbers) == 0 {
		return model.Booking{}, errors.New("at least one seat is required")
	}
	var booking model.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", req, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

// Booking fetches one booking by id.
func (c *Client) Booking(ctx context.Context, id int64) (model.Booking, error) {
	var booking model.Booking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", id), nil, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

// ConfirmBooking settles a pending booking with the chosen payment method.
func (c *Client) ConfirmBooking(ctx context.Context, id int64, paymentMethod string) (model.Booking, error) {
	body := map[string]string{"paymentMethod": paymentMethod}
	var booking model.Booking
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/%d/confirm", id), body, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

// MyBookings returns the bookings of the authenticated user.
func (c *Client) MyBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/my-bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateMovie adds a movie to the catalog (admin).
func (c *Client) CreateMovie(ctx context.Context, movie model.Movie) (model.Movie, error) {
	var created model.Movie
	if err := c.do(ctx, http.MethodPost, "/admin/movies", movie, &created); err != nil {
		return model.Movie{}, err
	}
	return created, nil
}

// DeleteMovie removes a movie (admin).
func (c *Client) DeleteMovie(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/movies/%d", id), nil, nil)
}

// CreateTheater adds a theater (admin).
func (c *Client) CreateTheater(ctx context.Context, theater model.Theater) (model.Theater, error) {
	var created model.Theater
	if err := c.do(ctx, http.MethodPost, "/admin/theaters", theater, &created); err != nil {
		return model.Theater{}, err
	}
	return created, nil
}

// DeleteTheater removes a theater (admin).
func (c *Client) DeleteTheater(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/theaters/%d", id), nil, nil)
}

// CreateShow schedules a show (admin).
func (c *Client) CreateShow(ctx context.Context, req model.ShowRequest) (model.Show, error) {
	var created model.Show
	if err := c.do(ctx, http.MethodPost, "/admin/shows", req, &created); err != nil {
		return model.Show{}, err
	}
	return created, nil
}

// DeleteShow removes a show (admin).
func (c *Client) DeleteShow(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/shows/%d", id), nil, nil)
}

// AllBookings returns every booking in the system (admin, read-only).
func (c *Client) AllBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.do(ctx, http.MethodGet, "/admin/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		apiErr := &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Message:    extractMessage(res, snippet),
		}
		if res.StatusCode == http.StatusUnauthorized {
			c.unauthorized()
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(res.Body)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

// extractMessage pulls a human-readable error out of a failed response:
// the JSON body's "message" or "error" field, else the body text, else the
// HTTP status text.
func extractMessage(res *http.Response, body []byte) string {
	if strings.Contains(res.Header.Get("Content-Type"), "application/json") {
		var parsed struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(body, &parsed); err == nil {
			if parsed.Message != "" {
				return parsed.Message
			}
			if parsed.Error != "" {
				return parsed.Error
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	if text := http.StatusText(res.StatusCode); text != "" {
		return text
	}
	return res.Status
}
