package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinebook-cli/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.Client(), srv.URL, nil, nil)
}

func TestLoginPostsCredentials(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(model.AuthResponse{Token: "tok", Username: "alice", Role: "ROLE_USER"})
	})

	auth, err := client.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/auth/login" {
		t.Errorf("got %s %s, want POST /auth/login", gotMethod, gotPath)
	}
	if gotBody["username"] != "alice" || gotBody["password"] != "secret" {
		t.Errorf("unexpected body: %v", gotBody)
	}
	if auth.Token != "tok" || auth.Username != "alice" {
		t.Errorf("unexpected auth response: %+v", auth)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(model.User{Username: "alice"})
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, func() string { return "tok123" }, nil)
	if _, err := client.Me(context.Background()); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok123")
	}
}

func TestNoAuthHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("[]"))
	})

	if _, err := client.Movies(context.Background()); err != nil {
		t.Fatalf("Movies: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestUnauthorizedInvokesHookOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	calls := 0
	client := NewClient(srv.Client(), srv.URL, func() string { return "stale" }, func() { calls++ })

	_, err := client.MyBookings(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("unauthorized hook called %d times, want 1", calls)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "Invalid or expired token" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{"json message field", "application/json", `{"message":"Seat A1 is already booked"}`, "Seat A1 is already booked"},
		{"json error field", "application/json", `{"error":"boom"}`, "boom"},
		{"plain text body", "text/plain", "upstream exploded", "upstream exploded"},
		{"empty body falls back to status text", "text/plain", "", "Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Movies(context.Background())
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %v", err)
			}
			if apiErr.Message != tt.want {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Movie not found", http.StatusNotFound)
	})

	_, err := client.Movie(context.Background(), 99)
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
	if IsUnauthorized(err) {
		t.Error("404 should not classify as unauthorized")
	}
}

func TestShowsByMovieAndCityEncodesDate(t *testing.T) {
	var gotPath, gotDate string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDate = r.URL.Query().Get("date")
		_, _ = w.Write([]byte("[]"))
	})

	date := time.Date(2026, 8, 30, 14, 45, 0, 0, time.UTC)
	if _, err := client.ShowsByMovieAndCity(context.Background(), 7, "Mumbai", date); err != nil {
		t.Fatalf("ShowsByMovieAndCity: %v", err)
	}
	if gotPath != "/shows/movie/7/city/Mumbai" {
		t.Errorf("path = %q", gotPath)
	}
	if gotDate != "2026-08-30" {
		t.Errorf("date = %q, want 2026-08-30", gotDate)
	}
}

func TestShowsByMovieAndCityRequiresCity(t *testing.T) {
	client := NewClient(nil, "http://unused", nil, nil)
	if _, err := client.ShowsByMovieAndCity(context.Background(), 1, "  ", time.Now()); err == nil {
		t.Error("expected error for blank city")
	}
}

func TestCreateBookingRequiresSeats(t *testing.T) {
	client := NewClient(nil, "http://unused", nil, nil)
	_, err := client.CreateBooking(context.Background(), model.BookingRequest{ShowId: 1})
	if err == nil {
		t.Error("expected error for empty seat list")
	}
}

func TestCreateBookingPayload(t *testing.T) {
	var got model.BookingRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(model.Booking{Id: 5, Status: model.BookingPending})
	})

	req := model.BookingRequest{ShowId: 3, SeatNumbers: []string{"A1", "A2"}, PaymentMethod: "CARD"}
	booking, err := client.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if got.ShowId != 3 || len(got.SeatNumbers) != 2 || got.PaymentMethod != "CARD" {
		t.Errorf("unexpected payload: %+v", got)
	}
	if booking.Id != 5 || booking.Status != model.BookingPending {
		t.Errorf("unexpected booking: %+v", booking)
	}
}

func TestConfirmBookingSendsMethod(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(model.Booking{Id: 5, Status: model.BookingConfirmed})
	})

	booking, err := client.ConfirmBooking(context.Background(), 5, "UPI")
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	if gotPath != "/bookings/5/confirm" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody["paymentMethod"] != "UPI" {
		t.Errorf("paymentMethod = %q, want UPI", gotBody["paymentMethod"])
	}
	if booking.Status != model.BookingConfirmed {
		t.Errorf("status = %q", booking.Status)
	}
}

func TestDeleteSucceedsOnEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeleteMovie(context.Background(), 4); err != nil {
		t.Errorf("DeleteMovie: %v", err)
	}
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL+"/", nil, nil)
	if _, err := client.Movies(context.Background()); err != nil {
		t.Fatalf("Movies: %v", err)
	}
	if gotPath != "/movies" {
		t.Errorf("path = %q, want /movies", gotPath)
	}
}
