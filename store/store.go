package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"cinebook-cli/model"
)

const appDir = "cinebook-cli"

// Session is the persisted credential plus the cached user projection set
// by the last successful login or revalidation.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// LoadSession returns the stored session, reporting false when none exists.
func LoadSession() (Session, bool, error) {
	path, err := configPath("session.json")
	if err != nil {
		return Session{}, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, false, nil
		}
		return Session{}, false, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Session{}, false, errors.New("invalid session format")
	}
	if strings.TrimSpace(session.Token) == "" {
		return Session{}, false, nil
	}
	return session, true, nil
}

// SaveSession persists the token and user projection.
func SaveSession(session Session) error {
	if strings.TrimSpace(session.Token) == "" {
		return errors.New("session token is required")
	}
	return writeJSON("session.json", session)
}

// SaveUser replaces only the cached user projection, keeping the token.
func SaveUser(user model.User) error {
	session, ok, err := LoadSession()
	if err != nil || !ok {
		return err
	}
	session.User = user
	return writeJSON("session.json", session)
}

// ClearSession removes the stored credential. Missing files are fine:
// clearing an absent session is a no-op.
func ClearSession() error {
	return remove("session.json")
}

// SavePendingBooking stores the booking-in-progress handoff written after a
// successful seat submission and consumed by the payment view.
func SavePendingBooking(booking model.Booking) error {
	return writeJSON("pending_booking.json", booking)
}

// ConsumePendingBooking reads and deletes the pending handoff. It is
// strictly single-use: a second call reports false.
func ConsumePendingBooking() (model.Booking, bool, error) {
	return consumeBooking("pending_booking.json")
}

// SaveConfirmedBooking stores the confirmed-booking handoff written by the
// payment view and consumed by the confirmation view.
func SaveConfirmedBooking(booking model.Booking) error {
	return writeJSON("confirmed_booking.json", booking)
}

// ConsumeConfirmedBooking reads and deletes the confirmed handoff.
func ConsumeConfirmedBooking() (model.Booking, bool, error) {
	return consumeBooking("confirmed_booking.json")
}

// PeekPendingBooking reads the pending handoff without consuming it, so the
// payment view can retry a failed confirmation.
func PeekPendingBooking() (model.Booking, bool, error) {
	return readBooking("pending_booking.json")
}

// DeletePendingBooking drops the pending handoff after a confirmation.
func DeletePendingBooking() error {
	return remove("pending_booking.json")
}

// LoadCity returns the remembered city, or "" when none was stored.
func LoadCity() (string, error) {
	path, err := configPath("city.json")
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	var stored struct {
		City string `json:"city"`
	}
	if err := json.Unmarshal(data, &stored); err != nil {
		return "", errors.New("invalid city format")
	}
	return stored.City, nil
}

// RememberCity persists the selected city for the next run.
func RememberCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errors.New("city is required")
	}
	return writeJSON("city.json", struct {
		City string `json:"city"`
	}{City: city})
}

func consumeBooking(name string) (model.Booking, bool, error) {
	booking, ok, err := readBooking(name)
	if err != nil || !ok {
		return model.Booking{}, false, err
	}
	if err := remove(name); err != nil {
		return model.Booking{}, false, err
	}
	return booking, true, nil
}

func readBooking(name string) (model.Booking, bool, error) {
	path, err := configPath(name)
	if err != nil {
		return model.Booking{}, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Booking{}, false, nil
		}
		return model.Booking{}, false, err
	}
	var booking model.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return model.Booking{}, false, errors.New("invalid booking handoff format")
	}
	return booking, true, nil
}

func writeJSON(name string, data any) error {
	path, err := configPath(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func remove(name string) error {
	path, err := configPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}
