package store

import (
	"os"
	"path/filepath"
	"testing"

	"cinebook-cli/model"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadSessionMissing(t *testing.T) {
	useTempConfigDir(t)

	_, ok, err := LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if ok {
		t.Error("expected no session in a fresh config dir")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	saved := Session{
		Token: "tok123",
		User:  model.User{Username: "alice", Email: "alice@example.com", Role: "ROLE_USER"},
	}
	if err := SaveSession(saved); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	loaded, ok, err := LoadSession()
	if err != nil || !ok {
		t.Fatalf("LoadSession: ok=%v err=%v", ok, err)
	}
	if loaded != saved {
		t.Errorf("loaded %+v, want %+v", loaded, saved)
	}
}

func TestSaveSessionRequiresToken(t *testing.T) {
	useTempConfigDir(t)

	if err := SaveSession(Session{User: model.User{Username: "alice"}}); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestSaveUserKeepsToken(t *testing.T) {
	useTempConfigDir(t)

	if err := SaveSession(Session{Token: "tok123", User: model.User{Username: "old"}}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if err := SaveUser(model.User{Username: "new", Role: model.RoleAdmin}); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	loaded, ok, err := LoadSession()
	if err != nil || !ok {
		t.Fatalf("LoadSession: ok=%v err=%v", ok, err)
	}
	if loaded.Token != "tok123" {
		t.Errorf("token = %q, want tok123", loaded.Token)
	}
	if loaded.User.Username != "new" || loaded.User.Role != model.RoleAdmin {
		t.Errorf("user = %+v", loaded.User)
	}
}

func TestSaveUserWithoutSessionIsNoop(t *testing.T) {
	useTempConfigDir(t)

	if err := SaveUser(model.User{Username: "ghost"}); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	if _, ok, _ := LoadSession(); ok {
		t.Error("no session should have been created")
	}
}

func TestClearSessionIdempotent(t *testing.T) {
	useTempConfigDir(t)

	if err := SaveSession(Session{Token: "tok"}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if err := ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if _, ok, _ := LoadSession(); ok {
		t.Error("session should be gone after clear")
	}
	if err := ClearSession(); err != nil {
		t.Errorf("second ClearSession: %v", err)
	}
}

func TestCorruptSessionFileReportsError(t *testing.T) {
	dir := useTempConfigDir(t)

	path := filepath.Join(dir, appDir, "session.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := LoadSession(); err == nil {
		t.Error("expected error for corrupt session file")
	}
}

func TestPendingBookingHandoffIsSingleUse(t *testing.T) {
	useTempConfigDir(t)

	booking := model.Booking{Id: 7, BookingReference: "CB1234", SeatNumbers: []string{"A1", "A2"}, TotalAmount: 500}
	if err := SavePendingBooking(booking); err != nil {
		t.Fatalf("SavePendingBooking: %v", err)
	}

	got, ok, err := ConsumePendingBooking()
	if err != nil || !ok {
		t.Fatalf("first consume: ok=%v err=%v", ok, err)
	}
	if got.Id != 7 || got.BookingReference != "CB1234" {
		t.Errorf("got %+v", got)
	}

	if _, ok, _ = ConsumePendingBooking(); ok {
		t.Error("second consume should find nothing")
	}
}

func TestPeekPendingBookingDoesNotConsume(t *testing.T) {
	useTempConfigDir(t)

	if err := SavePendingBooking(model.Booking{Id: 3}); err != nil {
		t.Fatalf("SavePendingBooking: %v", err)
	}

	for i := 0; i < 2; i++ {
		got, ok, err := PeekPendingBooking()
		if err != nil || !ok {
			t.Fatalf("peek %d: ok=%v err=%v", i, ok, err)
		}
		if got.Id != 3 {
			t.Errorf("peek %d: got %+v", i, got)
		}
	}

	if err := DeletePendingBooking(); err != nil {
		t.Fatalf("DeletePendingBooking: %v", err)
	}
	if _, ok, _ := PeekPendingBooking(); ok {
		t.Error("peek after delete should find nothing")
	}
}

func TestConfirmedBookingHandoff(t *testing.T) {
	useTempConfigDir(t)

	if _, ok, _ := ConsumeConfirmedBooking(); ok {
		t.Error("consume on empty store should report false")
	}

	if err := SaveConfirmedBooking(model.Booking{Id: 9, Status: model.BookingConfirmed}); err != nil {
		t.Fatalf("SaveConfirmedBooking: %v", err)
	}

	got, ok, err := ConsumeConfirmedBooking()
	if err != nil || !ok {
		t.Fatalf("consume: ok=%v err=%v", ok, err)
	}
	if got.Id != 9 || got.Status != model.BookingConfirmed {
		t.Errorf("got %+v", got)
	}

	if _, ok, _ = ConsumeConfirmedBooking(); ok {
		t.Error("handoff should be single-use")
	}
}

func TestCityRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	city, err := LoadCity()
	if err != nil {
		t.Fatalf("LoadCity: %v", err)
	}
	if city != "" {
		t.Errorf("fresh store returned city %q", city)
	}

	if err := RememberCity("  Pune  "); err != nil {
		t.Fatalf("RememberCity: %v", err)
	}
	city, err = LoadCity()
	if err != nil {
		t.Fatalf("LoadCity: %v", err)
	}
	if city != "Pune" {
		t.Errorf("city = %q, want Pune", city)
	}
}

func TestRememberCityRejectsBlank(t *testing.T) {
	useTempConfigDir(t)

	if err := RememberCity("   "); err == nil {
		t.Error("expected error for blank city")
	}
}
