package tui

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"cinebook-cli/model"
)

func seatMap(statuses map[string]string) []model.Seat {
	var seats []model.Seat
	for _, row := range []string{"A", "B", "C"} {
		for n := 1; n <= 10; n++ {
			number := fmt.Sprintf("%s%d", row, n)
			status := model.SeatAvailable
			if s, ok := statuses[number]; ok {
				status = s
			}
			seats = append(seats, model.Seat{SeatNumber: number, Status: status})
		}
	}
	return seats
}

func newTestSelection(statuses map[string]string) *seatSelection {
	show := model.Show{Id: 1, Price: 200}
	return newSeatSelection(show, seatMap(statuses))
}

func TestToggleSelectsAndDeselects(t *testing.T) {
	s := newTestSelection(nil)

	if got := s.toggle("A1"); got != toggleAdded {
		t.Fatalf("first toggle = %v, want added", got)
	}
	if !s.isSelected("A1") {
		t.Error("A1 should be selected")
	}
	if got := s.toggle("A1"); got != toggleRemoved {
		t.Fatalf("second toggle = %v, want removed", got)
	}
	if s.isSelected("A1") {
		t.Error("A1 should be deselected")
	}
	if s.total() != 0 {
		t.Errorf("total = %v, want 0", s.total())
	}
}

func TestToggleIgnoresUnavailableSeats(t *testing.T) {
	s := newTestSelection(map[string]string{"B2": model.SeatBooked, "B3": "BLOCKED"})

	for _, number := range []string{"B2", "B3"} {
		if got := s.toggle(number); got != toggleIgnored {
			t.Errorf("toggle(%s) = %v, want ignored", number, got)
		}
		if s.isSelected(number) {
			t.Errorf("%s must never join the selection", number)
		}
	}
	if len(s.selected) != 0 {
		t.Errorf("selection = %v, want empty", s.selected)
	}
}

func TestToggleRejectsEleventhSeat(t *testing.T) {
	s := newTestSelection(nil)

	for n := 1; n <= 10; n++ {
		if got := s.toggle(fmt.Sprintf("A%d", n)); got != toggleAdded {
			t.Fatalf("seat %d not added: %v", n, got)
		}
	}
	if got := s.toggle("B1"); got != toggleRejectedFull {
		t.Errorf("eleventh toggle = %v, want rejected", got)
	}
	if len(s.selected) != 10 {
		t.Errorf("selection size = %d, want 10", len(s.selected))
	}
	if s.isSelected("B1") {
		t.Error("rejected seat must not be selected")
	}

	// Removing one reopens a slot.
	s.toggle("A5")
	if got := s.toggle("B1"); got != toggleAdded {
		t.Errorf("toggle after removal = %v, want added", got)
	}
}

func TestToggleKeepsSelectionUnique(t *testing.T) {
	s := newTestSelection(nil)
	s.toggle("A1")
	s.toggle("A2")
	s.toggle("A1")
	s.toggle("A1")

	want := []string{"A1", "A2"}
	if !reflect.DeepEqual(s.sortedSelected(), want) {
		t.Errorf("selection = %v, want %v", s.sortedSelected(), want)
	}
}

func TestSortedSelectedOrder(t *testing.T) {
	s := newTestSelection(nil)
	for _, number := range []string{"C10", "A2", "C2", "A10", "B1"} {
		s.toggle(number)
	}

	want := []string{"A2", "A10", "B1", "C2", "C10"}
	if got := s.sortedSelected(); !reflect.DeepEqual(got, want) {
		t.Errorf("sortedSelected = %v, want %v", got, want)
	}
}

func TestTotalTracksSelectionSize(t *testing.T) {
	s := newTestSelection(nil)
	s.toggle("A1")
	s.toggle("A3")

	if got := s.total(); got != 400 {
		t.Errorf("total = %v, want 400", got)
	}

	s.toggle("A1")
	if got := s.total(); got != 200 {
		t.Errorf("total after removal = %v, want 200", got)
	}
}

func TestGroupSeatsByRow(t *testing.T) {
	seats := []model.Seat{
		{SeatNumber: "B1", Status: model.SeatAvailable},
		{SeatNumber: "A10", Status: model.SeatAvailable},
		{SeatNumber: "A2", Status: model.SeatAvailable},
		{SeatNumber: "B2", Status: model.SeatBooked},
		{SeatNumber: "A1", Status: model.SeatAvailable},
	}

	rows := groupSeatsByRow(seats)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].label != "A" || rows[1].label != "B" {
		t.Errorf("row labels = %s, %s", rows[0].label, rows[1].label)
	}

	var rowA []string
	for _, seat := range rows[0].seats {
		rowA = append(rowA, seat.SeatNumber)
	}
	// A2 sorts before A10: numeric, not lexicographic.
	want := []string{"A1", "A2", "A10"}
	if !reflect.DeepEqual(rowA, want) {
		t.Errorf("row A = %v, want %v", rowA, want)
	}
}

func TestCursorMovementStaysInBounds(t *testing.T) {
	s := newTestSelection(nil)

	s.moveCursor(-5, -5)
	if s.cursorRow != 0 || s.cursorCol != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", s.cursorRow, s.cursorCol)
	}

	s.moveCursor(100, 100)
	if s.cursorRow != 2 || s.cursorCol != 9 {
		t.Errorf("cursor = (%d,%d), want (2,9)", s.cursorRow, s.cursorCol)
	}

	seat, ok := s.cursorSeat()
	if !ok || seat.SeatNumber != "C10" {
		t.Errorf("cursorSeat = %+v ok=%v, want C10", seat, ok)
	}
}

func TestSelectionFlowBuildsBookingPayload(t *testing.T) {
	s := newTestSelection(map[string]string{"A2": model.SeatBooked})

	s.toggle("A3")
	s.toggle("A2") // booked, ignored
	s.toggle("A1")

	if got := s.total(); got != 400 {
		t.Errorf("total = %v, want 400", got)
	}
	want := []string{"A1", "A3"}
	if got := s.sortedSelected(); !reflect.DeepEqual(got, want) {
		t.Errorf("payload seats = %v, want %v", got, want)
	}
}

func TestRenderShowsSummaryAndLegend(t *testing.T) {
	s := newTestSelection(nil)
	s.toggle("A1")
	s.toggle("A3")

	out := s.render()
	if !strings.Contains(out, "Selected: A1, A3") {
		t.Errorf("render missing selection summary:\n%s", out)
	}
	if !strings.Contains(out, "₹400") {
		t.Errorf("render missing total:\n%s", out)
	}
	if !strings.Contains(out, "Front / Screen") {
		t.Errorf("render missing screen marker:\n%s", out)
	}
}

func TestRenderEmptySeatMap(t *testing.T) {
	s := newSeatSelection(model.Show{Id: 1}, nil)
	if got := s.render(); got != "No seat map data." {
		t.Errorf("render = %q", got)
	}
}
