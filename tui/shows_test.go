package tui

import (
	"strings"
	"testing"
	"time"

	"cinebook-cli/model"
)

func show(id, theaterID int64, theaterName, showTime string) model.Show {
	return model.Show{
		Id:       id,
		Theater:  model.Theater{Id: theaterID, Name: theaterName},
		ShowTime: showTime,
	}
}

func TestGroupShowsByTheaterFirstSeenOrder(t *testing.T) {
	shows := []model.Show{
		show(1, 20, "INOX", "15:30"),
		show(2, 10, "PVR", "15:30"),
		show(3, 20, "INOX", "21:00"),
		show(4, 10, "PVR", "21:00"),
	}

	groups := groupShowsByTheater(shows)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// Theater 20 arrived first, so its group comes first even though 10 < 20.
	if groups[0].theater.Id != 20 || groups[1].theater.Id != 10 {
		t.Errorf("group order = %d, %d", groups[0].theater.Id, groups[1].theater.Id)
	}
	if len(groups[0].shows) != 2 || len(groups[1].shows) != 2 {
		t.Errorf("group sizes = %d, %d", len(groups[0].shows), len(groups[1].shows))
	}
	if groups[0].shows[0].Id != 1 || groups[0].shows[1].Id != 3 {
		t.Errorf("server order not preserved within group: %d, %d",
			groups[0].shows[0].Id, groups[0].shows[1].Id)
	}
}

func TestFlattenGroupsWalksDisplayOrder(t *testing.T) {
	shows := []model.Show{
		show(1, 20, "INOX", "15:30"),
		show(2, 10, "PVR", "15:30"),
		show(3, 20, "INOX", "21:00"),
	}

	flat := flattenGroups(groupShowsByTheater(shows))
	want := []int64{1, 3, 2}
	if len(flat) != len(want) {
		t.Fatalf("got %d shows, want %d", len(flat), len(want))
	}
	for i, id := range want {
		if flat[i].Id != id {
			t.Errorf("flat[%d].Id = %d, want %d", i, flat[i].Id, id)
		}
	}
}

func TestGroupShowsByTheaterEmpty(t *testing.T) {
	if groups := groupShowsByTheater(nil); len(groups) != 0 {
		t.Errorf("got %d groups, want 0", len(groups))
	}
}

func TestDateForOffset(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)

	for offset, want := range map[int]string{
		0: "2026-08-30",
		1: "2026-08-31",
		2: "2026-09-01",
	} {
		got := dateForOffset(now, offset).Format(time.DateOnly)
		if got != want {
			t.Errorf("offset %d = %s, want %s", offset, got, want)
		}
	}
}

func TestDateForOffsetDropsTimeOfDay(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 45, 33, 0, time.UTC)
	got := dateForOffset(now, 0)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
}

func TestDateStripMarksSelection(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	strip := dateStrip(now, 0)
	if !strings.Contains(strip, "[Today]") {
		t.Errorf("offset 0 not bracketed: %s", strip)
	}

	strip = dateStrip(now, 1)
	if !strings.Contains(strip, "[Mon 31 Aug]") {
		t.Errorf("offset 1 not bracketed: %s", strip)
	}
	if strings.Contains(strip, "[Today]") {
		t.Errorf("today should not be bracketed: %s", strip)
	}
}
