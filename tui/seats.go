package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinebook-cli/model"
)

const maxSelectedSeats = 10

type toggleResult int

const (
	toggleAdded toggleResult = iota
	toggleRemoved
	toggleRejectedFull
	toggleIgnored
)

type seatRow struct {
	label string
	seats []model.Seat
}

// seatSelection is the per-view state of the seat map: the last-fetched
// seats, the grid cursor, and the client-only selection layered on top.
// It lives for one visit to the seat view and is discarded on navigation.
type seatSelection struct {
	show     model.Show
	rows     []seatRow
	status   map[string]string
	selected []string

	cursorRow int
	cursorCol int
}

func newSeatSelection(show model.Show, seats []model.Seat) *seatSelection {
	status := make(map[string]string, len(seats))
	for _, seat := range seats {
		status[seat.SeatNumber] = seat.Status
	}
	return &seatSelection{
		show:   show,
		rows:   groupSeatsByRow(seats),
		status: status,
	}
}

// groupSeatsByRow buckets seats by the leading row letter of their label.
// Rows come out in lexicographic order; seats within a row in numeric order
// of the trailing digits, so "A2" sorts before "A10".
func groupSeatsByRow(seats []model.Seat) []seatRow {
	byRow := map[string][]model.Seat{}
	var labels []string
	for _, seat := range seats {
		label := seatRowLetter(seat.SeatNumber)
		if _, ok := byRow[label]; !ok {
			labels = append(labels, label)
		}
		byRow[label] = append(byRow[label], seat)
	}
	sort.Strings(labels)

	rows := make([]seatRow, 0, len(labels))
	for _, label := range labels {
		seats := byRow[label]
		sort.Slice(seats, func(i, j int) bool {
			return seatNumberIndex(seats[i].SeatNumber) < seatNumberIndex(seats[j].SeatNumber)
		})
		rows = append(rows, seatRow{label: label, seats: seats})
	}
	return rows
}

func seatRowLetter(seatNumber string) string {
	if seatNumber == "" {
		return ""
	}
	return seatNumber[:1]
}

func seatNumberIndex(seatNumber string) int {
	n, _ := strconv.Atoi(strings.TrimLeft(seatNumber, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	return n
}

// toggle flips the selection state of one seat. Seats whose last-fetched
// status is not AVAILABLE never change the selection; adding an eleventh
// seat is rejected with no state change. No server round-trip happens here.
func (s *seatSelection) toggle(seatNumber string) toggleResult {
	if s.status[seatNumber] != model.SeatAvailable {
		return toggleIgnored
	}
	for i, existing := range s.selected {
		if existing == seatNumber {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return toggleRemoved
		}
	}
	if len(s.selected) >= maxSelectedSeats {
		return toggleRejectedFull
	}
	s.selected = append(s.selected, seatNumber)
	return toggleAdded
}

func (s *seatSelection) isSelected(seatNumber string) bool {
	for _, existing := range s.selected {
		if existing == seatNumber {
			return true
		}
	}
	return false
}

// sortedSelected returns the selection in ascending seat-label order, row
// letter first and seat number numerically within a row, regardless of the
// order seats were toggled in.
func (s *seatSelection) sortedSelected() []string {
	out := append([]string{}, s.selected...)
	sort.Slice(out, func(i, j int) bool {
		if a, b := seatRowLetter(out[i]), seatRowLetter(out[j]); a != b {
			return a < b
		}
		return seatNumberIndex(out[i]) < seatNumberIndex(out[j])
	})
	return out
}

func (s *seatSelection) total() float64 {
	return float64(len(s.selected)) * s.show.Price
}

func (s *seatSelection) cursorSeat() (model.Seat, bool) {
	if s.cursorRow < 0 || s.cursorRow >= len(s.rows) {
		return model.Seat{}, false
	}
	row := s.rows[s.cursorRow]
	if s.cursorCol < 0 || s.cursorCol >= len(row.seats) {
		return model.Seat{}, false
	}
	return row.seats[s.cursorCol], true
}

func (s *seatSelection) moveCursor(dRow, dCol int) {
	if len(s.rows) == 0 {
		return
	}
	s.cursorRow = clamp(s.cursorRow+dRow, 0, len(s.rows)-1)
	s.cursorCol = clamp(s.cursorCol+dCol, 0, len(s.rows[s.cursorRow].seats)-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var (
	seatStyleAvailable = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleBooked    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatStyleOther     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	seatStyleSelected  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	seatStyleCursor    = lipgloss.NewStyle().Reverse(true)
)

func (s *seatSelection) render() string {
	if len(s.rows) == 0 {
		return "No seat map data."
	}

	cellWidth := 2
	for _, row := range s.rows {
		for _, seat := range row.seats {
			if l := len(seat.SeatNumber) - 1; l > cellWidth {
				cellWidth = l
			}
		}
	}

	var b strings.Builder
	for r, row := range s.rows {
		b.WriteString(fmt.Sprintf("%2s ", row.label))
		for c, seat := range row.seats {
			text := padCell(strings.TrimPrefix(seat.SeatNumber, row.label), cellWidth)
			switch {
			case s.isSelected(seat.SeatNumber):
				text = seatStyleSelected.Render(text)
			case seat.Status == model.SeatAvailable:
				text = seatStyleAvailable.Render(text)
			case seat.Status == model.SeatBooked:
				text = seatStyleBooked.Render(text)
			default:
				text = seatStyleOther.Render(text)
			}
			if r == s.cursorRow && c == s.cursorCol {
				text = seatStyleCursor.Render(padCell(strings.TrimPrefix(seat.SeatNumber, row.label), cellWidth))
			}
			b.WriteString(text)
			if c < len(row.seats)-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %2s\n", row.label))
	}

	b.WriteString("\n")
	b.WriteString(hint("Front / Screen"))
	b.WriteString("\n\n")

	summary := "Selected: None • Total: ₹0"
	if len(s.selected) > 0 {
		summary = fmt.Sprintf("Selected: %s • Total: ₹%.0f",
			strings.Join(s.sortedSelected(), ", "), s.total())
	}
	legend := "green available • red booked • cyan selected • grey blocked"
	return b.String() + hint(legend) + "\n" + summary
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
