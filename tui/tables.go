package tui

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"cinebook-cli/model"
)

// renderBookingsTable lays out booking records the way the admin and
// my-bookings views show them: one row per booking, payment column only
// when the record carries one.
func renderBookingsTable(bookings []model.Booking) string {
	if len(bookings) == 0 {
		return "No bookings found."
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Ref", "Movie", "Theater", "Show", "Seats", "Amount", "Status", "Payment"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 24},
		{Number: 3, WidthMax: 20},
		{Number: 5, WidthMax: 24},
	})
	for _, booking := range bookings {
		payment := "-"
		if booking.Payment != nil {
			payment = fmt.Sprintf("%s (%s)", booking.Payment.Status, booking.Payment.PaymentMethod)
		}
		t.AppendRow(table.Row{
			booking.BookingReference,
			booking.Show.Movie.Title,
			booking.Show.Theater.Name,
			fmt.Sprintf("%s %s", booking.Show.ShowDate, booking.Show.ShowTime),
			strings.Join(booking.SeatNumbers, ", "),
			fmt.Sprintf("₹%.0f", booking.TotalAmount),
			booking.Status,
			payment,
		})
	}
	return t.Render()
}
