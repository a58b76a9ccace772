package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"cinebook-cli/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	tabStyle    = lipgloss.NewStyle().Faint(true)
	tabActive   = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

func (m appModel) View() string {
	switch m.state {
	case stateLoadingMovies:
		return m.loadingView("Loading movies")
	case stateCheckingAuth:
		return m.loadingView("Checking session")
	case stateLoadingDetails:
		return m.loadingView("Loading shows")
	case stateLoadingSeats:
		return m.loadingView("Loading seat map")
	case stateSubmittingBooking:
		return m.loadingView("Reserving seats")
	case stateConfirmingPayment:
		return m.loadingView("Processing payment")
	case stateLoadingBookings:
		return m.loadingView("Loading bookings")
	case stateLoadingAdmin:
		return m.loadingView("Loading admin data")
	case stateListMovies:
		return m.viewMovies()
	case stateLogin:
		return m.viewLogin()
	case stateSignup:
		return m.viewSignup()
	case stateMovieDetails:
		return m.viewDetails()
	case stateCityInput:
		return m.viewCityInput()
	case stateSeatSelection:
		return m.viewSeats()
	case statePayment:
		return m.viewPayment()
	case stateConfirmation:
		return m.viewConfirmation()
	case stateMyBookings:
		return m.viewMyBookings()
	case stateAdmin:
		return m.viewAdmin()
	case stateAdminForm:
		return m.viewAdminForm()
	case stateAdminDelete:
		return m.viewAdminDelete()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m appModel) loadingView(text string) string {
	return fmt.Sprintf("\n %s %s...\n", m.spinner.View(), text)
}

func (m appModel) headerLine() string {
	who := "guest"
	if m.hasSession {
		who = m.session.User.Username
		if m.session.User.Role == model.RoleAdmin {
			who += " (admin)"
		}
	}
	return titleStyle.Render("CineBook") + hint(fmt.Sprintf("  %s • %s", m.city, who))
}

func (m appModel) noticeLine() string {
	if m.notice == "" {
		return ""
	}
	return noticeStyle.Render(m.notice) + "\n"
}

func (m appModel) viewMovies() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	b.WriteString(m.noticeLine())
	if m.searching {
		b.WriteString("Search: " + m.searchInput.View() + "\n\n")
	} else {
		b.WriteString(hint("Genre: "+m.currentGenre()) + "\n\n")
	}
	b.WriteString(m.movieList.View())
	b.WriteString("\n" + hint("enter details • / search • g genre • b bookings • a admin • o login/logout • q quit"))
	return b.String()
}

func (m appModel) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	b.WriteString(m.noticeLine())
	if m.loginForm != nil {
		b.WriteString(m.loginForm.view())
	}
	b.WriteString("\n" + hint("ctrl+s create account"))
	return b.String()
}

func (m appModel) viewSignup() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	b.WriteString(m.noticeLine())
	if m.signupForm != nil {
		b.WriteString(m.signupForm.view())
	}
	return b.String()
}

func (m appModel) viewDetails() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	b.WriteString(m.noticeLine())

	movie := m.movie
	b.WriteString(headerStyle.Render(movie.Title) + "\n")
	meta := []string{movie.Genre, movie.Language, fmt.Sprintf("%d min", movie.Duration)}
	if movie.Rating != nil {
		meta = append(meta, fmt.Sprintf("★ %.1f", *movie.Rating))
	}
	b.WriteString(hint(strings.Join(meta, " • ")) + "\n")
	if movie.Director != "" {
		b.WriteString(hint("Director: "+movie.Director) + "\n")
	}
	if len(movie.Cast) > 0 {
		b.WriteString(hint("Cast: "+strings.Join(movie.Cast, ", ")) + "\n")
	}
	if movie.Description != "" {
		b.WriteString("\n" + movie.Description + "\n")
	}

	b.WriteString("\n" + dateStrip(time.Now(), m.dateOffset) + "\n\n")

	if len(m.groups) == 0 {
		b.WriteString(fmt.Sprintf("No shows in %s on this date.\n", m.city))
	}
	flatIdx := 0
	for _, group := range m.groups {
		b.WriteString(headerStyle.Render(group.theater.Name) + hint("  "+group.theater.Address) + "\n")
		for _, show := range group.shows {
			line := fmt.Sprintf("  %s  ₹%.0f  %d seats left", show.ShowTime, show.Price, show.AvailableSeats)
			if flatIdx == m.showCursor {
				line = cursorStyle.Render(line)
			}
			b.WriteString(line + "\n")
			flatIdx++
		}
	}

	b.WriteString("\n" + hint("enter select seats • 1/2/3 date • c city • esc back"))
	return b.String()
}

func (m appModel) viewCityInput() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	b.WriteString("City: " + m.cityInput.View() + "\n\n")
	b.WriteString(hint("enter apply • esc cancel"))
	return b.String()
}

func (m appModel) viewSeats() string {
	if m.seats == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	show := m.seats.show
	b.WriteString(headerStyle.Render(show.Movie.Title) +
		hint(fmt.Sprintf("  %s • %s %s • ₹%.0f per seat",
			show.Theater.Name, show.ShowDate, show.ShowTime, show.Price)) + "\n\n")
	b.WriteString(m.seats.render() + "\n")
	b.WriteString(m.noticeLine())
	b.WriteString(hint("arrows move • space toggle • p proceed • esc back"))
	return b.String()
}

func (m appModel) viewPayment() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	b.WriteString(headerStyle.Render("Payment") + "\n\n")

	booking := m.pendingBooking
	b.WriteString(fmt.Sprintf("%s at %s\n", booking.Show.Movie.Title, booking.Show.Theater.Name))
	b.WriteString(fmt.Sprintf("%s %s\n", booking.Show.ShowDate, booking.Show.ShowTime))
	b.WriteString(fmt.Sprintf("Seats: %s\n", strings.Join(booking.SeatNumbers, ", ")))
	b.WriteString(headerStyle.Render(fmt.Sprintf("Total: ₹%.0f", booking.TotalAmount)) + "\n\n")

	b.WriteString("Payment method:\n")
	for i, method := range paymentMethods {
		marker := "  "
		if i == m.payMethodIdx {
			marker = "> "
		}
		b.WriteString(marker + method + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.noticeLine())
	b.WriteString(hint("enter pay • up/down method • esc cancel"))
	return b.String()
}

func (m appModel) viewConfirmation() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	b.WriteString(okStyle.Render("Booking Confirmed!") + "\n\n")

	booking := m.confirmedBooking
	b.WriteString(fmt.Sprintf("Reference: %s\n", headerStyle.Render(booking.BookingReference)))
	b.WriteString(fmt.Sprintf("%s at %s\n", booking.Show.Movie.Title, booking.Show.Theater.Name))
	b.WriteString(fmt.Sprintf("%s %s\n", booking.Show.ShowDate, booking.Show.ShowTime))
	b.WriteString(fmt.Sprintf("Seats: %s\n", strings.Join(booking.SeatNumbers, ", ")))
	b.WriteString(fmt.Sprintf("Amount: ₹%.0f\n", booking.TotalAmount))
	if booking.Payment != nil {
		b.WriteString(fmt.Sprintf("Paid via %s (%s)\n", booking.Payment.PaymentMethod, booking.Payment.TransactionId))
	}
	b.WriteString("\n" + hint("enter back to movies"))
	return b.String()
}

func (m appModel) viewMyBookings() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	b.WriteString(headerStyle.Render("My Bookings") + "\n\n")
	b.WriteString(renderBookingsTable(m.myBookings))
	b.WriteString("\n\n" + hint("esc back"))
	return b.String()
}

func (m appModel) viewAdmin() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")

	tabs := []string{"1 Movies", "2 Theaters", "3 Shows", "4 Bookings"}
	var rendered []string
	for i, tab := range tabs {
		if adminTab(i) == m.adminTab {
			rendered = append(rendered, tabActive.Render(tab))
		} else {
			rendered = append(rendered, tabStyle.Render(tab))
		}
	}
	b.WriteString(strings.Join(rendered, "   ") + "\n\n")
	b.WriteString(m.noticeLine())

	switch m.adminTab {
	case tabMovies:
		for i, movie := range m.adminMovies {
			line := fmt.Sprintf("  #%d %s (%s, %s)", movie.Id, movie.Title, movie.Genre, movie.Language)
			if i == m.adminCursor {
				line = cursorStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	case tabTheaters:
		for i, theater := range m.adminTheaters {
			line := fmt.Sprintf("  #%d %s, %s (%d seats)", theater.Id, theater.Name, theater.City, theater.TotalSeats)
			if i == m.adminCursor {
				line = cursorStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	case tabShows:
		for i, show := range m.adminShows {
			line := fmt.Sprintf("  #%d %s @ %s  %s %s  ₹%.0f",
				show.Id, show.Movie.Title, show.Theater.Name, show.ShowDate, show.ShowTime, show.Price)
			if i == m.adminCursor {
				line = cursorStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	case tabBookings:
		b.WriteString(renderBookingsTable(m.adminBookings))
		b.WriteString("\n")
	}

	keys := "1-4 tabs • r refresh • esc back"
	if m.adminTab != tabBookings {
		keys = "1-4 tabs • a add • d delete • r refresh • esc back"
	}
	b.WriteString("\n" + hint(keys))
	return b.String()
}

func (m appModel) viewAdminForm() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	b.WriteString(m.noticeLine())
	if m.adminForm != nil {
		b.WriteString(m.adminForm.view())
	}
	return b.String()
}

func (m appModel) viewAdminDelete() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	b.WriteString(fmt.Sprintf("Delete %s?\n\n", headerStyle.Render(m.deleteLabel)))
	b.WriteString(hint("y confirm • n cancel"))
	return b.String()
}

func (m appModel) viewError() string {
	var b strings.Builder
	b.WriteString(m.headerLine() + "\n\n")
	b.WriteString(errorStyle.Render("Something went wrong") + "\n\n")
	if m.err != nil {
		b.WriteString(m.err.Error() + "\n")
	}
	b.WriteString("\n" + hint("enter/esc continue"))
	return b.String()
}
