package tui

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinebook-cli/config"
	"cinebook-cli/model"
	"cinebook-cli/service"
	"cinebook-cli/store"
)

type appState int

const (
	stateLoadingMovies appState = iota
	stateListMovies
	stateLogin
	stateSignup
	stateCheckingAuth
	stateLoadingDetails
	stateMovieDetails
	stateCityInput
	stateLoadingSeats
	stateSeatSelection
	stateSubmittingBooking
	statePayment
	stateConfirmingPayment
	stateConfirmation
	stateLoadingBookings
	stateMyBookings
	stateLoadingAdmin
	stateAdmin
	stateAdminForm
	stateAdminDelete
	stateError
)

type gateTarget int

const (
	gateSeats gateTarget = iota
	gateBookings
	gateAdmin
)

type adminTab int

const (
	tabMovies adminTab = iota
	tabTheaters
	tabShows
	tabBookings
)

var paymentMethods = []string{"CARD", "UPI", "NET_BANKING", "WALLET"}

type appModel struct {
	client *service.Client

	state     appState
	lastState appState
	err       error
	notice    string

	width  int
	height int

	spinner spinner.Model

	session    store.Session
	hasSession bool

	// listing
	movieList   list.Model
	allMovies   []model.Movie
	genres      []string
	genreIdx    int
	searching   bool
	searchInput textinput.Model

	// details
	movie      model.Movie
	groups     []theaterGroup
	flatShows  []model.Show
	showCursor int
	dateOffset int
	city       string
	cityInput  textinput.Model

	// booking flow
	seats            *seatSelection
	pendingBooking   model.Booking
	payMethodIdx     int
	confirmedBooking model.Booking

	myBookings []model.Booking

	// admin
	adminTab      adminTab
	adminMovies   []model.Movie
	adminTheaters []model.Theater
	adminShows    []model.Show
	adminBookings []model.Booking
	adminCursor   int
	adminForm     *form
	deleteLabel   string
	deleteID      int64

	loginForm  *form
	signupForm *form
}

type moviesMsg struct {
	movies     []model.Movie
	fromSearch bool
	err        error
}

type loginMsg struct {
	auth model.AuthResponse
	err  error
}

type signupMsg struct{ err error }

type gateMsg struct {
	target gateTarget
	showID int64
	user   model.User
	err    error
}

type detailsMsg struct {
	movie model.Movie
	shows []model.Show
	err   error
}

type showsMsg struct {
	shows []model.Show
	err   error
}

type seatsMsg struct {
	show  model.Show
	seats []model.Seat
	err   error
}

type bookingCreatedMsg struct {
	booking model.Booking
	err     error
}

type paymentDoneMsg struct {
	booking model.Booking
	err     error
}

type myBookingsMsg struct {
	bookings []model.Booking
	err      error
}

type adminDataMsg struct {
	tab      adminTab
	movies   []model.Movie
	theaters []model.Theater
	shows    []model.Show
	bookings []model.Booking
	err      error
}

type adminSavedMsg struct {
	tab adminTab
	err error
}

func New(cfg config.Config) tea.Model {
	httpClient := &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second}
	client := service.NewClient(httpClient, cfg.APIBaseURL, sessionToken, func() {
		_ = store.ClearSession()
	})

	m := appModel{
		client: client,
		state:  stateLoadingMovies,
	}

	m.movieList = newList("Now Showing")
	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search movies by title"
	m.cityInput = textinput.New()
	m.cityInput.Placeholder = "City"

	if session, ok, err := store.LoadSession(); err == nil && ok {
		m.session = session
		m.hasSession = true
	}
	if city, err := store.LoadCity(); err == nil && city != "" {
		m.city = city
	} else {
		m.city = cfg.DefaultCity
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

// sessionToken reads the stored token on every request, the same way the
// browser client read local storage on each call.
func sessionToken() string {
	session, ok, err := store.LoadSession()
	if err != nil || !ok {
		return ""
	}
	return session.Token
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case moviesMsg:
		return m.handleMovies(msg)

	case loginMsg:
		return m.handleLogin(msg)

	case signupMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			return m, nil
		}
		m.notice = "Registration successful! Please login."
		m.resetLoginForm()
		m.state = stateLogin
		return m, nil

	case gateMsg:
		return m.handleGate(msg)

	case detailsMsg:
		if msg.err != nil {
			return m.routeError(msg.err, stateListMovies)
		}
		m.movie = msg.movie
		m.setShows(msg.shows)
		m.state = stateMovieDetails
		return m, nil

	case showsMsg:
		if msg.err != nil {
			return m.routeError(msg.err, stateMovieDetails)
		}
		m.setShows(msg.shows)
		m.state = stateMovieDetails
		return m, nil

	case seatsMsg:
		if msg.err != nil {
			return m.routeError(msg.err, stateMovieDetails)
		}
		m.seats = newSeatSelection(msg.show, msg.seats)
		m.notice = ""
		m.state = stateSeatSelection
		return m, nil

	case bookingCreatedMsg:
		if msg.err != nil {
			if service.IsUnauthorized(msg.err) {
				return m.forceLogin()
			}
			m.notice = msg.err.Error()
			m.state = stateSeatSelection
			return m, nil
		}
		return m.enterPayment()

	case paymentDoneMsg:
		if msg.err != nil {
			if service.IsUnauthorized(msg.err) {
				return m.forceLogin()
			}
			m.notice = "Payment failed: " + msg.err.Error()
			m.state = statePayment
			return m, nil
		}
		return m.enterConfirmation()

	case myBookingsMsg:
		if msg.err != nil {
			return m.routeError(msg.err, stateListMovies)
		}
		m.myBookings = msg.bookings
		m.state = stateMyBookings
		return m, nil

	case adminDataMsg:
		if msg.err != nil {
			return m.routeError(msg.err, stateListMovies)
		}
		m.adminTab = msg.tab
		if msg.movies != nil {
			m.adminMovies = msg.movies
		}
		if msg.theaters != nil {
			m.adminTheaters = msg.theaters
		}
		m.adminShows = msg.shows
		m.adminBookings = msg.bookings
		m.adminCursor = 0
		m.state = stateAdmin
		return m, nil

	case adminSavedMsg:
		if msg.err != nil {
			if service.IsUnauthorized(msg.err) {
				return m.forceLogin()
			}
			m.notice = msg.err.Error()
			m.state = stateAdmin
			return m, nil
		}
		m.notice = ""
		m.state = stateLoadingAdmin
		return m, tea.Batch(m.fetchAdminCmd(msg.tab), m.spinner.Tick)
	}

	if m.state == stateListMovies && !m.searching {
		var cmd tea.Cmd
		m.movieList, cmd = m.movieList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleMovies(msg moviesMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if msg.fromSearch {
			m.notice = msg.err.Error()
			return m, nil
		}
		return m.routeError(msg.err, stateListMovies)
	}
	if !msg.fromSearch {
		m.allMovies = msg.movies
		m.genres = collectGenres(msg.movies)
		m.genreIdx = 0
	}
	m.movieList.SetItems(buildMovieItems(msg.movies))
	m.movieList.Select(0)
	m.state = stateListMovies
	return m, nil
}

func (m appModel) handleLogin(msg loginMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = msg.err.Error()
		return m, nil
	}
	m.session = store.Session{
		Token: msg.auth.Token,
		User: model.User{
			Username: msg.auth.Username,
			Email:    msg.auth.Email,
			Role:     msg.auth.Role,
		},
	}
	m.hasSession = true
	m.notice = ""
	if msg.auth.Role == model.RoleAdmin {
		m.state = stateLoadingAdmin
		return m, tea.Batch(m.fetchAdminCmd(tabMovies), m.spinner.Tick)
	}
	m.state = stateLoadingMovies
	return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
}

func (m appModel) handleGate(msg gateMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.forceLogin()
	}
	m.session.User = msg.user
	switch msg.target {
	case gateSeats:
		m.state = stateLoadingSeats
		return m, tea.Batch(m.fetchSeatsCmd(msg.showID), m.spinner.Tick)
	case gateBookings:
		m.state = stateLoadingBookings
		return m, tea.Batch(m.fetchMyBookingsCmd(), m.spinner.Tick)
	case gateAdmin:
		if msg.user.Role != model.RoleAdmin {
			m.notice = "Admin access required"
			m.state = stateListMovies
			return m, nil
		}
		m.state = stateLoadingAdmin
		return m, tea.Batch(m.fetchAdminCmd(tabMovies), m.spinner.Tick)
	}
	return m, nil
}

// forceLogin is the single 401 path: the client hook has already wiped the
// stored session; here the in-memory copy follows and the login view takes
// over.
func (m appModel) forceLogin() (tea.Model, tea.Cmd) {
	m.session = store.Session{}
	m.hasSession = false
	m.notice = "Please login to continue"
	m.resetLoginForm()
	m.state = stateLogin
	return m, nil
}

func (m appModel) routeError(err error, returnState appState) (tea.Model, tea.Cmd) {
	if service.IsUnauthorized(err) {
		return m.forceLogin()
	}
	m.err = err
	m.lastState = returnState
	m.state = stateError
	return m, nil
}

func (m *appModel) resetLoginForm() {
	m.loginForm = newForm("Sign In",
		newField("Username", "username", false),
		newField("Password", "password", true),
	)
}

func (m *appModel) resetSignupForm() {
	m.signupForm = newForm("Create Account",
		newField("Username", "username", false),
		newField("Email", "email", false),
		newField("Password", "password", true),
		newField("First name", "", false),
		newField("Last name", "", false),
		newField("Phone", "", false),
		newField("City", "Mumbai", false),
	)
}

func (m *appModel) setShows(shows []model.Show) {
	m.groups = groupShowsByTheater(shows)
	m.flatShows = flattenGroups(m.groups)
	m.showCursor = 0
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateListMovies:
		return m.handleListKey(msg)
	case stateLogin:
		return m.handleLoginKey(msg)
	case stateSignup:
		return m.handleSignupKey(msg)
	case stateMovieDetails:
		return m.handleDetailsKey(msg)
	case stateCityInput:
		return m.handleCityKey(msg)
	case stateSeatSelection:
		return m.handleSeatKey(msg)
	case statePayment:
		return m.handlePaymentKey(msg)
	case stateConfirmation, stateMyBookings:
		if msg.String() == "esc" || msg.Type == tea.KeyEnter {
			return m.goHome()
		}
	case stateAdmin:
		return m.handleAdminKey(msg)
	case stateAdminForm:
		return m.handleAdminFormKey(msg)
	case stateAdminDelete:
		return m.handleAdminDeleteKey(msg)
	case stateError:
		if msg.String() == "esc" || msg.Type == tea.KeyEnter {
			m.err = nil
			if m.lastState == stateListMovies {
				return m.goHome()
			}
			m.state = m.lastState
			return m, nil
		}
	}
	return m, nil
}

func (m appModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEnter:
			term := strings.TrimSpace(m.searchInput.Value())
			m.searching = false
			m.searchInput.Blur()
			if term == "" {
				m.movieList.SetItems(buildMovieItems(m.filteredMovies()))
				return m, nil
			}
			return m, m.searchMoviesCmd(term)
		case tea.KeyEsc:
			m.searching = false
			m.searchInput.Blur()
			m.movieList.SetItems(buildMovieItems(m.filteredMovies()))
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, nil
	case "g":
		// Genre filtering is client-side over the already-fetched catalog.
		m.genreIdx = (m.genreIdx + 1) % (len(m.genres) + 1)
		m.movieList.SetItems(buildMovieItems(m.filteredMovies()))
		m.movieList.Select(0)
		return m, nil
	case "r":
		m.state = stateLoadingMovies
		return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
	case "b":
		return m.startGate(gateBookings, 0)
	case "a":
		if !m.hasSession || m.session.User.Role != model.RoleAdmin {
			m.notice = "Admin access required"
			return m, nil
		}
		return m.startGate(gateAdmin, 0)
	case "o":
		if m.hasSession {
			_ = store.ClearSession()
			m.session = store.Session{}
			m.hasSession = false
			m.notice = "Logged out"
			return m, nil
		}
		m.notice = ""
		m.resetLoginForm()
		m.state = stateLogin
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		item, ok := m.movieList.SelectedItem().(movieItem)
		if !ok {
			return m, nil
		}
		m.dateOffset = 0
		m.state = stateLoadingDetails
		return m, tea.Batch(m.fetchDetailsCmd(item.movie.Id), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)
	return m, cmd
}

func (m appModel) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loginForm == nil {
		m.resetLoginForm()
	}
	switch msg.Type {
	case tea.KeyEsc:
		return m.goHome()
	}
	if msg.String() == "ctrl+s" {
		m.notice = ""
		m.resetSignupForm()
		m.state = stateSignup
		return m, nil
	}
	cmd, submitted := m.loginForm.update(msg)
	if submitted {
		username := m.loginForm.value(0)
		password := m.loginForm.value(1)
		if username == "" || password == "" {
			m.notice = "Username and password are required"
			return m, nil
		}
		return m, m.loginCmd(username, password)
	}
	return m, cmd
}

func (m appModel) handleSignupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.signupForm == nil {
		m.resetSignupForm()
	}
	if msg.Type == tea.KeyEsc {
		m.notice = ""
		m.resetLoginForm()
		m.state = stateLogin
		return m, nil
	}
	cmd, submitted := m.signupForm.update(msg)
	if submitted {
		req := model.SignupRequest{
			Username:  m.signupForm.value(0),
			Email:     m.signupForm.value(1),
			Password:  m.signupForm.value(2),
			FirstName: m.signupForm.value(3),
			LastName:  m.signupForm.value(4),
			Phone:     m.signupForm.value(5),
			City:      m.signupForm.value(6),
		}
		return m, m.signupCmd(req)
	}
	return m, cmd
}

func (m appModel) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateListMovies
		return m, nil
	case "1", "2", "3":
		offset := int(msg.String()[0] - '1')
		if offset == m.dateOffset {
			return m, nil
		}
		// A new offset refetches: availability is date-scoped server data.
		m.dateOffset = offset
		m.state = stateLoadingDetails
		return m, tea.Batch(m.fetchShowsCmd(), m.spinner.Tick)
	case "c":
		m.cityInput.SetValue(m.city)
		m.cityInput.Focus()
		m.state = stateCityInput
		return m, nil
	case "up", "k":
		if m.showCursor > 0 {
			m.showCursor--
		}
		return m, nil
	case "down", "j":
		if m.showCursor < len(m.flatShows)-1 {
			m.showCursor++
		}
		return m, nil
	}
	if msg.Type == tea.KeyEnter {
		if m.showCursor < 0 || m.showCursor >= len(m.flatShows) {
			return m, nil
		}
		return m.startGate(gateSeats, m.flatShows[m.showCursor].Id)
	}
	return m, nil
}

func (m appModel) handleCityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		city := strings.TrimSpace(m.cityInput.Value())
		m.cityInput.Blur()
		if city != "" && city != m.city {
			m.city = city
			_ = store.RememberCity(city)
			m.state = stateLoadingDetails
			return m, tea.Batch(m.fetchShowsCmd(), m.spinner.Tick)
		}
		m.state = stateMovieDetails
		return m, nil
	case tea.KeyEsc:
		m.cityInput.Blur()
		m.state = stateMovieDetails
		return m, nil
	}
	var cmd tea.Cmd
	m.cityInput, cmd = m.cityInput.Update(msg)
	return m, cmd
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.seats == nil {
		m.state = stateMovieDetails
		return m, nil
	}
	switch msg.String() {
	case "esc":
		// The selection is view-scoped: leaving the page discards it.
		m.seats = nil
		m.notice = ""
		m.state = stateMovieDetails
		return m, nil
	case "up", "k":
		m.seats.moveCursor(-1, 0)
		return m, nil
	case "down", "j":
		m.seats.moveCursor(1, 0)
		return m, nil
	case "left", "h":
		m.seats.moveCursor(0, -1)
		return m, nil
	case "right", "l":
		m.seats.moveCursor(0, 1)
		return m, nil
	case "p":
		if len(m.seats.selected) == 0 {
			m.notice = "Please select at least one seat"
			return m, nil
		}
		m.notice = ""
		m.state = stateSubmittingBooking
		req := model.BookingRequest{
			ShowId:        m.seats.show.Id,
			SeatNumbers:   m.seats.sortedSelected(),
			PaymentMethod: "CARD",
		}
		return m, tea.Batch(m.createBookingCmd(req), m.spinner.Tick)
	}
	if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
		seat, ok := m.seats.cursorSeat()
		if !ok {
			return m, nil
		}
		switch m.seats.toggle(seat.SeatNumber) {
		case toggleRejectedFull:
			m.notice = fmt.Sprintf("Maximum %d seats can be selected", maxSelectedSeats)
		default:
			m.notice = ""
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) handlePaymentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.goHome()
	case "up", "k":
		if m.payMethodIdx > 0 {
			m.payMethodIdx--
		}
		return m, nil
	case "down", "j":
		if m.payMethodIdx < len(paymentMethods)-1 {
			m.payMethodIdx++
		}
		return m, nil
	}
	if msg.Type == tea.KeyEnter {
		m.state = stateConfirmingPayment
		method := paymentMethods[m.payMethodIdx]
		return m, tea.Batch(m.confirmBookingCmd(m.pendingBooking.Id, method), m.spinner.Tick)
	}
	return m, nil
}

func (m appModel) handleAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.goHome()
	case "1", "2", "3", "4":
		tab := adminTab(msg.String()[0] - '1')
		if tab == m.adminTab {
			return m, nil
		}
		m.state = stateLoadingAdmin
		return m, tea.Batch(m.fetchAdminCmd(tab), m.spinner.Tick)
	case "up", "k":
		if m.adminCursor > 0 {
			m.adminCursor--
		}
		return m, nil
	case "down", "j":
		if m.adminCursor < m.adminTabLen()-1 {
			m.adminCursor++
		}
		return m, nil
	case "r":
		m.state = stateLoadingAdmin
		return m, tea.Batch(m.fetchAdminCmd(m.adminTab), m.spinner.Tick)
	case "a":
		switch m.adminTab {
		case tabMovies:
			m.adminForm = newMovieForm()
		case tabTheaters:
			m.adminForm = newTheaterForm()
		case tabShows:
			m.adminForm = newShowForm()
		default:
			return m, nil
		}
		m.state = stateAdminForm
		return m, nil
	case "d":
		label, id, ok := m.adminSelection()
		if !ok {
			return m, nil
		}
		// Deletion always sits behind an explicit confirmation.
		m.deleteLabel = label
		m.deleteID = id
		m.state = stateAdminDelete
		return m, nil
	}
	return m, nil
}

func (m appModel) handleAdminFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adminForm == nil {
		m.state = stateAdmin
		return m, nil
	}
	if msg.Type == tea.KeyEsc {
		m.adminForm = nil
		m.state = stateAdmin
		return m, nil
	}
	cmd, submitted := m.adminForm.update(msg)
	if !submitted {
		return m, cmd
	}

	f := m.adminForm
	m.adminForm = nil
	m.state = stateLoadingAdmin
	switch m.adminTab {
	case tabMovies:
		movie := model.Movie{
			Title:       f.value(0),
			Description: f.value(1),
			Genre:       f.value(2),
			Language:    f.value(3),
			Duration:    f.intValue(4),
			ReleaseDate: f.value(6),
			PosterUrl:   f.value(7),
			TrailerUrl:  f.value(8),
			Director:    f.value(9),
			Cast:        f.listValue(10),
			Active:      true,
		}
		if rating := f.floatValue(5); rating > 0 {
			movie.Rating = &rating
		}
		return m, tea.Batch(m.createMovieCmd(movie), m.spinner.Tick)
	case tabTheaters:
		theater := model.Theater{
			Name:        f.value(0),
			City:        f.value(1),
			Address:     f.value(2),
			SeatsPerRow: f.intValue(3),
			TotalRows:   f.intValue(4),
			Active:      true,
		}
		return m, tea.Batch(m.createTheaterCmd(theater), m.spinner.Tick)
	case tabShows:
		req := model.ShowRequest{
			MovieId:   f.int64Value(0),
			TheaterId: f.int64Value(1),
			ShowDate:  f.value(2),
			ShowTime:  f.value(3),
			Price:     f.floatValue(4),
		}
		return m, tea.Batch(m.createShowCmd(req), m.spinner.Tick)
	}
	m.state = stateAdmin
	return m, nil
}

func (m appModel) handleAdminDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.state = stateLoadingAdmin
		return m, tea.Batch(m.deleteCmd(m.adminTab, m.deleteID), m.spinner.Tick)
	case "n", "N", "esc":
		m.state = stateAdmin
		return m, nil
	}
	return m, nil
}

func (m appModel) startGate(target gateTarget, showID int64) (tea.Model, tea.Cmd) {
	session, ok, err := store.LoadSession()
	if err != nil || !ok {
		return m.forceLogin()
	}
	m.session = session
	m.hasSession = true
	m.state = stateCheckingAuth
	return m, tea.Batch(m.gateCmd(target, showID), m.spinner.Tick)
}

func (m appModel) enterPayment() (tea.Model, tea.Cmd) {
	booking, ok, err := store.PeekPendingBooking()
	if err != nil || !ok {
		// Missing handoff is fatal for the page: go home.
		return m.goHome()
	}
	m.pendingBooking = booking
	m.payMethodIdx = 0
	m.notice = ""
	m.seats = nil
	m.state = statePayment
	return m, nil
}

func (m appModel) enterConfirmation() (tea.Model, tea.Cmd) {
	booking, ok, err := store.ConsumeConfirmedBooking()
	if err != nil || !ok {
		return m.goHome()
	}
	m.confirmedBooking = booking
	m.state = stateConfirmation
	return m, nil
}

func (m appModel) goHome() (tea.Model, tea.Cmd) {
	m.notice = ""
	m.err = nil
	m.state = stateLoadingMovies
	return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
}

func (m appModel) filteredMovies() []model.Movie {
	if m.genreIdx == 0 {
		return m.allMovies
	}
	genre := m.genres[m.genreIdx-1]
	var filtered []model.Movie
	for _, movie := range m.allMovies {
		if movie.Genre == genre {
			filtered = append(filtered, movie)
		}
	}
	return filtered
}

func (m appModel) currentGenre() string {
	if m.genreIdx == 0 {
		return "All"
	}
	return m.genres[m.genreIdx-1]
}

func (m appModel) adminTabLen() int {
	switch m.adminTab {
	case tabMovies:
		return len(m.adminMovies)
	case tabTheaters:
		return len(m.adminTheaters)
	case tabShows:
		return len(m.adminShows)
	default:
		return len(m.adminBookings)
	}
}

func (m appModel) adminSelection() (string, int64, bool) {
	switch m.adminTab {
	case tabMovies:
		if m.adminCursor < len(m.adminMovies) {
			movie := m.adminMovies[m.adminCursor]
			return "movie " + movie.Title, movie.Id, true
		}
	case tabTheaters:
		if m.adminCursor < len(m.adminTheaters) {
			theater := m.adminTheaters[m.adminCursor]
			return "theater " + theater.Name, theater.Id, true
		}
	case tabShows:
		if m.adminCursor < len(m.adminShows) {
			show := m.adminShows[m.adminCursor]
			label := fmt.Sprintf("show %s @ %s %s", show.Movie.Title, show.Theater.Name, show.ShowTime)
			return label, show.Id, true
		}
	}
	return "", 0, false
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateLoadingMovies, stateCheckingAuth, stateLoadingDetails, stateLoadingSeats,
		stateSubmittingBooking, stateConfirmingPayment, stateLoadingBookings, stateLoadingAdmin:
		return true
	}
	return false
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func collectGenres(movies []model.Movie) []string {
	seen := map[string]bool{}
	var genres []string
	for _, movie := range movies {
		if movie.Genre == "" || seen[movie.Genre] {
			continue
		}
		seen[movie.Genre] = true
		genres = append(genres, movie.Genre)
	}
	return genres
}

type movieItem struct {
	movie model.Movie
}

func (i movieItem) Title() string { return i.movie.Title }

func (i movieItem) Description() string {
	parts := []string{i.movie.Genre, i.movie.Language, fmt.Sprintf("%d min", i.movie.Duration)}
	if i.movie.Rating != nil {
		parts = append(parts, fmt.Sprintf("★ %.1f", *i.movie.Rating))
	}
	return strings.Join(parts, " • ")
}

func (i movieItem) FilterValue() string {
	return strings.ToLower(i.movie.Title)
}

func buildMovieItems(movies []model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

func (m appModel) fetchMoviesCmd() tea.Cmd {
	return func() tea.Msg {
		movies, err := m.client.Movies(context.Background())
		return moviesMsg{movies: movies, err: err}
	}
}

func (m appModel) searchMoviesCmd(term string) tea.Cmd {
	return func() tea.Msg {
		movies, err := m.client.SearchMovies(context.Background(), term)
		return moviesMsg{movies: movies, fromSearch: true, err: err}
	}
}

func (m appModel) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		auth, err := m.client.Login(context.Background(), username, password)
		if err != nil {
			return loginMsg{err: err}
		}
		session := store.Session{
			Token: auth.Token,
			User: model.User{
				Username: auth.Username,
				Email:    auth.Email,
				Role:     auth.Role,
			},
		}
		if err := store.SaveSession(session); err != nil {
			return loginMsg{err: err}
		}
		return loginMsg{auth: auth}
	}
}

func (m appModel) signupCmd(req model.SignupRequest) tea.Cmd {
	return func() tea.Msg {
		return signupMsg{err: m.client.Signup(context.Background(), req)}
	}
}

// gateCmd re-validates the stored token against the server before a
// protected view initializes. Any failure wipes the session; the view
// never loads.
func (m appModel) gateCmd(target gateTarget, showID int64) tea.Cmd {
	return func() tea.Msg {
		user, err := m.client.Me(context.Background())
		if err != nil {
			_ = store.ClearSession()
			return gateMsg{err: err}
		}
		_ = store.SaveUser(user)
		return gateMsg{target: target, showID: showID, user: user}
	}
}

func (m appModel) fetchDetailsCmd(movieID int64) tea.Cmd {
	date := dateForOffset(time.Now(), m.dateOffset)
	city := m.city
	return func() tea.Msg {
		ctx := context.Background()
		movie, err := m.client.Movie(ctx, movieID)
		if err != nil {
			return detailsMsg{err: err}
		}
		shows, err := m.client.ShowsByMovieAndCity(ctx, movieID, city, date)
		if err != nil && !service.IsNotFound(err) {
			return detailsMsg{err: err}
		}
		return detailsMsg{movie: movie, shows: shows}
	}
}

func (m appModel) fetchShowsCmd() tea.Cmd {
	date := dateForOffset(time.Now(), m.dateOffset)
	city := m.city
	movieID := m.movie.Id
	return func() tea.Msg {
		shows, err := m.client.ShowsByMovieAndCity(context.Background(), movieID, city, date)
		if err != nil && !service.IsNotFound(err) {
			return showsMsg{err: err}
		}
		return showsMsg{shows: shows}
	}
}

func (m appModel) fetchSeatsCmd(showID int64) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		show, err := m.client.Show(ctx, showID)
		if err != nil {
			return seatsMsg{err: err}
		}
		seats, err := m.client.Seats(ctx, showID)
		if err != nil {
			return seatsMsg{err: err}
		}
		return seatsMsg{show: show, seats: seats}
	}
}

func (m appModel) createBookingCmd(req model.BookingRequest) tea.Cmd {
	return func() tea.Msg {
		booking, err := m.client.CreateBooking(context.Background(), req)
		if err != nil {
			return bookingCreatedMsg{err: err}
		}
		if err := store.SavePendingBooking(booking); err != nil {
			return bookingCreatedMsg{err: err}
		}
		return bookingCreatedMsg{booking: booking}
	}
}

func (m appModel) confirmBookingCmd(bookingID int64, method string) tea.Cmd {
	return func() tea.Msg {
		booking, err := m.client.ConfirmBooking(context.Background(), bookingID, method)
		if err != nil {
			return paymentDoneMsg{err: err}
		}
		// Swap handoffs: pending is done, confirmed awaits exactly one read.
		if err := store.DeletePendingBooking(); err != nil {
			return paymentDoneMsg{err: err}
		}
		if err := store.SaveConfirmedBooking(booking); err != nil {
			return paymentDoneMsg{err: err}
		}
		return paymentDoneMsg{booking: booking}
	}
}

func (m appModel) fetchMyBookingsCmd() tea.Cmd {
	return func() tea.Msg {
		bookings, err := m.client.MyBookings(context.Background())
		return myBookingsMsg{bookings: bookings, err: err}
	}
}

func (m appModel) fetchAdminCmd(tab adminTab) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		switch tab {
		case tabMovies:
			movies, err := m.client.Movies(ctx)
			return adminDataMsg{tab: tab, movies: movies, err: err}
		case tabTheaters:
			theaters, err := m.client.Theaters(ctx)
			return adminDataMsg{tab: tab, theaters: theaters, err: err}
		case tabShows:
			shows, err := m.client.Shows(ctx)
			if err != nil {
				return adminDataMsg{tab: tab, err: err}
			}
			// Movies and theaters give the add-show form its id reference.
			movies, err := m.client.Movies(ctx)
			if err != nil {
				return adminDataMsg{tab: tab, err: err}
			}
			theaters, err := m.client.Theaters(ctx)
			return adminDataMsg{tab: tab, shows: shows, movies: movies, theaters: theaters, err: err}
		default:
			bookings, err := m.client.AllBookings(ctx)
			return adminDataMsg{tab: tab, bookings: bookings, err: err}
		}
	}
}

func (m appModel) createMovieCmd(movie model.Movie) tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.CreateMovie(context.Background(), movie)
		return adminSavedMsg{tab: tabMovies, err: err}
	}
}

func (m appModel) createTheaterCmd(theater model.Theater) tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.CreateTheater(context.Background(), theater)
		return adminSavedMsg{tab: tabTheaters, err: err}
	}
}

func (m appModel) createShowCmd(req model.ShowRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.CreateShow(context.Background(), req)
		return adminSavedMsg{tab: tabShows, err: err}
	}
}

func (m appModel) deleteCmd(tab adminTab, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		switch tab {
		case tabMovies:
			err = m.client.DeleteMovie(ctx, id)
		case tabTheaters:
			err = m.client.DeleteTheater(ctx, id)
		case tabShows:
			err = m.client.DeleteShow(ctx, id)
		}
		return adminSavedMsg{tab: tab, err: err}
	}
}

func newMovieForm() *form {
	return newForm("Add Movie",
		newField("Title", "", false),
		newField("Description", "", false),
		newField("Genre", "", false),
		newField("Language", "", false),
		newField("Duration (min)", "120", false),
		newField("Rating", "", false),
		newField("Release date", "YYYY-MM-DD", false),
		newField("Poster URL", "", false),
		newField("Trailer URL", "", false),
		newField("Director", "", false),
		newField("Cast (comma separated)", "", false),
	)
}

func newTheaterForm() *form {
	return newForm("Add Theater",
		newField("Name", "", false),
		newField("City", "", false),
		newField("Address", "", false),
		newField("Seats per row", "10", false),
		newField("Total rows", "8", false),
	)
}

func newShowForm() *form {
	return newForm("Add Show",
		newField("Movie id", "", false),
		newField("Theater id", "", false),
		newField("Show date", "YYYY-MM-DD", false),
		newField("Show time", "HH:MM", false),
		newField("Price", "", false),
	)
}
