package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-parking-mate/internal/adapter"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type promptKind int

const (
	promptNone promptKind = iota
	promptSearch
	promptNearby
	promptRating
)

var (
	errBadCoordinates = errors.New("enter coordinates as \"lat, lng\"")
	errBadScore       = errors.New("score must be a number from 1 to 5")
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx     context.Context
	api     adapter.APIAdapter
	session models.LoginResult

	rows    []lotRow
	title   string
	idx     int
	loading bool
	detail  bool

	bookmarks map[int64]bool
	ratings   map[int64]models.Rating

	prompt      promptKind
	promptInput textinput.Model

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, api adapter.APIAdapter, session models.LoginResult) mainLoopModel {
	input := textinput.New()
	input.Width = 40

	return mainLoopModel{
		ctx:         ctx,
		api:         api,
		session:     session,
		title:       "All parking lots",
		loading:     true,
		bookmarks:   make(map[int64]bool),
		ratings:     make(map[int64]models.Rating),
		promptInput: input,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadLots(""), m.cmdLoadBookmarks(), m.cmdLoadRatings())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lotsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.rows = msg.rows
		m.title = msg.title
		m.idx = 0
		m.detail = false
		return m, nil
	case bookmarksLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.bookmarks = make(map[int64]bool, len(msg.ids))
		for _, id := range msg.ids {
			m.bookmarks[id] = true
		}
		return m, nil
	case ratingsLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.ratings = make(map[int64]models.Rating, len(msg.ratings))
		for _, r := range msg.ratings {
			m.ratings[r.ParkingLotID] = r
		}
		return m, nil
	case bookmarkToggledMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Bookmark failed: %s", humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		if msg.bookmarked {
			m.bookmarks[msg.parkingLotID] = true
			return m.withStatus("Bookmarked")
		}
		delete(m.bookmarks, msg.parkingLotID)
		return m.withStatus("Bookmark removed")
	case ratedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrAPIConflict) {
				m.errMsg = "You have already rated this parking lot"
				return m, nil
			}
			m.errMsg = fmt.Sprintf("Rating failed: %s", humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.ratings[msg.rating.ParkingLotID] = msg.rating
		return m.withStatus("Thanks for rating")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.prompt != promptNone {
			var cmd tea.Cmd
			m.promptInput, cmd = m.promptInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.errMsg != "" {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.errMsg = ""
		}
		return m, nil
	}

	if m.prompt != promptNone {
		return m.updatePrompt(keyMsg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); !ok {
			return m.withStatus("Nothing to open")
		}
		m.detail = true
	case key.Matches(keyMsg, keys.search):
		return m.openPrompt(promptSearch, "keyword")
	case key.Matches(keyMsg, keys.nearby):
		return m.openPrompt(promptNearby, "37.5665, 126.9780")
	case key.Matches(keyMsg, keys.bookmarks):
		m.loading = true
		return m, m.cmdLoadBookmarked()
	case key.Matches(keyMsg, keys.all):
		m.loading = true
		return m, m.cmdLoadLots("")
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = false
	case key.Matches(keyMsg, keys.bookmark):
		return m, m.cmdToggleBookmark(row.lot.ID, !m.bookmarks[row.lot.ID])
	case key.Matches(keyMsg, keys.rate):
		if _, rated := m.ratings[row.lot.ID]; rated {
			m.errMsg = "You have already rated this parking lot"
			return m, nil
		}
		return m.openPrompt(promptRating, "1-5")
	case key.Matches(keyMsg, keys.copy):
		if strings.TrimSpace(row.lot.Address) == "" {
			return m.withStatus("Nothing to copy")
		}
		if err := copyToClipboard(row.lot.Address); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		return m.withStatus("Address copied")
	}

	return m, nil
}

func (m mainLoopModel) updatePrompt(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.closePrompt()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		value := strings.TrimSpace(m.promptInput.Value())
		kind := m.prompt
		m.closePrompt()

		switch kind {
		case promptSearch:
			m.loading = true
			return m, m.cmdLoadLots(value)
		case promptNearby:
			lat, lng, err := parseCoordinates(value)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.loading = true
			return m, m.cmdRecommendNearby(lat, lng)
		case promptRating:
			score, err := parseScore(value)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			row, ok := m.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdRate(row.lot.ID, score)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) openPrompt(kind promptKind, placeholder string) (tea.Model, tea.Cmd) {
	m.prompt = kind
	m.promptInput.SetValue("")
	m.promptInput.Placeholder = placeholder
	cmd := m.promptInput.Focus()
	return m, cmd
}

func (m *mainLoopModel) closePrompt() {
	m.prompt = promptNone
	m.promptInput.Blur()
}

func (m mainLoopModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) current() (lotRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return lotRow{}, false
	}
	return m.rows[m.idx], true
}

func (m mainLoopModel) View() string {
	if m.errMsg != "" {
		return errorOverlayModel{message: m.errMsg}.View()
	}

	if m.detail {
		if row, ok := m.current(); ok {
			var rating *models.Rating
			if r, rated := m.ratings[row.lot.ID]; rated {
				rating = &r
			}
			body := renderLotDetail(row, m.bookmarks[row.lot.ID], rating) + m.promptView() + m.statusView()
			return renderPage(strings.ToUpper(row.lot.Name), body, "b: bookmark │ s: rate │ c: copy address │ esc: back")
		}
	}

	var body string
	switch {
	case m.loading:
		body = "Loading..."
	case len(m.rows) == 0:
		body = "No parking lots"
	default:
		body = renderLotTable(m.rows, m.idx, m.bookmarks)
	}

	header := m.title
	if m.session.Nickname != "" {
		header = fmt.Sprintf("%s │ %s (%s)", m.title, m.session.Nickname, factorName(m.session.PreferredFactor))
	}

	return renderPage(header, body+m.promptView()+m.statusView(),
		"enter: open │ /: search │ n: nearby │ b: bookmarks │ a: all │ l: logout │ q: quit")
}

func (m mainLoopModel) promptView() string {
	var label string
	switch m.prompt {
	case promptSearch:
		label = "Search"
	case promptNearby:
		label = "Near (lat, lng)"
	case promptRating:
		label = "Score"
	default:
		return ""
	}
	return "\n\n" + label + ": [" + m.promptInput.View() + "]"
}

func (m mainLoopModel) statusView() string {
	if m.status == "" {
		return ""
	}
	return "\n\nOK: " + m.status
}

func (m mainLoopModel) cmdLoadLots(keyword string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		lots, err := api.ParkingLots(ctx, keyword)
		title := "All parking lots"
		if keyword != "" {
			title = fmt.Sprintf("Search: %q", keyword)
		}
		return lotsLoadedMsg{rows: rowsFromLots(lots), title: title, err: err}
	}
}

// cmdLoadBookmarked lists the lots the user bookmarked, in bookmark order.
func (m mainLoopModel) cmdLoadBookmarked() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		bookmarks, err := api.Bookmarks(ctx)
		if err != nil {
			return lotsLoadedMsg{err: err}
		}
		lots, err := api.ParkingLots(ctx, "")
		if err != nil {
			return lotsLoadedMsg{err: err}
		}

		byID := make(map[int64]models.ParkingLot, len(lots))
		for _, lot := range lots {
			byID[lot.ID] = lot
		}
		var picked []models.ParkingLot
		for _, b := range bookmarks {
			if lot, ok := byID[b.ParkingLotID]; ok {
				picked = append(picked, lot)
			}
		}

		return lotsLoadedMsg{rows: rowsFromLots(picked), title: "Bookmarks"}
	}
}

func (m mainLoopModel) cmdRecommendNearby(lat, lng float64) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		lots, err := api.RecommendNearby(ctx, lat, lng)
		return lotsLoadedMsg{
			rows:  rowsFromRecommendations(lots),
			title: fmt.Sprintf("Recommended near %.4f, %.4f", lat, lng),
			err:   err,
		}
	}
}

func (m mainLoopModel) cmdLoadBookmarks() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		bookmarks, err := api.Bookmarks(ctx)
		ids := make([]int64, 0, len(bookmarks))
		for _, b := range bookmarks {
			ids = append(ids, b.ParkingLotID)
		}
		return bookmarksLoadedMsg{ids: ids, err: err}
	}
}

func (m mainLoopModel) cmdLoadRatings() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		ratings, err := api.Ratings(ctx)
		return ratingsLoadedMsg{ratings: ratings, err: err}
	}
}

func (m mainLoopModel) cmdToggleBookmark(parkingLotID int64, add bool) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		var err error
		if add {
			err = api.AddBookmark(ctx, parkingLotID)
		} else {
			err = api.RemoveBookmark(ctx, parkingLotID)
		}
		return bookmarkToggledMsg{parkingLotID: parkingLotID, bookmarked: add, err: err}
	}
}

func (m mainLoopModel) cmdRate(parkingLotID int64, score float64) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		rating, err := api.RateParkingLot(ctx, parkingLotID, score)
		return ratedMsg{rating: rating, err: err}
	}
}

// parseCoordinates accepts "lat, lng" or "lat lng".
func parseCoordinates(s string) (lat, lng float64, err error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 2 {
		return 0, 0, errBadCoordinates
	}

	if lat, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, errBadCoordinates
	}
	if lng, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, errBadCoordinates
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, errBadCoordinates
	}

	return lat, lng, nil
}

func parseScore(s string) (float64, error) {
	score, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || score < 1 || score > 5 {
		return 0, errBadScore
	}
	return score, nil
}
