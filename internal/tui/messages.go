package tui

import (
	"github.com/MKhiriev/go-parking-mate/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch the active page. A non-nil Payload is
// delivered to the new page in place of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login form. A successful result ends the
// login flow.
type LoginResult struct {
	Session models.LoginResult
	Err     error
}

type RegisterResult struct {
	Email string
	Err   error
}

// RegisterSuccessNotice is shown by the menu after a registration.
type RegisterSuccessNotice struct {
	Email string
}

type serverVersionMsg struct {
	info models.VersionInfo
	err  error
}

type lotsLoadedMsg struct {
	rows  []lotRow
	title string
	err   error
}

type bookmarksLoadedMsg struct {
	ids []int64
	err error
}

type ratingsLoadedMsg struct {
	ratings []models.Rating
	err     error
}

type bookmarkToggledMsg struct {
	parkingLotID int64
	bookmarked   bool
	err          error
}

type ratedMsg struct {
	rating models.Rating
	err    error
}

type clearStatusMsg struct{}
