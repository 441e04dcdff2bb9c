package services

import (
	"strings"
	"sync"

	"hybrid_recommend_viewer/models"
)

// Session is the single interactive session of the viewer: the selected
// login account, the current results page, and the profile edit buffer.
// One operator drives the viewer, but chi serves requests concurrently, so
// the state is mutex-guarded. Everything here is ephemeral; only an
// explicit save touches disk.
type Session struct {
	mu      sync.Mutex
	loginID string // raw selector value, e.g. "u00001"
	userID  string // stored form, upper-cased
	page    int
	buffer  models.ProfileForm
}

func NewSession() *Session {
	return &Session{page: 1}
}

// Login selects an account. Switching accounts resets the page to 1 and
// replaces the edit buffer with the given seed; re-selecting the current
// account keeps the in-progress edits, matching the reference behavior.
func (s *Session) Login(loginID string, seed models.ProfileForm) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loginID == loginID {
		return
	}
	s.loginID = loginID
	s.userID = strings.ToUpper(loginID)
	s.page = 1
	s.buffer = seed
}

// Logout discards the session state, including unsaved edits.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loginID = ""
	s.userID = ""
	s.page = 1
	s.buffer = models.ProfileForm{}
}

// Snapshot returns the login state without exposing the buffer.
func (s *Session) Snapshot() (loggedIn bool, loginID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginID != "", s.loginID, s.userID
}

func (s *Session) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *Session) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.page = page
}

// Buffer returns a copy of the pending edits.
func (s *Session) Buffer() models.ProfileForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyForm(s.buffer)
}

// Stage replaces the pending edits. Nothing is persisted until save.
func (s *Session) Stage(form models.ProfileForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = copyForm(form)
}

func copyForm(f models.ProfileForm) models.ProfileForm {
	out := f
	out.History = append([]models.HistoryRow(nil), f.History...)
	return out
}
