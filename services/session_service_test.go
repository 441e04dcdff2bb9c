package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hybrid_recommend_viewer/models"
)

func TestSession_LoginSeedsAndResetsPage(t *testing.T) {
	s := NewSession()
	s.SetPage(5)

	s.Login("u00001", models.ProfileForm{Name: "seeded"})

	loggedIn, loginID, userID := s.Snapshot()
	assert.True(t, loggedIn)
	assert.Equal(t, "u00001", loginID)
	assert.Equal(t, "U00001", userID)
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, "seeded", s.Buffer().Name)
}

func TestSession_SameLoginKeepsEdits(t *testing.T) {
	s := NewSession()
	s.Login("u00001", models.ProfileForm{Name: "seeded"})
	s.Stage(models.ProfileForm{Name: "edited"})
	s.SetPage(3)

	// re-selecting the active account is not a switch
	s.Login("u00001", models.ProfileForm{Name: "reseed"})
	assert.Equal(t, "edited", s.Buffer().Name)
	assert.Equal(t, 3, s.Page())
}

func TestSession_SwitchResetsBufferAndPage(t *testing.T) {
	s := NewSession()
	s.Login("u00001", models.ProfileForm{Name: "first"})
	s.Stage(models.ProfileForm{Name: "unsaved edit"})
	s.SetPage(2)

	s.Login("u00002", models.ProfileForm{Name: "second"})

	_, _, userID := s.Snapshot()
	assert.Equal(t, "U00002", userID)
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, "second", s.Buffer().Name)
}

func TestSession_LogoutClearsEverything(t *testing.T) {
	s := NewSession()
	s.Login("u00001", models.ProfileForm{Name: "seeded"})
	s.Logout()

	loggedIn, loginID, userID := s.Snapshot()
	assert.False(t, loggedIn)
	assert.Empty(t, loginID)
	assert.Empty(t, userID)
	assert.Empty(t, s.Buffer().Name)
}

func TestSession_BufferIsACopy(t *testing.T) {
	s := NewSession()
	s.Login("u00001", models.ProfileForm{
		History: []models.HistoryRow{{Type: "project", Desc: "one"}},
	})

	buf := s.Buffer()
	buf.History[0].Desc = "mutated"

	assert.Equal(t, "one", s.Buffer().History[0].Desc)
}

func TestSession_SetPageFloorsAtOne(t *testing.T) {
	s := NewSession()
	s.SetPage(-3)
	assert.Equal(t, 1, s.Page())
}
