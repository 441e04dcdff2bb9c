package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hybrid_recommend_viewer/models"
)

func TestLoadUsers_MissingFile(t *testing.T) {
	users := LoadUsers(filepath.Join(t.TempDir(), "users.json"))
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestLoadUsers_CorruptFileSwallowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	writeFile(t, path, `{"not":"an array"`)

	users := LoadUsers(path)
	assert.Empty(t, users)
}

func TestLoadUsers_NotAnArraySwallowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	writeFile(t, path, `{"user_id":"U00001"}`)

	users := LoadUsers(path)
	assert.Empty(t, users)
}

func TestSaveUsers_IndentedAndNonASCIIVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	rec := models.DefaultUser("U00001")
	rec.Name = "김민수"
	rec.Profile.Major = []string{"컴퓨터공학", "수학"}

	require.NoError(t, SaveUsers(path, []*models.UserRecord{rec}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "김민수")
	assert.NotContains(t, string(raw), `\u`)
	assert.Contains(t, string(raw), "    \"user_id\": \"U00001\"")

	loaded := LoadUsers(path)
	require.Len(t, loaded, 1)
	assert.Equal(t, "김민수", loaded[0].Name)
	assert.Equal(t, []string{"컴퓨터공학", "수학"}, loaded[0].Profile.Major)
}

func TestFindUser_ExactCaseSensitiveMatch(t *testing.T) {
	users := []*models.UserRecord{
		models.DefaultUser("U00001"),
		models.DefaultUser("U00002"),
	}

	assert.Equal(t, users[1], FindUser(users, "U00002"))
	assert.Nil(t, FindUser(users, "u00002"))
	assert.Nil(t, FindUser(users, "U00003"))
}

func TestUpsertUser_ReplacesInPlace(t *testing.T) {
	users := []*models.UserRecord{
		models.DefaultUser("U00001"),
		models.DefaultUser("U00002"),
		models.DefaultUser("U00003"),
	}

	updated := models.DefaultUser("U00002")
	updated.Name = "changed"

	out := UpsertUser(users, updated)
	require.Len(t, out, 3)
	assert.Equal(t, "U00001", out[0].UserID)
	assert.Equal(t, "U00002", out[1].UserID)
	assert.Equal(t, "changed", out[1].Name)
	assert.Equal(t, "U00003", out[2].UserID)
}

func TestUpsertUser_AppendsNewAtEnd(t *testing.T) {
	users := []*models.UserRecord{models.DefaultUser("U00001")}

	out := UpsertUser(users, models.DefaultUser("U00009"))
	require.Len(t, out, 2)
	assert.Equal(t, "U00009", out[1].UserID)
}

func TestUpsertUser_NoUserIDIsNoOp(t *testing.T) {
	users := []*models.UserRecord{models.DefaultUser("U00001")}

	out := UpsertUser(users, &models.UserRecord{Name: "anonymous"})
	assert.Equal(t, users, out)

	out = UpsertUser(users, nil)
	assert.Equal(t, users, out)
}

func TestUpsertUser_Idempotent(t *testing.T) {
	users := []*models.UserRecord{models.DefaultUser("U00001")}

	rec := models.DefaultUser("U00002")
	rec.Name = "once"

	once := UpsertUser(users, rec)
	onceJSON, err := json.Marshal(once)
	require.NoError(t, err)

	twice := UpsertUser(once, rec)
	twiceJSON, err := json.Marshal(twice)
	require.NoError(t, err)

	assert.Equal(t, string(onceJSON), string(twiceJSON))
}
