package repository

import (
	"bytes"
	"encoding/json"
	"os"

	"hybrid_recommend_viewer/logger"
	"hybrid_recommend_viewer/models"
)

// LoadUsers reads the whole user store. A missing file or content that does
// not parse as a JSON array is treated as "no users yet" — the editor must
// stay available even over a corrupt store, so parse failures are swallowed.
func LoadUsers(path string) []*models.UserRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		return []*models.UserRecord{}
	}

	var users []*models.UserRecord
	if err := json.Unmarshal(data, &users); err != nil {
		logger.Warn("user store unreadable, starting empty", "path", path, "error", err)
		return []*models.UserRecord{}
	}
	if users == nil {
		users = []*models.UserRecord{}
	}
	return users
}

// SaveUsers overwrites the store with the full list, indented for human
// readability and with non-ASCII text kept verbatim.
func SaveUsers(path string, users []*models.UserRecord) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(users); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// FindUser returns the record whose user_id matches exactly, or nil.
func FindUser(users []*models.UserRecord, userID string) *models.UserRecord {
	for _, u := range users {
		if u.UserID == userID {
			return u
		}
	}
	return nil
}

// UpsertUser replaces the record with the same user_id in place, or appends
// when none matches. A record without a user_id leaves the list unchanged.
func UpsertUser(users []*models.UserRecord, rec *models.UserRecord) []*models.UserRecord {
	if rec == nil || rec.UserID == "" {
		return users
	}
	for i, u := range users {
		if u.UserID == rec.UserID {
			users[i] = rec
			return users
		}
	}
	return append(users, rec)
}
