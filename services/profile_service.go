package services

import (
	"strings"

	"hybrid_recommend_viewer/config"
	"hybrid_recommend_viewer/models"
	"hybrid_recommend_viewer/repository"
	"hybrid_recommend_viewer/utils"
)

// LoadOrDefaultUser reads the store fresh and returns the stored record for
// userID, or an empty template when none exists yet.
func LoadOrDefaultUser(cfg *config.Config, userID string) *models.UserRecord {
	users := repository.LoadUsers(cfg.UsersPath())
	if u := repository.FindUser(users, userID); u != nil {
		return u
	}
	return models.DefaultUser(userID)
}

// FormFromRecord seeds an edit buffer from a stored record: list fields are
// joined back to comma-separated text, history is padded to the editable
// row count.
func FormFromRecord(rec *models.UserRecord) models.ProfileForm {
	form := models.ProfileForm{
		Name:          rec.Name,
		StudentNum:    rec.StudentNum,
		MajorText:     strings.Join(rec.Profile.Major, ", "),
		SkillsText:    strings.Join(rec.Profile.Skills, ", "),
		InterestsText: strings.Join(rec.Profile.Interests, ", "),
		Bio:           rec.Profile.Bio,
		PreferRoll:    rec.PreferRoll,
		History:       make([]models.HistoryRow, models.MaxHistoryItems),
	}
	for i := 0; i < models.MaxHistoryItems && i < len(rec.History); i++ {
		form.History[i] = models.HistoryRow{Type: rec.History[i].Type, Desc: rec.History[i].Desc}
	}
	return form
}

// RecordFromForm builds the persistable record from a form: comma lists are
// split and trimmed, history rows beyond the cap are ignored and blank rows
// are dropped.
func RecordFromForm(userID string, form models.ProfileForm) *models.UserRecord {
	rec := &models.UserRecord{
		UserID:     userID,
		Name:       form.Name,
		StudentNum: form.StudentNum,
		Profile: models.UserProfile{
			Major:     utils.ParseCSVList(form.MajorText),
			Skills:    utils.ParseCSVList(form.SkillsText),
			Interests: utils.ParseCSVList(form.InterestsText),
			Bio:       form.Bio,
		},
		History:    []models.HistoryItem{},
		PreferRoll: form.PreferRoll,
	}

	rows := form.History
	if len(rows) > models.MaxHistoryItems {
		rows = rows[:models.MaxHistoryItems]
	}
	for _, row := range rows {
		t := strings.TrimSpace(row.Type)
		d := strings.TrimSpace(row.Desc)
		if t == "" && d == "" {
			continue
		}
		rec.History = append(rec.History, models.HistoryItem{Type: t, Desc: d})
	}
	return rec
}

// SaveProfile commits an edit buffer for userID: the store is re-read from
// disk so a stale in-memory list never clobbers records saved by another
// session, then the record is upserted and the whole list rewritten. No
// file lock; concurrent savers are last-writer-wins on the whole file.
func SaveProfile(cfg *config.Config, userID string, form models.ProfileForm) (*models.UserRecord, error) {
	rec := RecordFromForm(userID, form)
	users := repository.LoadUsers(cfg.UsersPath())
	users = repository.UpsertUser(users, rec)
	if err := repository.SaveUsers(cfg.UsersPath(), users); err != nil {
		return nil, err
	}
	return rec, nil
}
