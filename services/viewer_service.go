package services

import (
	"errors"
	"fmt"
	"time"

	"hybrid_recommend_viewer/config"
	"hybrid_recommend_viewer/models"
	"hybrid_recommend_viewer/repository"
	"hybrid_recommend_viewer/utils"
)

const deadlineLayout = "2006-01-02"

// ErrNoResults means the results file for the selected user does not exist.
// A recoverable, user-visible condition, not a crash.
var ErrNoResults = errors.New("no results file for user")

// IsExpired reports whether deadline is a YYYY-MM-DD date strictly before
// today. Empty or unparsable deadlines are never expired (fail-open for
// display filtering).
func IsExpired(deadline string, today time.Time) bool {
	if deadline == "" {
		return false
	}
	d, err := time.Parse(deadlineLayout, deadline)
	if err != nil {
		return false
	}
	y, m, day := today.Date()
	return d.Before(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}

// FilterExpired drops entries whose effective deadline (entry deadline,
// else the joined project's) is expired, preserving relative order.
func FilterExpired(entries []*models.ResultEntry, idx models.ProjectIndex, today time.Time) []*models.ResultEntry {
	kept := make([]*models.ResultEntry, 0, len(entries))
	for _, e := range entries {
		if !IsExpired(e.EffectiveDeadline(idx[e.ProjectID]), today) {
			kept = append(kept, e)
		}
	}
	return kept
}

// PageBounds holds a clamped page and its 0-based slice bounds.
type PageBounds struct {
	Page       int
	TotalPages int
	Start      int // inclusive
	End        int // exclusive
}

// Paginate computes page count (minimum 1, even for an empty list), clamps
// the requested 1-based page, and returns the slice bounds for it. A
// non-positive pageSize falls back to the default page size.
func Paginate(total, pageSize, page int) PageBounds {
	if pageSize < 1 {
		pageSize = config.DefaultPageSize
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := utils.Min(start+pageSize, total)
	if start > total {
		start = total
	}
	return PageBounds{Page: page, TotalPages: totalPages, Start: start, End: end}
}

// BuildRecommendationPage loads the catalog and the user's results, applies
// the hide-expired filter, paginates, and joins each entry against the
// catalog for display. Returns ErrNoResults when the results file is absent.
func BuildRecommendationPage(cfg *config.Config, loginID string, page int, hideExpired bool, today time.Time) (*models.RecommendationPage, error) {
	idx, err := repository.LoadProjectsIndex(cfg.ProjectPath())
	if err != nil {
		return nil, err
	}

	resultPath := cfg.ResultPath(loginID)
	if !repository.ResultsFileExists(resultPath) {
		return nil, fmt.Errorf("%w: %s", ErrNoResults, resultPath)
	}

	entries, err := repository.LoadResults(resultPath)
	if err != nil {
		return nil, err
	}

	if hideExpired {
		entries = FilterExpired(entries, idx, today)
	}

	total := len(entries)
	bounds := Paginate(total, cfg.Data.PageSize, page)

	items := make([]models.RankedItem, 0, bounds.End-bounds.Start)
	for i, e := range entries[bounds.Start:bounds.End] {
		items = append(items, joinEntry(bounds.Start+i+1, e, idx[e.ProjectID], today))
	}

	return &models.RecommendationPage{
		Items:      items,
		Total:      total,
		TotalPages: bounds.TotalPages,
		Page:       bounds.Page,
		Start:      bounds.Start + 1,
		End:        bounds.End,
		Range:      fmt.Sprintf("%d ~ %d", bounds.Start+1, bounds.End),
	}, nil
}

// joinEntry resolves one display row: scores via their fallback keys, the
// effective deadline, and project fields from the catalog falling back to
// the entry's inline copies.
func joinEntry(rank int, e *models.ResultEntry, proj *models.ProjectRecord, today time.Time) models.RankedItem {
	deadline := e.EffectiveDeadline(proj)

	item := models.RankedItem{
		Rank:       rank,
		ProjectID:  e.ProjectID,
		FinalScore: e.FinalScore(),
		CBFNorm:    e.CBFNorm(),
		CFNorm:     e.CFNorm(),
		CBFScore:   e.CBFScore(),
		CFScore:    e.CFScore(),
		Deadline:   deadline,
		Expired:    IsExpired(deadline, today),
		PText:      e.PText,
		PSkill:     e.PSkill,
		PRole:      e.PRole,
		PField:     e.PField,
	}

	if proj != nil {
		item.PText = fallback(proj.PText, e.PText)
		item.PSkill = fallback(proj.PSkill, e.PSkill)
		item.PRole = fallback(proj.PRole, e.PRole)
		item.PField = fallback(proj.PField, e.PField)
		item.Project = map[string]interface{}{
			"project_id": proj.ProjectID,
			"p_text":     proj.PText,
			"p_skill":    proj.PSkill,
			"p_role":     proj.PRole,
			"p_field":    proj.PField,
			"deadline":   proj.Deadline,
		}
	}
	return item
}

func fallback(primary, secondary string) string {
	if primary != "" {
		return primary
	}
	return secondary
}
