package models

// HistoryRow is one editable history line of the profile form.
type HistoryRow struct {
	Type string `json:"type" example:"project"`
	Desc string `json:"desc" example:"backend for a campus marketplace"`
}

// ProfileForm carries in-progress profile edits. List-valued fields travel
// as comma-separated text and are split on save.
type ProfileForm struct {
	Name          string       `json:"name" example:"Kim Minsu"`
	StudentNum    string       `json:"student_num" example:"202112345"`
	MajorText     string       `json:"major_text" example:"computer science, math"`
	SkillsText    string       `json:"skills_text" example:"python, django, react"`
	InterestsText string       `json:"interests_text" example:"reinforcement learning, recsys"`
	Bio           string       `json:"bio" example:"third-year student"`
	PreferRoll    string       `json:"prefer_roll" example:"developer"`
	History       []HistoryRow `json:"history"`
}

// RankedItem is one display row of the recommendation list, joined against
// the project catalog.
type RankedItem struct {
	Rank       int                    `json:"rank" example:"1"`
	ProjectID  string                 `json:"project_id" example:"P0042"`
	FinalScore float64                `json:"final_score" example:"0.8731"`
	CBFNorm    float64                `json:"cbf_norm" example:"0.9012"`
	CFNorm     float64                `json:"cf_norm" example:"0.8123"`
	CBFScore   float64                `json:"cbf_score" example:"0.6644"`
	CFScore    float64                `json:"cf_score" example:"0.5521"`
	Deadline   string                 `json:"deadline,omitempty" example:"2026-09-15"`
	Expired    bool                   `json:"expired" example:"false"`
	PText      string                 `json:"p_text,omitempty"`
	PSkill     string                 `json:"p_skill,omitempty"`
	PRole      string                 `json:"p_role,omitempty"`
	PField     string                 `json:"p_field,omitempty"`
	Project    map[string]interface{} `json:"project,omitempty"` // raw catalog record, nil when unknown
}

// RecommendationPage is one page of the filtered result list. Start and End
// are the 1-based inclusive display range.
type RecommendationPage struct {
	Items      []RankedItem `json:"items"`
	Total      int          `json:"total" example:"23"`
	TotalPages int          `json:"total_pages" example:"3"`
	Page       int          `json:"page" example:"1"`
	Start      int          `json:"start" example:"1"`
	End        int          `json:"end" example:"10"`
	Range      string       `json:"range" example:"1 ~ 10"`
}

// SessionView reports the login state and the live edit-buffer preview.
type SessionView struct {
	LoggedIn bool        `json:"logged_in" example:"true"`
	LoginID  string      `json:"login_id,omitempty" example:"u00001"`
	UserID   string      `json:"user_id,omitempty" example:"U00001"`
	Preview  *UserRecord `json:"preview,omitempty"`
}
