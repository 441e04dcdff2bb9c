package models

// MaxHistoryItems caps the history rows kept per user.
const MaxHistoryItems = 5

// UserProfile is the nested profile block of a user record.
type UserProfile struct {
	Major     []string `json:"major"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Bio       string   `json:"bio"`
}

// HistoryItem is one activity row, at most MaxHistoryItems per user.
type HistoryItem struct {
	Type string `json:"type"`
	Desc string `json:"desc"`
}

// UserRecord is one element of the persisted users.json array, keyed by
// UserID (the upper-cased login id).
type UserRecord struct {
	UserID     string        `json:"user_id"`
	Name       string        `json:"name"`
	StudentNum string        `json:"student_num"`
	Profile    UserProfile   `json:"profile"`
	History    []HistoryItem `json:"history"`
	PreferRoll string        `json:"prefer_roll"`
}

// DefaultUser returns an empty record template for the given id, so the
// editor always has a populated record to start from.
func DefaultUser(userID string) *UserRecord {
	return &UserRecord{
		UserID:     userID,
		Name:       "",
		StudentNum: "",
		Profile: UserProfile{
			Major:     []string{},
			Skills:    []string{},
			Interests: []string{},
			Bio:       "",
		},
		History:    []HistoryItem{},
		PreferRoll: "",
	}
}
