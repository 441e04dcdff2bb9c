package models

// ProjectRecord is one entry of the JSON-lines project catalog. Records are
// read-only once loaded; everything here comes from the external file.
type ProjectRecord struct {
	ProjectID string `json:"project_id"`
	PText     string `json:"p_text,omitempty"`
	PSkill    string `json:"p_skill,omitempty"`
	PRole     string `json:"p_role,omitempty"`
	PField    string `json:"p_field,omitempty"`
	Deadline  string `json:"deadline,omitempty"` // YYYY-MM-DD
}

// ProjectIndex maps project_id to its catalog record.
type ProjectIndex map[string]*ProjectRecord
