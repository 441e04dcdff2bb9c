package models

// ResultEntry is one ranked recommendation from a hybrid results file. The
// rank is positional (index in the file), not stored. Score fields appear
// under two historical key spellings, so both are decoded and resolved
// through the accessor methods; absent values resolve to 0.0.
type ResultEntry struct {
	ProjectID string `json:"project_id"`

	FinalScoreRaw *float64 `json:"final_score,omitempty"`
	FinalAlt      *float64 `json:"final,omitempty"`
	CBFNormRaw    *float64 `json:"cbf_norm,omitempty"`
	CBFAlt        *float64 `json:"cbf,omitempty"`
	CFNormRaw     *float64 `json:"cf_norm,omitempty"`
	CFAlt         *float64 `json:"cf,omitempty"`
	CBFScoreRaw   *float64 `json:"cbf_score,omitempty"`
	CFScoreRaw    *float64 `json:"cf_score,omitempty"`

	// Overrides the catalog deadline when set.
	Deadline string `json:"deadline,omitempty"`

	// Inline fallbacks used when the catalog has no matching project.
	PText  string `json:"p_text,omitempty"`
	PSkill string `json:"p_skill,omitempty"`
	PRole  string `json:"p_role,omitempty"`
	PField string `json:"p_field,omitempty"`
}

func firstOf(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0.0
}

// FinalScore resolves final_score, falling back to final.
func (r *ResultEntry) FinalScore() float64 {
	return firstOf(r.FinalScoreRaw, r.FinalAlt)
}

// CBFNorm resolves cbf_norm, falling back to cbf.
func (r *ResultEntry) CBFNorm() float64 {
	return firstOf(r.CBFNormRaw, r.CBFAlt)
}

// CFNorm resolves cf_norm, falling back to cf.
func (r *ResultEntry) CFNorm() float64 {
	return firstOf(r.CFNormRaw, r.CFAlt)
}

func (r *ResultEntry) CBFScore() float64 {
	return firstOf(r.CBFScoreRaw)
}

func (r *ResultEntry) CFScore() float64 {
	return firstOf(r.CFScoreRaw)
}

// EffectiveDeadline is the entry's own deadline, else the joined project's.
func (r *ResultEntry) EffectiveDeadline(proj *ProjectRecord) string {
	if r.Deadline != "" {
		return r.Deadline
	}
	if proj != nil {
		return proj.Deadline
	}
	return ""
}
