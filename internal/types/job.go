//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// Job is an externally sourced job posting saved by the user.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	URL          string   `json:"url,omitempty"`
	Salary       string   `json:"salary,omitempty"`
	DatePosted   string   `json:"datePosted,omitempty"`
	MatchScore   *int     `json:"matchScore,omitempty" validate:"omitempty,min=0,max=100"`
	Source       string   `json:"source,omitempty"`
}

// Clone returns a deep copy of the job.
func (j Job) Clone() Job {
	out := j
	out.Requirements = slices.Clone(j.Requirements)
	if j.MatchScore != nil {
		score := *j.MatchScore
		out.MatchScore = &score
	}
	return out
}
