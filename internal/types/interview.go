//nolint:revive // types is a standard Go package name pattern
package types

import (
	"slices"
	"time"
)

// Difficulty grades an interview question.
type Difficulty string

// Question difficulties
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// InterviewQuestion is a practice question with an optional model and user answer.
type InterviewQuestion struct {
	ID         string     `json:"id"`
	Question   string     `json:"question" validate:"required"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty" validate:"oneof=Easy Medium Hard"`
	Answer     string     `json:"answer,omitempty"`
	UserAnswer string     `json:"userAnswer,omitempty"`
	Feedback   string     `json:"feedback,omitempty"`
}

// InterviewPrep is a set of practice questions tied to a resume and optionally a job.
type InterviewPrep struct {
	ID        string              `json:"id"`
	Title     string              `json:"title" validate:"required"`
	ResumeID  string              `json:"resumeId" validate:"required"`
	JobID     string              `json:"jobId,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Questions []InterviewQuestion `json:"questions" validate:"dive"`
	Notes     string              `json:"notes,omitempty"`
}

// Clone returns a deep copy of the prep.
func (p InterviewPrep) Clone() InterviewPrep {
	out := p
	out.Questions = slices.Clone(p.Questions)
	return out
}

// InterviewPrepPatch holds a partial update for an interview prep.
type InterviewPrepPatch struct {
	Title     *string
	JobID     *string
	Questions []InterviewQuestion
	Notes     *string
}

// Apply merges the patch into p.
func (patch InterviewPrepPatch) Apply(p *InterviewPrep) {
	setString(&p.Title, patch.Title)
	setString(&p.JobID, patch.JobID)
	if patch.Questions != nil {
		p.Questions = patch.Questions
	}
	setString(&p.Notes, patch.Notes)
}
