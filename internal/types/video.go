//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// VideoResume is a recorded video linked to a resume.
type VideoResume struct {
	ID            string    `json:"id"`
	ResumeID      string    `json:"resumeId" validate:"required"`
	Title         string    `json:"title" validate:"required"`
	URL           string    `json:"url" validate:"required,url"`
	Duration      int       `json:"duration" validate:"min=0"`
	CreatedAt     time.Time `json:"createdAt"`
	Transcription string    `json:"transcription,omitempty"`
}
