// Package generation provides the pluggable text generator behind the
// "enhance" actions. TemplateGenerator fills canned prose; LLMGenerator asks
// a language model. Both satisfy Generator.
package generation

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Kind selects what is being generated.
type Kind string

// Generation kinds
const (
	KindSummary               Kind = "summary"
	KindExperienceDescription Kind = "experience-description"
	KindExperienceHighlights  Kind = "experience-highlights"
	KindEducationDescription  Kind = "education-description"
	KindProjectDescription    Kind = "project-description"
	KindCoverLetter           Kind = "cover-letter"
)

// Tone is the voice of a generated cover letter.
type Tone string

// Cover letter tones
const (
	ToneProfessional Tone = "professional"
	ToneEnthusiastic Tone = "enthusiastic"
	ToneBalanced     Tone = "balanced"
)

// Tones lists the supported cover letter tones.
var Tones = []Tone{ToneProfessional, ToneEnthusiastic, ToneBalanced}

// ParseTone validates a tone name. Empty means professional.
func ParseTone(s string) (Tone, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ToneProfessional, nil
	}
	if slices.Contains(Tones, Tone(s)) {
		return Tone(s), nil
	}
	return "", fmt.Errorf("unknown tone %q (want professional, enthusiastic, or balanced)", s)
}

// DefaultRecipient is used when a cover letter names no recipient.
const DefaultRecipient = "Hiring Manager"

// Request carries the structured fields a generator works from.
// Which fields matter depends on Kind.
type Request struct {
	Kind Kind

	// Summary
	JobTitle string
	Summary  string

	// Experience
	Position   string
	Company    string
	Years      string
	Highlights []string

	// Education
	Institution  string
	Degree       string
	FieldOfStudy string

	// Project (Description is also the current experience description)
	Name        string
	Description string

	// Cover letter
	Resume    *types.Resume
	Recipient string
	Tone      Tone
	KeyPoints string
}

// Generator produces text for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Error is returned when generation fails.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error (%s): %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error (%s): %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (r Request) validate() error {
	switch r.Kind {
	case KindSummary, KindEducationDescription:
		return nil
	case KindExperienceDescription, KindExperienceHighlights:
		if strings.TrimSpace(r.Position) == "" {
			return &Error{Kind: r.Kind, Message: "position is required"}
		}
	case KindProjectDescription:
		if strings.TrimSpace(r.Name) == "" && strings.TrimSpace(r.Description) == "" {
			return &Error{Kind: r.Kind, Message: "project name or description is required"}
		}
	case KindCoverLetter:
		if r.Resume == nil {
			return &Error{Kind: r.Kind, Message: "resume is required"}
		}
		if strings.TrimSpace(r.Company) == "" || strings.TrimSpace(r.Position) == "" {
			return &Error{Kind: r.Kind, Message: "company and position are required"}
		}
	default:
		return &Error{Kind: r.Kind, Message: "unknown kind"}
	}
	return nil
}

// SplitHighlights turns generated highlight text into bullets, one per line.
// Leading bullet markers are dropped.
func SplitHighlights(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimLeft(line, "-*•"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// MergeHighlights appends the suggestions that are not already present.
func MergeHighlights(existing, suggested []string) []string {
	out := slices.Clone(existing)
	for _, s := range suggested {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
