package forms

import (
	"context"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/types"
)

// CoverLetterStore is what CoverLetterForm needs from the store.
type CoverLetterStore interface {
	ActiveResumeID() string
	Resume(id string) (types.Resume, error)
	AddCoverLetter(ctx context.Context, c types.CoverLetter) (types.CoverLetter, error)
	CoverLetterTemplates() []types.Template
}

// CoverLetterValues are the inputs of a generated cover letter.
type CoverLetterValues struct {
	Title     string `json:"title" validate:"required"`
	Company   string `json:"company" validate:"required"`
	Position  string `json:"position" validate:"required"`
	Recipient string `json:"recipient"`
	Tone      string `json:"tone" validate:"oneof=professional enthusiastic balanced"`
	KeyPoints string `json:"keyPoints"`
	ResumeID  string `json:"resumeId" validate:"required"`
}

var coverLetterMessages = map[string]string{
	"title.required":    "Title is required",
	"company.required":  "Company name is required",
	"position.required": "Position is required",
	"tone.oneof":        "Tone must be professional, enthusiastic, or balanced",
	"resumeId.required": "Please select a resume",
}

// CoverLetterForm generates a cover letter from a resume and stores it.
type CoverLetterForm struct {
	store  CoverLetterStore
	gen    generation.Generator
	Values CoverLetterValues
}

// NewCoverLetterForm returns a form defaulting to the active resume.
func NewCoverLetterForm(store CoverLetterStore, gen generation.Generator) *CoverLetterForm {
	f := &CoverLetterForm{store: store, gen: gen}
	f.Reset()
	return f
}

// Reset restores the default values.
func (f *CoverLetterForm) Reset() {
	f.Values = CoverLetterValues{
		Recipient: generation.DefaultRecipient,
		Tone:      string(generation.ToneProfessional),
		ResumeID:  f.store.ActiveResumeID(),
	}
}

// Generate validates Values, generates the letter, and adds it to the
// store as the active cover letter.
func (f *CoverLetterForm) Generate(ctx context.Context) (types.CoverLetter, error) {
	v := f.Values
	trim(&v.Title, &v.Company, &v.Position, &v.Recipient, &v.Tone, &v.KeyPoints, &v.ResumeID)
	if err := validate("cover letter", v, coverLetterMessages); err != nil {
		return types.CoverLetter{}, err
	}
	resume, err := f.store.Resume(v.ResumeID)
	if err != nil {
		return types.CoverLetter{}, err
	}

	content, err := f.gen.Generate(ctx, generation.Request{
		Kind:      generation.KindCoverLetter,
		Resume:    &resume,
		Company:   v.Company,
		Position:  v.Position,
		Recipient: v.Recipient,
		Tone:      generation.Tone(v.Tone),
		KeyPoints: v.KeyPoints,
	})
	if err != nil {
		return types.CoverLetter{}, err
	}

	letter := types.CoverLetter{
		Title:     v.Title,
		Content:   content,
		ResumeID:  v.ResumeID,
		Company:   v.Company,
		Position:  v.Position,
		Recipient: v.Recipient,
	}
	if tpls := f.store.CoverLetterTemplates(); len(tpls) > 0 {
		letter.TemplateID = tpls[0].ID
	}
	added, err := f.store.AddCoverLetter(ctx, letter)
	if err != nil {
		return types.CoverLetter{}, err
	}
	f.Reset()
	return added, nil
}
