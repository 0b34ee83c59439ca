package forms

import (
	"context"
	"slices"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/types"
)

// ExperienceValues are the editable fields of a work history entry.
type ExperienceValues struct {
	Company     string   `json:"company" validate:"required"`
	Position    string   `json:"position" validate:"required"`
	StartDate   string   `json:"startDate" validate:"required"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

var experienceMessages = map[string]string{
	"company.required":   "Company name is required",
	"position.required":  "Position is required",
	"startDate.required": "Start date is required",
}

// ExperienceForm adds and edits work history entries.
type ExperienceForm struct {
	editor listEditor[types.Experience]
	gen    generation.Generator
	Values ExperienceValues
}

// NewExperienceForm returns an empty experience form.
func NewExperienceForm(store ResumeStore, gen generation.Generator) *ExperienceForm {
	return &ExperienceForm{
		editor: listEditor[types.Experience]{
			store:  store,
			items:  func(r types.Resume) []types.Experience { return r.Experiences },
			idOf:   func(e types.Experience) string { return e.ID },
			withID: func(e types.Experience, id string) types.Experience { e.ID = id; return e },
			patch:  func(l []types.Experience) types.ResumePatch { return types.ResumePatch{Experiences: l} },
		},
		gen:    gen,
		Values: ExperienceValues{Highlights: []string{}},
	}
}

// Editing returns the id of the entry being edited, or "".
func (f *ExperienceForm) Editing() string { return f.editor.editing }

// Edit loads entry id into Values and switches Submit to update.
func (f *ExperienceForm) Edit(id string) error {
	e, err := f.editor.find(id)
	if err != nil {
		return err
	}
	f.editor.editing = id
	f.Values = ExperienceValues{
		Company:     e.Company,
		Position:    e.Position,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Current:     e.Current,
		Location:    e.Location,
		Description: e.Description,
		Highlights:  slices.Clone(e.Highlights),
	}
	return nil
}

// Cancel leaves edit mode and restores defaults.
func (f *ExperienceForm) Cancel() {
	f.editor.editing = ""
	f.Values = ExperienceValues{Highlights: []string{}}
}

// Submit validates Values and adds or updates the entry.
func (f *ExperienceForm) Submit(ctx context.Context) (types.Experience, error) {
	v := f.Values
	trim(&v.Company, &v.Position, &v.StartDate, &v.EndDate, &v.Location, &v.Description)
	if err := validate("experience", v, experienceMessages); err != nil {
		return types.Experience{}, err
	}
	saved, err := f.editor.save(ctx, types.Experience{
		Company:     v.Company,
		Position:    v.Position,
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
		Current:     v.Current,
		Location:    v.Location,
		Description: v.Description,
		Highlights:  slices.Clone(v.Highlights),
	})
	if err != nil {
		return types.Experience{}, err
	}
	f.Cancel()
	return saved, nil
}

// Delete removes entry id from the active resume.
func (f *ExperienceForm) Delete(ctx context.Context, id string) error {
	return f.editor.remove(ctx, id)
}

// AddHighlight appends a trimmed, non-empty bullet.
func (f *ExperienceForm) AddHighlight(s string) {
	f.Values.Highlights = appendTrimmed(f.Values.Highlights, s, false)
}

// RemoveHighlight drops the bullet at index i.
func (f *ExperienceForm) RemoveHighlight(i int) {
	f.Values.Highlights = removeAt(f.Values.Highlights, i)
}

// Enhance fills the description and appends suggested bullets that are not
// already present.
func (f *ExperienceForm) Enhance(ctx context.Context) error {
	req := generation.Request{
		Kind:        generation.KindExperienceDescription,
		Position:    f.Values.Position,
		Company:     f.Values.Company,
		Description: f.Values.Description,
		Highlights:  f.Values.Highlights,
	}
	desc, err := f.gen.Generate(ctx, req)
	if err != nil {
		return err
	}
	req.Kind = generation.KindExperienceHighlights
	bullets, err := f.gen.Generate(ctx, req)
	if err != nil {
		return err
	}
	f.Values.Description = desc
	f.Values.Highlights = generation.MergeHighlights(f.Values.Highlights, generation.SplitHighlights(bullets))
	return nil
}
