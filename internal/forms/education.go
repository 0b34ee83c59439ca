package forms

import (
	"context"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/types"
)

// EducationValues are the editable fields of an education entry.
type EducationValues struct {
	Institution  string `json:"institution" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate" validate:"required"`
	EndDate      string `json:"endDate" validate:"required"`
	Location     string `json:"location"`
	Description  string `json:"description"`
}

var educationMessages = map[string]string{
	"institution.required": "Institution name is required",
	"degree.required":      "Degree is required",
	"startDate.required":   "Start date is required",
	"endDate.required":     "End date is required",
}

// EducationForm adds and edits education entries.
type EducationForm struct {
	editor listEditor[types.Education]
	gen    generation.Generator
	Values EducationValues
}

// NewEducationForm returns an empty education form.
func NewEducationForm(store ResumeStore, gen generation.Generator) *EducationForm {
	return &EducationForm{
		editor: listEditor[types.Education]{
			store:  store,
			items:  func(r types.Resume) []types.Education { return r.Education },
			idOf:   func(e types.Education) string { return e.ID },
			withID: func(e types.Education, id string) types.Education { e.ID = id; return e },
			patch:  func(l []types.Education) types.ResumePatch { return types.ResumePatch{Education: l} },
		},
		gen: gen,
	}
}

// Editing returns the id of the entry being edited, or "".
func (f *EducationForm) Editing() string { return f.editor.editing }

// Edit loads entry id into Values and switches Submit to update.
func (f *EducationForm) Edit(id string) error {
	e, err := f.editor.find(id)
	if err != nil {
		return err
	}
	f.editor.editing = id
	f.Values = EducationValues{
		Institution:  e.Institution,
		Degree:       e.Degree,
		FieldOfStudy: e.FieldOfStudy,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Location:     e.Location,
		Description:  e.Description,
	}
	return nil
}

// Cancel leaves edit mode and restores defaults.
func (f *EducationForm) Cancel() {
	f.editor.editing = ""
	f.Values = EducationValues{}
}

// Submit validates Values and adds or updates the entry.
func (f *EducationForm) Submit(ctx context.Context) (types.Education, error) {
	v := f.Values
	trim(&v.Institution, &v.Degree, &v.FieldOfStudy, &v.StartDate, &v.EndDate, &v.Location, &v.Description)
	if err := validate("education", v, educationMessages); err != nil {
		return types.Education{}, err
	}
	saved, err := f.editor.save(ctx, types.Education{
		Institution:  v.Institution,
		Degree:       v.Degree,
		FieldOfStudy: v.FieldOfStudy,
		StartDate:    v.StartDate,
		EndDate:      v.EndDate,
		Location:     v.Location,
		Description:  v.Description,
	})
	if err != nil {
		return types.Education{}, err
	}
	f.Cancel()
	return saved, nil
}

// Delete removes entry id from the active resume.
func (f *EducationForm) Delete(ctx context.Context, id string) error {
	return f.editor.remove(ctx, id)
}

// Enhance replaces the description with generated text.
func (f *EducationForm) Enhance(ctx context.Context) error {
	text, err := f.gen.Generate(ctx, generation.Request{
		Kind:         generation.KindEducationDescription,
		Institution:  f.Values.Institution,
		Degree:       f.Values.Degree,
		FieldOfStudy: f.Values.FieldOfStudy,
	})
	if err != nil {
		return err
	}
	f.Values.Description = text
	return nil
}
