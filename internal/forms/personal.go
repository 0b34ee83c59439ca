package forms

import (
	"context"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/types"
)

// PersonalInfoValues are the editable personal info fields.
type PersonalInfoValues struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedIn"`
	Website   string `json:"website"`
	Location  string `json:"location"`
	JobTitle  string `json:"jobTitle"`
	Summary   string `json:"summary"`
}

var personalMessages = map[string]string{
	"firstName.required": "First name is required",
	"lastName.required":  "Last name is required",
	"email.required":     "Invalid email address",
	"email.email":        "Invalid email address",
}

// PersonalInfoForm edits the personal info block of the active resume.
type PersonalInfoForm struct {
	store  ResumeStore
	gen    generation.Generator
	Values PersonalInfoValues
}

// NewPersonalInfoForm returns a form loaded from the active resume, if any.
func NewPersonalInfoForm(store ResumeStore, gen generation.Generator) *PersonalInfoForm {
	f := &PersonalInfoForm{store: store, gen: gen}
	_ = f.Load()
	return f
}

// Load copies the active resume's personal info into Values.
func (f *PersonalInfoForm) Load() error {
	r, ok := f.store.ActiveResume()
	if !ok {
		return ErrNoActiveResume
	}
	p := r.PersonalInfo
	f.Values = PersonalInfoValues{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		LinkedIn:  p.LinkedIn,
		Website:   p.Website,
		Location:  p.Location,
		JobTitle:  p.JobTitle,
		Summary:   p.Summary,
	}
	return nil
}

// Submit validates Values and writes them to the active resume.
func (f *PersonalInfoForm) Submit(ctx context.Context) (types.PersonalInfo, error) {
	v := f.Values
	trim(&v.FirstName, &v.LastName, &v.Email, &v.Phone, &v.LinkedIn, &v.Website, &v.Location, &v.JobTitle, &v.Summary)
	if err := validate("personal info", v, personalMessages); err != nil {
		return types.PersonalInfo{}, err
	}

	r, ok := f.store.ActiveResume()
	if !ok {
		return types.PersonalInfo{}, ErrNoActiveResume
	}
	info := types.PersonalInfo{
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		Email:        v.Email,
		Phone:        v.Phone,
		LinkedIn:     v.LinkedIn,
		Website:      v.Website,
		Location:     v.Location,
		JobTitle:     v.JobTitle,
		Summary:      v.Summary,
		ProfileImage: r.PersonalInfo.ProfileImage,
	}
	updated, err := f.store.UpdateResume(ctx, r.ID, types.ResumePatch{PersonalInfo: &info})
	if err != nil {
		return types.PersonalInfo{}, err
	}
	f.Values = v
	return updated.PersonalInfo, nil
}

// EnhanceSummary replaces Values.Summary with generated text. The store is
// not touched until Submit.
func (f *PersonalInfoForm) EnhanceSummary(ctx context.Context) error {
	text, err := f.gen.Generate(ctx, generation.Request{
		Kind:     generation.KindSummary,
		JobTitle: f.Values.JobTitle,
		Summary:  f.Values.Summary,
	})
	if err != nil {
		return err
	}
	f.Values.Summary = text
	return nil
}
