package forms

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// TemplateStore is what TemplateForm needs from the store.
type TemplateStore interface {
	ResumeStore
	ResumeTemplates() []types.Template
}

// TemplateForm applies a visual template and accent color to the active resume.
type TemplateForm struct {
	store TemplateStore
}

// NewTemplateForm returns a template form.
func NewTemplateForm(store TemplateStore) *TemplateForm {
	return &TemplateForm{store: store}
}

// Apply sets the template and accent color. color may be a palette name or
// a #rrggbb value; empty keeps the resume's current color.
func (f *TemplateForm) Apply(ctx context.Context, templateID, color string) (types.Resume, error) {
	r, ok := f.store.ActiveResume()
	if !ok {
		return types.Resume{}, ErrNoActiveResume
	}
	if _, ok := templates.Find(f.store.ResumeTemplates(), templateID); !ok {
		return types.Resume{}, &ValidationError{
			Form:   "template",
			Fields: []FieldError{{Field: "templateId", Message: fmt.Sprintf("unknown template %q", templateID)}},
		}
	}
	patch := types.ResumePatch{TemplateID: &templateID}
	if color != "" {
		resolved, err := templates.ResolveColor(color)
		if err != nil {
			return types.Resume{}, &ValidationError{
				Form:   "template",
				Fields: []FieldError{{Field: "templateColor", Message: err.Error()}},
			}
		}
		patch.TemplateColor = &resolved
	}
	return f.store.UpdateResume(ctx, r.ID, patch)
}

// Suggest recommends a template for the active resume from its job title
// and experience count.
func (f *TemplateForm) Suggest() (types.Template, error) {
	r, ok := f.store.ActiveResume()
	if !ok {
		return types.Template{}, ErrNoActiveResume
	}
	id := templates.Suggest(r.PersonalInfo.JobTitle, len(r.Experiences))
	t, ok := templates.Find(f.store.ResumeTemplates(), id)
	if !ok {
		return types.Template{}, fmt.Errorf("%w: template %q", ErrEntryNotFound, id)
	}
	return t, nil
}
