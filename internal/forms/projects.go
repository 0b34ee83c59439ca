package forms

import (
	"context"
	"slices"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/types"
)

// ProjectValues are the editable fields of a project.
type ProjectValues struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

var projectMessages = map[string]string{
	"name.required":        "Project name is required",
	"description.required": "Description is required",
}

// ProjectsForm adds and edits projects.
type ProjectsForm struct {
	editor listEditor[types.Project]
	gen    generation.Generator
	Values ProjectValues
}

// NewProjectsForm returns an empty projects form.
func NewProjectsForm(store ResumeStore, gen generation.Generator) *ProjectsForm {
	return &ProjectsForm{
		editor: listEditor[types.Project]{
			store:  store,
			items:  func(r types.Resume) []types.Project { return r.Projects },
			idOf:   func(p types.Project) string { return p.ID },
			withID: func(p types.Project, id string) types.Project { p.ID = id; return p },
			patch:  func(l []types.Project) types.ResumePatch { return types.ResumePatch{Projects: l} },
		},
		gen:    gen,
		Values: ProjectValues{Technologies: []string{}},
	}
}

// Editing returns the id of the project being edited, or "".
func (f *ProjectsForm) Editing() string { return f.editor.editing }

// Edit loads project id into Values and switches Submit to update.
func (f *ProjectsForm) Edit(id string) error {
	p, err := f.editor.find(id)
	if err != nil {
		return err
	}
	f.editor.editing = id
	f.Values = ProjectValues{
		Name:         p.Name,
		Description:  p.Description,
		Technologies: slices.Clone(p.Technologies),
		URL:          p.URL,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
	}
	return nil
}

// Cancel leaves edit mode and restores defaults.
func (f *ProjectsForm) Cancel() {
	f.editor.editing = ""
	f.Values = ProjectValues{Technologies: []string{}}
}

// Submit validates Values and adds or updates the project.
func (f *ProjectsForm) Submit(ctx context.Context) (types.Project, error) {
	v := f.Values
	trim(&v.Name, &v.Description, &v.URL, &v.StartDate, &v.EndDate)
	if err := validate("projects", v, projectMessages); err != nil {
		return types.Project{}, err
	}
	techs := v.Technologies
	if techs == nil {
		techs = []string{}
	}
	saved, err := f.editor.save(ctx, types.Project{
		Name:         v.Name,
		Description:  v.Description,
		Technologies: slices.Clone(techs),
		URL:          v.URL,
		StartDate:    v.StartDate,
		EndDate:      v.EndDate,
	})
	if err != nil {
		return types.Project{}, err
	}
	f.Cancel()
	return saved, nil
}

// Delete removes project id from the active resume.
func (f *ProjectsForm) Delete(ctx context.Context, id string) error {
	return f.editor.remove(ctx, id)
}

// AddTechnology appends a trimmed technology unless it is empty or already listed.
func (f *ProjectsForm) AddTechnology(s string) {
	f.Values.Technologies = appendTrimmed(f.Values.Technologies, s, true)
}

// RemoveTechnology drops the technology at index i.
func (f *ProjectsForm) RemoveTechnology(i int) {
	f.Values.Technologies = removeAt(f.Values.Technologies, i)
}

// Enhance rewrites the description, extending it when one is present.
func (f *ProjectsForm) Enhance(ctx context.Context) error {
	text, err := f.gen.Generate(ctx, generation.Request{
		Kind:        generation.KindProjectDescription,
		Name:        f.Values.Name,
		Description: f.Values.Description,
	})
	if err != nil {
		return err
	}
	f.Values.Description = text
	return nil
}
