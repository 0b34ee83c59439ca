//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// TemplateType distinguishes resume templates from cover letter templates.
type TemplateType string

// Template types
const (
	TemplateResume      TemplateType = "Resume"
	TemplateCoverLetter TemplateType = "Cover Letter"
)

// CareerLevel is a target seniority for a template.
type CareerLevel string

// Career levels
const (
	CareerEntry     CareerLevel = "Entry"
	CareerMid       CareerLevel = "Mid"
	CareerSenior    CareerLevel = "Senior"
	CareerExecutive CareerLevel = "Executive"
)

// Template is a catalog entry describing a visual layout.
type Template struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Type         TemplateType  `json:"type"`
	PreviewImage string        `json:"previewImage"`
	IsAIPowered  bool          `json:"isAIPowered"`
	Industry     []string      `json:"industry,omitempty"`
	CareerLevel  []CareerLevel `json:"careerLevel,omitempty"`
	Popularity   int           `json:"popularity"`
}

// Clone returns a deep copy of the template.
func (t Template) Clone() Template {
	out := t
	out.Industry = slices.Clone(t.Industry)
	out.CareerLevel = slices.Clone(t.CareerLevel)
	return out
}

// HasCareerLevel reports whether the template targets level.
func (t Template) HasCareerLevel(level CareerLevel) bool {
	return slices.Contains(t.CareerLevel, level)
}
