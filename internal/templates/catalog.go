// Package templates provides the built-in resume and cover letter template catalogs,
// catalog filters, accent colors, and template suggestions.
package templates

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// Default template identifiers
const (
	DefaultResumeTemplate      = "template-modern"
	DefaultCoverLetterTemplate = "cover-modern"
	DefaultColor               = "#2563eb"
)

// Resume returns a fresh copy of the resume template catalog.
func Resume() []types.Template {
	return []types.Template{
		{
			ID:           "template-modern",
			Name:         "Modern",
			Description:  "A clean and modern design suitable for most industries",
			Type:         types.TemplateResume,
			PreviewImage: "/templates/modern-resume.png",
			IsAIPowered:  true,
			Industry:     []string{"Technology", "Design", "Marketing", "Business"},
			CareerLevel:  []types.CareerLevel{types.CareerEntry, types.CareerMid, types.CareerSenior},
			Popularity:   95,
		},
		{
			ID:           "template-professional",
			Name:         "Professional",
			Description:  "A traditional layout for corporate and conservative industries",
			Type:         types.TemplateResume,
			PreviewImage: "/templates/professional-resume.png",
			IsAIPowered:  true,
			Industry:     []string{"Finance", "Banking", "Legal", "Healthcare", "Government"},
			CareerLevel:  []types.CareerLevel{types.CareerMid, types.CareerSenior, types.CareerExecutive},
			Popularity:   88,
		},
		{
			ID:           "template-creative",
			Name:         "Creative",
			Description:  "A bold design to showcase creativity and unique skills",
			Type:         types.TemplateResume,
			PreviewImage: "/templates/creative-resume.png",
			IsAIPowered:  true,
			Industry:     []string{"Design", "Art", "Media", "Entertainment", "Marketing"},
			CareerLevel:  []types.CareerLevel{types.CareerEntry, types.CareerMid, types.CareerSenior},
			Popularity:   75,
		},
		{
			ID:           "template-minimal",
			Name:         "Minimal",
			Description:  "A minimalist template with focus on content and readability",
			Type:         types.TemplateResume,
			PreviewImage: "/templates/minimal-resume.png",
			IsAIPowered:  false,
			Industry:     []string{"Technology", "Science", "Research", "Academic"},
			CareerLevel:  []types.CareerLevel{types.CareerEntry, types.CareerMid, types.CareerSenior, types.CareerExecutive},
			Popularity:   82,
		},
		{
			ID:           "template-executive",
			Name:         "Executive",
			Description:  "An elegant design for executives and senior professionals",
			Type:         types.TemplateResume,
			PreviewImage: "/templates/executive-resume.png",
			IsAIPowered:  true,
			Industry:     []string{"Business", "Consulting", "Finance", "Management"},
			CareerLevel:  []types.CareerLevel{types.CareerSenior, types.CareerExecutive},
			Popularity:   70,
		},
	}
}

// CoverLetter returns a fresh copy of the cover letter template catalog.
func CoverLetter() []types.Template {
	return []types.Template{
		{
			ID:           "cover-modern",
			Name:         "Modern Cover Letter",
			Description:  "A clean and modern cover letter design",
			Type:         types.TemplateCoverLetter,
			PreviewImage: "/templates/modern-cover.png",
			IsAIPowered:  true,
			Industry:     []string{"Technology", "Design", "Marketing", "Business"},
			CareerLevel:  []types.CareerLevel{types.CareerEntry, types.CareerMid, types.CareerSenior},
			Popularity:   90,
		},
		{
			ID:           "cover-professional",
			Name:         "Professional Cover Letter",
			Description:  "A traditional cover letter for corporate roles",
			Type:         types.TemplateCoverLetter,
			PreviewImage: "/templates/professional-cover.png",
			IsAIPowered:  true,
			Industry:     []string{"Finance", "Banking", "Legal", "Healthcare"},
			CareerLevel:  []types.CareerLevel{types.CareerMid, types.CareerSenior, types.CareerExecutive},
			Popularity:   85,
		},
		{
			ID:           "cover-creative",
			Name:         "Creative Cover Letter",
			Description:  "A bold cover letter design for creative industries",
			Type:         types.TemplateCoverLetter,
			PreviewImage: "/templates/creative-cover.png",
			IsAIPowered:  true,
			Industry:     []string{"Design", "Art", "Media", "Entertainment"},
			CareerLevel:  []types.CareerLevel{types.CareerEntry, types.CareerMid, types.CareerSenior},
			Popularity:   78,
		},
	}
}

// Find returns the template with id from catalog.
func Find(catalog []types.Template, id string) (types.Template, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return types.Template{}, false
}
