package rendering

import (
	"slices"
	"strings"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// TemplateData is the view of a resume shared by every output format.
// Values are raw text; each format escapes them itself.
type TemplateData struct {
	Name         string
	JobTitle     string
	Email        string
	Phone        string
	Location     string
	LinkedIn     string
	Website      string
	Summary      string
	Color        string
	Font         string
	Experiences  []ExperienceSection
	Education    []EducationSection
	Skills       []SkillItem
	SkillGroups  []SkillGroup
	Projects     []ProjectSection
	Certificates []CertificateSection
	Languages    []string
}

// ExperienceSection is one work history entry.
type ExperienceSection struct {
	Position    string
	Company     string
	Location    string
	Dates       string
	Description string
	Highlights  []string
}

// EducationSection is one education entry.
type EducationSection struct {
	Institution string
	Degree      string // degree plus " in <field>" when a field is set
	Location    string
	Dates       string
	Description string
}

// SkillItem is a skill with its level drawn as dots.
type SkillItem struct {
	Name  string
	Level string
}

// SkillGroup holds skill names of one category, in first-seen order.
type SkillGroup struct {
	Category string
	Names    []string
}

// ProjectSection is one project.
type ProjectSection struct {
	Name         string
	Description  string
	Dates        string
	Technologies []string
	URL          string
}

// CertificateSection is one certification.
type CertificateSection struct {
	Name   string
	Issuer string
	Issued string
}

// buildTemplateData constructs the template data structure from a resume.
func buildTemplateData(r types.Resume) *TemplateData {
	p := r.PersonalInfo
	data := &TemplateData{
		Name:     p.FullName(),
		JobTitle: p.JobTitle,
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
		LinkedIn: p.LinkedIn,
		Website:  p.Website,
		Summary:  p.Summary,
		Color:    accentColor(r.TemplateColor),
		Font:     r.TemplateFont,
	}

	for _, e := range r.Experiences {
		data.Experiences = append(data.Experiences, ExperienceSection{
			Position:    e.Position,
			Company:     e.Company,
			Location:    e.Location,
			Dates:       formatDates(e.StartDate, e.EndDate, e.Current),
			Description: e.Description,
			Highlights:  uniqueHighlights(e.Highlights),
		})
	}

	for _, e := range r.Education {
		degree := e.Degree
		if e.FieldOfStudy != "" {
			degree += " in " + e.FieldOfStudy
		}
		data.Education = append(data.Education, EducationSection{
			Institution: e.Institution,
			Degree:      degree,
			Location:    e.Location,
			Dates:       formatDates(e.StartDate, e.EndDate, false),
			Description: e.Description,
		})
	}

	groupIndex := make(map[string]int)
	for _, s := range r.Skills {
		data.Skills = append(data.Skills, SkillItem{Name: s.Name, Level: strings.Repeat("•", s.Level)})
		category := s.Category
		if category == "" {
			category = "Other"
		}
		i, ok := groupIndex[category]
		if !ok {
			i = len(data.SkillGroups)
			groupIndex[category] = i
			data.SkillGroups = append(data.SkillGroups, SkillGroup{Category: category})
		}
		data.SkillGroups[i].Names = append(data.SkillGroups[i].Names, s.Name)
	}

	for _, pr := range r.Projects {
		dates := pr.StartDate
		if pr.StartDate != "" && pr.EndDate != "" {
			dates += " - "
		}
		dates += pr.EndDate
		data.Projects = append(data.Projects, ProjectSection{
			Name:         pr.Name,
			Description:  pr.Description,
			Dates:        dates,
			Technologies: slices.Clone(pr.Technologies),
			URL:          pr.URL,
		})
	}

	for _, c := range r.Certificates {
		data.Certificates = append(data.Certificates, CertificateSection{Name: c.Name, Issuer: c.Issuer, Issued: c.IssueDate})
	}
	for _, l := range r.Languages {
		data.Languages = append(data.Languages, l.Name+" ("+string(l.Proficiency)+")")
	}

	return data
}

// formatDates renders "start - end", with "Present" for a current entry.
func formatDates(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " - " + end
	}
}

func uniqueHighlights(in []string) []string {
	out := make([]string, 0, len(in))
	for _, h := range in {
		if h = strings.TrimSpace(h); h != "" && !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}

func accentColor(c string) string {
	if resolved, err := templates.ResolveColor(c); err == nil {
		return resolved
	}
	return templates.DefaultColor
}
