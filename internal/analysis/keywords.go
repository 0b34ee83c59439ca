package analysis

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

type roleKeywords struct {
	role     string
	keywords []string
}

// roles is checked in order; the first role contained in the job title wins.
var roles = []roleKeywords{
	{role: "software engineer", keywords: []string{"JavaScript", "React", "Node.js", "API", "Git", "CI/CD"}},
	{role: "product manager", keywords: []string{"Agile", "Roadmap", "User Stories", "KPIs", "Stakeholder", "MVP"}},
	{role: "marketing specialist", keywords: []string{"Digital Marketing", "SEO", "Content Strategy", "Analytics", "Campaign"}},
	{role: "data scientist", keywords: []string{"Python", "Machine Learning", "Data Visualization", "SQL", "Statistics"}},
}

var defaultKeywords = []string{"Leadership", "Communication", "Problem-solving", "Teamwork"}

// SuggestKeywords returns the keywords recruiters expect for a job title, followed by
// general soft-skill keywords.
func SuggestKeywords(jobTitle string) []string {
	title := strings.ToLower(jobTitle)
	for _, r := range roles {
		if strings.Contains(title, r.role) {
			out := make([]string, 0, len(r.keywords)+len(defaultKeywords))
			out = append(out, r.keywords...)
			return append(out, defaultKeywords...)
		}
	}
	return append([]string(nil), defaultKeywords...)
}

// CheckKeywords reports which suggested keywords appear anywhere in the resume text.
func CheckKeywords(r types.Resume) Keywords {
	text := strings.ToLower(Text(r))
	kw := Keywords{
		Suggested: SuggestKeywords(r.PersonalInfo.JobTitle),
		Present:   []string{},
		Missing:   []string{},
	}
	for _, k := range kw.Suggested {
		if strings.Contains(text, strings.ToLower(k)) {
			kw.Present = append(kw.Present, k)
		} else {
			kw.Missing = append(kw.Missing, k)
		}
	}
	return kw
}

// Text flattens every user-entered field of the resume into one searchable string.
func Text(r types.Resume) string {
	var parts []string
	add := func(values ...string) {
		for _, v := range values {
			if v != "" {
				parts = append(parts, v)
			}
		}
	}

	p := r.PersonalInfo
	add(r.Title, p.FirstName, p.LastName, p.Email, p.Phone, p.LinkedIn, p.Website, p.Location, p.Summary, p.JobTitle)
	for _, e := range r.Experiences {
		add(e.Company, e.Position, e.Location, e.Description)
		add(e.Highlights...)
	}
	for _, e := range r.Education {
		add(e.Institution, e.Degree, e.FieldOfStudy, e.Location, e.Description)
	}
	for _, s := range r.Skills {
		add(s.Name, s.Category)
	}
	for _, pr := range r.Projects {
		add(pr.Name, pr.Description, pr.URL)
		add(pr.Technologies...)
	}
	for _, c := range r.Certificates {
		add(c.Name, c.Issuer)
	}
	for _, l := range r.Languages {
		add(l.Name)
	}
	add(r.References, r.AdditionalInfo)
	return strings.Join(parts, "\n")
}
