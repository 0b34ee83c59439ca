package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section headers of the text formats.
const (
	HeaderSummary        = "PROFESSIONAL SUMMARY"
	HeaderExperience     = "EXPERIENCE"
	HeaderEducation      = "EDUCATION"
	HeaderSkills         = "SKILLS"
	HeaderProjects       = "PROJECTS"
	HeaderCertifications = "CERTIFICATIONS"
	HeaderLanguages      = "LANGUAGES"
)

// lines accumulates text output, dropping empty optional lines.
type lines struct {
	sb strings.Builder
}

func (l *lines) add(s string) {
	l.sb.WriteString(s)
	l.sb.WriteByte('\n')
}

func (l *lines) opt(s string) {
	if strings.TrimSpace(s) != "" {
		l.add(s)
	}
}

func (l *lines) optPrefixed(prefix, s string) {
	if strings.TrimSpace(s) != "" {
		l.add(prefix + s)
	}
}

func (l *lines) blank() {
	l.sb.WriteByte('\n')
}

func (l *lines) String() string {
	return strings.TrimRight(l.sb.String(), "\n") + "\n"
}

func writeContact(l *lines, d *TemplateData, withTitle bool) {
	l.add(d.Name)
	if withTitle {
		l.opt(d.JobTitle)
	}
	contact := d.Email
	if d.Phone != "" {
		contact += " | " + d.Phone
	}
	l.opt(contact)
	l.opt(d.Location)
	l.optPrefixed("LinkedIn: ", d.LinkedIn)
	l.optPrefixed("Website: ", d.Website)
}

func writeExperience(l *lines, d *TemplateData) {
	for i, e := range d.Experiences {
		if i > 0 {
			l.blank()
		}
		l.add(e.Position + " | " + e.Company)
		l.opt(e.Dates)
		l.opt(e.Location)
		l.opt(e.Description)
		for _, h := range e.Highlights {
			l.add("• " + h)
		}
	}
}

func writeEducation(l *lines, d *TemplateData) {
	for i, e := range d.Education {
		if i > 0 {
			l.blank()
		}
		l.add(e.Degree + " | " + e.Institution)
		l.opt(e.Dates)
		l.opt(e.Location)
		l.opt(e.Description)
	}
}

func writeProjects(l *lines, d *TemplateData) {
	for i, p := range d.Projects {
		if i > 0 {
			l.blank()
		}
		l.add(p.Name)
		l.opt(p.Description)
		l.optPrefixed("Technologies: ", strings.Join(p.Technologies, ", "))
		l.optPrefixed("URL: ", p.URL)
	}
}

func skillNames(d *TemplateData) string {
	names := make([]string, len(d.Skills))
	for i, s := range d.Skills {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

// RenderText renders the plain-text export: the contact block, then
// PROFESSIONAL SUMMARY, EXPERIENCE, EDUCATION, SKILLS and PROJECTS in that
// order. Every section header is written even when the section is empty.
func RenderText(r types.Resume) (string, error) {
	d := buildTemplateData(r)
	var l lines

	writeContact(&l, d, false)

	l.blank()
	l.add(HeaderSummary)
	l.opt(d.Summary)

	l.blank()
	l.add(HeaderExperience)
	writeExperience(&l, d)

	l.blank()
	l.add(HeaderEducation)
	writeEducation(&l, d)

	l.blank()
	l.add(HeaderSkills)
	l.opt(skillNames(d))

	l.blank()
	l.add(HeaderProjects)
	writeProjects(&l, d)

	return l.String(), nil
}

// RenderATS renders the flattened view an applicant tracking system reads.
// Unlike the text export it includes the job title, certifications and
// languages, and omits sections that have no content.
func RenderATS(r types.Resume) (string, error) {
	d := buildTemplateData(r)
	var l lines

	writeContact(&l, d, true)

	section := func(header string, present bool, body func()) {
		if !present {
			return
		}
		l.blank()
		l.add(header)
		body()
	}

	section(HeaderSummary, d.Summary != "", func() { l.add(d.Summary) })
	section(HeaderExperience, len(d.Experiences) > 0, func() { writeExperience(&l, d) })
	section(HeaderEducation, len(d.Education) > 0, func() { writeEducation(&l, d) })
	section(HeaderSkills, len(d.Skills) > 0, func() { l.add(skillNames(d)) })
	section(HeaderProjects, len(d.Projects) > 0, func() { writeProjects(&l, d) })
	section(HeaderCertifications, len(d.Certificates) > 0, func() {
		for _, c := range d.Certificates {
			line := c.Name
			if c.Issuer != "" {
				line += " - " + c.Issuer
			}
			if c.Issued != "" {
				line += " (" + c.Issued + ")"
			}
			l.add(line)
		}
	})
	section(HeaderLanguages, len(d.Languages) > 0, func() { l.add(strings.Join(d.Languages, ", ")) })

	return l.String(), nil
}
