package jobs

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var (
	spaceRun      = regexp.MustCompile(`[ \t]+`)
	blankLineRun  = regexp.MustCompile(`\n{3,}`)
	labelLine     = regexp.MustCompile(`(?i)^(company|employer|location|salary|compensation|pay|date posted|posted|url|link)\s*:\s*(.+)$`)
	headingLine   = regexp.MustCompile(`(?i)^(requirements|qualifications|minimum qualifications|preferred qualifications|responsibilities|about( the)? (role|company|us|team)|what you('ll| will) (need|bring|do)|skills|benefits|perks|description|job description|nice to have)\s*:?$`)
	bulletPrefix  = regexp.MustCompile(`^([-*•·▪]|\d+[.)])\s+`)
	titleAtSuffix = regexp.MustCompile(`^(.+?)\s+at\s+(.+)$`)
)

// requirementSections name the headings whose bullets are requirements.
var requirementSections = []string{"requirement", "qualification", "need", "bring", "skills", "nice to have"}

// CleanText normalizes line endings, collapses runs of spaces, trims each
// line and keeps at most one blank line between blocks.
func CleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	out := strings.Join(lines, "\n")
	out = blankLineRun.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

func isBulletLine(line string) bool {
	return bulletPrefix.MatchString(line)
}

// ParsePostingText reads a plain-text posting. The first free line is the
// title ("Title at Company" is split); "Label: value" lines fill company,
// location, salary, posting date and URL; bullets under a requirements
// heading become requirements, or every bullet when there is no such
// heading; remaining lines form the description.
func ParsePostingText(text string) types.Job {
	job := types.Job{Requirements: []string{}}
	var (
		description []string
		sectionReqs []string
		allBullets  []string
		section     string
	)

	for _, line := range strings.Split(CleanText(text), "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		if line == "" {
			continue
		}
		if m := labelLine.FindStringSubmatch(line); m != nil {
			setLabel(&job, strings.ToLower(m[1]), strings.TrimSpace(m[2]))
			continue
		}
		if headingLine.MatchString(line) {
			section = strings.ToLower(line)
			continue
		}
		if isBulletLine(line) {
			item := strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
			allBullets = append(allBullets, item)
			if isRequirementSection(section) {
				sectionReqs = append(sectionReqs, item)
			}
			continue
		}
		if job.Title == "" {
			job.Title = line
			continue
		}
		if !isRequirementSection(section) {
			description = append(description, line)
		}
	}

	if job.Company == "" {
		if m := titleAtSuffix.FindStringSubmatch(job.Title); m != nil {
			job.Title, job.Company = m[1], m[2]
		}
	}
	switch {
	case len(sectionReqs) > 0:
		job.Requirements = sectionReqs
	case len(allBullets) > 0:
		job.Requirements = allBullets
	}
	job.Description = strings.Join(description, "\n")
	return job
}

func setLabel(job *types.Job, label, value string) {
	switch label {
	case "company", "employer":
		job.Company = value
	case "location":
		job.Location = value
	case "salary", "compensation", "pay":
		job.Salary = value
	case "date posted", "posted":
		job.DatePosted = value
	case "url", "link":
		job.URL = value
	}
}

func isRequirementSection(section string) bool {
	for _, s := range requirementSections {
		if strings.Contains(section, s) {
			return true
		}
	}
	return false
}
