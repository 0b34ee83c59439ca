package jobs

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Query filters saved jobs. Empty fields match everything.
type Query struct {
	Text     string
	Location string
}

// Search returns the jobs whose title, company, description or
// requirements contain every word of q.Text, and whose location contains
// q.Location. Matching is case-insensitive; order is preserved.
func Search(jobs []types.Job, q Query) []types.Job {
	words := strings.Fields(strings.ToLower(q.Text))
	location := strings.ToLower(strings.TrimSpace(q.Location))

	out := []types.Job{}
	for _, j := range jobs {
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			continue
		}
		haystack := strings.ToLower(strings.Join(append([]string{j.Title, j.Company, j.Description}, j.Requirements...), "\n"))
		matched := true
		for _, w := range words {
			if !strings.Contains(haystack, w) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, j.Clone())
		}
	}
	return out
}

// SearchLabel is the text a search is described by: the query, else the
// resume's job title, else "your profile".
func SearchLabel(q Query, r types.Resume) string {
	if s := strings.TrimSpace(q.Text); s != "" {
		return s
	}
	if s := strings.TrimSpace(r.PersonalInfo.JobTitle); s != "" {
		return s
	}
	return "your profile"
}
