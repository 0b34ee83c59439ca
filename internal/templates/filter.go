package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Filter names accepted by Filter.
const (
	FilterAll       = "all"
	FilterAI        = "ai"
	FilterEntry     = "entry"
	FilterMid       = "mid"
	FilterSenior    = "senior"
	FilterExecutive = "executive"
)

// Color is a named accent color.
type Color struct {
	Name  string
	Value string
}

// Colors are the accent colors offered for templates.
var Colors = []Color{
	{Name: "Blue", Value: "#2563eb"},
	{Name: "Purple", Value: "#8b5cf6"},
	{Name: "Green", Value: "#10b981"},
	{Name: "Red", Value: "#ef4444"},
	{Name: "Amber", Value: "#f59e0b"},
	{Name: "Pink", Value: "#ec4899"},
	{Name: "Teal", Value: "#14b8a6"},
	{Name: "Gray", Value: "#6b7280"},
}

// ResolveColor accepts a color name (case-insensitive) or a #rrggbb value.
func ResolveColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, c := range Colors {
		if strings.EqualFold(c.Name, s) || strings.EqualFold(c.Value, s) {
			return c.Value, nil
		}
	}
	if len(s) == 7 && s[0] == '#' && isHex(s[1:]) {
		return strings.ToLower(s), nil
	}
	return "", fmt.Errorf("unknown color %q", s)
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Filter returns the templates matching the named filter.
func Filter(catalog []types.Template, name string) ([]types.Template, error) {
	var keep func(types.Template) bool
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FilterAll:
		keep = func(types.Template) bool { return true }
	case FilterAI:
		keep = func(t types.Template) bool { return t.IsAIPowered }
	case FilterEntry:
		keep = func(t types.Template) bool { return t.HasCareerLevel(types.CareerEntry) }
	case FilterMid:
		keep = func(t types.Template) bool { return t.HasCareerLevel(types.CareerMid) }
	case FilterSenior:
		keep = func(t types.Template) bool { return t.HasCareerLevel(types.CareerSenior) }
	case FilterExecutive:
		keep = func(t types.Template) bool { return t.HasCareerLevel(types.CareerExecutive) }
	default:
		return nil, fmt.Errorf("unknown template filter %q", name)
	}

	out := make([]types.Template, 0, len(catalog))
	for _, t := range catalog {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

// Popular returns up to n templates ordered by descending popularity.
func Popular(catalog []types.Template, n int) []types.Template {
	sorted := make([]types.Template, len(catalog))
	for i, t := range catalog {
		sorted[i] = t.Clone()
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity > sorted[j].Popularity
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Suggest picks a resume template id from the job title and amount of experience.
func Suggest(jobTitle string, experienceCount int) string {
	title := strings.ToLower(jobTitle)
	switch {
	case containsAny(title, "design", "creative", "art"):
		return "template-creative"
	case containsAny(title, "executive", "director", "manager"):
		return "template-executive"
	case containsAny(title, "finance", "account", "legal"):
		return "template-professional"
	case experienceCount <= 1:
		return "template-minimal"
	default:
		return DefaultResumeTemplate
	}
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
