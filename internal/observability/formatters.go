// Package observability provides the process logger and formatted output for
// verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/analysis"
	"github.com/jonathan/resume-builder/internal/jobs"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

func pad(s string, n int) string {
	if w := utf8.RuneCountInString(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

func more(sb *strings.Builder, total, shown int, noun string) {
	if total > shown {
		fmt.Fprintf(sb, "  ... and %d more %s\n", total-shown, noun)
	}
}

// PrintAnalysis outputs the score, section breakdown, and recommendations of a report.
func (p *Printer) PrintAnalysis(report analysis.Report) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Overall: %d/100 (%s)\n\n", report.Score, report.Rating)

	sb.WriteString("Sections:\n")
	for _, s := range report.Sections {
		mark := "✗"
		if s.Complete {
			mark = "✓"
		}
		fmt.Fprintf(&sb, "  %s %-22s %3d\n", mark, s.Name, s.Score)
	}

	if len(report.Keywords.Missing) > 0 {
		count := min(len(report.Keywords.Missing), maxItemsToShow)
		fmt.Fprintf(&sb, "\nMissing keywords: %s\n", strings.Join(report.Keywords.Missing[:count], ", "))
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(report.Recommendations), maxItemsToShow)
		for _, rec := range report.Recommendations[:count] {
			fmt.Fprintf(&sb, "  • %s\n", rec.Title)
		}
		more(&sb, len(report.Recommendations), count, "recommendations")
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeSummary outputs a one-box overview of a resume.
func (p *Printer) PrintResumeSummary(r types.Resume) {
	var sb strings.Builder

	name := strings.TrimSpace(r.PersonalInfo.FirstName + " " + r.PersonalInfo.LastName)
	fmt.Fprintf(&sb, "Title:    %s\n", r.Title)
	fmt.Fprintf(&sb, "Name:     %s\n", name)
	if r.PersonalInfo.JobTitle != "" {
		fmt.Fprintf(&sb, "Role:     %s\n", r.PersonalInfo.JobTitle)
	}
	fmt.Fprintf(&sb, "Template: %s\n", r.TemplateID)
	if r.Score != nil {
		fmt.Fprintf(&sb, "Score:    %d\n", *r.Score)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Experience: %d  Education: %d  Skills: %d\n",
		len(r.Experiences), len(r.Education), len(r.Skills))
	fmt.Fprintf(&sb, "Projects: %d  Certificates: %d  Languages: %d\n",
		len(r.Projects), len(r.Certificates), len(r.Languages))

	if len(r.Experiences) > 0 {
		sb.WriteString("\nRecent positions:\n")
		count := min(len(r.Experiences), 3)
		for _, e := range r.Experiences[:count] {
			fmt.Fprintf(&sb, "  • %s, %s\n", e.Position, e.Company)
		}
		more(&sb, len(r.Experiences), count, "positions")
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobMatches outputs saved jobs grouped by match category.
func (p *Printer) PrintJobMatches(groups jobs.Groups) {
	total := len(groups.BestMatches) + len(groups.GoodFits) + len(groups.Others)
	if total == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Saved jobs: %d\n", total)

	section := func(label string, list []types.Job) {
		if len(list) == 0 {
			return
		}
		fmt.Fprintf(&sb, "\n%s (%d):\n", label, len(list))
		count := min(len(list), maxItemsToShow)
		for _, j := range list[:count] {
			score := "--"
			if j.MatchScore != nil {
				score = fmt.Sprintf("%d%%", *j.MatchScore)
			}
			fmt.Fprintf(&sb, "  %4s  %s @ %s\n", score, j.Title, j.Company)
		}
		more(&sb, len(list), count, "jobs")
	}
	section("Best matches", groups.BestMatches)
	section("Good fits", groups.GoodFits)
	section("Other", groups.Others)

	p.printBox("JOB MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintApplications outputs a status tally and the most recent applications.
func (p *Printer) PrintApplications(apps []types.JobApplication) {
	if len(apps) == 0 {
		return
	}

	var sb strings.Builder
	counts := make(map[types.ApplicationStatus]int)
	for _, a := range apps {
		counts[a.Status]++
	}

	fmt.Fprintf(&sb, "Applications: %d\n\n", len(apps))
	for _, status := range types.ApplicationStatuses {
		if n := counts[status]; n > 0 {
			fmt.Fprintf(&sb, "  %-13s %d\n", status, n)
		}
	}

	sb.WriteString("\n")
	count := min(len(apps), maxItemsToShow)
	for _, a := range apps[:count] {
		fmt.Fprintf(&sb, "• %s @ %s [%s]\n", a.Position, a.Company, a.Status)
		if n := len(a.Interviews); n > 0 {
			fmt.Fprintf(&sb, "  interviews: %d\n", n)
		}
	}
	if len(apps) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more applications", len(apps)-maxItemsToShow)
	}

	p.printBox("APPLICATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
