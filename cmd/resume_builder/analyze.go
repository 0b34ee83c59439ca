package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/analysis"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-id]",
	Short: "Score a resume and list improvement tips",
	Long: "Score each section of a resume (default: the active one), check job title keywords, " +
		"and print recommendations. With --save the overall score is stored on the resume.",
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeJSON bool
	analyzeSave bool
)

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Store the overall score on the resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		var id string
		if len(args) == 1 {
			id = args[0]
		}
		r, err := resumeOrActive(a.Store, id)
		if err != nil {
			return err
		}

		report := analysis.Analyze(r)
		if analyzeSave {
			score := report.Score
			if _, err := a.Store.UpdateResume(ctx, r.ID, types.ResumePatch{Score: &score}); err != nil {
				return fmt.Errorf("failed to save score: %w", err)
			}
		}

		switch {
		case analyzeJSON:
			return writeJSON(cmd.OutOrStdout(), report)
		case a.Config.Verbose:
			newPrinter(cmd).PrintAnalysis(report)
		default:
			printReport(cmd, r, report)
		}
		return nil
	})
}

func printReport(cmd *cobra.Command, r types.Resume, report analysis.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d/100 (%s)\n\n", r.Title, report.Score, report.Rating)

	for _, s := range report.Sections {
		fmt.Fprintf(out, "%-22s %3d\n", s.Name, s.Score)
		for _, tip := range s.Tips {
			fmt.Fprintf(out, "  - %s\n", tip)
		}
	}

	kw := report.Keywords
	if len(kw.Suggested) > 0 {
		fmt.Fprintf(out, "\nKeywords present: %s\n", orDash(strings.Join(kw.Present, ", ")))
		fmt.Fprintf(out, "Keywords missing: %s\n", orDash(strings.Join(kw.Missing, ", ")))
	}

	if len(report.Recommendations) > 0 {
		fmt.Fprintln(out, "\nRecommendations:")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(out, "  • %s: %s\n", rec.Title, rec.Detail)
		}
	}
}
