package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/jobs"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Save, import, match, and apply to job postings",
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved jobs grouped by how well they match the active resume",
	Args:  cobra.NoArgs,
	RunE:  runJobList,
}

var jobShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobShow,
}

var jobSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a job posting entered by hand",
	Args:  cobra.NoArgs,
	RunE:  runJobSave,
}

var jobRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a saved job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobRemove,
}

var jobImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a posting from an HTML, PDF, DOCX, or text file",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobImport,
}

var jobApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Record an application to a saved job with the active resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobApply,
}

var jobSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search saved jobs by keywords and location",
	Args:  cobra.ArbitraryArgs,
	RunE:  runJobSearch,
}

var jobMatchCmd = &cobra.Command{
	Use:   "match [id]",
	Short: "Score saved jobs against the active resume and explain the matches",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJobMatch,
}

var (
	jobValues       types.Job
	jobScore        int
	jobImportURL    string
	jobImportDryRun bool
	jobLocation     string
	jobMatchSave    bool
)

func init() {
	f := jobSaveCmd.Flags()
	f.StringVar(&jobValues.Title, "title", "", "Job title (required)")
	f.StringVar(&jobValues.Company, "company", "", "Company (required)")
	f.StringVar(&jobValues.Location, "location", "", "Location")
	f.StringVar(&jobValues.Description, "description", "", "Description")
	f.StringArrayVar(&jobValues.Requirements, "requirement", nil, "Requirement (repeatable)")
	f.StringVar(&jobValues.URL, "url", "", "Posting URL")
	f.StringVar(&jobValues.Salary, "salary", "", "Salary range")
	f.StringVar(&jobValues.DatePosted, "date-posted", "", "Date posted")
	f.StringVar(&jobValues.Source, "source", "", "Where the posting came from")
	f.IntVar(&jobScore, "score", 0, "Match score 0-100 (default: computed by 'job match')")
	_ = jobSaveCmd.MarkFlagRequired("title")
	_ = jobSaveCmd.MarkFlagRequired("company")

	i := jobImportCmd.Flags()
	i.StringVar(&jobImportURL, "url", "", "URL the posting was saved from (sets the source)")
	i.StringVar(&jobValues.Title, "title", "", "Override the parsed title")
	i.StringVar(&jobValues.Company, "company", "", "Override the parsed company")
	i.BoolVar(&jobImportDryRun, "dry-run", false, "Print the parsed job without saving it")

	jobSearchCmd.Flags().StringVar(&jobLocation, "location", "", "Location filter")
	jobMatchCmd.Flags().BoolVar(&jobMatchSave, "save", false, "Store the computed scores on the jobs")

	jobCmd.AddCommand(jobListCmd, jobShowCmd, jobSaveCmd, jobRemoveCmd, jobImportCmd, jobApplyCmd, jobSearchCmd, jobMatchCmd)
	rootCmd.AddCommand(jobCmd)
}

// scoredJobs fills missing match scores from the active resume, if any.
func scoredJobs(a *App, list []types.Job) []types.Job {
	if r, ok := a.Store.ActiveResume(); ok {
		return jobs.ScoreJobs(r, list)
	}
	return list
}

func printJobTable(cmd *cobra.Command, list []types.Job) error {
	tw := newTable(cmd)
	fmt.Fprintln(tw, "ID\tTITLE\tCOMPANY\tLOCATION\tSCORE\tCATEGORY")
	for _, j := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.Title, j.Company, orDash(j.Location), scoreText(j.MatchScore), jobs.Categorize(j.MatchScore))
	}
	return tw.Flush()
}

func printJob(cmd *cobra.Command, j types.Job) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s at %s\n", j.Title, j.Company)
	fmt.Fprintf(out, "ID:       %s\n", orDash(j.ID))
	fmt.Fprintf(out, "Location: %s\n", orDash(j.Location))
	if j.Salary != "" {
		fmt.Fprintf(out, "Salary:   %s\n", j.Salary)
	}
	if j.DatePosted != "" {
		fmt.Fprintf(out, "Posted:   %s\n", j.DatePosted)
	}
	if j.Source != "" {
		fmt.Fprintf(out, "Source:   %s\n", j.Source)
	}
	if j.URL != "" {
		fmt.Fprintf(out, "URL:      %s\n", j.URL)
	}
	fmt.Fprintf(out, "Score:    %s\n", scoreText(j.MatchScore))
	if j.Description != "" {
		fmt.Fprintf(out, "\n%s\n", j.Description)
	}
	if len(j.Requirements) > 0 {
		fmt.Fprintln(out, "\nRequirements:")
		for _, r := range j.Requirements {
			fmt.Fprintf(out, "  • %s\n", r)
		}
	}
}

func runJobList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		list := scoredJobs(a, a.Store.SavedJobs())
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved jobs")
			return nil
		}
		groups := jobs.Group(list)
		if a.Config.Verbose {
			newPrinter(cmd).PrintJobMatches(groups)
			return nil
		}
		ordered := append(append(append([]types.Job{}, groups.BestMatches...), groups.GoodFits...), groups.Others...)
		return printJobTable(cmd, ordered)
	})
}

func runJobShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		j, err := a.Store.Job(args[0])
		if err != nil {
			return err
		}
		printJob(cmd, j)
		return nil
	})
}

func runJobSave(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		j := jobValues.Clone()
		j.ID = ""
		if cmd.Flags().Changed("score") {
			score := jobScore
			j.MatchScore = &score
		}
		saved, err := a.Store.SaveJob(ctx, j)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved job %s: %s at %s\n", saved.ID, saved.Title, saved.Company)
		return nil
	})
}

func runJobRemove(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := a.Store.RemoveJob(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed job %s\n", args[0])
		return nil
	})
}

func runJobImport(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		j, err := a.Importer.ImportFile(ctx, args[0], jobs.ImportOptions{
			URL:     jobImportURL,
			Title:   jobValues.Title,
			Company: jobValues.Company,
		})
		if err != nil {
			return err
		}
		if jobImportDryRun {
			printJob(cmd, j)
			return nil
		}
		saved, err := a.Store.SaveJob(ctx, j)
		if err != nil {
			return err
		}
		a.Logger.Debug("imported job",
			zap.String("file", args[0]),
			zap.String("job_id", saved.ID),
			zap.Int("requirements", len(saved.Requirements)))
		fmt.Fprintf(cmd.OutOrStdout(), "Imported job %s: %s at %s (%d requirements)\n",
			saved.ID, saved.Title, saved.Company, len(saved.Requirements))
		return nil
	})
}

func runJobApply(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		j, err := a.Store.Job(args[0])
		if err != nil {
			return err
		}
		app, err := jobs.Apply(ctx, a.Store, j)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Applied to %s at %s (application %s)\n", app.Position, app.Company, app.ID)
		return nil
	})
}

func runJobSearch(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		q := jobs.Query{Text: strings.Join(args, " "), Location: jobLocation}
		r, _ := a.Store.ActiveResume()
		found := jobs.Search(scoredJobs(a, a.Store.SavedJobs()), q)
		fmt.Fprintf(cmd.OutOrStdout(), "Found %d jobs matching %q\n", len(found), jobs.SearchLabel(q, r))
		if len(found) == 0 {
			return nil
		}
		return printJobTable(cmd, found)
	})
}

func runJobMatch(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		r, err := resumeOrActive(a.Store, "")
		if err != nil {
			return err
		}
		list := a.Store.SavedJobs()
		if len(args) == 1 {
			j, err := a.Store.Job(args[0])
			if err != nil {
				return err
			}
			list = []types.Job{j}
		}

		out := cmd.OutOrStdout()
		for _, j := range list {
			m := jobs.MatchResume(r, j)
			fmt.Fprintf(out, "%3d%%  %s at %s [%s]\n", m.Score, j.Title, j.Company, jobs.Categorize(&m.Score))
			j.MatchScore = nil
			for _, reason := range jobs.Reasons(r, j, m) {
				fmt.Fprintf(out, "      - %s\n", reason)
			}
			if jobMatchSave {
				score := m.Score
				j.MatchScore = &score
				if _, err := a.Store.SaveJob(ctx, j); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
