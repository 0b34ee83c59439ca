package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Create, select, and remove resumes",
}

var resumeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resumes; the active one is marked with *",
	Args:  cobra.NoArgs,
	RunE:  runResumeList,
}

var resumeNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a resume and make it active",
	Args:  cobra.NoArgs,
	RunE:  runResumeNew,
}

var resumeShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a resume (default: the active one)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runResumeShow,
}

var resumeUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Make a resume active",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeUse,
}

var resumeRenameCmd = &cobra.Command{
	Use:   "rename <id> <title>",
	Short: "Change the title of a resume",
	Args:  cobra.ExactArgs(2),
	RunE:  runResumeRename,
}

var resumeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a resume and every document that references it",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeDelete,
}

var (
	newResumeTitle    string
	newResumeTemplate string
	showResumeJSON    bool
)

func init() {
	resumeNewCmd.Flags().StringVar(&newResumeTitle, "title", "", "Resume title (required)")
	resumeNewCmd.Flags().StringVar(&newResumeTemplate, "template", "", "Template id (default: modern)")
	_ = resumeNewCmd.MarkFlagRequired("title")

	resumeShowCmd.Flags().BoolVar(&showResumeJSON, "json", false, "Print the stored JSON document")

	resumeCmd.AddCommand(resumeListCmd, resumeNewCmd, resumeShowCmd, resumeUseCmd, resumeRenameCmd, resumeDeleteCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runResumeList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		resumes := a.Store.Resumes()
		if len(resumes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No resumes yet. Create one with 'resume new --title <title>'.")
			return nil
		}
		active := a.Store.ActiveResumeID()
		tw := newTable(cmd)
		fmt.Fprintln(tw, "\tID\tTITLE\tTEMPLATE\tSCORE\tUPDATED")
		for _, r := range resumes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				marker(r.ID == active), r.ID, r.Title, r.TemplateID, scoreText(r.Score), r.UpdatedAt.Format(dateLayout))
		}
		return tw.Flush()
	})
}

func runResumeNew(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		r, err := a.Store.AddResume(ctx, types.Resume{Title: newResumeTitle, TemplateID: newResumeTemplate})
		if err != nil {
			return fmt.Errorf("failed to create resume: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created resume %s (%s)\n", r.ID, r.Title)
		return nil
	})
}

func runResumeShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		var id string
		if len(args) == 1 {
			id = args[0]
		}
		r, err := resumeOrActive(a.Store, id)
		if err != nil {
			return err
		}
		if showResumeJSON {
			return writeJSON(cmd.OutOrStdout(), r)
		}
		newPrinter(cmd).PrintResumeSummary(r)
		return nil
	})
}

func runResumeUse(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := a.Store.SetActiveResumeID(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Active resume: %s\n", args[0])
		return nil
	})
}

func runResumeRename(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		title := args[1]
		r, err := a.Store.UpdateResume(ctx, args[0], types.ResumePatch{Title: &title})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed resume %s to %q\n", r.ID, r.Title)
		return nil
	})
}

func runResumeDelete(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := a.Store.DeleteResume(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted resume %s\n", args[0])
		return nil
	})
}
