package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/forms"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var coverLetterCmd = &cobra.Command{
	Use:     "cover-letter",
	Aliases: []string{"cl"},
	Short:   "Generate and manage cover letters",
}

var coverLetterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cover letters; the active one is marked with *",
	Args:  cobra.NoArgs,
	RunE:  runCoverLetterList,
}

var coverLetterGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter from a resume and make it active",
	Args:  cobra.NoArgs,
	RunE:  runCoverLetterGenerate,
}

var coverLetterShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a cover letter as text (default: the active one)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCoverLetterShow,
}

var coverLetterEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a cover letter; omitted flags keep their current values",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverLetterEdit,
}

var coverLetterUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Make a cover letter active",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverLetterUse,
}

var coverLetterDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a cover letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverLetterDelete,
}

var coverLetterExportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Write a cover letter as a standalone HTML document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCoverLetterExport,
}

var (
	coverLetterValues  forms.CoverLetterValues
	coverLetterHTML    bool
	coverLetterOut     string
	coverLetterContent string
)

func init() {
	f := coverLetterGenerateCmd.Flags()
	f.StringVar(&coverLetterValues.Title, "title", "", "Cover letter title (default: Cover Letter - <company>)")
	f.StringVar(&coverLetterValues.Company, "company", "", "Company name")
	f.StringVar(&coverLetterValues.Position, "position", "", "Position applied for")
	f.StringVar(&coverLetterValues.Recipient, "recipient", "", "Recipient (default: Hiring Manager)")
	f.StringVar(&coverLetterValues.Tone, "tone", "", "Tone: professional, enthusiastic, or balanced")
	f.StringVar(&coverLetterValues.KeyPoints, "key-points", "", "Points to emphasize")
	f.StringVar(&coverLetterValues.ResumeID, "resume", "", "Resume id (default: the active resume)")

	coverLetterShowCmd.Flags().BoolVar(&coverLetterHTML, "html", false, "Print the stored HTML content")

	e := coverLetterEditCmd.Flags()
	e.StringVar(&coverLetterValues.Title, "title", "", "Title")
	e.StringVar(&coverLetterValues.Recipient, "recipient", "", "Recipient")
	e.StringVar(&coverLetterValues.Company, "company", "", "Company name")
	e.StringVar(&coverLetterValues.Position, "position", "", "Position")
	e.StringVar(&coverLetterContent, "content", "", "Replace the HTML content")

	coverLetterExportCmd.Flags().StringVarP(&coverLetterOut, "out", "o", ".", "Output directory")

	coverLetterCmd.AddCommand(coverLetterListCmd, coverLetterGenerateCmd, coverLetterShowCmd, coverLetterEditCmd,
		coverLetterUseCmd, coverLetterDeleteCmd, coverLetterExportCmd)
	rootCmd.AddCommand(coverLetterCmd)
}

// coverLetterOrActive returns the letter with id, or the active letter when id is empty.
func coverLetterOrActive(s *store.Store, args []string) (types.CoverLetter, error) {
	if len(args) == 1 {
		return s.CoverLetter(args[0])
	}
	c, ok := s.ActiveCoverLetter()
	if !ok {
		return types.CoverLetter{}, fmt.Errorf("no active cover letter")
	}
	return c, nil
}

func runCoverLetterList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		letters := a.Store.CoverLetters()
		if len(letters) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No cover letters yet")
			return nil
		}
		active := a.Store.ActiveCoverLetterID()
		tw := newTable(cmd)
		fmt.Fprintln(tw, "\tID\tTITLE\tCOMPANY\tPOSITION\tUPDATED")
		for _, c := range letters {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				marker(c.ID == active), c.ID, c.Title, orDash(c.Company), orDash(c.Position), c.UpdatedAt.Format(dateLayout))
		}
		return tw.Flush()
	})
}

func runCoverLetterGenerate(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewCoverLetterForm(a.Store, a.Generator)
		flags := cmd.Flags()
		v := &form.Values
		v.Company = coverLetterValues.Company
		v.Position = coverLetterValues.Position
		v.KeyPoints = coverLetterValues.KeyPoints
		v.Title = coverLetterValues.Title
		if v.Title == "" && v.Company != "" {
			v.Title = "Cover Letter - " + v.Company
		}
		if flags.Changed("recipient") {
			v.Recipient = coverLetterValues.Recipient
		}
		if flags.Changed("tone") {
			v.Tone = coverLetterValues.Tone
		}
		if flags.Changed("resume") {
			v.ResumeID = coverLetterValues.ResumeID
		}

		c, err := form.Generate(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created cover letter %s (%s)\n", c.ID, c.Title)
		return nil
	})
}

func runCoverLetterShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		c, err := coverLetterOrActive(a.Store, args)
		if err != nil {
			return err
		}
		if coverLetterHTML {
			fmt.Fprintln(cmd.OutOrStdout(), c.Content)
			return nil
		}
		text, err := rendering.CoverLetterText(c)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	})
}

func runCoverLetterEdit(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		flags := cmd.Flags()
		var patch types.CoverLetterPatch
		pick := func(name string, src *string) *string {
			if flags.Changed(name) {
				v := *src
				return &v
			}
			return nil
		}
		patch.Title = pick("title", &coverLetterValues.Title)
		patch.Recipient = pick("recipient", &coverLetterValues.Recipient)
		patch.Company = pick("company", &coverLetterValues.Company)
		patch.Position = pick("position", &coverLetterValues.Position)
		patch.Content = pick("content", &coverLetterContent)

		c, err := a.Store.UpdateCoverLetter(ctx, args[0], patch)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated cover letter %s (%s)\n", c.ID, c.Title)
		return nil
	})
}

func runCoverLetterUse(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := a.Store.SetActiveCoverLetterID(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Active cover letter: %s\n", args[0])
		return nil
	})
}

func runCoverLetterDelete(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := a.Store.DeleteCoverLetter(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted cover letter %s\n", args[0])
		return nil
	})
}

func runCoverLetterExport(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		c, err := coverLetterOrActive(a.Store, args)
		if err != nil {
			return err
		}
		html, err := rendering.RenderCoverLetterHTML(c)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(coverLetterOut, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(coverLetterOut, rendering.CoverLetterFilename(c))
		if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	})
}
