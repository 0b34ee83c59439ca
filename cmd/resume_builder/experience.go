package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/forms"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Manage the work history of the active resume",
}

var experienceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work history entries",
	Args:  cobra.NoArgs,
	RunE:  runExperienceList,
}

var experienceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a work history entry",
	Args:  cobra.NoArgs,
	RunE:  runExperienceAdd,
}

var experienceEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a work history entry; omitted flags keep their current values",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceEdit,
}

var experienceRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a work history entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceRemove,
}

var experienceEnhanceCmd = &cobra.Command{
	Use:   "enhance <id>",
	Short: "Rewrite the description and suggest bullets for an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceEnhance,
}

var (
	experienceValues     forms.ExperienceValues
	experienceHighlights []string
)

func init() {
	for _, c := range []*cobra.Command{experienceAddCmd, experienceEditCmd} {
		c.Flags().StringVar(&experienceValues.Company, "company", "", "Company name")
		c.Flags().StringVar(&experienceValues.Position, "position", "", "Position held")
		c.Flags().StringVar(&experienceValues.StartDate, "start", "", "Start date (YYYY-MM)")
		c.Flags().StringVar(&experienceValues.EndDate, "end", "", "End date (YYYY-MM)")
		c.Flags().BoolVar(&experienceValues.Current, "current", false, "Currently working here")
		c.Flags().StringVar(&experienceValues.Location, "location", "", "Location")
		c.Flags().StringVar(&experienceValues.Description, "description", "", "Description")
		c.Flags().StringArrayVar(&experienceHighlights, "highlight", nil, "Highlight bullet (repeatable; replaces existing on edit)")
	}

	experienceCmd.AddCommand(experienceListCmd, experienceAddCmd, experienceEditCmd, experienceRemoveCmd, experienceEnhanceCmd)
	rootCmd.AddCommand(experienceCmd)
}

// applyExperienceFlags copies the flags the user set into the form.
func applyExperienceFlags(cmd *cobra.Command, form *forms.ExperienceForm) {
	flags := cmd.Flags()
	v := &form.Values
	if flags.Changed("company") {
		v.Company = experienceValues.Company
	}
	if flags.Changed("position") {
		v.Position = experienceValues.Position
	}
	if flags.Changed("start") {
		v.StartDate = experienceValues.StartDate
	}
	if flags.Changed("end") {
		v.EndDate = experienceValues.EndDate
	}
	if flags.Changed("current") {
		v.Current = experienceValues.Current
	}
	if flags.Changed("location") {
		v.Location = experienceValues.Location
	}
	if flags.Changed("description") {
		v.Description = experienceValues.Description
	}
	if flags.Changed("highlight") {
		v.Highlights = []string{}
		for _, h := range experienceHighlights {
			form.AddHighlight(h)
		}
	}
}

func printExperience(cmd *cobra.Command, verb string, e types.Experience) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s experience %s: %s at %s\n", verb, e.ID, e.Position, e.Company)
	for _, h := range e.Highlights {
		fmt.Fprintf(cmd.OutOrStdout(), "  • %s\n", h)
	}
}

func runExperienceList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		r, err := resumeOrActive(a.Store, "")
		if err != nil {
			return err
		}
		tw := newTable(cmd)
		fmt.Fprintln(tw, "ID\tPOSITION\tCOMPANY\tDATES")
		for _, e := range r.Experiences {
			end := e.EndDate
			if e.Current {
				end = "Present"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s - %s\n", e.ID, e.Position, e.Company, orDash(e.StartDate), orDash(end))
		}
		return tw.Flush()
	})
}

func runExperienceAdd(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewExperienceForm(a.Store, a.Generator)
		applyExperienceFlags(cmd, form)
		e, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		printExperience(cmd, "Added", e)
		return nil
	})
}

func runExperienceEdit(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewExperienceForm(a.Store, a.Generator)
		if err := form.Edit(args[0]); err != nil {
			return err
		}
		applyExperienceFlags(cmd, form)
		e, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		printExperience(cmd, "Updated", e)
		return nil
	})
}

func runExperienceRemove(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := forms.NewExperienceForm(a.Store, a.Generator).Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed experience %s\n", args[0])
		return nil
	})
}

func runExperienceEnhance(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewExperienceForm(a.Store, a.Generator)
		if err := form.Edit(args[0]); err != nil {
			return err
		}
		if err := form.Enhance(ctx); err != nil {
			return fmt.Errorf("failed to enhance experience: %w", err)
		}
		e, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		printExperience(cmd, "Enhanced", e)
		return nil
	})
}
