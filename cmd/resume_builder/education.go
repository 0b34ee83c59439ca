package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/forms"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var educationCmd = &cobra.Command{
	Use:   "education",
	Short: "Manage the education entries of the active resume",
}

var educationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List education entries",
	Args:  cobra.NoArgs,
	RunE:  runEducationList,
}

var educationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an education entry",
	Args:  cobra.NoArgs,
	RunE:  runEducationAdd,
}

var educationEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an education entry; omitted flags keep their current values",
	Args:  cobra.ExactArgs(1),
	RunE:  runEducationEdit,
}

var educationRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an education entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEducationRemove,
}

var educationEnhanceCmd = &cobra.Command{
	Use:   "enhance <id>",
	Short: "Rewrite the description of an education entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEducationEnhance,
}

var educationValues forms.EducationValues

func init() {
	for _, c := range []*cobra.Command{educationAddCmd, educationEditCmd} {
		c.Flags().StringVar(&educationValues.Institution, "institution", "", "School or university")
		c.Flags().StringVar(&educationValues.Degree, "degree", "", "Degree earned")
		c.Flags().StringVar(&educationValues.FieldOfStudy, "field", "", "Field of study")
		c.Flags().StringVar(&educationValues.StartDate, "start", "", "Start date (YYYY-MM)")
		c.Flags().StringVar(&educationValues.EndDate, "end", "", "End date (YYYY-MM)")
		c.Flags().StringVar(&educationValues.Location, "location", "", "Location")
		c.Flags().StringVar(&educationValues.Description, "description", "", "Description")
	}

	educationCmd.AddCommand(educationListCmd, educationAddCmd, educationEditCmd, educationRemoveCmd, educationEnhanceCmd)
	rootCmd.AddCommand(educationCmd)
}

func applyEducationFlags(cmd *cobra.Command, v *forms.EducationValues) {
	flags := cmd.Flags()
	set := func(name string, dst *string, src string) {
		if flags.Changed(name) {
			*dst = src
		}
	}
	set("institution", &v.Institution, educationValues.Institution)
	set("degree", &v.Degree, educationValues.Degree)
	set("field", &v.FieldOfStudy, educationValues.FieldOfStudy)
	set("start", &v.StartDate, educationValues.StartDate)
	set("end", &v.EndDate, educationValues.EndDate)
	set("location", &v.Location, educationValues.Location)
	set("description", &v.Description, educationValues.Description)
}

func printEducation(cmd *cobra.Command, verb string, e types.Education) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s education %s: %s, %s\n", verb, e.ID, e.Degree, e.Institution)
	if e.Description != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", e.Description)
	}
}

func runEducationList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		r, err := resumeOrActive(a.Store, "")
		if err != nil {
			return err
		}
		tw := newTable(cmd)
		fmt.Fprintln(tw, "ID\tDEGREE\tINSTITUTION\tDATES")
		for _, e := range r.Education {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s - %s\n", e.ID, e.Degree, e.Institution, orDash(e.StartDate), orDash(e.EndDate))
		}
		return tw.Flush()
	})
}

func runEducationAdd(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewEducationForm(a.Store, a.Generator)
		applyEducationFlags(cmd, &form.Values)
		e, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		printEducation(cmd, "Added", e)
		return nil
	})
}

func runEducationEdit(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewEducationForm(a.Store, a.Generator)
		if err := form.Edit(args[0]); err != nil {
			return err
		}
		applyEducationFlags(cmd, &form.Values)
		e, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		printEducation(cmd, "Updated", e)
		return nil
	})
}

func runEducationRemove(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := forms.NewEducationForm(a.Store, a.Generator).Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed education %s\n", args[0])
		return nil
	})
}

func runEducationEnhance(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewEducationForm(a.Store, a.Generator)
		if err := form.Edit(args[0]); err != nil {
			return err
		}
		if err := form.Enhance(ctx); err != nil {
			return fmt.Errorf("failed to enhance education: %w", err)
		}
		e, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		printEducation(cmd, "Enhanced", e)
		return nil
	})
}
