package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/forms"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage the projects of the active resume",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	Args:  cobra.NoArgs,
	RunE:  runProjectAdd,
}

var projectEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a project; omitted flags keep their current values",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectEdit,
}

var projectRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectRemove,
}

var projectEnhanceCmd = &cobra.Command{
	Use:   "enhance <id>",
	Short: "Rewrite the description of a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectEnhance,
}

var (
	projectValues       forms.ProjectValues
	projectTechnologies []string
)

func init() {
	for _, c := range []*cobra.Command{projectAddCmd, projectEditCmd} {
		c.Flags().StringVar(&projectValues.Name, "name", "", "Project name")
		c.Flags().StringVar(&projectValues.Description, "description", "", "Description")
		c.Flags().StringSliceVar(&projectTechnologies, "tech", nil, "Technologies used (comma separated; replaces existing on edit)")
		c.Flags().StringVar(&projectValues.URL, "url", "", "Project URL")
		c.Flags().StringVar(&projectValues.StartDate, "start", "", "Start date (YYYY-MM)")
		c.Flags().StringVar(&projectValues.EndDate, "end", "", "End date (YYYY-MM)")
	}

	projectCmd.AddCommand(projectListCmd, projectAddCmd, projectEditCmd, projectRemoveCmd, projectEnhanceCmd)
	rootCmd.AddCommand(projectCmd)
}

func applyProjectFlags(cmd *cobra.Command, form *forms.ProjectsForm) {
	flags := cmd.Flags()
	v := &form.Values
	set := func(name string, dst *string, src string) {
		if flags.Changed(name) {
			*dst = src
		}
	}
	set("name", &v.Name, projectValues.Name)
	set("description", &v.Description, projectValues.Description)
	set("url", &v.URL, projectValues.URL)
	set("start", &v.StartDate, projectValues.StartDate)
	set("end", &v.EndDate, projectValues.EndDate)
	if flags.Changed("tech") {
		v.Technologies = []string{}
		for _, t := range projectTechnologies {
			form.AddTechnology(t)
		}
	}
}

func printProject(cmd *cobra.Command, verb string, p types.Project) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s project %s: %s\n", verb, p.ID, p.Name)
	if len(p.Technologies) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "  Technologies: %s\n", strings.Join(p.Technologies, ", "))
	}
	if p.Description != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p.Description)
	}
}

func runProjectList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		r, err := resumeOrActive(a.Store, "")
		if err != nil {
			return err
		}
		tw := newTable(cmd)
		fmt.Fprintln(tw, "ID\tNAME\tTECHNOLOGIES")
		for _, p := range r.Projects {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, orDash(strings.Join(p.Technologies, ", ")))
		}
		return tw.Flush()
	})
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewProjectsForm(a.Store, a.Generator)
		applyProjectFlags(cmd, form)
		p, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		printProject(cmd, "Added", p)
		return nil
	})
}

func runProjectEdit(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewProjectsForm(a.Store, a.Generator)
		if err := form.Edit(args[0]); err != nil {
			return err
		}
		applyProjectFlags(cmd, form)
		p, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		printProject(cmd, "Updated", p)
		return nil
	})
}

func runProjectRemove(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := forms.NewProjectsForm(a.Store, a.Generator).Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", args[0])
		return nil
	})
}

func runProjectEnhance(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewProjectsForm(a.Store, a.Generator)
		if err := form.Edit(args[0]); err != nil {
			return err
		}
		if err := form.Enhance(ctx); err != nil {
			return fmt.Errorf("failed to enhance project: %w", err)
		}
		p, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		printProject(cmd, "Enhanced", p)
		return nil
	})
}
