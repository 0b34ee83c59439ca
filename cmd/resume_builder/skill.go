package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/forms"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage the skills of the active resume",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills",
	Args:  cobra.NoArgs,
	RunE:  runSkillList,
}

var skillAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a skill; the category is detected when omitted",
	Args:  cobra.NoArgs,
	RunE:  runSkillAdd,
}

var skillEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a skill; omitted flags keep their current values",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillEdit,
}

var skillRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillRemove,
}

var skillSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Add the keywords suggested for the resume's job title",
	Args:  cobra.NoArgs,
	RunE:  runSkillSuggest,
}

var skillValues forms.SkillValues

func init() {
	for _, c := range []*cobra.Command{skillAddCmd, skillEditCmd} {
		c.Flags().StringVar(&skillValues.Name, "name", "", "Skill name")
		c.Flags().IntVar(&skillValues.Level, "level", forms.DefaultSkillLevel, "Proficiency from 1 to 5")
		c.Flags().StringVar(&skillValues.Category, "category", "", "Category (default: detected from the name)")
	}

	skillCmd.AddCommand(skillListCmd, skillAddCmd, skillEditCmd, skillRemoveCmd, skillSuggestCmd)
	rootCmd.AddCommand(skillCmd)
}

func applySkillFlags(cmd *cobra.Command, v *forms.SkillValues) {
	flags := cmd.Flags()
	if flags.Changed("name") {
		v.Name = skillValues.Name
	}
	if flags.Changed("level") {
		v.Level = skillValues.Level
	}
	if flags.Changed("category") {
		v.Category = skillValues.Category
	}
}

func runSkillList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		r, err := resumeOrActive(a.Store, "")
		if err != nil {
			return err
		}
		tw := newTable(cmd)
		fmt.Fprintln(tw, "ID\tNAME\tLEVEL\tCATEGORY")
		for _, s := range r.Skills {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.ID, s.Name, s.Level, orDash(s.Category))
		}
		return tw.Flush()
	})
}

func runSkillAdd(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewSkillsForm(a.Store)
		// an empty category lets Submit detect it
		form.Values.Category = ""
		applySkillFlags(cmd, &form.Values)
		s, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added skill %s: %s (level %d, %s)\n", s.ID, s.Name, s.Level, s.Category)
		return nil
	})
}

func runSkillEdit(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewSkillsForm(a.Store)
		if err := form.Edit(args[0]); err != nil {
			return err
		}
		applySkillFlags(cmd, &form.Values)
		s, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated skill %s: %s (level %d, %s)\n", s.ID, s.Name, s.Level, s.Category)
		return nil
	})
}

func runSkillRemove(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := forms.NewSkillsForm(a.Store).Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed skill %s\n", args[0])
		return nil
	})
}

func runSkillSuggest(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		added, err := forms.NewSkillsForm(a.Store).Suggest(ctx)
		if err != nil {
			return err
		}
		if len(added) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No new skills to suggest")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d suggested skills:\n", len(added))
		for _, s := range added {
			fmt.Fprintf(cmd.OutOrStdout(), "  • %s (%s)\n", s.Name, s.Category)
		}
		return nil
	})
}
