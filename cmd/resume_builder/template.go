package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/forms"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Browse and apply resume templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplateList,
}

var templateApplyCmd = &cobra.Command{
	Use:   "apply <template-id>",
	Short: "Apply a template and accent color to the active resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateApply,
}

var templateSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Recommend a template for the active resume",
	Args:  cobra.NoArgs,
	RunE:  runTemplateSuggest,
}

var (
	templateFilter      string
	templatePopular     int
	templateCoverLetter bool
	templateColor       string
)

func init() {
	templateListCmd.Flags().StringVar(&templateFilter, "filter", templates.FilterAll, "Filter: all, ai, entry, mid, senior, executive")
	templateListCmd.Flags().IntVar(&templatePopular, "popular", 0, "Show only the N most popular templates")
	templateListCmd.Flags().BoolVar(&templateCoverLetter, "cover-letter", false, "List cover letter templates instead")

	templateApplyCmd.Flags().StringVar(&templateColor, "color", "", "Accent color name or #rrggbb")

	templateCmd.AddCommand(templateListCmd, templateApplyCmd, templateSuggestCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		catalog := a.Store.ResumeTemplates()
		if templateCoverLetter {
			catalog = a.Store.CoverLetterTemplates()
		}
		list, err := templates.Filter(catalog, templateFilter)
		if err != nil {
			return err
		}
		if templatePopular > 0 {
			list = templates.Popular(list, templatePopular)
		}

		tw := newTable(cmd)
		fmt.Fprintln(tw, "ID\tNAME\tAI\tLEVELS\tPOPULARITY")
		for _, t := range list {
			levels := make([]string, len(t.CareerLevel))
			for i, l := range t.CareerLevel {
				levels[i] = string(l)
			}
			ai := ""
			if t.IsAIPowered {
				ai = "yes"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", t.ID, t.Name, orDash(ai), orDash(strings.Join(levels, ", ")), t.Popularity)
		}
		return tw.Flush()
	})
}

func runTemplateApply(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		r, err := forms.NewTemplateForm(a.Store).Apply(ctx, args[0], templateColor)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Applied template %s to %s", r.TemplateID, r.Title)
		if r.TemplateColor != "" {
			fmt.Fprintf(cmd.OutOrStdout(), " (color %s)", r.TemplateColor)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	})
}

func runTemplateSuggest(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		t, err := forms.NewTemplateForm(a.Store).Suggest()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Suggested template: %s (%s)\n%s\n", t.Name, t.ID, t.Description)
		return nil
	})
}
