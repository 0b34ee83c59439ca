package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/forms"
	"github.com/spf13/cobra"
)

var personalCmd = &cobra.Command{
	Use:   "personal",
	Short: "Edit the personal information of the active resume",
}

var personalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update personal information; omitted flags keep their current values",
	Args:  cobra.NoArgs,
	RunE:  runPersonalSet,
}

// personalField binds a flag to one PersonalInfoValues field.
type personalField struct {
	flag  string
	usage string
	field func(v *forms.PersonalInfoValues) *string
}

var personalFields = []personalField{
	{"first-name", "First name", func(v *forms.PersonalInfoValues) *string { return &v.FirstName }},
	{"last-name", "Last name", func(v *forms.PersonalInfoValues) *string { return &v.LastName }},
	{"email", "Email address", func(v *forms.PersonalInfoValues) *string { return &v.Email }},
	{"phone", "Phone number", func(v *forms.PersonalInfoValues) *string { return &v.Phone }},
	{"linkedin", "LinkedIn profile URL", func(v *forms.PersonalInfoValues) *string { return &v.LinkedIn }},
	{"website", "Personal website", func(v *forms.PersonalInfoValues) *string { return &v.Website }},
	{"location", "City, region", func(v *forms.PersonalInfoValues) *string { return &v.Location }},
	{"job-title", "Professional title", func(v *forms.PersonalInfoValues) *string { return &v.JobTitle }},
	{"summary", "Professional summary", func(v *forms.PersonalInfoValues) *string { return &v.Summary }},
}

var (
	personalValues forms.PersonalInfoValues
	enhanceSummary bool
)

func init() {
	for _, f := range personalFields {
		personalSetCmd.Flags().StringVar(f.field(&personalValues), f.flag, "", f.usage)
	}
	personalSetCmd.Flags().BoolVar(&enhanceSummary, "enhance-summary", false, "Rewrite the summary with the configured generator")

	personalCmd.AddCommand(personalSetCmd)
	rootCmd.AddCommand(personalCmd)
}

func runPersonalSet(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		form := forms.NewPersonalInfoForm(a.Store, a.Generator)
		if err := form.Load(); err != nil {
			return err
		}
		for _, f := range personalFields {
			if cmd.Flags().Changed(f.flag) {
				*f.field(&form.Values) = *f.field(&personalValues)
			}
		}
		if enhanceSummary {
			if err := form.EnhanceSummary(ctx); err != nil {
				return fmt.Errorf("failed to enhance summary: %w", err)
			}
		}
		info, err := form.Submit(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated personal information for %s %s\n", info.FirstName, info.LastName)
		if enhanceSummary {
			fmt.Fprintf(cmd.OutOrStdout(), "Summary: %s\n", info.Summary)
		}
		return nil
	})
}
