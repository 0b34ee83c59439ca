package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var applicationCmd = &cobra.Command{
	Use:     "application",
	Aliases: []string{"app"},
	Short:   "Track job applications, interviews, and follow-ups",
}

var applicationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job applications",
	Args:  cobra.NoArgs,
	RunE:  runApplicationList,
}

var applicationShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an application with its interviews and follow-ups",
	Args:  cobra.ExactArgs(1),
	RunE:  runApplicationShow,
}

var applicationStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Move an application to a new status",
	Long:  "Statuses: Saved, Applied, Interviewing, Offered, Rejected, Accepted, Withdrawn.",
	Args:  cobra.ExactArgs(2),
	RunE:  runApplicationStatus,
}

var applicationNoteCmd = &cobra.Command{
	Use:   "note <id> <text>",
	Short: "Replace the notes of an application",
	Args:  cobra.ExactArgs(2),
	RunE:  runApplicationNote,
}

var applicationDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runApplicationDelete,
}

var applicationInterviewCmd = &cobra.Command{
	Use:   "interview <id>",
	Short: "Schedule an interview for an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runApplicationInterview,
}

var applicationFollowUpCmd = &cobra.Command{
	Use:   "follow-up <id>",
	Short: "Record a follow-up for an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runApplicationFollowUp,
}

var (
	applicationStatusFilter string
	interviewValues         types.Interview
	interviewType           string
	followUpValues          types.FollowUp
	followUpType            string
)

var interviewTypes = []types.InterviewType{
	types.InterviewPhone, types.InterviewVideo, types.InterviewInPerson, types.InterviewTechnical, types.InterviewOther,
}

var followUpTypes = []types.FollowUpType{types.FollowUpEmail, types.FollowUpCall, types.FollowUpOther}

func init() {
	applicationListCmd.Flags().StringVar(&applicationStatusFilter, "status", "", "Only show applications with this status")

	iv := applicationInterviewCmd.Flags()
	iv.StringVar(&interviewType, "type", string(types.InterviewVideo), "Phone, Video, In-person, Technical, or Other")
	iv.StringVar(&interviewValues.Date, "date", "", "Date (YYYY-MM-DD, required)")
	iv.StringVar(&interviewValues.Time, "time", "", "Time")
	iv.IntVar(&interviewValues.Duration, "duration", 0, "Duration in minutes")
	iv.StringVar(&interviewValues.Location, "location", "", "Location or meeting link")
	iv.StringArrayVar(&interviewValues.Interviewers, "interviewer", nil, "Interviewer (repeatable)")
	iv.StringVar(&interviewValues.Notes, "notes", "", "Notes")
	_ = applicationInterviewCmd.MarkFlagRequired("date")

	fu := applicationFollowUpCmd.Flags()
	fu.StringVar(&followUpType, "type", string(types.FollowUpEmail), "Email, Call, or Other")
	fu.StringVar(&followUpValues.Date, "date", "", "Date (YYYY-MM-DD, required)")
	fu.StringVar(&followUpValues.Notes, "notes", "", "Notes")
	_ = applicationFollowUpCmd.MarkFlagRequired("date")

	applicationCmd.AddCommand(applicationListCmd, applicationShowCmd, applicationStatusCmd, applicationNoteCmd,
		applicationDeleteCmd, applicationInterviewCmd, applicationFollowUpCmd)
	rootCmd.AddCommand(applicationCmd)
}

// matchFold returns the option equal to s ignoring case.
func matchFold[T ~string](s string, options []T) (T, bool) {
	for _, o := range options {
		if strings.EqualFold(string(o), strings.TrimSpace(s)) {
			return o, true
		}
	}
	var zero T
	return zero, false
}

func runApplicationList(cmd *cobra.Command, args []string) error {
	var status types.ApplicationStatus
	if applicationStatusFilter != "" {
		s, ok := types.ParseApplicationStatus(applicationStatusFilter)
		if !ok {
			return fmt.Errorf("unknown status %q", applicationStatusFilter)
		}
		status = s
	}

	return withApp(cmd, func(ctx context.Context, a *App) error {
		var apps []types.JobApplication
		for _, app := range a.Store.JobApplications() {
			if status == "" || app.Status == status {
				apps = append(apps, app)
			}
		}
		if len(apps) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No applications")
			return nil
		}
		if a.Config.Verbose {
			newPrinter(cmd).PrintApplications(apps)
			return nil
		}
		tw := newTable(cmd)
		fmt.Fprintln(tw, "ID\tPOSITION\tCOMPANY\tSTATUS\tAPPLIED\tINTERVIEWS")
		for _, app := range apps {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
				app.ID, app.Position, app.Company, app.Status, app.DateApplied.Format(dateLayout), len(app.Interviews))
		}
		return tw.Flush()
	})
}

func runApplicationShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		app, err := a.Store.JobApplication(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s at %s [%s]\n", app.Position, app.Company, app.Status)
		fmt.Fprintf(out, "Applied:  %s\n", app.DateApplied.Format(dateLayout))
		fmt.Fprintf(out, "Updated:  %s\n", app.DateUpdated.Format(dateLayout))
		fmt.Fprintf(out, "Resume:   %s\n", app.ResumeID)
		if app.ContactPerson != "" || app.ContactEmail != "" {
			fmt.Fprintf(out, "Contact:  %s %s\n", app.ContactPerson, app.ContactEmail)
		}
		if app.Notes != "" {
			fmt.Fprintf(out, "Notes:    %s\n", app.Notes)
		}
		for _, iv := range app.Interviews {
			done := ""
			if iv.Completed {
				done = " (completed)"
			}
			fmt.Fprintf(out, "Interview %s: %s %s %s%s\n", iv.ID, iv.Type, iv.Date, iv.Time, done)
		}
		for _, f := range app.FollowUps {
			fmt.Fprintf(out, "Follow-up %s: %s %s %s\n", f.ID, f.Type, f.Date, f.Notes)
		}
		return nil
	})
}

func runApplicationStatus(cmd *cobra.Command, args []string) error {
	status, ok := types.ParseApplicationStatus(args[1])
	if !ok {
		return fmt.Errorf("unknown status %q", args[1])
	}
	return withApp(cmd, func(ctx context.Context, a *App) error {
		app, err := a.Store.UpdateJobApplication(ctx, args[0], types.JobApplicationPatch{Status: &status})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Application %s is now %s\n", app.ID, app.Status)
		return nil
	})
}

func runApplicationNote(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		notes := args[1]
		app, err := a.Store.UpdateJobApplication(ctx, args[0], types.JobApplicationPatch{Notes: &notes})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated notes for application %s\n", app.ID)
		return nil
	})
}

func runApplicationDelete(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := a.Store.DeleteJobApplication(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted application %s\n", args[0])
		return nil
	})
}

func runApplicationInterview(cmd *cobra.Command, args []string) error {
	t, ok := matchFold(interviewType, interviewTypes)
	if !ok {
		return fmt.Errorf("unknown interview type %q", interviewType)
	}
	return withApp(cmd, func(ctx context.Context, a *App) error {
		iv := interviewValues
		iv.Type = t
		added, err := a.Store.AddInterview(ctx, args[0], iv)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s interview %s on %s\n", added.Type, added.ID, added.Date)
		return nil
	})
}

func runApplicationFollowUp(cmd *cobra.Command, args []string) error {
	t, ok := matchFold(followUpType, followUpTypes)
	if !ok {
		return fmt.Errorf("unknown follow-up type %q", followUpType)
	}
	return withApp(cmd, func(ctx context.Context, a *App) error {
		f := followUpValues
		f.Type = t
		added, err := a.Store.AddFollowUp(ctx, args[0], f)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s follow-up %s on %s\n", added.Type, added.ID, added.Date)
		return nil
	})
}
