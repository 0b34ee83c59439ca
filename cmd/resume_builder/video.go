package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Link recorded video resumes to a resume",
}

var videoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List video resumes",
	Args:  cobra.NoArgs,
	RunE:  runVideoList,
}

var videoAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Link a recorded video to a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideoAdd,
}

var videoDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a video resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideoDelete,
}

var (
	videoValues   types.VideoResume
	videoResumeID string
)

func init() {
	f := videoAddCmd.Flags()
	f.StringVar(&videoValues.Title, "title", "", "Video title (required)")
	f.IntVar(&videoValues.Duration, "duration", 0, "Length in seconds")
	f.StringVar(&videoValues.Transcription, "transcript", "", "Transcript text")
	f.StringVar(&videoResumeID, "resume", "", "Resume id (default: the active resume)")
	_ = videoAddCmd.MarkFlagRequired("title")

	videoCmd.AddCommand(videoListCmd, videoAddCmd, videoDeleteCmd)
	rootCmd.AddCommand(videoCmd)
}

func runVideoList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		videos := a.Store.VideoResumes()
		if len(videos) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No video resumes")
			return nil
		}
		tw := newTable(cmd)
		fmt.Fprintln(tw, "ID\tTITLE\tRESUME\tDURATION\tURL")
		for _, v := range videos {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%ds\t%s\n", v.ID, v.Title, v.ResumeID, v.Duration, v.URL)
		}
		return tw.Flush()
	})
}

func runVideoAdd(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		r, err := resumeOrActive(a.Store, videoResumeID)
		if err != nil {
			return err
		}
		v := videoValues
		v.URL = args[0]
		v.ResumeID = r.ID
		added, err := a.Store.AddVideoResume(ctx, v)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added video resume %s (%s) to %s\n", added.ID, added.Title, r.Title)
		return nil
	})
}

func runVideoDelete(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := a.Store.DeleteVideoResume(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted video resume %s\n", args[0])
		return nil
	})
}
