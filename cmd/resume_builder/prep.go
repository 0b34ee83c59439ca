package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/jonathan/resume-builder/internal/seed"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var prepCmd = &cobra.Command{
	Use:   "prep",
	Short: "Prepare for interviews with question sets",
}

var prepListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interview preps",
	Args:  cobra.NoArgs,
	RunE:  runPrepList,
}

var prepShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the questions and answers of a prep",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrepShow,
}

var prepNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create an interview prep from the question bank",
	Args:  cobra.NoArgs,
	RunE:  runPrepNew,
}

var prepAskCmd = &cobra.Command{
	Use:   "ask <id> <question>",
	Short: "Add a question to a prep",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrepAsk,
}

var prepAnswerCmd = &cobra.Command{
	Use:   "answer <id> <question-number> <answer>",
	Short: "Record your answer to a question (numbers start at 1)",
	Args:  cobra.ExactArgs(3),
	RunE:  runPrepAnswer,
}

var prepDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an interview prep",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrepDelete,
}

var (
	prepTitle      string
	prepJobID      string
	prepResumeID   string
	prepEmpty      bool
	prepCategory   string
	prepDifficulty string
	prepFeedback   string
	prepNotes      string
)

var prepDifficulties = []types.Difficulty{types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard}

func init() {
	n := prepNewCmd.Flags()
	n.StringVar(&prepTitle, "title", "", "Prep title (default: Interview Prep - <job title>)")
	n.StringVar(&prepJobID, "job", "", "Saved job this prep targets")
	n.StringVar(&prepResumeID, "resume", "", "Resume id (default: the active resume)")
	n.StringVar(&prepNotes, "notes", "", "Notes")
	n.BoolVar(&prepEmpty, "empty", false, "Start without the question bank")

	prepAskCmd.Flags().StringVar(&prepCategory, "category", "General", "Question category")
	prepAskCmd.Flags().StringVar(&prepDifficulty, "difficulty", string(types.DifficultyMedium), "Easy, Medium, or Hard")

	prepAnswerCmd.Flags().StringVar(&prepFeedback, "feedback", "", "Feedback on the answer")

	prepCmd.AddCommand(prepListCmd, prepShowCmd, prepNewCmd, prepAskCmd, prepAnswerCmd, prepDeleteCmd)
	rootCmd.AddCommand(prepCmd)
}

func runPrepList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		preps := a.Store.InterviewPreps()
		if len(preps) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No interview preps")
			return nil
		}
		tw := newTable(cmd)
		fmt.Fprintln(tw, "ID\tTITLE\tQUESTIONS\tANSWERED\tUPDATED")
		for _, p := range preps {
			answered := 0
			for _, q := range p.Questions {
				if q.UserAnswer != "" {
					answered++
				}
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", p.ID, p.Title, len(p.Questions), answered, p.UpdatedAt.Format(dateLayout))
		}
		return tw.Flush()
	})
}

func runPrepShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		p, err := a.Store.InterviewPrep(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, p.Title)
		if p.Notes != "" {
			fmt.Fprintf(out, "Notes: %s\n", p.Notes)
		}
		for i, q := range p.Questions {
			fmt.Fprintf(out, "\n%d. [%s, %s] %s\n", i+1, q.Category, q.Difficulty, q.Question)
			if q.Answer != "" {
				fmt.Fprintf(out, "   Suggested: %s\n", q.Answer)
			}
			if q.UserAnswer != "" {
				fmt.Fprintf(out, "   Your answer: %s\n", q.UserAnswer)
			}
			if q.Feedback != "" {
				fmt.Fprintf(out, "   Feedback: %s\n", q.Feedback)
			}
		}
		return nil
	})
}

func runPrepNew(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		r, err := resumeOrActive(a.Store, prepResumeID)
		if err != nil {
			return err
		}
		title := prepTitle
		if prepJobID != "" {
			j, err := a.Store.Job(prepJobID)
			if err != nil {
				return err
			}
			if title == "" {
				title = "Interview Prep - " + j.Title
			}
		}
		if title == "" {
			title = "Interview Prep - " + r.Title
		}

		questions := []types.InterviewQuestion{}
		if !prepEmpty {
			questions = seed.Questions()
		}
		p, err := a.Store.AddInterviewPrep(ctx, types.InterviewPrep{
			Title:     title,
			ResumeID:  r.ID,
			JobID:     prepJobID,
			Questions: questions,
			Notes:     prepNotes,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created interview prep %s (%s) with %d questions\n", p.ID, p.Title, len(p.Questions))
		return nil
	})
}

func runPrepAsk(cmd *cobra.Command, args []string) error {
	difficulty, ok := matchFold(prepDifficulty, prepDifficulties)
	if !ok {
		return fmt.Errorf("unknown difficulty %q", prepDifficulty)
	}
	return withApp(cmd, func(ctx context.Context, a *App) error {
		p, err := a.Store.InterviewPrep(args[0])
		if err != nil {
			return err
		}
		questions := append(slices.Clone(p.Questions), types.InterviewQuestion{
			Question:   args[1],
			Category:   prepCategory,
			Difficulty: difficulty,
		})
		p, err = a.Store.UpdateInterviewPrep(ctx, p.ID, types.InterviewPrepPatch{Questions: questions})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added question %d to %s\n", len(p.Questions), p.Title)
		return nil
	})
}

func runPrepAnswer(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		return fmt.Errorf("question number must be a positive integer, got %q", args[1])
	}
	return withApp(cmd, func(ctx context.Context, a *App) error {
		p, err := a.Store.InterviewPrep(args[0])
		if err != nil {
			return err
		}
		if n > len(p.Questions) {
			return fmt.Errorf("prep %s has %d questions", p.ID, len(p.Questions))
		}
		questions := slices.Clone(p.Questions)
		questions[n-1].UserAnswer = args[2]
		if cmd.Flags().Changed("feedback") {
			questions[n-1].Feedback = prepFeedback
		}
		if _, err := a.Store.UpdateInterviewPrep(ctx, p.ID, types.InterviewPrepPatch{Questions: questions}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved answer to question %d\n", n)
		return nil
	})
}

func runPrepDelete(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *App) error {
		if err := a.Store.DeleteInterviewPrep(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted interview prep %s\n", args[0])
		return nil
	})
}
