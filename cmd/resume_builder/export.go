package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export [resume-id]",
	Short: "Export a resume as text, ATS text, HTML, or PDF",
	Long: "Render a resume (default: the active one) in one or more formats and write the files " +
		"to the output directory. 'all' exports every format.",
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var (
	exportFormats []string
	exportOut     string
	exportStdout  bool
)

func init() {
	exportCmd.Flags().StringSliceVarP(&exportFormats, "format", "f", nil, "Formats: txt, ats, html, pdf, or all (default: pdf)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Output directory")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write a single format to stdout instead of a file")

	rootCmd.AddCommand(exportCmd)
}

// parseFormats expands "all" and rejects unknown names, keeping first occurrences.
func parseFormats(names []string) ([]rendering.Format, error) {
	if len(names) == 0 {
		return []rendering.Format{rendering.FormatPDF}, nil
	}
	var out []rendering.Format
	seen := make(map[rendering.Format]bool)
	add := func(f rendering.Format) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			for _, f := range rendering.Formats {
				add(f)
			}
			continue
		}
		f, err := rendering.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		add(f)
	}
	return out, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	formats, err := parseFormats(exportFormats)
	if err != nil {
		return err
	}
	if exportStdout && len(formats) != 1 {
		return fmt.Errorf("--stdout needs exactly one format")
	}

	return withApp(cmd, func(ctx context.Context, a *App) error {
		var id string
		if len(args) == 1 {
			id = args[0]
		}
		r, err := resumeOrActive(a.Store, id)
		if err != nil {
			return err
		}

		opts := rendering.PDFOptions{MarginMM: a.Config.PageMarginMM}
		artifacts, err := rendering.ExportBundle(ctx, r, formats, opts)
		if err != nil {
			return err
		}

		if exportStdout {
			_, err := cmd.OutOrStdout().Write(artifacts[0].Data)
			return err
		}

		if err := os.MkdirAll(exportOut, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		for _, art := range artifacts {
			path := filepath.Join(exportOut, art.Filename)
			if err := os.WriteFile(path, art.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			a.Logger.Debug("exported resume",
				zap.String("resume_id", r.ID),
				zap.String("format", string(art.Format)),
				zap.Int("bytes", len(art.Data)))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		}
		return nil
	})
}
