package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jonathan/resume-builder/internal/forms"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

// dateLayout is how timestamps are shown in listings.
const dateLayout = "2006-01-02"

func newTable(cmd *cobra.Command) *tabwriter.Writer {
	return tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
}

func newPrinter(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.OutOrStdout())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// resumeOrActive returns the resume with id, or the active resume when id is empty.
func resumeOrActive(s *store.Store, id string) (types.Resume, error) {
	if id != "" {
		return s.Resume(id)
	}
	r, ok := s.ActiveResume()
	if !ok {
		return types.Resume{}, forms.ErrNoActiveResume
	}
	return r, nil
}

// marker flags the active entry in a listing.
func marker(active bool) string {
	if active {
		return "*"
	}
	return " "
}

func scoreText(score *int) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *score)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
