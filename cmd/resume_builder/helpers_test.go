package main

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// newDataDir returns an isolated data directory with environment overrides
// cleared. Sample data is off unless seeded is set.
func newDataDir(t *testing.T, seeded bool) string {
	t.Helper()
	for _, key := range []string{
		config.EnvDataDir, config.EnvStorage, config.EnvGenerator, config.EnvModel, config.EnvAPIKey,
	} {
		t.Setenv(key, "")
	}
	t.Setenv(config.EnvLogLevel, "error")
	if seeded {
		t.Setenv(config.EnvSeed, "true")
	} else {
		t.Setenv(config.EnvSeed, "false")
	}
	return t.TempDir()
}

// resetFlags restores every flag of the command tree to its default so
// package-level flag variables do not leak between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the CLI in-process against dir and returns its output.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--data-dir", dir, "--storage", "file"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

// mustRun is run that fails the test on error.
func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := run(t, dir, args...)
	require.NoError(t, err, out)
	return out
}

// openStore reads the state the CLI persisted in dir.
func openStore(t *testing.T, dir string) *store.Store {
	t.Helper()
	p, err := storage.NewFile(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	s, err := store.Open(context.Background(), p)
	require.NoError(t, err)
	return s
}

var createdID = regexp.MustCompile(`(?:Created|Added|Saved|Imported) [a-z ]+ ([0-9a-f]{12})`)

// idFrom extracts the id printed by a create command.
func idFrom(t *testing.T, out string) string {
	t.Helper()
	m := createdID.FindStringSubmatch(out)
	require.NotNil(t, m, "no id in output: %s", out)
	return m[1]
}
