// Package main provides the resume-builder command line interface.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-builder",
	Short: "Build, analyze, and export resumes from the command line",
	Long: "resume-builder keeps resumes, cover letters, saved jobs, applications, and interview prep " +
		"on the local device, and exports resumes as text, ATS text, HTML, or PDF.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	dataDir    string
	backend    string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding persisted state")
	rootCmd.PersistentFlags().StringVar(&backend, "storage", "", "Storage backend: file, sqlite, or memory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed output and debug logs")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
