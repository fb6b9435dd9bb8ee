/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for recordguess. Guesses field types from sample records
loaded from files, web APIs or SQLite tables and prints the admin UI elements a catalog
builds for them.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kleascm/recordguess/cmd/recordguess/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool
	noColor    bool
	verbose    bool

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "recordguess",
		Short: "recordguess - guess admin UI fields from sample records",
		Long: `recordguess looks at sample records, guesses a semantic type for every field
(id, reference, date, email, rich text, number, ...) from naming conventions and value
shapes, and builds the fields, columns or inputs a catalog maps those types to.`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print extra detail")

	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory (empty disables log files)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")

	// Catalog and source flags are shared by infer, tags and check
	rootCmd.PersistentFlags().String("preset", "show", "Catalog preset (show, list, edit)")
	rootCmd.PersistentFlags().StringSlice("override", []string{}, "Catalog override tag=Component (false disables, absent falls back to string)")

	rootCmd.PersistentFlags().String("source", "", "Source kind (file, api, sqlite)")
	rootCmd.PersistentFlags().String("url", "", "API endpoint URL")
	rootCmd.PersistentFlags().String("format", "", "Document format (json, yaml, ndjson)")
	rootCmd.PersistentFlags().String("method", "GET", "API HTTP method (GET, POST)")
	rootCmd.PersistentFlags().StringSlice("header", []string{}, "API header (e.g. Authorization: Bearer ...)")
	rootCmd.PersistentFlags().String("body", "", "API POST body")
	rootCmd.PersistentFlags().String("envelope", "", "Key of the record list in an object document")
	rootCmd.PersistentFlags().String("table", "", "SQLite table to sample")
	rootCmd.PersistentFlags().String("query", "", "SQLite SELECT to sample instead of a table")
	rootCmd.PersistentFlags().Int("limit", 100, "Maximum SQLite rows to sample (0 = all)")
	rootCmd.PersistentFlags().Bool("dedup", true, "Skip duplicate records")
	rootCmd.PersistentFlags().String("timeout", "10s", "Timeout for API requests and source checks")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("catalog.preset", rootCmd.PersistentFlags().Lookup("preset"))
	viper.BindPFlag("catalog.override", rootCmd.PersistentFlags().Lookup("override"))
	viper.BindPFlag("source.kind", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("source.url", rootCmd.PersistentFlags().Lookup("url"))
	viper.BindPFlag("source.format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("source.method", rootCmd.PersistentFlags().Lookup("method"))
	viper.BindPFlag("source.headers", rootCmd.PersistentFlags().Lookup("header"))
	viper.BindPFlag("source.body", rootCmd.PersistentFlags().Lookup("body"))
	viper.BindPFlag("source.envelope", rootCmd.PersistentFlags().Lookup("envelope"))
	viper.BindPFlag("source.table", rootCmd.PersistentFlags().Lookup("table"))
	viper.BindPFlag("source.query", rootCmd.PersistentFlags().Lookup("query"))
	viper.BindPFlag("source.limit", rootCmd.PersistentFlags().Lookup("limit"))
	viper.BindPFlag("source.dedup", rootCmd.PersistentFlags().Lookup("dedup"))
	viper.BindPFlag("source.timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	// Add infer command
	inferCmd := &cobra.Command{
		Use:   "infer [path]",
		Short: "Guess field types from sample records",
		Long: `Load sample records from a file, web API or SQLite table, guess a type for every
field and print the elements the selected catalog preset builds for them. Fields
present in every record are marked as required.`,
		Args: cobra.MaximumNArgs(1),
		RunE: commands.RunInfer,
	}
	inferCmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
	inferCmd.Flags().Bool("required", true, "Mark fields present in every record as required")
	inferCmd.Flags().Int("max-depth", 0, "Nesting limit for nested objects and arrays (0 = default)")
	inferCmd.Flags().String("save-dir", "", "Also write the JSON report under this directory")

	viper.BindPFlag("output", inferCmd.Flags().Lookup("output"))
	viper.BindPFlag("infer.required", inferCmd.Flags().Lookup("required"))
	viper.BindPFlag("infer.max_depth", inferCmd.Flags().Lookup("max-depth"))
	viper.BindPFlag("infer.save_dir", inferCmd.Flags().Lookup("save-dir"))

	rootCmd.AddCommand(inferCmd)

	// Add tags command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tags",
		Short: "List the tag vocabulary and the component of every preset",
		RunE:  commands.ListTags,
	})

	// Add check command for built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check [path]",
		Short: "Validate configuration and source reachability",
		Long: `Validate logging, catalog and source configuration, then fetch from the configured
source to make sure it yields records. Useful for CI/CD integration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: commands.PerformSelfCheck,
	})

	// Add logs command
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Show log statistics and an analysis of past runs",
		RunE:  commands.ShowLogs,
	}
	logsCmd.Flags().Bool("cleanup", false, "Remove log files beyond --log-max-files")
	viper.BindPFlag("logs.cleanup", logsCmd.Flags().Lookup("cleanup"))
	rootCmd.AddCommand(logsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
