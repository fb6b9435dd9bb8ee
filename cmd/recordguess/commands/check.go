/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: check.go
Description: Self-check command. Validates logging, catalog and source configuration and
makes sure the source is reachable and yields records before an inference run.
*/

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// PerformSelfCheck runs the configuration and source checks
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Print(banner("🔍 recordguess - Self-Check"))
	fmt.Println()

	checks := []struct {
		name     string
		function func() error
	}{
		{"Configuration", LoadConfig},
		{"Logging", checkLogging},
		{"Catalog", checkCatalog},
		{"Source", func() error { return checkSource(cmd.Context(), args) }},
	}

	passed := 0
	total := len(checks)

	for _, check := range checks {
		fmt.Printf("🔍 %s... ", check.name)
		if err := check.function(); err != nil {
			fmt.Println(failStyle.Render(fmt.Sprintf("❌ FAILED: %v", err)))
		} else {
			fmt.Println(okStyle.Render("✅ PASSED"))
			passed++
		}
	}

	fmt.Println()
	fmt.Printf("📊 Results: %d/%d checks passed\n", passed, total)

	if passed == total {
		fmt.Println("✨ All checks passed! Ready to infer.")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Please address the issues before inferring.")
	return fmt.Errorf("%d/%d checks failed", total-passed, total)
}

// checkLogging validates the logger config and that the log directory is writable
func checkLogging() error {
	config := LoggerConfigFromViper()
	if err := config.Validate(); err != nil {
		return err
	}
	if config.OutputDir == "" {
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	probe, err := os.CreateTemp(config.OutputDir, ".check-*")
	if err != nil {
		return fmt.Errorf("log directory not writable: %w", err)
	}
	probe.Close()
	return os.Remove(probe.Name())
}

func checkCatalog() error {
	config, err := CatalogConfigFromViper()
	if err != nil {
		return err
	}
	_, err = config.Build()
	return err
}

// checkSource fetches from the configured source within its timeout
func checkSource(ctx context.Context, args []string) error {
	config := SourceConfigFromViper(args)
	src, err := buildSource(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, config.ParseTimeout())
	defer cancel()

	records, err := src.FetchRecords(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("source returned no records")
	}
	if viper.GetBool("verbose") {
		fmt.Printf("(%d records) ", len(records))
	}
	return nil
}
