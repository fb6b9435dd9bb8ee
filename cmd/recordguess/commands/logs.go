/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logs.go
Description: Logs command. Reports statistics and inference event counts for past runs and
applies the retention limit to the log directory.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/recordguess/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ShowLogs prints log directory statistics and an analysis of past runs
func ShowLogs(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	config := LoggerConfigFromViper()
	if config.OutputDir == "" {
		return fmt.Errorf("file logging is disabled (empty log directory)")
	}
	manager := logging.NewLogManager(config.OutputDir, config.MaxFiles)

	fmt.Print(banner("📜 recordguess - Logs"))
	fmt.Println()

	if viper.GetBool("logs.cleanup") {
		removed, err := manager.CleanupOldLogs()
		if err != nil {
			return err
		}
		fmt.Printf("🧹 Removed %d old log files\n\n", removed)
	}

	stats, err := manager.GetLogStats()
	if err != nil {
		return err
	}
	fmt.Printf("📁 Directory: %s\n", config.OutputDir)
	fmt.Printf("📄 Files:     %d (%d bytes)\n", stats.TotalFiles, stats.TotalSize)
	if stats.TotalFiles > 0 {
		fmt.Printf("🕰️  Oldest:    %s\n", stats.OldestFile.Format("2006-01-02 15:04:05"))
		fmt.Printf("🕰️  Newest:    %s\n", stats.NewestFile.Format("2006-01-02 15:04:05"))
	}
	fmt.Println()

	analysis, err := manager.Analyze()
	if err != nil {
		return err
	}
	fmt.Println(analysis.Summary())
	return nil
}
