/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the recordguess commands. Configuration loading, logging
setup and the translation of viper settings into catalog and source configs.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/kleascm/recordguess/pkg/catalogs"
	"github.com/kleascm/recordguess/pkg/logging"
	"github.com/kleascm/recordguess/pkg/source"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// RECORDGUESS_SOURCE_PATH sets source.path
	viper.SetEnvPrefix("RECORDGUESS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	return nil
}

// LoggerConfigFromViper builds the logger configuration from the loaded settings
func LoggerConfigFromViper() *logging.LoggerConfig {
	config := logging.DefaultLoggerConfig()
	if level := viper.GetString("log_level"); level != "" {
		config.Level = logging.LogLevel(strings.ToLower(level))
	}
	if format := viper.GetString("log_format"); format != "" {
		config.Format = logging.LogFormat(strings.ToLower(format))
	}
	if viper.GetBool("json_logs") {
		config.Format = logging.LogFormatJSON
	}
	if viper.IsSet("log_dir") {
		config.OutputDir = viper.GetString("log_dir")
	}
	if maxFiles := viper.GetInt("log_max_files"); maxFiles > 0 {
		config.MaxFiles = maxFiles
	}
	config.Colors = !viper.GetBool("no_color")
	return config
}

// SetupLogging configures the logging system
func SetupLogging() (*logging.Logger, error) {
	config := LoggerConfigFromViper()
	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, err
	}

	// Keep the standard logger in line for packages that log through it
	level, err := logrus.ParseLevel(string(config.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)

	return logger, nil
}

// CatalogConfigFromViper merges the config file overrides with --override flags
func CatalogConfigFromViper() (*catalogs.CatalogConfig, error) {
	config := catalogs.DefaultCatalogConfig()
	if preset := viper.GetString("catalog.preset"); preset != "" {
		config.Preset = preset
	}
	for tag, component := range viper.GetStringMapString("catalog.overrides") {
		config.Overrides[tag] = component
	}

	flagged, err := catalogs.ParseOverrides(viper.GetStringSlice("catalog.override"))
	if err != nil {
		return nil, err
	}
	for tag, component := range flagged {
		config.Overrides[tag] = component
	}

	return config, config.Validate()
}

// SourceConfigFromViper builds the source configuration; a positional argument is the path
func SourceConfigFromViper(args []string) *source.SourceConfig {
	config := source.DefaultSourceConfig()

	if kind := viper.GetString("source.kind"); kind != "" {
		config.Kind = kind
	}
	config.Path = viper.GetString("source.path")
	if len(args) > 0 {
		config.Path = args[0]
	}
	config.URL = viper.GetString("source.url")
	config.Format = viper.GetString("source.format")
	if method := viper.GetString("source.method"); method != "" {
		config.Method = method
	}
	if headers := viper.GetStringSlice("source.headers"); len(headers) > 0 {
		config.Headers = headers
	}
	config.Body = viper.GetString("source.body")
	config.Envelope = viper.GetString("source.envelope")
	config.Table = viper.GetString("source.table")
	config.Query = viper.GetString("source.query")
	if viper.IsSet("source.limit") {
		config.Limit = viper.GetInt("source.limit")
	}
	if viper.IsSet("source.dedup") {
		config.Dedup = viper.GetBool("source.dedup")
	}
	if timeout := viper.GetString("source.timeout"); timeout != "" {
		config.Timeout = timeout
	}

	// A URL alone implies an API source
	if config.URL != "" && config.Path == "" && !viper.IsSet("source.kind") {
		config.Kind = source.KindAPI
	}

	return config
}

// buildSource creates the record source from the loaded settings
func buildSource(args []string) (source.RecordSource, error) {
	src, err := source.BuildSourceFromConfig(SourceConfigFromViper(args))
	if err != nil {
		return nil, fmt.Errorf("invalid source configuration: %w", err)
	}
	return src, nil
}
