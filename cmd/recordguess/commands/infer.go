/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Infer command implementation. Loads sample records from the configured source,
guesses a tag for every field, builds the preset's elements and prints a per-field summary
with the full representation, or the same report as JSON.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kleascm/recordguess/pkg/catalogs"
	"github.com/kleascm/recordguess/pkg/inference"
	"github.com/kleascm/recordguess/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// FieldReport describes what was inferred for one field
type FieldReport struct {
	Field          string `json:"field"`
	Tag            string `json:"tag"`
	Component      string `json:"component,omitempty"`
	Required       bool   `json:"required"`
	Reference      string `json:"reference,omitempty"`
	Dropped        bool   `json:"dropped,omitempty"`
	Representation string `json:"representation,omitempty"`
}

// InferenceReport is the outcome of an infer run
type InferenceReport struct {
	Source         string        `json:"source"`
	Records        int           `json:"records"`
	Preset         string        `json:"preset"`
	Fields         []FieldReport `json:"fields"`
	Representation string        `json:"representation"`
}

// Dropped counts the fields suppressed by the catalog
func (r *InferenceReport) Dropped() int {
	dropped := 0
	for _, field := range r.Fields {
		if field.Dropped {
			dropped++
		}
	}
	return dropped
}

// BuildReport summarizes inspected fields and wraps the produced elements in the preset container
func BuildReport(preset *catalogs.Preset, sourceName string, records int, inspected []*inference.InferredElement) *InferenceReport {
	report := &InferenceReport{
		Source:  sourceName,
		Records: records,
		Preset:  preset.Name,
		Fields:  make([]FieldReport, 0, len(inspected)),
	}

	var produced []*inference.InferredElement
	for _, ie := range inspected {
		props := ie.Props()
		field := FieldReport{
			Field:     props.Source,
			Tag:       string(ie.Tag()),
			Required:  props.Required,
			Reference: props.Reference,
			Dropped:   !ie.HasElement(),
		}
		if node, ok := ie.Element().(inference.Node); ok {
			field.Component = inference.DisplayName(node.Component)
		}
		if ie.HasElement() {
			field.Representation = ie.Representation()
			produced = append(produced, ie)
		}
		report.Fields = append(report.Fields, field)
	}

	report.Representation = preset.Wrap(produced).Representation()
	return report
}

// RunInfer runs inference over the configured source
func RunInfer(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	output := strings.ToLower(viper.GetString("output"))
	if output != "text" && output != "json" {
		return fmt.Errorf("unsupported output: %s (expected text or json)", output)
	}

	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	catalogConfig, err := CatalogConfigFromViper()
	if err != nil {
		return fmt.Errorf("invalid catalog configuration: %w", err)
	}
	preset, err := catalogConfig.Build()
	if err != nil {
		return err
	}

	src, err := buildSource(args)
	if err != nil {
		return err
	}

	start := time.Now()
	records, err := src.FetchRecords(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	logger.LogSource(src.Name(), len(records), time.Since(start), map[string]interface{}{
		"description": src.Description(),
	})
	if len(records) == 0 {
		return fmt.Errorf("no records found: %s", src.Description())
	}

	engine := inference.NewEngine(&inference.EngineConfig{
		MaxDepth: viper.GetInt("infer.max_depth"),
		Logger:   logger.Entry(map[string]interface{}{"preset": preset.Name}),
	})

	start = time.Now()
	inspected := engine.InspectRecords(records, preset.Catalog, viper.GetBool("infer.required"))
	report := BuildReport(preset, src.Description(), len(records), inspected)

	for _, field := range report.Fields {
		if field.Dropped {
			logger.LogSuppressed(field.Field, field.Tag, nil)
		} else {
			logger.LogField(field.Field, field.Tag, field.Required, nil)
		}
	}
	logger.LogInference(preset.Name, len(records), len(report.Fields)-report.Dropped(), report.Dropped(), time.Since(start), nil)

	if dir := viper.GetString("infer.save_dir"); dir != "" {
		path, err := utils.WriteReport(dir, preset.Name, src.Description(), report)
		if err != nil {
			return err
		}
		logger.Info("Report saved", map[string]interface{}{"path": path})
	}

	if output == "json" {
		return writeJSON(os.Stdout, report)
	}
	writeText(os.Stdout, report)
	return nil
}

func writeJSON(w io.Writer, report *InferenceReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeText(w io.Writer, report *InferenceReport) {
	fmt.Fprint(w, banner("🧬 recordguess - Inference"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "📁 Source:  %s\n", report.Source)
	fmt.Fprintf(w, "📊 Records: %d\n", report.Records)
	fmt.Fprintf(w, "🎯 Preset:  %s\n", report.Preset)
	fmt.Fprintln(w)

	width := len("field")
	for _, field := range report.Fields {
		if len(field.Field) > width {
			width = len(field.Field)
		}
	}
	width += 2

	fmt.Fprintln(w, headingStyle.Render("Fields"))
	for _, field := range report.Fields {
		line := column(plainStyle, width, field.Field) + column(tagStyle, 16, field.Tag)
		switch {
		case field.Dropped:
			line += failStyle.Render("dropped")
		default:
			line += field.Component
			if field.Reference != "" {
				line += mutedStyle.Render(" -> " + field.Reference)
			}
			if field.Required {
				line += okStyle.Render(" required")
			}
		}
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("Representation"))
	fmt.Fprintln(w, codeStyle.Render(report.Representation))
}
