/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tags.go
Description: Tags command. Lists the tag vocabulary with the component each preset
catalog maps it to, after applying configured overrides to the selected preset.
*/

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/kleascm/recordguess/pkg/catalogs"
	"github.com/kleascm/recordguess/pkg/inference"
	"github.com/spf13/cobra"
)

var tagDescriptions = map[inference.Tag]string{
	inference.TagArray:          "arrays of objects, children inferred from their keys",
	inference.TagBoolean:        "true/false values",
	inference.TagDate:           "dates and date strings",
	inference.TagEmail:          "string field named email",
	inference.TagID:             "field named id",
	inference.TagNumber:         "integers and finite numbers",
	inference.TagReference:      "field ending in _id, pointing at another resource",
	inference.TagReferenceArray: "field ending in _ids, pointing at other resources",
	inference.TagRichText:       "strings holding HTML markup",
	inference.TagString:         "everything else, and the fallback for missing tags",
	inference.TagURL:            "string field named url",
}

// ListTags prints the tag vocabulary and the component of every preset per tag
func ListTags(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	config, err := CatalogConfigFromViper()
	if err != nil {
		return fmt.Errorf("invalid catalog configuration: %w", err)
	}
	selected, err := config.Build()
	if err != nil {
		return err
	}

	var presets []*catalogs.Preset
	for _, name := range catalogs.Names() {
		if name == selected.Name {
			presets = append(presets, selected)
			continue
		}
		preset, _ := catalogs.ByName(name)
		presets = append(presets, preset)
	}

	writeTags(os.Stdout, presets, selected.Name)
	return nil
}

func writeTags(w io.Writer, presets []*catalogs.Preset, selected string) {
	fmt.Fprint(w, banner("🏷️  recordguess - Tags"))
	fmt.Fprintln(w)

	header := column(headingStyle, 16, "tag")
	components := make([]map[inference.Tag]string, len(presets))
	for i, preset := range presets {
		title := preset.Name
		if preset.Name == selected {
			title += "*"
		}
		header += column(headingStyle, 22, title)
		components[i] = catalogs.Components(preset.Catalog)
	}
	fmt.Fprintln(w, "  "+header)

	for _, tag := range inference.Tags() {
		line := column(tagStyle, 16, string(tag))
		for i := range presets {
			component, ok := components[i][tag]
			switch {
			case !ok:
				line += column(mutedStyle, 22, "(string)")
			case component == "-":
				line += column(failStyle, 22, "disabled")
			default:
				line += column(plainStyle, 22, component)
			}
		}
		fmt.Fprintln(w, "  "+line+mutedStyle.Render(tagDescriptions[tag]))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, mutedStyle.Render("* selected preset with configured overrides applied"))
}
