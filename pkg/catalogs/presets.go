/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: presets.go
Description: Built-in type catalogs for the three views an admin UI generates: a show
layout of fields, a list table of fields and an edit form of inputs. Each preset comes
with the container descriptor wrapping its inferred elements.
*/

package catalogs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kleascm/recordguess/pkg/inference"
)

// Preset names
const (
	PresetShow = "show"
	PresetList = "list"
	PresetEdit = "edit"
)

// Preset is a named catalog plus the container its elements are wrapped in
type Preset struct {
	Name      string
	Catalog   *inference.Catalog
	Container inference.Descriptor
}

// Wrap builds the container element around inferred elements
func (p *Preset) Wrap(elements []*inference.InferredElement) *inference.InferredElement {
	return inference.NewInferredElement(p.Container, inference.Props{}, elements)
}

// Names returns the available preset names
func Names() []string {
	return []string{PresetEdit, PresetList, PresetShow}
}

// ByName returns a fresh copy of the named preset
func ByName(name string) (*Preset, error) {
	switch strings.ToLower(name) {
	case PresetShow:
		return Show(), nil
	case PresetList:
		return List(), nil
	case PresetEdit:
		return Edit(), nil
	}
	return nil, fmt.Errorf("unknown catalog preset: %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Show returns the field catalog used for read-only layouts
func Show() *Preset {
	catalog := inference.NewCatalog()
	for tag, name := range map[inference.Tag]string{
		inference.TagArray:          "ArrayField",
		inference.TagBoolean:        "BooleanField",
		inference.TagDate:           "DateField",
		inference.TagEmail:          "EmailField",
		inference.TagID:             "TextField",
		inference.TagNumber:         "NumberField",
		inference.TagReference:      "ReferenceField",
		inference.TagReferenceArray: "ReferenceArrayField",
		inference.TagRichText:       "RichTextField",
		inference.TagString:         "TextField",
		inference.TagURL:            "UrlField",
	} {
		catalog.Set(tag, inference.NewDescriptor(name))
	}

	return &Preset{
		Name:      PresetShow,
		Catalog:   catalog,
		Container: inference.Descriptor{Name: "SimpleShowLayout", Represent: block("SimpleShowLayout", "")},
	}
}

// List returns the field catalog used for tables. Rich text is never shown in a table.
func List() *Preset {
	catalog := inference.NewCatalog()
	catalog.Set(inference.TagArray, inference.NewDescriptor("ArrayField"))
	for tag, name := range map[inference.Tag]string{
		inference.TagBoolean: "BooleanField",
		inference.TagDate:    "DateField",
		inference.TagEmail:   "EmailField",
		inference.TagID:      "TextField",
		inference.TagNumber:  "NumberField",
		inference.TagString:  "TextField",
		inference.TagURL:     "UrlField",
	} {
		catalog.Set(tag, leaf(name))
	}
	catalog.Set(inference.TagReference, reference("ReferenceField", "TextField"))
	catalog.Set(inference.TagReferenceArray, reference("ReferenceArrayField", "TextField"))
	catalog.Disable(inference.TagRichText)

	return &Preset{
		Name:      PresetList,
		Catalog:   catalog,
		Container: inference.Descriptor{Name: "Datagrid", Represent: block("Datagrid", ` rowClick="edit"`)},
	}
}

// Edit returns the input catalog used for forms. Rich text editing is disabled.
func Edit() *Preset {
	catalog := inference.NewCatalog()
	catalog.Set(inference.TagArray, inference.NewDescriptor("ArrayInput"))
	for tag, name := range map[inference.Tag]string{
		inference.TagBoolean: "BooleanInput",
		inference.TagDate:    "DateInput",
		inference.TagEmail:   "TextInput",
		inference.TagID:      "TextInput",
		inference.TagNumber:  "NumberInput",
		inference.TagString:  "TextInput",
		inference.TagURL:     "TextInput",
	} {
		catalog.Set(tag, leaf(name))
	}
	catalog.Set(inference.TagReference, reference("ReferenceInput", "TextInput"))
	catalog.Set(inference.TagReferenceArray, reference("ReferenceArrayInput", "TextInput"))
	catalog.Disable(inference.TagRichText)

	return &Preset{
		Name:      PresetEdit,
		Catalog:   catalog,
		Container: inference.Descriptor{Name: "SimpleForm", Represent: block("SimpleForm", "")},
	}
}

// Components lists the component each tag maps to in a catalog ("-" when disabled)
func Components(catalog *inference.Catalog) map[inference.Tag]string {
	components := make(map[inference.Tag]string)
	for _, tag := range inference.Tags() {
		d, state := catalog.Lookup(tag)
		switch state {
		case inference.EntryPresent:
			components[tag] = inference.DisplayName(d.Name)
		case inference.EntryDisabled:
			components[tag] = "-"
		}
	}
	return components
}

// SortedTags returns the keys of a component map in tag order
func SortedTags(components map[inference.Tag]string) []inference.Tag {
	tags := make([]inference.Tag, 0, len(components))
	for tag := range components {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// leaf describes a component rendered as <Name source="..." />
func leaf(name string) inference.Descriptor {
	d := inference.NewDescriptor(name)
	d.Represent = func(props inference.Props, _ []string) string {
		return fmt.Sprintf("<%s source=%q />", name, props.Source)
	}
	return d
}

// reference describes a reference component with a nested identifier
func reference(name, idName string) inference.Descriptor {
	d := inference.NewDescriptor(name)
	d.Represent = func(props inference.Props, _ []string) string {
		return fmt.Sprintf("<%s source=%q reference=%q><%s source=\"id\" /></%s>", name, props.Source, props.Reference, idName, name)
	}
	return d
}

// block renders a container with one child per line
func block(name, attributes string) inference.RepresentFunc {
	return func(_ inference.Props, children []string) string {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("<%s%s>\n", name, attributes))
		for _, child := range children {
			for _, line := range strings.Split(child, "\n") {
				b.WriteString("  ")
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		b.WriteString(fmt.Sprintf("</%s>", name))
		return b.String()
	}
}
