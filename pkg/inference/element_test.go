/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: element_test.go
Description: Tests for inferred elements, representation derivation and catalog states.
*/

package inference_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kleascm/recordguess/pkg/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepresentationGiven(t *testing.T) {
	catalog := inference.NewCatalog().Set(inference.TagString, inference.Descriptor{
		Name: "TextField",
		Represent: func(props inference.Props, _ []string) string {
			return "bar"
		},
	})

	ie := inference.Resolve("foo", "hello", catalog)
	assert.Equal(t, "bar", ie.Representation())
	assert.Equal(t, "bar", ie.String())
	assert.Equal(t, node("TextField", "foo"), ie.Element())
}

func TestRepresentationDerived(t *testing.T) {
	catalog := inference.NewCatalog().Set(inference.TagString, inference.NewDescriptor("DummyComponent"))

	ie := inference.Resolve("foo", "hello", catalog)
	assert.Equal(t, `<DummyComponent source="foo" />`, ie.Representation())
}

func TestRepresentationUnwrapsPureComponents(t *testing.T) {
	catalog := inference.NewCatalog().Set(inference.TagString, inference.NewDescriptor("pure(TextField)"))

	ie := inference.Resolve("address.street", "Baker Street", catalog)
	assert.Equal(t, `<TextField source="address.street" />`, ie.Representation())

	assert.Equal(t, "TextField", inference.DisplayName("pure(TextField)"))
	assert.Equal(t, "TextField", inference.DisplayName("TextField"))
	assert.Equal(t, "pure()", inference.DisplayName("pure()"))
}

func TestRepresentationReceivesChildren(t *testing.T) {
	var received []string
	catalog := inference.NewCatalog().
		Set(inference.TagNumber, inference.NewDescriptor("NumberField")).
		Set(inference.TagArray, inference.Descriptor{
			Name: "ArrayField",
			Represent: func(props inference.Props, children []string) string {
				received = children
				return fmt.Sprintf("<ArrayField source=%q>%s</ArrayField>", props.Source, strings.Join(children, ""))
			},
		})

	ie := inference.Resolve("lines", []interface{}{
		inference.Record{{Name: "qty", Value: 1}, {Name: "price", Value: 2.5}},
	}, catalog)
	assert.Equal(t, []string{`<NumberField source="qty" />`, `<NumberField source="price" />`}, received)
	assert.Equal(t, `<ArrayField source="lines"><NumberField source="qty" /><NumberField source="price" /></ArrayField>`, ie.Representation())
}

func TestContainerElement(t *testing.T) {
	catalog := inference.NewCatalog().
		Set(inference.TagString, inference.NewDescriptor("TextInput")).
		Set(inference.TagNumber, inference.NewDescriptor("NumberInput"))
	record := inference.Record{{Name: "title", Value: "Lorem"}, {Name: "views", Value: 3}}

	form := inference.NewInferredElement(inference.Descriptor{Name: "SimpleForm"}, inference.Props{}, inference.InferredFromRecord(record, catalog))
	require.True(t, form.HasElement())
	assert.Equal(t, inference.Tag(""), form.Tag())
	assert.Equal(t, "<SimpleForm>\n  <TextInput source=\"title\" />\n  <NumberInput source=\"views\" />\n</SimpleForm>", form.Representation())

	built, ok := form.Element().(inference.Node)
	require.True(t, ok)
	assert.Len(t, built.Children, 2)
}

func TestEmptyInferredElement(t *testing.T) {
	var ie *inference.InferredElement
	assert.False(t, ie.HasElement())
	assert.Nil(t, ie.Element())
	assert.Empty(t, ie.Representation())
	assert.Equal(t, inference.Props{}, ie.Props())
}

func TestCatalogStates(t *testing.T) {
	catalog := inference.NewCatalog()
	assert.Equal(t, inference.EntryAbsent, catalog.State(inference.TagDate))

	catalog.Set(inference.TagDate, inference.NewDescriptor("DateField"))
	d, state := catalog.Lookup(inference.TagDate)
	assert.Equal(t, inference.EntryPresent, state)
	assert.Equal(t, "DateField", d.Name)
	assert.NotNil(t, d.Build)

	catalog.Disable(inference.TagDate)
	assert.Equal(t, inference.EntryDisabled, catalog.State(inference.TagDate))
	assert.Equal(t, "disabled", catalog.State(inference.TagDate).String())

	catalog.Remove(inference.TagDate)
	assert.Equal(t, "absent", catalog.State(inference.TagDate).String())

	var missing *inference.Catalog
	assert.Equal(t, inference.EntryAbsent, missing.State(inference.TagString))
}

func TestCatalogClone(t *testing.T) {
	original := inference.NewCatalog().Set(inference.TagString, inference.NewDescriptor("TextField"))
	clone := original.Clone()
	clone.Disable(inference.TagString)

	assert.Equal(t, inference.EntryPresent, original.State(inference.TagString))
	assert.Equal(t, inference.EntryDisabled, clone.State(inference.TagString))
}

func TestCatalogValidate(t *testing.T) {
	valid := inference.NewCatalog().
		Set(inference.TagString, inference.NewDescriptor("TextField")).
		Disable(inference.TagRichText)
	assert.NoError(t, valid.Validate())

	unknown := inference.NewCatalog().Set(inference.Tag("table"), inference.NewDescriptor("Datagrid"))
	assert.Error(t, unknown.Validate())

	unnamed := inference.NewCatalog().Set(inference.TagString, inference.Descriptor{})
	assert.Error(t, unnamed.Validate())

	var missing *inference.Catalog
	assert.Error(t, missing.Validate())
}

func TestParseTag(t *testing.T) {
	tag, err := inference.ParseTag("referenceArray")
	require.NoError(t, err)
	assert.Equal(t, inference.TagReferenceArray, tag)

	_, err = inference.ParseTag("table")
	assert.Error(t, err)
	assert.Len(t, inference.Tags(), 11)
}
