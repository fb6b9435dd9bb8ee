/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: aggregate_test.go
Description: Tests for the record flattener and the record/records aggregators.
*/

package inference_test

import (
	"testing"

	"github.com/kleascm/recordguess/pkg/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenKeepsFirstSeenOrder(t *testing.T) {
	records := []inference.Record{
		{{Name: "id", Value: 1}, {Name: "title", Value: "Lorem"}},
		{{Name: "views", Value: 12}, {Name: "id", Value: 2}, {Name: "title", Value: nil}},
		{{Name: "id", Value: 3}},
	}

	fields := inference.Flatten(records)
	assert.Equal(t, 3, fields.Len())
	assert.Equal(t, []string{"id", "title", "views"}, fields.Names())
	assert.Equal(t, []interface{}{1, 2, 3}, fields.Values("id"))
	assert.Equal(t, []interface{}{"Lorem"}, fields.Values("title"))
	assert.Equal(t, []interface{}{12}, fields.Values("views"))
	assert.Nil(t, fields.Values("missing"))
}

func TestFlattenDoesNotRecurse(t *testing.T) {
	address := inference.Record{{Name: "street", Value: "Baker Street"}}
	fields := inference.Flatten([]inference.Record{{{Name: "address", Value: address}}})

	assert.Equal(t, []string{"address"}, fields.Names())
	assert.Equal(t, []interface{}{address}, fields.Values("address"))
}

func TestRecordFromMapSortsKeys(t *testing.T) {
	record := inference.RecordFromMap(map[string]interface{}{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, record.Keys())

	value, ok := record.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, value)

	_, ok = record.Get("z")
	assert.False(t, ok)
}

func TestInferFromRecordEndToEnd(t *testing.T) {
	catalog := catalogOf(map[inference.Tag]string{
		inference.TagID:        "IdMarker",
		inference.TagString:    "StringMarker",
		inference.TagNumber:    "NumberMarker",
		inference.TagReference: "ReferenceMarker",
	})
	record := inference.NewRecord(
		inference.Field{Name: "id", Value: 1},
		inference.Field{Name: "title", Value: "Lorem"},
		inference.Field{Name: "views", Value: 254},
		inference.Field{Name: "user_id", Value: 123},
	)

	elements := inference.InferFromRecord(record, catalog)
	require.Len(t, elements, 4)
	assert.Equal(t, node("IdMarker", "id"), elements[0])
	assert.Equal(t, node("StringMarker", "title"), elements[1])
	assert.Equal(t, node("NumberMarker", "views"), elements[2])
	assert.Equal(t, inference.Node{
		Component: "ReferenceMarker",
		Props: inference.Props{
			Source:    "user_id",
			Reference: "users",
			Child:     &inference.Props{Source: "id"},
		},
		Children: []interface{}{node("IdMarker", "id")},
	}, elements[3])
}

func TestInferFromRecordDropsSuppressedFields(t *testing.T) {
	catalog := catalogOf(map[inference.Tag]string{
		inference.TagString: "Text",
		inference.TagNumber: "Num",
	})
	catalog.Disable(inference.TagRichText)

	record := inference.Record{
		{Name: "title", Value: "Lorem"},
		{Name: "body", Value: "<p>Hello</p>"},
		{Name: "views", Value: 3},
	}

	inferred := inference.InferredFromRecord(record, catalog)
	require.Len(t, inferred, 2)
	assert.Equal(t, "title", inferred[0].Props().Source)
	assert.Equal(t, "views", inferred[1].Props().Source)
	assert.Equal(t, `<Num source="views" />`, inferred[1].Representation())
}

func TestInferFromRecordsRequiredFlag(t *testing.T) {
	catalog := catalogOf(map[inference.Tag]string{
		inference.TagString: "Text",
		inference.TagNumber: "Num",
	})
	records := []inference.Record{
		{{Name: "a", Value: 1}},
		{{Name: "a", Value: 2}, {Name: "b", Value: 3}},
	}

	inferred := inference.InferredFromRecords(records, catalog, true)
	require.Len(t, inferred, 2)
	assert.Equal(t, "a", inferred[0].Props().Source)
	assert.True(t, inferred[0].Props().Required)
	assert.Equal(t, "b", inferred[1].Props().Source)
	assert.False(t, inferred[1].Props().Required)

	unchecked := inference.InferredFromRecords(records, catalog, false)
	require.Len(t, unchecked, 2)
	assert.False(t, unchecked[0].Props().Required)

	elements := inference.InferFromRecords(records, catalog, true)
	assert.Equal(t, inference.Node{
		Component: "Num",
		Props:     inference.Props{Source: "a", Required: true},
	}, elements[0])
}

func TestInferFromRecordsCountsRepeatedNamesOnce(t *testing.T) {
	catalog := catalogOf(map[inference.Tag]string{inference.TagNumber: "Num"})
	records := []inference.Record{
		inference.NewRecord(inference.Field{Name: "a", Value: 1}, inference.Field{Name: "a", Value: 2}),
		inference.NewRecord(inference.Field{Name: "b", Value: 1}),
	}

	fields := inference.Flatten(records)
	assert.Equal(t, []interface{}{1, 2}, fields.Values("a"))
	assert.Equal(t, 1, fields.Count("a"))
	assert.Equal(t, 1, fields.Count("b"))
	assert.Equal(t, 0, fields.Count("missing"))

	inferred := inference.InferredFromRecords(records, catalog, true)
	require.Len(t, inferred, 2)
	assert.Equal(t, "a", inferred[0].Props().Source)
	assert.False(t, inferred[0].Props().Required)
	assert.False(t, inferred[1].Props().Required)
}

func TestInferFromRecordsRequiredNestedField(t *testing.T) {
	catalog := catalogOf(map[inference.Tag]string{inference.TagString: "Text"})
	records := []inference.Record{
		{{Name: "author", Value: inference.Record{{Name: "name", Value: "Ann"}}}},
		{{Name: "author", Value: inference.Record{{Name: "name", Value: "Bob"}}}},
	}

	inferred := inference.InferredFromRecords(records, catalog, true)
	require.Len(t, inferred, 1)
	assert.Equal(t, inference.Props{Source: "author.name", Required: true}, inferred[0].Props())
}

func TestInferFromRecordsMixedValues(t *testing.T) {
	catalog := inference.NewCatalog()
	for _, tag := range inference.Tags() {
		catalog.Set(tag, inference.NewDescriptor(string(tag)))
	}
	records := []inference.Record{
		{{Name: "id", Value: 1}, {Name: "published", Value: true}, {Name: "score", Value: 4.5}, {Name: "tags", Value: []interface{}{"a"}}},
		{{Name: "id", Value: 2}, {Name: "published", Value: "no"}, {Name: "score", Value: 3}},
	}

	inferred := inference.InferredFromRecords(records, catalog, true)
	tags := make([]inference.Tag, len(inferred))
	for i, ie := range inferred {
		tags[i] = ie.Tag()
	}
	assert.Equal(t, []inference.Tag{
		inference.TagID,
		inference.TagString,
		inference.TagNumber,
		inference.TagString,
	}, tags)
}

func TestEnginesAreIndependent(t *testing.T) {
	catalog := catalogOf(map[inference.Tag]string{inference.TagString: "Text"})
	record := inference.Record{{Name: "title", Value: "Lorem"}}

	a := inference.NewEngine(nil).InferFromRecord(record, catalog)
	b := inference.NewEngine(&inference.EngineConfig{MaxDepth: 1}).InferFromRecord(record, catalog)
	assert.Equal(t, a, b)
	assert.Len(t, inference.Elements(nil), 0)
}

func TestInspectRecordsKeepsSuppressedFields(t *testing.T) {
	catalog := catalogOf(map[inference.Tag]string{inference.TagString: "Text"})
	catalog.Disable(inference.TagRichText)
	records := []inference.Record{
		{{Name: "title", Value: "Lorem"}, {Name: "body", Value: "<p>Hello</p>"}},
	}

	inspected := inference.NewEngine(nil).InspectRecords(records, catalog, true)
	require.Len(t, inspected, 2)
	assert.True(t, inspected[0].HasElement())
	assert.False(t, inspected[1].HasElement())
	assert.Equal(t, inference.TagRichText, inspected[1].Tag())
	assert.Equal(t, "body", inspected[1].Props().Source)
	assert.True(t, inspected[1].Props().Required)
	assert.Empty(t, inspected[1].Representation())
}
