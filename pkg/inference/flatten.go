/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: flatten.go
Description: Ordered record model and the record flattener. Merges sample records into
one mapping from field name to the values observed for that field, in first-seen order.
*/

package inference

import "sort"

// Field is one named value of a record
type Field struct {
	Name  string
	Value interface{}
}

// Record is an ordered list of fields. Field order is meaningful: it drives the order
// of inferred elements and which key is inspected when descending into nested objects.
type Record []Field

// NewRecord creates a record from fields, keeping their order
func NewRecord(fields ...Field) Record {
	return Record(fields)
}

// RecordFromMap converts an unordered map into a record with sorted keys
func RecordFromMap(m map[string]interface{}) Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	record := make(Record, 0, len(keys))
	for _, k := range keys {
		record = append(record, Field{Name: k, Value: m[k]})
	}
	return record
}

// Keys returns field names in record order
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Name
	}
	return keys
}

// Get returns the value of the first field with the given name
func (r Record) Get(name string) (interface{}, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Len returns the number of fields
func (r Record) Len() int {
	return len(r)
}

// FieldValues maps field names to observed values, keeping first-seen order
type FieldValues struct {
	names  []string
	values map[string][]interface{}
	counts map[string]int
}

// Names returns field names in first-seen order
func (fv *FieldValues) Names() []string {
	names := make([]string, len(fv.names))
	copy(names, fv.names)
	return names
}

// Values returns the values observed for a field
func (fv *FieldValues) Values(name string) []interface{} {
	return fv.values[name]
}

// Count returns how many items provided a non-nil value for a field. A name repeated
// inside one record counts once.
func (fv *FieldValues) Count(name string) int {
	return fv.counts[name]
}

// Len returns the number of distinct fields
func (fv *FieldValues) Len() int {
	return len(fv.names)
}

// Flatten merges records into per-field value lists. A field missing from a record, or
// holding nil there, contributes nothing for that record, so lists may differ in length.
// Nested objects are kept as values; they are handled later by the resolver.
func Flatten(records []Record) *FieldValues {
	items := make([]interface{}, len(records))
	for i, r := range records {
		items[i] = r
	}
	return flattenItems(items)
}

// flattenItems flattens object-shaped items, skipping anything else
func flattenItems(items []interface{}) *FieldValues {
	fv := &FieldValues{
		values: make(map[string][]interface{}),
		counts: make(map[string]int),
	}
	for _, item := range items {
		record, ok := toRecord(item)
		if !ok {
			continue
		}
		contributed := make(map[string]bool, len(record))
		for _, f := range record {
			if _, seen := fv.values[f.Name]; !seen {
				fv.names = append(fv.names, f.Name)
				fv.values[f.Name] = []interface{}{}
			}
			if f.Value == nil {
				continue
			}
			fv.values[f.Name] = append(fv.values[f.Name], f.Value)
			if !contributed[f.Name] {
				contributed[f.Name] = true
				fv.counts[f.Name]++
			}
		}
	}
	return fv
}

// toRecord views an object-shaped value as a record
func toRecord(v interface{}) (Record, bool) {
	switch obj := v.(type) {
	case Record:
		return obj, true
	case map[string]interface{}:
		return RecordFromMap(obj), true
	}
	return nil, false
}
