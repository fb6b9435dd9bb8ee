/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: resolve.go
Description: Type resolver for record inference. Applies naming conventions and value
classification to pick a tag for a field, gates the tag through the catalog and recurses
into nested objects and arrays of objects.
*/

package inference

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// resolution carries the read-only state of one inference call
type resolution struct {
	catalog  *Catalog
	maxDepth int
	log      *logrus.Entry
}

// Resolve guesses the element for a single value of a field
func (e *Engine) Resolve(name string, value interface{}, catalog *Catalog) *InferredElement {
	return e.begin(catalog, "value").resolve(name, sample(value), false, 0)
}

// ResolveMany guesses the element for the values of a field sampled across records
func (e *Engine) ResolveMany(name string, values []interface{}, catalog *Catalog) *InferredElement {
	return e.begin(catalog, "values").resolve(name, values, false, 0)
}

// sample turns a single value into a value list; nil means no values
func sample(value interface{}) []interface{} {
	if value == nil {
		return nil
	}
	return []interface{}{value}
}

// resolve walks the classification rules in order; the first match wins
func (r *resolution) resolve(name string, values []interface{}, required bool, depth int) *InferredElement {
	props := Props{Source: name, Required: required}

	if depth > r.maxDepth {
		r.log.WithFields(logrus.Fields{
			"field": name,
			"depth": depth,
		}).Warn("Nesting limit reached, falling back to string")
		return r.element(TagString, props)
	}

	switch {
	case name == "id":
		return r.element(TagID, props)
	case strings.HasSuffix(name, "_id"):
		return r.reference(TagReference, props, strings.TrimSuffix(name, "_id")+"s")
	case strings.HasSuffix(name, "_ids"):
		return r.reference(TagReferenceArray, props, strings.TrimSuffix(name, "_ids")+"s")
	}

	// Nothing to introspect without data
	if len(values) == 0 {
		return r.element(TagString, props)
	}

	if ValuesAreArray(values) {
		first := toSlice(values[0])
		if len(first) > 0 && IsObject(first[0]) {
			return r.composite(props, values, depth)
		}
		// Arrays of scalars are not introspected further
		return r.element(TagString, props)
	}

	switch {
	case ValuesAreBoolean(values):
		return r.element(TagBoolean, props)
	case ValuesAreDate(values):
		return r.element(TagDate, props)
	case ValuesAreString(values):
		return r.element(r.stringTag(name, values), props)
	case ValuesAreInteger(values) || ValuesAreNumeric(values):
		return r.element(TagNumber, props)
	case ValuesAreObject(values):
		return r.descend(name, values, required, depth)
	}

	return r.element(TagString, props)
}

// stringTag refines string values by field name and content
func (r *resolution) stringTag(name string, values []interface{}) Tag {
	switch {
	case name == "email":
		return TagEmail
	case name == "url":
		return TagURL
	case ValuesAreDateString(values):
		return TagDate
	case ValuesAreHTML(values):
		return TagRichText
	}
	return TagString
}

// descend resolves the first declared key of the first sampled object.
// Only one key is inspected per nesting level.
func (r *resolution) descend(name string, values []interface{}, required bool, depth int) *InferredElement {
	first, _ := toRecord(values[0])
	if first.Len() == 0 {
		return r.element(TagString, Props{Source: name, Required: required})
	}

	key := first[0].Name
	leaves := make([]interface{}, len(values))
	for i, v := range values {
		record, _ := toRecord(v)
		leaves[i], _ = record.Get(key)
	}
	return r.resolve(name+"."+key, leaves, required, depth+1)
}

// pick applies catalog availability: the tag itself, the string fallback, or nothing
func (r *resolution) pick(tag Tag) (Tag, Descriptor, bool) {
	d, state := r.catalog.Lookup(tag)
	switch state {
	case EntryPresent:
		return tag, d, true
	case EntryDisabled:
		return tag, Descriptor{}, false
	}
	if tag == TagString {
		return tag, Descriptor{}, false
	}

	d, state = r.catalog.Lookup(TagString)
	if state != EntryPresent {
		return TagString, Descriptor{}, false
	}
	return TagString, d, true
}

// element builds a plain element for a tag
func (r *resolution) element(tag Tag, props Props) *InferredElement {
	resolved, d, ok := r.pick(tag)
	if !ok {
		r.suppressed(tag, resolved, props)
		return emptyElement(resolved, props)
	}
	r.resolved(tag, resolved, props)
	return build(resolved, d, props, nil)
}

// reference builds a reference element with its nested identifier child
func (r *resolution) reference(tag Tag, props Props, relation string) *InferredElement {
	resolved, d, ok := r.pick(tag)
	if !ok {
		r.suppressed(tag, resolved, props)
		return emptyElement(resolved, props)
	}
	if resolved != tag {
		r.resolved(tag, resolved, props)
		return build(resolved, d, props, nil)
	}

	props.Reference = relation
	var children []*InferredElement
	if childTag, childDesc, ok := r.pick(TagID); ok {
		childProps := Props{Source: "id"}
		props.Child = &childProps
		children = append(children, build(childTag, childDesc, childProps, nil))
	}

	r.resolved(tag, resolved, props)
	return build(resolved, d, props, children)
}

// composite builds an array element whose children are resolved from the leaf fields of
// every object in every sampled array
func (r *resolution) composite(props Props, values []interface{}, depth int) *InferredElement {
	resolved, d, ok := r.pick(TagArray)
	if !ok {
		r.suppressed(TagArray, resolved, props)
		return emptyElement(resolved, props)
	}
	if resolved != TagArray {
		r.resolved(TagArray, resolved, props)
		return build(resolved, d, props, nil)
	}

	var items []interface{}
	for _, v := range values {
		items = append(items, toSlice(v)...)
	}
	leaves := flattenItems(items)

	children := make([]*InferredElement, 0, leaves.Len())
	for _, leaf := range leaves.Names() {
		children = append(children, r.resolve(leaf, leaves.Values(leaf), false, depth+1))
	}

	r.resolved(TagArray, resolved, props)
	return build(resolved, d, props, children)
}

func (r *resolution) resolved(guessed, resolved Tag, props Props) {
	r.log.WithFields(logrus.Fields{
		"field":    props.Source,
		"guessed":  guessed,
		"tag":      resolved,
		"required": props.Required,
	}).Debug("Field resolved")
}

func (r *resolution) suppressed(guessed, resolved Tag, props Props) {
	r.log.WithFields(logrus.Fields{
		"field":   props.Source,
		"guessed": guessed,
		"tag":     resolved,
	}).Debug("Field suppressed")
}
