/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: aggregate.go
Description: Record and records aggregators. Drive the resolver over every field of one
record or of a list of records, drop suppressed fields and flag fields present in every
sampled record as required.
*/

package inference

import "github.com/sirupsen/logrus"

// InferredFromRecord resolves every field of a record in record order and returns the
// inferred elements that produced an element
func (e *Engine) InferredFromRecord(record Record, catalog *Catalog) []*InferredElement {
	r := e.begin(catalog, "record")

	inferred := make([]*InferredElement, 0, record.Len())
	for _, f := range record {
		ie := r.resolve(f.Name, sample(f.Value), false, 0)
		if ie.HasElement() {
			inferred = append(inferred, ie)
		}
	}

	r.log.WithFields(logrus.Fields{
		"fields":   record.Len(),
		"elements": len(inferred),
	}).Debug("Record inferred")
	return inferred
}

// InspectRecords flattens the records and resolves every field in first-seen order.
// Suppressed fields are kept as inferred elements without an element so callers can
// report them. With checkRequired, a field is required when every record provided a
// value for it.
func (e *Engine) InspectRecords(records []Record, catalog *Catalog, checkRequired bool) []*InferredElement {
	r := e.begin(catalog, "records")
	fields := Flatten(records)

	inspected := make([]*InferredElement, 0, fields.Len())
	for _, name := range fields.Names() {
		required := checkRequired && fields.Count(name) == len(records)
		inspected = append(inspected, r.resolve(name, fields.Values(name), required, 0))
	}

	r.log.WithFields(logrus.Fields{
		"records": len(records),
		"fields":  fields.Len(),
	}).Debug("Records inferred")
	return inspected
}

// InferredFromRecords is InspectRecords without the suppressed fields
func (e *Engine) InferredFromRecords(records []Record, catalog *Catalog, checkRequired bool) []*InferredElement {
	return withElements(e.InspectRecords(records, catalog, checkRequired))
}

func withElements(inspected []*InferredElement) []*InferredElement {
	inferred := make([]*InferredElement, 0, len(inspected))
	for _, ie := range inspected {
		if ie.HasElement() {
			inferred = append(inferred, ie)
		}
	}
	return inferred
}

// InferFromRecord returns the elements inferred from one record
func (e *Engine) InferFromRecord(record Record, catalog *Catalog) []interface{} {
	return Elements(e.InferredFromRecord(record, catalog))
}

// InferFromRecords returns the elements inferred from several records
func (e *Engine) InferFromRecords(records []Record, catalog *Catalog, checkRequired bool) []interface{} {
	return Elements(e.InferredFromRecords(records, catalog, checkRequired))
}

// InferredFromRecord uses the default engine
func InferredFromRecord(record Record, catalog *Catalog) []*InferredElement {
	return defaultEngine.InferredFromRecord(record, catalog)
}

// InferredFromRecords uses the default engine
func InferredFromRecords(records []Record, catalog *Catalog, checkRequired bool) []*InferredElement {
	return defaultEngine.InferredFromRecords(records, catalog, checkRequired)
}

// Elements extracts the built elements, skipping empty results
func Elements(inferred []*InferredElement) []interface{} {
	elements := make([]interface{}, 0, len(inferred))
	for _, ie := range inferred {
		if ie.HasElement() {
			elements = append(elements, ie.Element())
		}
	}
	return elements
}
