/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: assertions.go
Description: Value classifier for record type inference. Pure predicates deciding the
primitive shape of a single value, and collection variants that require every sampled
value to share that shape.
*/

package inference

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cast"
)

// dateOnlyLayouts complements cast.StringToDate with common date-only forms
var dateOnlyLayouts = []string{
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// IsArray reports whether v is a list of values
func IsArray(v interface{}) bool {
	if v == nil || IsObject(v) {
		return false
	}
	if _, ok := v.([]byte); ok {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// IsBoolean reports whether v is a bool
func IsBoolean(v interface{}) bool {
	_, ok := v.(bool)
	return ok
}

// IsDate reports whether v is a time value
func IsDate(v interface{}) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}

// IsObject reports whether v is a nested record
func IsObject(v interface{}) bool {
	switch v.(type) {
	case Record, map[string]interface{}:
		return true
	}
	return false
}

// IsString reports whether v is a string
func IsString(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

// IsInteger reports whether v is a whole number
func IsInteger(v interface{}) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return isWhole(float64(n))
	case float64:
		return isWhole(n)
	case json.Number:
		_, err := n.Int64()
		return err == nil
	}
	return false
}

// IsNumeric reports whether v is a finite number. Numeric strings are not numbers.
func IsNumeric(v interface{}) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return isFinite(float64(n))
	case float64:
		return isFinite(n)
	case json.Number:
		f, err := n.Float64()
		return err == nil && isFinite(f)
	}
	return false
}

// IsDateString reports whether v is a string holding a recognizable date.
// Plain numbers and text without digits are rejected.
func IsDateString(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	if s == "" || !strings.ContainsAny(s, "0123456789") {
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return false
	}

	// time-only layouts such as 3:04PM parse to year zero
	if parsed, err := cast.StringToDate(s); err == nil {
		return parsed.Year() != 0
	}
	for _, layout := range dateOnlyLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// IsHTML reports whether v is a string containing at least one HTML element
func IsHTML(v interface{}) bool {
	s, ok := v.(string)
	if !ok || !strings.Contains(s, "<") || !strings.Contains(s, ">") {
		return false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return false
	}

	// the parser adds html, head and body on its own; only count tags written in s
	lower := strings.ToLower(s)
	found := doc.Find("*").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return strings.Contains(lower, "<"+goquery.NodeName(sel))
	})
	return found.Length() > 0
}

// ValuesAreArray reports whether every value is a list
func ValuesAreArray(values []interface{}) bool { return all(values, IsArray) }

// ValuesAreBoolean reports whether every value is a bool
func ValuesAreBoolean(values []interface{}) bool { return all(values, IsBoolean) }

// ValuesAreDate reports whether every value is a time value
func ValuesAreDate(values []interface{}) bool { return all(values, IsDate) }

// ValuesAreDateString reports whether every value is a date string
func ValuesAreDateString(values []interface{}) bool { return all(values, IsDateString) }

// ValuesAreHTML reports whether every value contains HTML
func ValuesAreHTML(values []interface{}) bool { return all(values, IsHTML) }

// ValuesAreInteger reports whether every value is a whole number
func ValuesAreInteger(values []interface{}) bool { return all(values, IsInteger) }

// ValuesAreNumeric reports whether every value is a finite number
func ValuesAreNumeric(values []interface{}) bool { return all(values, IsNumeric) }

// ValuesAreObject reports whether every value is a nested record
func ValuesAreObject(values []interface{}) bool { return all(values, IsObject) }

// ValuesAreString reports whether every value is a string
func ValuesAreString(values []interface{}) bool { return all(values, IsString) }

// all applies a predicate to a non-empty list; nil never matches
func all(values []interface{}, predicate func(interface{}) bool) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if v == nil || !predicate(v) {
			return false
		}
	}
	return true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isWhole(f float64) bool {
	return isFinite(f) && f == math.Trunc(f)
}

// toSlice turns an array-shaped value into a generic list
func toSlice(v interface{}) []interface{} {
	if list, ok := v.([]interface{}); ok {
		return list
	}
	if !IsArray(v) {
		return nil
	}
	rv := reflect.ValueOf(v)
	list := make([]interface{}, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list
}
