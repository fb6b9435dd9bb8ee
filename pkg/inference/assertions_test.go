/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: assertions_test.go
Description: Tests for the value classifier predicates and their collection variants.
*/

package inference_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/kleascm/recordguess/pkg/inference"
	"github.com/stretchr/testify/assert"
)

func TestShapePredicates(t *testing.T) {
	now := time.Now()
	var nilTime *time.Time

	assert.True(t, inference.IsArray([]interface{}{1, 2}))
	assert.True(t, inference.IsArray([]string{"a"}))
	assert.False(t, inference.IsArray([]byte("abc")))
	assert.False(t, inference.IsArray(inference.Record{{Name: "a", Value: 1}}))
	assert.False(t, inference.IsArray(nil))

	assert.True(t, inference.IsBoolean(false))
	assert.False(t, inference.IsBoolean("true"))

	assert.True(t, inference.IsDate(now))
	assert.True(t, inference.IsDate(&now))
	assert.False(t, inference.IsDate(nilTime))
	assert.False(t, inference.IsDate("2018-10-01"))

	assert.True(t, inference.IsObject(inference.Record{}))
	assert.True(t, inference.IsObject(map[string]interface{}{"a": 1}))
	assert.False(t, inference.IsObject([]interface{}{}))

	assert.True(t, inference.IsString(""))
	assert.False(t, inference.IsString(12))
}

func TestNumberPredicates(t *testing.T) {
	assert.True(t, inference.IsInteger(12))
	assert.True(t, inference.IsInteger(uint8(3)))
	assert.True(t, inference.IsInteger(12.0))
	assert.True(t, inference.IsInteger(json.Number("42")))
	assert.False(t, inference.IsInteger(653.56))
	assert.False(t, inference.IsInteger(math.Inf(1)))
	assert.False(t, inference.IsInteger("12"))

	assert.True(t, inference.IsNumeric(653.56))
	assert.True(t, inference.IsNumeric(1e23))
	assert.True(t, inference.IsNumeric(json.Number("1.5")))
	assert.False(t, inference.IsNumeric(math.NaN()))
	assert.False(t, inference.IsNumeric("1.5"))
	assert.False(t, inference.IsNumeric(true))
}

func TestIsDateString(t *testing.T) {
	accepted := []string{
		"2018-10-01",
		"2018-10-01T10:20:30Z",
		"2018-10-01 10:20:30",
		"2018/10/01",
		"10/01/2018",
		"01 Oct 2018",
		"Mon, 01 Oct 2018 10:20:30 GMT",
	}
	for _, s := range accepted {
		assert.True(t, inference.IsDateString(s), s)
	}

	rejected := []interface{}{
		"",
		"12",
		"12.5",
		"hello world",
		"This is Good",
		"Lorem 42 ipsum",
		"3:04PM",
		"10:00AM",
		"15:04:05",
		12,
		time.Now(),
	}
	for _, v := range rejected {
		assert.False(t, inference.IsDateString(v), "%v", v)
	}
}

func TestIsHTML(t *testing.T) {
	assert.True(t, inference.IsHTML("This is <h1>Good</h1>"))
	assert.True(t, inference.IsHTML("<body><h1>hello</h1>World</body>"))
	assert.True(t, inference.IsHTML("<p>paragraph"))
	assert.True(t, inference.IsHTML("<body>hello</body>"))
	assert.True(t, inference.IsHTML("<html>x</html>"))
	assert.True(t, inference.IsHTML("<head></head>"))
	assert.True(t, inference.IsHTML("<BODY>Upper</BODY>"))

	assert.False(t, inference.IsHTML("This is Good"))
	assert.False(t, inference.IsHTML("1 < 2 > 0"))
	assert.False(t, inference.IsHTML(42))
}

func TestCollectionPredicates(t *testing.T) {
	assert.True(t, inference.ValuesAreBoolean([]interface{}{true, false, true}))
	assert.False(t, inference.ValuesAreBoolean([]interface{}{true, 1}))
	assert.False(t, inference.ValuesAreBoolean([]interface{}{true, nil}))
	assert.False(t, inference.ValuesAreBoolean([]interface{}{}))

	assert.True(t, inference.ValuesAreNumeric([]interface{}{12, 1e23, 653.56}))
	assert.False(t, inference.ValuesAreInteger([]interface{}{12, 653.56}))
	assert.True(t, inference.ValuesAreString([]interface{}{"a", ""}))
	assert.True(t, inference.ValuesAreDateString([]interface{}{"2018-10-01", "2018-12-03"}))
	assert.False(t, inference.ValuesAreDateString([]interface{}{"2018-10-01", "tomorrow"}))
	assert.True(t, inference.ValuesAreHTML([]interface{}{"<b>a</b>", "<i>b</i>"}))
	assert.True(t, inference.ValuesAreArray([]interface{}{[]interface{}{1}, []interface{}{}}))
	assert.True(t, inference.ValuesAreObject([]interface{}{inference.Record{}, map[string]interface{}{}}))
	assert.True(t, inference.ValuesAreDate([]interface{}{time.Now(), time.Now()}))
}
