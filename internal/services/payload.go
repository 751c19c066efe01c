package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Payload is a submitted body as decoded by encoding/json with UseNumber.
// Nested objects arrive as map[string]any and arrays as []any.
type Payload map[string]any

// EnsureArrayField wraps a scalar field into a one-element array in place.
// Absent or falsy fields and fields that already are arrays are left alone,
// so after the call the field is either unusable or an array.
func EnsureArrayField(p Payload, field string) {
	v, ok := p[field]
	if !ok || !truthy(v) {
		return
	}
	if _, isArr := v.([]any); isArr {
		return
	}
	p[field] = []any{v}
}

// first returns element 0 of an array field. Elements that are not objects
// read as empty objects; ok is false when the field is not a non-empty array.
func (p Payload) first(field string) (Payload, bool) {
	arr, isArr := p[field].([]any)
	if !isArr || len(arr) == 0 {
		return nil, false
	}
	switch m := arr[0].(type) {
	case map[string]any:
		return Payload(m), true
	case Payload:
		return m, true
	}
	return Payload{}, true
}

// has reports whether every key holds a truthy value.
func (p Payload) has(keys ...string) bool {
	for _, k := range keys {
		if !truthy(p[k]) {
			return false
		}
	}
	return true
}

// truthy follows JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		return err != nil || f != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	default:
		return true
	}
}

// stringOf follows JavaScript String() for decoded JSON values.
func stringOf(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case json.Number:
		return numberText(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case []any:
		parts := make([]string, len(x))
		for i, el := range x {
			if el != nil {
				parts[i] = stringOf(el)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// numberOf follows JavaScript Number(). ok is false where JavaScript yields
// NaN; infinities are treated the same way since they cannot be stored.
func numberOf(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case float64:
		return x, !math.IsNaN(x) && !math.IsInf(x, 0)
	case int:
		return float64(x), true
	case json.Number:
		return parseNumber(x.String())
	case string:
		return parseNumber(x)
	case []any:
		switch len(x) {
		case 0:
			return 0, true
		case 1:
			return numberOf(stringOf(x[0]))
		}
	}
	return 0, false
}

// numberText renders a JSON number the way JavaScript prints it, so 123456.0
// reads as 123456. Numbers a float64 cannot hold exactly, or that JavaScript
// prints in exponent form, keep their literal text.
func numberText(n json.Number) string {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return n.String()
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || !decimal.NewFromFloat(f).Equal(d) {
		return n.String()
	}
	if a := math.Abs(f); a != 0 && (a < 1e-6 || a >= 1e21) {
		return n.String()
	}
	return d.String()
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if base := radixOf(s); base != 0 {
		if strings.Contains(s, "_") {
			return 0, false
		}
		n, err := strconv.ParseUint(s[2:], base, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	f := d.InexactFloat64()
	return f, !math.IsInf(f, 0)
}

// radixOf recognises the unsigned 0x, 0o and 0b literals Number() accepts.
func radixOf(s string) int {
	if len(s) < 3 || s[0] != '0' {
		return 0
	}
	switch s[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}
