// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Coercion helpers for loosely-typed document leaves. Failure always
// degrades to the zero value or nil; a malformed leaf never aborts the
// document it came from.

// coerceString renders a document leaf as text. Numbers print without a
// trailing ".0" so that re-exported batches stay byte-stable.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// coerceFloat converts a document leaf to a float, or nil when the leaf
// is absent or not numeric-shaped.
func coerceFloat(v any) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return &t
	case int:
		f := float64(t)
		return &f
	case int64:
		f := float64(t)
		return &f
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil
		}
		return &f
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// coerceInt converts a document leaf to an integer counter, truncating
// fractional values. Absent or non-numeric leaves return nil.
func coerceInt(v any) *int64 {
	f := coerceFloat(v)
	if f == nil {
		return nil
	}
	n := int64(math.Trunc(*f))
	return &n
}

// coerceBool interprets a document leaf as a flag. Anything that is not
// recognizably true is false.
func coerceBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	case float64:
		return t != 0
	default:
		return false
	}
}
