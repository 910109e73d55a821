// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Parsed is the outcome of coercing a loosely-typed value to a number.
// Raw always preserves the original text so violation messages can name
// the offending value; Value is meaningful only when OK is true.
type Parsed struct {
	Value float64
	Raw   string
	OK    bool
}

// Empty reports whether the original value was absent or blank.
func (p Parsed) Empty() bool {
	return strings.TrimSpace(p.Raw) == ""
}

// numericShaped matches an unsigned integer-or-decimal literal. Signs,
// exponents, and fractions like "1/2" are out: they count as
// non-numeric-shaped.
var numericShaped = regexp.MustCompile(`^\d+(\.\d+)?$`)

// NumericShaped reports whether s is textually an integer or decimal.
func NumericShaped(s string) bool {
	return numericShaped.MatchString(strings.TrimSpace(s))
}

// ParseNumber coerces a loosely-typed table value to a float. It never
// fails outright: an unparseable value comes back with OK=false and the
// original text in Raw.
func ParseNumber(v any) Parsed {
	raw := rawString(v)
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Parsed{Raw: raw}
	}
	return Parsed{Value: f, Raw: raw, OK: true}
}

// rawString renders a table value the way it would appear in the CSV
// serialization, so messages match across the in-memory and re-loaded
// paths.
func rawString(v any) string {
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
