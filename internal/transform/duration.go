// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"regexp"
	"strconv"
	"strings"
)

// durationPattern captures a leading integer and an optional unit token.
// Only the leading match counts: trailing text, including the second
// half of a range like "10–15 min", is never parsed.
var durationPattern = regexp.MustCompile(`^(\d+)\s*(hr|hrs|hour|hours|min|minute|minutes|sec|second|seconds)?`)

// ParseDurationSeconds converts free-text duration into canonical
// seconds. Empty or unparseable text returns nil. A string that is
// entirely digits is taken as seconds; otherwise the leading integer is
// scaled by its unit token, defaulting to minutes when no unit follows.
func ParseDurationSeconds(raw string) *int64 {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}

	if allDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil
		}
		return &n
	}

	m := durationPattern.FindStringSubmatch(s)
	if m == nil || m[1] == "" {
		return nil
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return nil
	}

	unit := m[2]
	switch {
	case strings.HasPrefix(unit, "hr"), strings.HasPrefix(unit, "hour"):
		n *= 3600
	case unit == "", strings.HasPrefix(unit, "min"):
		n *= 60
	}
	return &n
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
