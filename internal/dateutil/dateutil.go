// Package dateutil resolves "auto" date values for the cover page and index.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is given without a format.
const DefaultDateFormat = "MMMM D, YYYY"

// Presets are named shortcuts usable as "auto:NAME".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"month":    "MMMM YYYY",
}

// tokens are matched longest first.
var tokens = []struct {
	text   string
	render func(t time.Time) string
}{
	{"YYYY", func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) }},
	{"MMMM", func(t time.Time) string { return t.Month().String() }},
	{"MMM", func(t time.Time) string { return t.Month().String()[:3] }},
	{"YY", func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"DD", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"M", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"D", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
}

// Format renders t using a token format.
//
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Text in brackets is copied
// literally ("[Week of] MMMM D" gives "Week of February 14"); any other
// character is copied as is.
func Format(format string, t time.Time) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var out strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			out.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}

		n := writeToken(&out, rest, t)
		if n == 0 {
			out.WriteByte(rest[0])
			n = 1
		}
		rest = rest[n:]
	}
	return out.String(), nil
}

// writeToken writes the token at the start of s and returns its length,
// or 0 if s does not start with a token.
func writeToken(out *strings.Builder, s string, t time.Time) int {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok.text) {
			out.WriteString(tok.render(t))
			return len(tok.text)
		}
	}
	return 0
}

// ResolveDate expands "auto" values against t:
//   - "auto" gives t in DefaultDateFormat
//   - "auto:FORMAT" gives t in FORMAT
//   - "auto:NAME" gives t in the named preset (iso, european, us, long, month)
//
// Any other value is returned unchanged.
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}
	if lower == "auto" {
		return Format(DefaultDateFormat, t)
	}
	if !strings.HasPrefix(lower, "auto:") {
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	// Tokens are case sensitive, presets are not.
	format := value[len("auto:"):]
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	return Format(format, t)
}
