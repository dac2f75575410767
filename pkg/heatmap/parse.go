package heatmap

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

// ParseValue removes every match of strip from text and parses the leading
// numeric prefix of what remains. Text without a numeric prefix yields NaN.
// A nil strip removes nothing.
func ParseValue(text string, strip *regexp2.Regexp) float64 {
	if strip != nil {
		if cleaned, err := strip.Replace(text, "", -1, -1); err == nil {
			text = cleaned
		}
	}
	return parseFloatPrefix(text)
}

// parseFloatPrefix parses the longest decimal literal at the start of s,
// after leading whitespace. Parsing stops at the first character that
// cannot extend the literal.
func parseFloatPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	// exponent only counts when followed by at least one digit
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
