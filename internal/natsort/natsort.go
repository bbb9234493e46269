// Package natsort orders names the way people read them: embedded digit runs
// compare as numbers, so "2-intro" sorts before "10-setup".
package natsort

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Part is one run of a Key. Text runs hold lowercased text; digit runs hold
// the digits in ASCII with leading zeros stripped, so "０７" and "7" are equal.
type Part struct {
	Text    string
	Digits  string
	Numeric bool
}

// Key is the sort key of a name. Runs alternate text/digits and always start
// with a (possibly empty) text run, so two keys compare run types pairwise.
type Key []Part

// KeyOf splits name into maximal digit and non-digit runs.
func KeyOf(name string) Key {
	lower := cases.Lower(language.Und)

	key := Key{}
	start := 0
	inDigits := false
	flush := func(end int) {
		run := name[start:end]
		if inDigits {
			key = append(key, Part{Digits: trimZeros(asciiDigits(run)), Numeric: true})
		} else {
			key = append(key, Part{Text: lower.String(run)})
		}
		start = end
	}

	for i, r := range name {
		digit := unicode.IsDigit(r)
		if digit != inDigits {
			flush(i)
			inDigits = digit
		}
	}
	flush(len(name))

	return key
}

// Compare returns -1, 0 or 1. A key that is a prefix of another sorts first.
func Compare(a, b Key) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := comparePart(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Less reports whether a sorts before b. Names with equal keys fall back to
// byte order so the result never depends on directory listing order.
func Less(a, b string) bool {
	if c := Compare(KeyOf(a), KeyOf(b)); c != 0 {
		return c < 0
	}
	return a < b
}

// Sort sorts names in place in natural order.
func Sort(names []string) {
	keys := make(map[string]Key, len(names))
	for _, n := range names {
		keys[n] = KeyOf(n)
	}
	sort.SliceStable(names, func(i, j int) bool {
		if c := Compare(keys[names[i]], keys[names[j]]); c != 0 {
			return c < 0
		}
		return names[i] < names[j]
	})
}

func comparePart(a, b Part) int {
	if a.Numeric && b.Numeric {
		// Fewer significant digits means a smaller number.
		if len(a.Digits) != len(b.Digits) {
			if len(a.Digits) < len(b.Digits) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Digits, b.Digits)
	}
	if a.Numeric != b.Numeric {
		// KeyOf never produces this; digits sort first.
		if a.Numeric {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Text, b.Text)
}

func trimZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// asciiDigits maps a run of decimal digits from any script to ASCII.
func asciiDigits(run string) string {
	var b strings.Builder
	b.Grow(len(run))
	for _, r := range run {
		b.WriteByte(byte('0' + digitValue(r)))
	}
	return b.String()
}

// digitValue returns the value of a decimal digit rune. Decimal digits are
// encoded in contiguous ascending blocks that start at zero, so the value is
// the offset from the start of the block modulo 10.
func digitValue(r rune) rune {
	if r >= '0' && r <= '9' {
		return r - '0'
	}
	start := r
	for start > 0 && unicode.IsDigit(start-1) {
		start--
	}
	return (r - start) % 10
}
