package form

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaskRune replaces each character of a masked field.
const MaskRune = "•"

// Mask hides value behind one MaskRune per character.
func Mask(value string) string {
	return strings.Repeat(MaskRune, utf8.RuneCountInString(value))
}

// FormatDate renders t the way the birthdate field displays it.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a DateLayout date as local midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.Local)
}

// Cycle returns the option after current, wrapping around. A dropdown on a
// d-pad only device is driven this way. An unknown current yields the first
// option; step may be negative.
func Cycle(options []string, current string, step int) string {
	if len(options) == 0 {
		return ""
	}
	i := -1
	for j, o := range options {
		if o == current {
			i = j
			break
		}
	}
	if i < 0 {
		return options[0]
	}
	n := len(options)
	return options[((i+step)%n+n)%n]
}
