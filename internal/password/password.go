// Package password holds the example password checks used by pwcheck.
package password

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ib-77/ropcheck/pkg/rop/check"
)

const DefaultMinLength = 6

func MinLength(n int) check.Check[string] {
	return check.FromPredicate(fmt.Sprintf("at least %d characters", n), func(s string) bool {
		// counts runes, so "😀😀😀" is 3 long rather than 6 UTF-16 units
		return utf8.RuneCountInString(s) >= n
	})
}

var OneCapital = check.FromPredicate("at least one capital letter", func(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' })
})

var OneNumber = check.FromPredicate("at least one number", func(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
})

// Checks returns the password checks in evaluation order.
func Checks(minLength int) []check.Check[string] {
	return []check.Check[string]{MinLength(minLength), OneCapital, OneNumber}
}

func NewSet(minLength int) *check.Set[string] {
	return check.NewSet("password", Checks(minLength)...)
}
