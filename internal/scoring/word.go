// Package scoring validates words and computes difficulty scores.
package scoring

import (
	"strings"
	"unicode"
)

// Default word length bounds for the letter-guessing game.
const (
	DefaultMinLen = 3
	DefaultMaxLen = 10
)

// Validate trims and uppercases a raw candidate and reports whether it is a
// usable word: alphabetic only, length within [minLen, maxLen].
func Validate(raw string, minLen, maxLen int) (string, bool) {
	word := strings.ToUpper(strings.TrimSpace(raw))
	if len([]rune(word)) < minLen || len([]rune(word)) > maxLen {
		return "", false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return word, true
}
