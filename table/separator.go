package table

import (
	"strings"
	"unicode/utf8"

	"github.com/YLivay/minifixed/utils"
)

// DefaultSeparator is used when no separator is given.
const DefaultSeparator = " "

// Separator is a set of filler characters. A multi-character separator such as
// " \t" means "spaces or tabs", not the literal two-character sequence.
type Separator struct {
	chars string
}

func NewSeparator(chars string) Separator {
	if chars == "" {
		chars = DefaultSeparator
	}
	return Separator{chars: chars}
}

// String returns the characters in the set.
func (s Separator) String() string {
	return s.chars
}

// Contains reports whether ch, a single user-perceived character, is filler.
// Clusters made of several runes never are.
func (s Separator) Contains(ch string) bool {
	r, size := utf8.DecodeRuneInString(ch)
	if size == 0 || size != len(ch) {
		return false
	}
	return strings.ContainsRune(s.chars, r)
}

// Trim strips leading and trailing filler from text.
func (s Separator) Trim(text string) string {
	return strings.Join(s.trimChars(utils.Graphemes(text)), "")
}

func (s Separator) trimChars(chars []string) []string {
	start, end := 0, len(chars)
	for start < end && s.Contains(chars[start]) {
		start++
	}
	for end > start && s.Contains(chars[end-1]) {
		end--
	}
	return chars[start:end]
}
