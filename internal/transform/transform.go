package transform

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordSeparators matches runs of whitespace, commas and semicolons. Its
// whitespace is the set unicode.IsSpace accepts, which Words also trims.
var wordSeparators = regexp.MustCompile(`[\s\v\p{Z}\x{85},;]+`)

// Enclose wraps s in open and close.
func Enclose(s, open, close string) string {
	return open + s + close
}

// CharArray turns s into a list of single-quoted characters wrapped in p,
// one entry per rune. A byte that is not valid UTF-8 is its own entry and
// is copied through unchanged.
func CharArray(s string, p Pair) string {
	items := make([]string, 0, len(s))
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		items = append(items, s[:size])
		s = s[size:]
	}
	return quotedList(items, p)
}

// WordArray turns s into a list of single-quoted words wrapped in p.
// Words are produced by Words.
func WordArray(s string, p Pair) string {
	return quotedList(Words(s), p)
}

// Words trims surrounding whitespace from s and splits the rest on runs of
// whitespace, commas and semicolons. A separator at either end of the
// trimmed text yields an empty word, and blank input yields one empty word.
func Words(s string) []string {
	return wordSeparators.Split(strings.TrimFunc(s, unicode.IsSpace), -1)
}

func quotedList(items []string, p Pair) string {
	var b strings.Builder
	b.WriteString(p.Open)
	b.WriteByte(' ')
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(item)
		b.WriteByte('\'')
	}
	b.WriteByte(' ')
	b.WriteString(p.Close)
	return b.String()
}
