package segment

import (
	"strings"
	"unicode"

	"contentaudit/internal/language"
)

// scanSegmenter is the contractual baseline segmenter: every CJK rune
// becomes its own token, runs of other alphanumeric runes accumulate
// into a buffer flushed by the next CJK rune or separator, and
// separators are discarded.
type scanSegmenter struct{}

func (scanSegmenter) Segment(text string) []string {
	var tokens []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	for _, r := range text {
		switch {
		case language.IsCJK(r):
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			buf.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}
