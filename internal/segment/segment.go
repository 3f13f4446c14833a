// Package segment splits content into countable words. English text
// splits on whitespace; Chinese text goes through a pluggable
// Segmenter so a dictionary-backed implementation can be swapped for
// the built-in scanner.
package segment

import (
	"strings"
	"unicode"

	"contentaudit/internal/language"
)

// Segmentation strategies accepted by New.
const (
	StrategyDict = "dict"
	StrategyScan = "scan"
)

// A Segmenter splits Chinese text into word tokens.
type Segmenter interface {
	Segment(text string) []string
}

// New returns a Segmenter for the given strategy. The dictionary
// strategy degrades to the scanner when the dictionary cannot be
// loaded, so construction never fails.
func New(strategy string) Segmenter {
	if strategy == StrategyDict {
		if dict, err := newDictSegmenter(); err == nil {
			return dict
		}
	}
	return scanSegmenter{}
}

// Words splits English text on runs of whitespace and keeps only
// tokens that carry at least one letter or digit, so stray markup
// tokens such as a bare "#" are not counted as words.
func Words(text string) []string {
	var words []string
	for _, field := range strings.Fields(text) {
		if hasAlnum(field) {
			words = append(words, field)
		}
	}
	return words
}

// WordCount returns the language-appropriate word count: whitespace
// words for English, non-blank segmented tokens for Chinese.
func WordCount(text string, tag language.Tag, seg Segmenter) int {
	if tag == language.ZH {
		count := 0
		for _, token := range seg.Segment(text) {
			if strings.TrimSpace(token) != "" {
				count++
			}
		}
		return count
	}
	return len(Words(text))
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
