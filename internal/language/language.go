package language

import "unicode"

// Tag identifies the primary language of a piece of content. Every
// downstream analysis stage branches its heuristics on this tag.
type Tag string

const (
	EN Tag = "en"
	ZH Tag = "zh"
)

// Content is classified as Chinese when more than this share of its
// non-whitespace runes are CJK ideographs.
const zhRatioThreshold = 0.3

// IsCJK reports whether r falls in the CJK Unified Ideographs range.
func IsCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// Detect classifies text as Chinese or English by the ratio of CJK
// ideographs to non-whitespace runes. Text with no non-whitespace
// runes defaults to English.
func Detect(text string) Tag {
	cjk := 0
	total := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if IsCJK(r) {
			cjk++
		}
	}

	if total == 0 {
		return EN
	}
	if float64(cjk)/float64(total) > zhRatioThreshold {
		return ZH
	}
	return EN
}

// CountCJK returns the number of CJK ideograph runes in text. It is
// the length unit for Chinese content.
func CountCJK(text string) int {
	count := 0
	for _, r := range text {
		if IsCJK(r) {
			count++
		}
	}
	return count
}
