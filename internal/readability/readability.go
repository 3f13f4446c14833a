// Package readability scores how easy a text is to read, with
// language-specific sentence splitting and band thresholds.
package readability

import (
	"math"
	"strings"

	"contentaudit/internal/language"
	"contentaudit/internal/segment"
)

// Stats pairs a 0-100 score with a human-readable level.
type Stats struct {
	Score             int     `json:"score"`
	Level             string  `json:"level"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

var (
	enTerminators = map[rune]bool{'.': true, '!': true, '?': true}
	zhTerminators = map[rune]bool{'。': true, '！': true, '？': true, '；': true, '\n': true}
)

// SplitSentences splits text on sentence terminators for the given
// language and drops empty pieces. Chinese additionally treats
// newlines as boundaries.
func SplitSentences(text string, tag language.Tag) []string {
	terminators := enTerminators
	if tag == language.ZH {
		terminators = zhTerminators
	}
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return terminators[r]
	})
	sentences := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			sentences = append(sentences, piece)
		}
	}
	return sentences
}

// Score computes a banded readability score from average sentence
// length. English sentence length counts whitespace words, Chinese
// counts CJK runes. Empty input scores zero with an Unknown level.
func Score(content string, tag language.Tag) Stats {
	sentences := SplitSentences(content, tag)
	if len(sentences) == 0 {
		level := "Unknown"
		if tag == language.ZH {
			level = "未知"
		}
		return Stats{Score: 0, Level: level}
	}

	var total int
	if tag == language.ZH {
		total = language.CountCJK(content)
	} else {
		total = len(segment.Words(content))
	}
	avg := float64(total) / float64(len(sentences))

	var score int
	var level string
	if tag == language.ZH {
		switch {
		case avg < 20:
			score, level = 90, "易读"
		case avg < 35:
			score, level = 70, "中等"
		case avg < 50:
			score, level = 50, "较难"
		default:
			score, level = 30, "困难"
		}
	} else {
		switch {
		case avg < 15:
			score, level = 90, "Easy"
		case avg < 20:
			score, level = 70, "Moderate"
		case avg < 25:
			score, level = 50, "Difficult"
		default:
			score, level = 30, "Very Difficult"
		}
	}

	return Stats{Score: score, Level: level, AvgSentenceLength: round1(avg)}
}

// FleschReadingEase computes the classic Flesch formula for English
// prose, clamped to [0, 100]. Returns 0 when there are no words or
// sentences.
func FleschReadingEase(text string) float64 {
	sentences := SplitSentences(text, language.EN)
	words := strings.Fields(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}
	syllables := 0
	for _, word := range words {
		syllables += SyllableCount(word)
	}
	wordsPerSentence := float64(len(words)) / float64(len(sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))
	score := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	return round1(clamp(score, 0, 100))
}

// SyllableCount estimates syllables in an English word by counting
// vowel groups, subtracting one for a silent trailing e, with a floor
// of one.
func SyllableCount(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiou", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// VoiceScoreZH blends sentence-length fit and punctuation density
// into a readability score for Chinese brand-voice analysis. Length
// fit peaks at an average of 20 characters per sentence; punctuation
// density is relative to CJK character count.
func VoiceScoreZH(content string, punctCount int) float64 {
	sentences := SplitSentences(content, language.ZH)
	chars := language.CountCJK(content)
	if len(sentences) == 0 || chars == 0 {
		return 0
	}
	total := 0
	for _, sentence := range sentences {
		total += len([]rune(sentence))
	}
	avg := float64(total) / float64(len(sentences))

	lengthScore := clamp(100-math.Abs(avg-20)*2, 0, 100)
	density := float64(punctCount) / float64(chars)
	punctScore := clamp(50+density*250, 0, 100)
	return round1(lengthScore*0.7 + punctScore*0.3)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
