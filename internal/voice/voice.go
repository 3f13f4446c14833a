// Package voice analyzes content for brand-voice characteristics:
// formality, tone, perspective and (for Chinese) emotion, plus
// sentence rhythm and readability.
package voice

import (
	"fmt"
	"math"
	"strings"

	"contentaudit/internal/language"
	"contentaudit/internal/lexicon"
	"contentaudit/internal/readability"
	"contentaudit/internal/segment"
)

// DimensionProfile reports the dominant category and per-category
// term-presence scores for one voice dimension.
type DimensionProfile struct {
	Dimension string         `json:"dimension"`
	Dominant  string         `json:"dominant"`
	Scores    map[string]int `json:"scores"`
}

// SentenceStats summarizes sentence rhythm. AverageLength is words
// for English and characters for Chinese.
type SentenceStats struct {
	AverageLength float64 `json:"average_length"`
	Variety       string  `json:"variety"`
	Count         int     `json:"count"`
}

// EmotionStats reports the dominant emotion category for Chinese
// content, defaulting to neutral when no emotion terms appear.
type EmotionStats struct {
	Dominant string         `json:"dominant"`
	Scores   map[string]int `json:"scores"`
}

// Result is the full outcome of one voice analysis. CharCount and
// Emotion are populated for Chinese content only.
type Result struct {
	Language         language.Tag       `json:"language"`
	WordCount        int                `json:"word_count"`
	CharCount        int                `json:"char_count,omitempty"`
	ReadabilityScore float64            `json:"readability_score"`
	VoiceProfile     []DimensionProfile `json:"voice_profile"`
	Sentences        SentenceStats      `json:"sentence_analysis"`
	Emotion          *EmotionStats      `json:"emotion_analysis,omitempty"`
	Recommendations  []string           `json:"recommendations"`
}

// Analyzer runs voice analysis with a configured Chinese segmenter
// and an optional lexicon overlay extending the built-in term tables.
type Analyzer struct {
	seg     segment.Segmenter
	overlay lexicon.Overlay
}

func New(seg segment.Segmenter, overlay lexicon.Overlay) *Analyzer {
	return &Analyzer{seg: seg, overlay: overlay}
}

// Analyze detects the content language and produces the full voice
// result.
func (a *Analyzer) Analyze(content string) Result {
	tag := language.Detect(content)
	if tag == language.ZH {
		return a.analyzeZH(content)
	}
	return a.analyzeEN(content)
}

func (a *Analyzer) analyzeEN(content string) Result {
	result := Result{
		Language:         language.EN,
		WordCount:        len(strings.Fields(content)),
		ReadabilityScore: readability.FleschReadingEase(content),
		Sentences:        sentenceStats(content, language.EN),
	}

	dims := a.overlay.Apply(language.EN, lexicon.VoiceDimensions(language.EN))
	result.VoiceProfile = profile(strings.ToLower(content), dims)
	result.Recommendations = recommendationsEN(result)

	return result
}

func (a *Analyzer) analyzeZH(content string) Result {
	wordCount := 0
	for _, token := range a.seg.Segment(content) {
		if strings.TrimSpace(token) != "" {
			wordCount++
		}
	}

	punctCount := 0
	for _, r := range content {
		if strings.ContainsRune(lexicon.ZHPunctuation, r) {
			punctCount++
		}
	}

	result := Result{
		Language:         language.ZH,
		WordCount:        wordCount,
		CharCount:        language.CountCJK(content),
		ReadabilityScore: readability.VoiceScoreZH(content, punctCount),
		Sentences:        sentenceStats(content, language.ZH),
	}

	dims := a.overlay.Apply(language.ZH, lexicon.VoiceDimensions(language.ZH))
	result.VoiceProfile = profile(content, dims)
	result.Emotion = emotionStats(content)
	result.Recommendations = recommendationsZH(result)

	return result
}

// profile scores each dimension by counting how many of each
// category's terms appear in text. Dimensions where no term appears
// at all are skipped; ties between categories resolve to the one
// declared first.
func profile(text string, dims []lexicon.Dimension) []DimensionProfile {
	var profiles []DimensionProfile
	for _, dim := range dims {
		scores := make(map[string]int, len(dim.Categories))
		total := 0
		dominant := ""
		best := -1
		for _, cat := range dim.Categories {
			hits := 0
			for _, term := range cat.Terms {
				if strings.Contains(text, term) {
					hits++
				}
			}
			scores[cat.Name] = hits
			total += hits
			if hits > best {
				best = hits
				dominant = cat.Name
			}
		}
		if total > 0 {
			profiles = append(profiles, DimensionProfile{
				Dimension: dim.Name,
				Dominant:  dominant,
				Scores:    scores,
			})
		}
	}
	return profiles
}

func sentenceStats(content string, tag language.Tag) SentenceStats {
	sentences := readability.SplitSentences(content, tag)
	if len(sentences) == 0 {
		return SentenceStats{Variety: "low"}
	}

	lengths := make([]int, len(sentences))
	total := 0
	for i, sentence := range sentences {
		if tag == language.ZH {
			lengths[i] = len([]rune(sentence))
		} else {
			lengths[i] = len(strings.Fields(sentence))
		}
		total += lengths[i]
	}

	unique := make(map[int]bool, len(lengths))
	for _, l := range lengths {
		unique[l] = true
	}
	variety := "high"
	if len(unique) < 3 {
		variety = "low"
	} else if len(unique) < 5 {
		variety = "medium"
	}

	avg := float64(total) / float64(len(sentences))
	return SentenceStats{
		AverageLength: round1(avg),
		Variety:       variety,
		Count:         len(sentences),
	}
}

func emotionStats(content string) *EmotionStats {
	cats := lexicon.EmotionCategories()
	scores := make(map[string]int, len(cats))
	total := 0
	dominant := ""
	best := -1
	for _, cat := range cats {
		hits := 0
		for _, term := range cat.Terms {
			if strings.Contains(content, term) {
				hits++
			}
		}
		scores[cat.Name] = hits
		total += hits
		if hits > best {
			best = hits
			dominant = cat.Name
		}
	}
	if total == 0 {
		dominant = "neutral"
	}
	return &EmotionStats{Dominant: dominant, Scores: scores}
}

func recommendationsEN(r Result) []string {
	var recs []string

	if r.ReadabilityScore < 30 {
		recs = append(recs, "Consider simplifying language for better readability")
	} else if r.ReadabilityScore > 70 {
		recs = append(recs, "Content is very easy to read - consider if this matches your audience")
	}

	if r.Sentences.Variety == "low" {
		recs = append(recs, "Vary sentence length for better flow and engagement")
	}

	if len(r.VoiceProfile) > 0 {
		recs = append(recs, "Maintain consistent voice across all content")
	}

	return recs
}

func recommendationsZH(r Result) []string {
	var recs []string

	if r.ReadabilityScore < 40 {
		recs = append(recs, "建议简化句子结构，提高可读性")
	} else if r.ReadabilityScore > 80 {
		recs = append(recs, "内容非常易读，适合大众阅读")
	}

	if r.Sentences.Variety == "low" {
		recs = append(recs, "建议增加句子长度变化，提升阅读节奏感")
	}

	avg := r.Sentences.AverageLength
	if avg > 50 {
		recs = append(recs, fmt.Sprintf("平均句长%.0f字偏长，建议拆分长句", avg))
	} else if avg < 10 {
		recs = append(recs, fmt.Sprintf("平均句长%.0f字偏短，可以适当增加句子深度", avg))
	}

	if len(r.VoiceProfile) > 0 {
		recs = append(recs, "保持统一的写作风格")
	}

	return recs
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
