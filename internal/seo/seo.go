// Package seo analyzes content for search-engine optimization:
// keyword usage and placement, document structure, readability and an
// overall score, with English (Google-oriented) and Chinese
// (Baidu-oriented) rule sets.
package seo

import (
	"strings"

	"contentaudit/internal/language"
	"contentaudit/internal/readability"
	"contentaudit/internal/segment"
	"contentaudit/internal/structure"
)

// KeywordRecord describes usage of the primary keyword.
type KeywordRecord struct {
	Keyword          string  `json:"keyword"`
	Count            int     `json:"count"`
	Density          float64 `json:"density"`
	InHeadings       bool    `json:"in_headings"`
	InFirstParagraph bool    `json:"in_first_paragraph"`
}

// SecondaryKeyword describes usage of one secondary keyword. No
// placement checks apply to secondary keywords.
type SecondaryKeyword struct {
	Keyword string  `json:"keyword"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// KeywordStats groups all keyword findings for one analysis.
type KeywordStats struct {
	Primary   KeywordRecord      `json:"primary_keyword"`
	Secondary []SecondaryKeyword `json:"secondary_keywords"`
	LSI       []string           `json:"lsi_keywords"`
}

// MetaSuggestions proposes meta tags derived from the primary
// keyword and the content's opening sentence.
type MetaSuggestions struct {
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	URLSlug         string `json:"url_slug"`
	OGTitle         string `json:"og_title"`
	OGDescription   string `json:"og_description"`
}

// Result is the full outcome of one SEO analysis. ContentLength is
// words for English and CJK characters for Chinese.
type Result struct {
	Language          language.Tag      `json:"language"`
	ContentLength     int               `json:"content_length"`
	Keywords          *KeywordStats     `json:"keyword_analysis,omitempty"`
	Structure         structure.Stats   `json:"structure_analysis"`
	Readability       readability.Stats `json:"readability"`
	Meta              MetaSuggestions   `json:"meta_suggestions"`
	OptimizationScore int               `json:"optimization_score"`
	Recommendations   []string          `json:"recommendations"`
}

// Input carries one document plus its target keywords.
type Input struct {
	Content           string
	Keyword           string
	SecondaryKeywords []string
}

// Analyzer runs SEO analysis with a configured Chinese segmenter.
type Analyzer struct {
	seg segment.Segmenter
}

func New(seg segment.Segmenter) *Analyzer {
	return &Analyzer{seg: seg}
}

// Analyze detects the content language and produces the full SEO
// result. Keyword analysis is skipped when no primary keyword is
// given; recommendations then omit keyword rules.
func (a *Analyzer) Analyze(in Input) Result {
	tag := language.Detect(in.Content)

	result := Result{
		Language:    tag,
		Structure:   structure.Parse(in.Content, tag),
		Readability: readability.Score(in.Content, tag),
	}
	if tag == language.ZH {
		result.ContentLength = language.CountCJK(in.Content)
	} else {
		result.ContentLength = segment.WordCount(in.Content, tag, a.seg)
	}

	if in.Keyword != "" {
		result.Keywords = a.analyzeKeywords(in, tag, result.Structure.HeadingTexts)
	}
	result.Meta = metaSuggestions(in.Content, in.Keyword, tag)
	result.OptimizationScore = score(result, tag)
	result.Recommendations = recommendations(result, tag)

	return result
}

func (a *Analyzer) analyzeKeywords(in Input, tag language.Tag, headings []string) *KeywordStats {
	wordCount := segment.WordCount(in.Content, tag, a.seg)

	stats := &KeywordStats{
		Primary: KeywordRecord{
			Keyword: in.Keyword,
			Count:   countFold(in.Content, in.Keyword),
		},
		Secondary: []SecondaryKeyword{},
	}
	if wordCount > 0 {
		stats.Primary.Density = float64(stats.Primary.Count) / float64(wordCount)
	}
	stats.Primary.InFirstParagraph = containsFold(firstParagraph(in.Content), in.Keyword)
	for _, heading := range headings {
		if containsFold(heading, in.Keyword) {
			stats.Primary.InHeadings = true
			break
		}
	}

	for _, keyword := range in.SecondaryKeywords {
		count := countFold(in.Content, keyword)
		sk := SecondaryKeyword{Keyword: keyword, Count: count}
		if wordCount > 0 {
			sk.Density = float64(count) / float64(wordCount)
		}
		stats.Secondary = append(stats.Secondary, sk)
	}

	stats.LSI = a.lsiKeywords(in.Content, in.Keyword, tag)

	return stats
}

// firstParagraph returns the text before the first blank line, or the
// first 200 runes when the content has no paragraph break.
func firstParagraph(content string) string {
	if idx := strings.Index(content, "\n\n"); idx >= 0 {
		return content[:idx]
	}
	runes := []rune(content)
	if len(runes) > 200 {
		runes = runes[:200]
	}
	return string(runes)
}

func countFold(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
