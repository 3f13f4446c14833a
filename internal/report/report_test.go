package report

import (
	"encoding/json"
	"strings"
	"testing"

	"contentaudit/internal/language"
	"contentaudit/internal/readability"
	"contentaudit/internal/seo"
	"contentaudit/internal/structure"
	"contentaudit/internal/voice"
)

func sampleSEOResult() seo.Result {
	return seo.Result{
		Language:      language.EN,
		ContentLength: 42,
		Keywords: &seo.KeywordStats{
			Primary: seo.KeywordRecord{
				Keyword:          "cat",
				Count:            3,
				Density:          0.0714,
				InFirstParagraph: true,
			},
			LSI: []string{"feline", "whiskers", "paws", "tails", "claws", "purring"},
		},
		Structure: structure.Stats{
			Headings:           structure.Headings{H1: 1, Total: 1},
			Paragraphs:         2,
			AvgParagraphLength: 21,
		},
		Readability: readability.Stats{Score: 90, Level: "Easy", AvgSentenceLength: 7},
		Meta: seo.MetaSuggestions{
			Title:           "Cat - Complete Guide",
			MetaDescription: "Learn everything about cat.",
			URLSlug:         "cat",
		},
		OptimizationScore: 65,
		Recommendations:   []string{"Add internal links to related content"},
	}
}

func TestSEOTextEnglishLayout(t *testing.T) {
	t.Parallel()

	out := SEOText(sampleSEOResult())

	wantLines := []string{
		"=== SEO Content Analysis ===",
		"Overall SEO Score: 65/100",
		"Content Length: 42 words",
		"  Avg Paragraph Length: 21.0 words",
		"  Primary Keyword: cat",
		"  Density: 7.14%",
		"  In First Paragraph: Yes",
		"  Related Keywords Found:",
		"    • feline",
		"  Title: Cat - Complete Guide",
		"Recommendations:",
		"  • Add internal links to related content",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Fatalf("SEOText() missing line %q in output:\n%s", line, out)
		}
	}
}

func TestSEOTextLimitsLSIToFive(t *testing.T) {
	t.Parallel()

	out := SEOText(sampleSEOResult())

	if strings.Contains(out, "purring") {
		t.Fatalf("SEOText() must list at most 5 related keywords, got:\n%s", out)
	}
	if !strings.Contains(out, "claws") {
		t.Fatalf("SEOText() should include the fifth related keyword, got:\n%s", out)
	}
}

func TestSEOTextChineseLayout(t *testing.T) {
	t.Parallel()

	result := sampleSEOResult()
	result.Language = language.ZH
	result.Readability = readability.Stats{Score: 90, Level: "易读"}

	out := SEOText(result)

	for _, line := range []string{"=== SEO 内容分析 ===", "SEO 总分: 65/100", "可读性: 易读 (评分: 90)", "优化建议:"} {
		if !strings.Contains(out, line) {
			t.Fatalf("SEOText() missing %q in:\n%s", line, out)
		}
	}
}

func TestSEOTextOmitsKeywordSectionWhenAbsent(t *testing.T) {
	t.Parallel()

	result := sampleSEOResult()
	result.Keywords = nil

	out := SEOText(result)
	if strings.Contains(out, "Keyword Analysis:") {
		t.Fatalf("SEOText() must omit keyword section, got:\n%s", out)
	}
}

func TestVoiceTextEnglishLayout(t *testing.T) {
	t.Parallel()

	result := voice.Result{
		Language:         language.EN,
		WordCount:        20,
		ReadabilityScore: 72.5,
		VoiceProfile: []voice.DimensionProfile{
			{Dimension: "tone", Dominant: "friendly", Scores: map[string]int{"friendly": 2, "professional": 0}},
		},
		Sentences:       voice.SentenceStats{AverageLength: 10, Variety: "medium", Count: 2},
		Recommendations: []string{"Maintain consistent voice across all content"},
	}

	out := VoiceText(result)

	for _, line := range []string{
		"=== Brand Voice Analysis ===",
		"Language: English",
		"Word Count: 20",
		"Readability Score: 72.5/100",
		"  Tone: friendly",
		"  Average Length: 10.0 words",
		"  Variety: medium",
		"  Total Sentences: 2",
		"  • Maintain consistent voice across all content",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("VoiceText() missing %q in:\n%s", line, out)
		}
	}
}

func TestVoiceTextChineseLocalizesNames(t *testing.T) {
	t.Parallel()

	result := voice.Result{
		Language:         language.ZH,
		WordCount:        15,
		CharCount:        30,
		ReadabilityScore: 88.1,
		VoiceProfile: []voice.DimensionProfile{
			{Dimension: "formality", Dominant: "formal"},
			{Dimension: "emotion", Dominant: "rational"},
		},
		Sentences: voice.SentenceStats{AverageLength: 15, Variety: "high", Count: 2},
	}

	out := VoiceText(result)

	for _, line := range []string{
		"=== 品牌语调分析 ===",
		"语言: 中文",
		"字数: 30",
		"  正式程度: 正式",
		"  情感: 理性",
		"  平均句长: 15.0 字",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("VoiceText() missing %q in:\n%s", line, out)
		}
	}
}

func TestJSONRoundTrips(t *testing.T) {
	t.Parallel()

	out, err := JSON(sampleSEOResult())
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSON() produced invalid JSON: %v", err)
	}
	for _, key := range []string{"language", "content_length", "keyword_analysis", "structure_analysis", "readability", "meta_suggestions", "optimization_score", "recommendations"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("JSON() missing key %q in:\n%s", key, out)
		}
	}
	if strings.Contains(out, "HeadingTexts") || strings.Contains(out, "heading_texts") {
		t.Fatalf("JSON() must not expose heading texts:\n%s", out)
	}
}
