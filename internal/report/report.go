// Package report renders analysis results as human-readable text or
// indented JSON, localized to the content's language.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"contentaudit/internal/language"
	"contentaudit/internal/seo"
	"contentaudit/internal/voice"
)

// JSON renders any result as two-space indented JSON.
func JSON(v any) (string, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result JSON: %w", err)
	}
	return string(raw), nil
}

// SEOText renders an SEO result in the language of the analyzed
// content.
func SEOText(r seo.Result) string {
	if r.Language == language.ZH {
		return seoTextZH(r)
	}
	return seoTextEN(r)
}

func seoTextEN(r seo.Result) string {
	lines := []string{
		"=== SEO Content Analysis ===",
		fmt.Sprintf("Overall SEO Score: %d/100", r.OptimizationScore),
		fmt.Sprintf("Content Length: %d words", r.ContentLength),
		"",
		"Content Structure:",
		fmt.Sprintf("  Headings: %d", r.Structure.Headings.Total),
		fmt.Sprintf("  Paragraphs: %d", r.Structure.Paragraphs),
		fmt.Sprintf("  Avg Paragraph Length: %.1f words", r.Structure.AvgParagraphLength),
		fmt.Sprintf("  Internal Links: %d", r.Structure.Links.Internal),
		fmt.Sprintf("  External Links: %d", r.Structure.Links.External),
		"",
		fmt.Sprintf("Readability: %s (Score: %d)", r.Readability.Level, r.Readability.Score),
		"",
	}

	if r.Keywords != nil {
		kw := r.Keywords.Primary
		lines = append(lines,
			"Keyword Analysis:",
			fmt.Sprintf("  Primary Keyword: %s", kw.Keyword),
			fmt.Sprintf("  Count: %d", kw.Count),
			fmt.Sprintf("  Density: %.2f%%", kw.Density*100),
			fmt.Sprintf("  In First Paragraph: %s", yesNo(kw.InFirstParagraph, "Yes", "No")),
			"",
		)
		if len(r.Keywords.LSI) > 0 {
			lines = append(lines, "  Related Keywords Found:")
			for _, lsi := range topN(r.Keywords.LSI, 5) {
				lines = append(lines, "    • "+lsi)
			}
			lines = append(lines, "")
		}
	}

	if r.Meta != (seo.MetaSuggestions{}) {
		lines = append(lines,
			"Meta Tag Suggestions:",
			fmt.Sprintf("  Title: %s", r.Meta.Title),
			fmt.Sprintf("  Description: %s", r.Meta.MetaDescription),
			fmt.Sprintf("  URL Slug: %s", r.Meta.URLSlug),
			"",
		)
	}

	lines = append(lines, "Recommendations:")
	for _, rec := range r.Recommendations {
		lines = append(lines, "  • "+rec)
	}

	return strings.Join(lines, "\n")
}

func seoTextZH(r seo.Result) string {
	lines := []string{
		"=== SEO 内容分析 ===",
		fmt.Sprintf("SEO 总分: %d/100", r.OptimizationScore),
		fmt.Sprintf("内容长度: %d 字", r.ContentLength),
		"",
		"内容结构:",
		fmt.Sprintf("  标题数: %d", r.Structure.Headings.Total),
		fmt.Sprintf("  段落数: %d", r.Structure.Paragraphs),
		fmt.Sprintf("  平均段落长度: %.1f 字", r.Structure.AvgParagraphLength),
		fmt.Sprintf("  内链数: %d", r.Structure.Links.Internal),
		fmt.Sprintf("  外链数: %d", r.Structure.Links.External),
		"",
		fmt.Sprintf("可读性: %s (评分: %d)", r.Readability.Level, r.Readability.Score),
		"",
	}

	if r.Keywords != nil {
		kw := r.Keywords.Primary
		lines = append(lines,
			"关键词分析:",
			fmt.Sprintf("  主关键词: %s", kw.Keyword),
			fmt.Sprintf("  出现次数: %d", kw.Count),
			fmt.Sprintf("  关键词密度: %.1f%%", kw.Density*100),
			fmt.Sprintf("  首段包含: %s", yesNo(kw.InFirstParagraph, "是", "否")),
			"",
		)
		if len(r.Keywords.LSI) > 0 {
			lines = append(lines, "  相关关键词:")
			for _, lsi := range topN(r.Keywords.LSI, 5) {
				lines = append(lines, "    • "+lsi)
			}
			lines = append(lines, "")
		}
	}

	if r.Meta != (seo.MetaSuggestions{}) {
		lines = append(lines,
			"Meta 标签建议:",
			fmt.Sprintf("  标题: %s", r.Meta.Title),
			fmt.Sprintf("  描述: %s", r.Meta.MetaDescription),
			fmt.Sprintf("  URL: %s", r.Meta.URLSlug),
			"",
		)
	}

	lines = append(lines, "优化建议:")
	for _, rec := range r.Recommendations {
		lines = append(lines, "  • "+rec)
	}

	return strings.Join(lines, "\n")
}

var zhDimensionNames = map[string]string{
	"formality":   "正式程度",
	"tone":        "语气",
	"perspective": "视角",
	"emotion":     "情感",
}

var zhCategoryNames = map[string]string{
	"formal":         "正式",
	"casual":         "随意",
	"professional":   "专业",
	"friendly":       "友好",
	"authoritative":  "权威",
	"conversational": "对话式",
	"rational":       "理性",
	"emotional":      "感性",
}

// VoiceText renders a brand-voice result in the language of the
// analyzed content.
func VoiceText(r voice.Result) string {
	if r.Language == language.ZH {
		return voiceTextZH(r)
	}
	return voiceTextEN(r)
}

func voiceTextEN(r voice.Result) string {
	lines := []string{
		"=== Brand Voice Analysis ===",
		"Language: English",
		fmt.Sprintf("Word Count: %d", r.WordCount),
		fmt.Sprintf("Readability Score: %.1f/100", r.ReadabilityScore),
		"",
		"Voice Profile:",
	}

	for _, profile := range r.VoiceProfile {
		lines = append(lines, fmt.Sprintf("  %s: %s", titleCase(profile.Dimension), profile.Dominant))
	}

	lines = append(lines,
		"",
		"Sentence Analysis:",
		fmt.Sprintf("  Average Length: %.1f words", r.Sentences.AverageLength),
		fmt.Sprintf("  Variety: %s", r.Sentences.Variety),
		fmt.Sprintf("  Total Sentences: %d", r.Sentences.Count),
		"",
		"Recommendations:",
	)

	for _, rec := range r.Recommendations {
		lines = append(lines, "  • "+rec)
	}

	return strings.Join(lines, "\n")
}

func voiceTextZH(r voice.Result) string {
	lines := []string{
		"=== 品牌语调分析 ===",
		"语言: 中文",
		fmt.Sprintf("字数: %d", r.CharCount),
		fmt.Sprintf("可读性评分: %.1f/100", r.ReadabilityScore),
		"",
		"语调特征:",
	}

	for _, profile := range r.VoiceProfile {
		dim := profile.Dimension
		if name, ok := zhDimensionNames[dim]; ok {
			dim = name
		}
		dominant := profile.Dominant
		if name, ok := zhCategoryNames[dominant]; ok {
			dominant = name
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", dim, dominant))
	}

	lines = append(lines,
		"",
		"句子分析:",
		fmt.Sprintf("  平均句长: %.1f 字", r.Sentences.AverageLength),
		fmt.Sprintf("  句式变化: %s", r.Sentences.Variety),
		fmt.Sprintf("  总句数: %d", r.Sentences.Count),
		"",
		"建议:",
	)

	for _, rec := range r.Recommendations {
		lines = append(lines, "  • "+rec)
	}

	return strings.Join(lines, "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func yesNo(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}

func topN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
