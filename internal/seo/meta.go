package seo

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	xlang "golang.org/x/text/language"

	"contentaudit/internal/language"
	"contentaudit/internal/readability"
)

var (
	slugPattern = regexp.MustCompile(`[^a-z0-9-]+`)
	enTitler    = cases.Title(xlang.English)
)

// metaSuggestions builds title, description, URL slug and Open Graph
// suggestions from the primary keyword and the content's first
// sentence. Length limits follow Google conventions for English
// (60-char title, 160-char description) and Baidu for Chinese
// (30 and 120 characters). Without a keyword all fields stay empty.
func metaSuggestions(content, keyword string, tag language.Tag) MetaSuggestions {
	var meta MetaSuggestions
	if keyword == "" {
		return meta
	}

	first := firstSentence(content, tag)

	if tag == language.ZH {
		meta.Title = keyword + " - 完整指南"
		if runeLen(meta.Title) > 30 {
			meta.Title = truncRunes(meta.Title, 27) + "..."
		}
		meta.MetaDescription = "了解关于" + keyword + "的一切。" + first
		if runeLen(meta.MetaDescription) > 120 {
			meta.MetaDescription = truncRunes(meta.MetaDescription, 117) + "..."
		}
	} else {
		titled := enTitler.String(keyword)
		meta.Title = titled + " - Complete Guide"
		if runeLen(meta.Title) > 60 {
			meta.Title = truncRunes(titled, 57) + "..."
		}
		meta.MetaDescription = "Learn everything about " + keyword + ". " + first
		if runeLen(meta.MetaDescription) > 160 {
			meta.MetaDescription = truncRunes(meta.MetaDescription, 157) + "..."
		}
	}

	meta.URLSlug = strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(keyword), "-"), "-")
	meta.OGTitle = meta.Title
	meta.OGDescription = meta.MetaDescription

	return meta
}

func firstSentence(content string, tag language.Tag) string {
	sentences := readability.SplitSentences(content, tag)
	if len(sentences) > 0 {
		return sentences[0]
	}
	limit := 160
	if tag == language.ZH {
		limit = 120
	}
	return truncRunes(content, limit)
}

func runeLen(s string) int {
	return len([]rune(s))
}

func truncRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
