// Package structure extracts heading, paragraph, list and link
// statistics from line-oriented lightweight markup.
package structure

import (
	"math"
	"regexp"
	"strings"

	"contentaudit/internal/language"
	"contentaudit/internal/segment"
)

type Headings struct {
	H1    int `json:"h1"`
	H2    int `json:"h2"`
	H3    int `json:"h3"`
	Total int `json:"total"`
}

type Links struct {
	Internal int `json:"internal"`
	External int `json:"external"`
}

// Stats describes the structural shape of a document. Average
// paragraph length is measured in words for English and CJK runes for
// Chinese, rounded to one decimal.
type Stats struct {
	Headings           Headings `json:"headings"`
	Paragraphs         int      `json:"paragraphs"`
	ListItems          int      `json:"lists"`
	Links              Links    `json:"links"`
	AvgParagraphLength float64  `json:"avg_paragraph_length"`

	// HeadingTexts carries each heading line's text (marker stripped)
	// so keyword placement can be checked without re-parsing.
	HeadingTexts []string `json:"-"`
}

var (
	internalLinkPattern = regexp.MustCompile(`\[.*?\]\(/.*?\)`)
	externalLinkPattern = regexp.MustCompile(`\[.*?\]\(https?://.*?\)`)
)

// Parse scans content line by line. Headings are lines starting with
// "# ", "## " or "### "; list items start with "- ", "* " or "1. "
// after left-trimming; links are counted per line with independent
// internal and external tallies. Paragraphs are maximal runs of
// non-empty lines not starting with "#", joined by single spaces;
// blank lines and heading lines close the current run and a trailing
// run is flushed at end of input.
func Parse(content string, tag language.Tag) Stats {
	var stats Stats
	var paragraphs []string
	var current []string

	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			stats.Headings.H1++
			stats.Headings.Total++
			stats.HeadingTexts = append(stats.HeadingTexts, strings.TrimPrefix(line, "# "))
		case strings.HasPrefix(line, "## "):
			stats.Headings.H2++
			stats.Headings.Total++
			stats.HeadingTexts = append(stats.HeadingTexts, strings.TrimPrefix(line, "## "))
		case strings.HasPrefix(line, "### "):
			stats.Headings.H3++
			stats.Headings.Total++
			stats.HeadingTexts = append(stats.HeadingTexts, strings.TrimPrefix(line, "### "))
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "1. ") {
			stats.ListItems++
		}

		stats.Links.Internal += len(internalLinkPattern.FindAllString(line, -1))
		stats.Links.External += len(externalLinkPattern.FindAllString(line, -1))

		if trimmed != "" && !strings.HasPrefix(line, "#") {
			current = append(current, line)
		} else if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}

	stats.Paragraphs = len(paragraphs)
	if len(paragraphs) > 0 {
		total := 0
		for _, paragraph := range paragraphs {
			if tag == language.ZH {
				total += language.CountCJK(paragraph)
			} else {
				total += len(segment.Words(paragraph))
			}
		}
		avg := float64(total) / float64(len(paragraphs))
		stats.AvgParagraphLength = math.Round(avg*10) / 10
	}

	return stats
}
