package seo

import (
	"fmt"

	"contentaudit/internal/language"
)

// recommendations evaluates a fixed ordered rule list per language.
// Rules are independent; several can fire for the same document.
func recommendations(r Result, tag language.Tag) []string {
	if tag == language.ZH {
		return recommendationsZH(r)
	}
	return recommendationsEN(r)
}

func recommendationsEN(r Result) []string {
	var recs []string

	if r.ContentLength < 300 {
		recs = append(recs, fmt.Sprintf(
			"Increase content length to at least 300 words (currently %d)", r.ContentLength))
	} else if r.ContentLength > 3000 {
		recs = append(recs, "Consider breaking long content into multiple pages or adding a table of contents")
	}

	if r.Keywords != nil {
		kw := r.Keywords.Primary
		if kw.Density < 0.01 {
			recs = append(recs, fmt.Sprintf(
				"Increase keyword density for '%s' (currently %.2f%%)", kw.Keyword, kw.Density*100))
		} else if kw.Density > 0.03 {
			recs = append(recs, fmt.Sprintf(
				"Reduce keyword density to avoid over-optimization (currently %.2f%%)", kw.Density*100))
		}
		if !kw.InFirstParagraph {
			recs = append(recs, "Include primary keyword in the first paragraph")
		}
	}

	if r.Structure.Headings.Total == 0 {
		recs = append(recs, "Add headings (H1, H2, H3) to improve content structure")
	}
	if r.Structure.Links.Internal == 0 {
		recs = append(recs, "Add internal links to related content")
	}
	if r.Structure.AvgParagraphLength > 150 {
		recs = append(recs, "Break up long paragraphs for better readability")
	}

	if r.Readability.AvgSentenceLength > 20 {
		recs = append(recs, "Simplify sentences for better readability")
	}

	return recs
}

func recommendationsZH(r Result) []string {
	var recs []string

	if r.ContentLength < 500 {
		recs = append(recs, fmt.Sprintf("建议增加内容长度至少500字（当前%d字）", r.ContentLength))
	} else if r.ContentLength > 5000 {
		recs = append(recs, "内容较长，建议分页或添加目录")
	}

	if r.Keywords != nil {
		kw := r.Keywords.Primary
		if kw.Density < 0.02 {
			recs = append(recs, fmt.Sprintf("建议增加关键词密度（当前%.1f%%，建议2%%-8%%）", kw.Density*100))
		} else if kw.Density > 0.08 {
			recs = append(recs, fmt.Sprintf("关键词密度过高（当前%.1f%%），可能被判定为关键词堆砌", kw.Density*100))
		}
		if !kw.InFirstParagraph {
			recs = append(recs, "建议在首段包含主要关键词")
		}
	}

	if r.Structure.Headings.Total == 0 {
		recs = append(recs, "建议添加标题（H1、H2、H3）优化内容结构")
	}
	if r.Structure.Links.Internal == 0 {
		recs = append(recs, "建议添加内链指向相关内容")
	}
	if r.Structure.AvgParagraphLength > 300 {
		recs = append(recs, "段落过长，建议拆分提升可读性")
	}

	if r.Readability.AvgSentenceLength > 50 {
		recs = append(recs, "句子较长，建议简化提升可读性")
	}

	return recs
}
