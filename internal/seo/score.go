package seo

import "contentaudit/internal/language"

// score computes the 0-100 optimization score: up to 20 points for
// content length, 30 for keyword usage, 25 for structure and 25 for
// readability. Length and density bands differ per language (Google
// conventions for English, Baidu for Chinese).
func score(r Result, tag language.Tag) int {
	total := 0

	if tag == language.ZH {
		switch {
		case r.ContentLength >= 500 && r.ContentLength <= 3000:
			total += 20
		case r.ContentLength >= 300 && r.ContentLength < 500:
			total += 10
		case r.ContentLength > 3000:
			total += 15
		}
	} else {
		switch {
		case r.ContentLength >= 300 && r.ContentLength <= 2500:
			total += 20
		case r.ContentLength >= 200 && r.ContentLength < 300:
			total += 10
		case r.ContentLength > 2500:
			total += 15
		}
	}

	if r.Keywords != nil {
		density := r.Keywords.Primary.Density
		if tag == language.ZH {
			switch {
			case density >= 0.02 && density <= 0.08:
				total += 15
			case density >= 0.01 && density < 0.02:
				total += 8
			}
		} else {
			switch {
			case density >= 0.01 && density <= 0.03:
				total += 15
			case density >= 0.005 && density < 0.01:
				total += 8
			}
		}
		if r.Keywords.Primary.InFirstParagraph {
			total += 10
		}
		if r.Keywords.Primary.InHeadings {
			total += 5
		}
	}

	if r.Structure.Headings.Total > 0 {
		total += 10
	}
	if r.Structure.Paragraphs >= 3 {
		total += 10
	}
	if r.Structure.Links.Internal > 0 || r.Structure.Links.External > 0 {
		total += 5
	}

	total += r.Readability.Score * 25 / 100

	if total > 100 {
		total = 100
	}
	return total
}
