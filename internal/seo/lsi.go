package seo

import (
	"regexp"
	"sort"
	"strings"

	"contentaudit/internal/language"
	"contentaudit/internal/lexicon"
)

var enTokenPattern = regexp.MustCompile(`[a-z]+`)

// lsiKeywords extracts up to ten frequent non-stopword terms related
// to the primary keyword. English tokens are lowercase alphabetic
// runs longer than three letters; Chinese tokens come from the
// segmenter and must be at least two runes. Terms occurring once and
// the primary keyword itself are excluded. Order is frequency
// descending, ties by first occurrence in the text.
func (a *Analyzer) lsiKeywords(content, primary string, tag language.Tag) []string {
	stop := lexicon.StopWords(tag)

	var tokens []string
	if tag == language.ZH {
		for _, token := range a.seg.Segment(content) {
			token = strings.TrimSpace(token)
			if token != "" && !stop[token] && len([]rune(token)) > 1 {
				tokens = append(tokens, token)
			}
		}
	} else {
		for _, token := range enTokenPattern.FindAllString(strings.ToLower(content), -1) {
			if !stop[token] && len(token) > 3 {
				tokens = append(tokens, token)
			}
		}
	}

	freq := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	var order []string
	for i, token := range tokens {
		if freq[token] == 0 {
			firstSeen[token] = i
			order = append(order, token)
		}
		freq[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	// EN tokens are already lowercased, so the primary is folded to
	// match; ZH tokens come from the segmenter as-is and the primary
	// is compared exactly.
	excluded := primary
	if tag != language.ZH {
		excluded = strings.ToLower(primary)
	}

	var lsi []string
	for _, token := range order {
		if token != excluded && freq[token] > 1 {
			lsi = append(lsi, token)
		}
		if len(lsi) >= 10 {
			break
		}
	}
	return lsi
}
