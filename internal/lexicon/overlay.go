package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"contentaudit/internal/language"
)

// Overlay holds user-supplied extra voice terms keyed by language,
// then dimension, then category. Terms are appended to the built-in
// tables; unknown dimension or category names are ignored.
type Overlay map[string]map[string]map[string][]string

// LoadOverlay reads an overlay JSON file. An empty path yields a nil
// overlay with no error; blank terms are dropped.
func LoadOverlay(path string) (Overlay, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file %s: %w", path, err)
	}

	var data Overlay
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse lexicon JSON %s: %w", path, err)
	}

	cleaned := make(Overlay, len(data))
	for lang, dims := range data {
		cleanedDims := make(map[string]map[string][]string, len(dims))
		for dim, cats := range dims {
			cleanedCats := make(map[string][]string, len(cats))
			for cat, terms := range cats {
				var kept []string
				for _, term := range terms {
					term = strings.TrimSpace(term)
					if term != "" {
						kept = append(kept, term)
					}
				}
				if len(kept) > 0 {
					cleanedCats[cat] = kept
				}
			}
			if len(cleanedCats) > 0 {
				cleanedDims[dim] = cleanedCats
			}
		}
		if len(cleanedDims) > 0 {
			cleaned[lang] = cleanedDims
		}
	}

	return cleaned, nil
}

// Apply merges overlay terms for the given language into dims.
// Category term slices are copied before appending so the built-in
// tables stay untouched.
func (o Overlay) Apply(tag language.Tag, dims []Dimension) []Dimension {
	if o == nil {
		return dims
	}
	extra, ok := o[string(tag)]
	if !ok {
		return dims
	}

	for i, dim := range dims {
		cats, ok := extra[dim.Name]
		if !ok {
			continue
		}
		for j, cat := range dim.Categories {
			terms, ok := cats[cat.Name]
			if !ok {
				continue
			}
			merged := make([]string, 0, len(cat.Terms)+len(terms))
			merged = append(merged, cat.Terms...)
			merged = append(merged, terms...)
			dims[i].Categories[j].Terms = merged
		}
	}
	return dims
}
