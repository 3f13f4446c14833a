package segment

import "github.com/go-ego/gse"

// dictSegmenter delegates to the gse dictionary segmenter. It is an
// optional refinement over the scanner, never a correctness
// requirement.
type dictSegmenter struct {
	seg gse.Segmenter
}

func newDictSegmenter() (*dictSegmenter, error) {
	d := &dictSegmenter{}
	if err := d.seg.LoadDict(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *dictSegmenter) Segment(text string) []string {
	return d.seg.Cut(text, true)
}
