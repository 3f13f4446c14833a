package segment

import (
	"reflect"
	"testing"

	"contentaudit/internal/language"
)

func TestScanSegmenterSplitsCJKPerRune(t *testing.T) {
	t.Parallel()

	seg := New(StrategyScan)

	got := seg.Segment("这是test文本")
	want := []string{"这", "是", "test", "文", "本"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segment() = %v, want %v", got, want)
	}
}

func TestScanSegmenterDiscardsSeparators(t *testing.T) {
	t.Parallel()

	seg := New(StrategyScan)

	got := seg.Segment("你好，world! 测试")
	want := []string{"你", "好", "world", "测", "试"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segment() = %v, want %v", got, want)
	}
}

func TestScanSegmenterEmptyInput(t *testing.T) {
	t.Parallel()

	seg := New(StrategyScan)
	if got := seg.Segment(""); len(got) != 0 {
		t.Fatalf("Segment(\"\") = %v, want empty", got)
	}
}

func TestWordsKeepsTokensWithAlnum(t *testing.T) {
	t.Parallel()

	got := Words("The cat sat. -- ! 1st")
	want := []string{"The", "cat", "sat.", "1st"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
}

func TestWordCountEnglish(t *testing.T) {
	t.Parallel()

	seg := New(StrategyScan)
	got := WordCount("# Title\n\nThe cat sat. The cat ran fast today.", language.EN, seg)
	if got != 9 {
		t.Fatalf("WordCount() = %d, want 9", got)
	}
}

func TestWordCountChineseUsesSegmenter(t *testing.T) {
	t.Parallel()

	seg := New(StrategyScan)
	got := WordCount("这是测试", language.ZH, seg)
	if got != 4 {
		t.Fatalf("WordCount() = %d, want 4", got)
	}
}
