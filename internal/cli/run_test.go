package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeInputFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input file %s: %v", path, err)
	}
	return path
}

func useTempWorkingDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir(%q): %v", tmpDir, err)
	}

	t.Cleanup(func() {
		_ = os.Chdir(originalDir)
	})

	return tmpDir
}

const sampleArticleEN = "# Cat Care Guide\n\nThe cat is a popular pet. Every cat needs care and attention.\n\nCats enjoy play. See [tips](/tips) for more."

func TestRunSEOSingleFileToStdout(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeInputFile(t, tmpDir, "post.md", sampleArticleEN)

	var stdout, stderr bytes.Buffer
	err := Run([]string{"seo", "-segmenter", "scan", "-keyword", "cat", input}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("Run() error = %v; stderr=%s", err, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"=== SEO Content Analysis ===", "Primary Keyword: cat", "Recommendations:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stdout missing %q:\n%s", want, out)
		}
	}
}

func TestRunVoiceJSONToFile(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeInputFile(t, tmpDir, "post.md", "We are happy to share this. Research shows it helps.")
	outPath := filepath.Join(tmpDir, "result.json")

	var stdout, stderr bytes.Buffer
	err := Run([]string{"voice", "-segmenter", "scan", "-format", "json", "-out", outPath, input}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("Run() error = %v; stderr=%s", err, stderr.String())
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, raw)
	}
	if decoded["language"] != "en" {
		t.Fatalf("language = %v, want en", decoded["language"])
	}
	if _, ok := decoded["voice_profile"]; !ok {
		t.Fatalf("output missing voice_profile:\n%s", raw)
	}

	if !strings.Contains(stdout.String(), "Output: "+outPath) {
		t.Fatalf("stdout missing output path line:\n%s", stdout.String())
	}
}

func TestRunMultiFileWritesSummary(t *testing.T) {
	tmpDir := useTempWorkingDir(t)
	inputA := writeInputFile(t, tmpDir, "a.md", sampleArticleEN)
	inputB := writeInputFile(t, tmpDir, "b.md", "这是一个中文测试文本。希望大家喜欢这个分享。")

	var stdout, stderr bytes.Buffer
	err := Run([]string{"seo", "-segmenter", "scan", "-keyword", "cat", inputA, inputB}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("Run() error = %v; stderr=%s", err, stderr.String())
	}

	for _, name := range []string{"a.seo.txt", "b.seo.txt"} {
		if _, err := os.Stat(filepath.Join(tmpDir, "out", name)); err != nil {
			t.Fatalf("missing output file %s: %v", name, err)
		}
	}

	rawSummary, err := os.ReadFile(filepath.Join(tmpDir, "out", "_summary.json"))
	if err != nil {
		t.Fatalf("read summary file: %v", err)
	}

	var summary taskSummary
	if err := json.Unmarshal(rawSummary, &summary); err != nil {
		t.Fatalf("parse summary: %v", err)
	}
	if summary.Command != "seo" || summary.TotalFiles != 2 {
		t.Fatalf("summary = %+v, want command=seo total_files=2", summary)
	}
	if summary.SuccessCount != 2 || summary.FailureCount != 0 {
		t.Fatalf("summary counts = %d/%d, want 2/0", summary.SuccessCount, summary.FailureCount)
	}
	if summary.Results[1].Language != "zh" {
		t.Fatalf("second result language = %q, want zh", summary.Results[1].Language)
	}

	if !strings.Contains(stdout.String(), "Done: 2 succeeded, 0 failed") {
		t.Fatalf("stdout missing done line:\n%s", stdout.String())
	}
}

func TestRunMissingFileFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run([]string{"voice", "-segmenter", "scan", filepath.Join(t.TempDir(), "nope.md")}, &stdout, &stderr)
	if err == nil {
		t.Fatal("Run() error = nil, want failure")
	}
	if !strings.Contains(err.Error(), "1 file(s) failed") {
		t.Fatalf("Run() error = %v, want file failure", err)
	}
	if !strings.Contains(stderr.String(), "Failed [read_failed]") {
		t.Fatalf("stderr missing read_failed marker:\n%s", stderr.String())
	}
}

func TestRunHTMLInputConverted(t *testing.T) {
	tmpDir := t.TempDir()
	page := "<html><head><title>Cats</title></head><body><article><h1>Cats</h1><p>The cat sleeps. The cat plays all day long.</p></article></body></html>"
	input := writeInputFile(t, tmpDir, "page.html", page)

	var stdout, stderr bytes.Buffer
	err := Run([]string{"seo", "-segmenter", "scan", "-keyword", "cat", input}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("Run() error = %v; stderr=%s", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Primary Keyword: cat") {
		t.Fatalf("stdout missing analysis:\n%s", stdout.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run([]string{"audit", "file.md"}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("Run() error = %v, want unknown command", err)
	}
}

func TestRunNoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run(nil, &stdout, &stderr)
	if err == nil {
		t.Fatal("Run() error = nil, want usage error")
	}
	if !strings.Contains(stderr.String(), "Usage: contentaudit") {
		t.Fatalf("stderr missing usage:\n%s", stderr.String())
	}
}

func TestRunVersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := Run([]string{"-version"}, &stdout, &stderr); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "contentaudit version=") {
		t.Fatalf("stdout missing version string:\n%s", stdout.String())
	}
}

func TestRunInvalidFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run([]string{"seo", "-format", "xml", "file.md"}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "invalid -format") {
		t.Fatalf("Run() error = %v, want invalid -format", err)
	}
}

func TestSplitKeywords(t *testing.T) {
	t.Parallel()

	got := splitKeywords(" cat food , litter ,, toys ")
	want := []string{"cat food", "litter", "toys"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitKeywords() = %v, want %v", got, want)
	}

	if got := splitKeywords("  "); got != nil {
		t.Fatalf("splitKeywords(blank) = %v, want nil", got)
	}
}

func TestOutputPathForFile(t *testing.T) {
	t.Parallel()

	plan := outputPlan{outputDir: "out"}

	got := outputPathForFile(plan, filepath.Join("docs", "post.md"), "seo", formatText)
	if got != filepath.Join("out", "post.seo.txt") {
		t.Fatalf("outputPathForFile() = %q", got)
	}

	got = outputPathForFile(plan, "page.html", "voice", formatJSON)
	if got != filepath.Join("out", "page.voice.json") {
		t.Fatalf("outputPathForFile() = %q", got)
	}

	single := outputPlan{singleFile: "custom.txt"}
	if got := outputPathForFile(single, "x.md", "seo", formatText); got != "custom.txt" {
		t.Fatalf("outputPathForFile() = %q, want custom.txt", got)
	}
}

func TestIsHTMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{path: "a.html", want: true},
		{path: "A.HTM", want: true},
		{path: "x.xhtml", want: true},
		{path: "post.md", want: false},
		{path: "plain.txt", want: false},
	}
	for _, tt := range tests {
		if got := isHTMLPath(tt.path); got != tt.want {
			t.Fatalf("isHTMLPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
