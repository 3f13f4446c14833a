// Package cli implements the contentaudit command line: subcommand
// dispatch, flag parsing, per-file processing and the multi-file run
// summary.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"contentaudit/internal/htmldoc"
	"contentaudit/internal/lexicon"
	"contentaudit/internal/report"
	"contentaudit/internal/segment"
	"contentaudit/internal/seo"
	"contentaudit/internal/version"
	"contentaudit/internal/voice"
)

const (
	commandSEO   = "seo"
	commandVoice = "voice"

	formatText = "text"
	formatJSON = "json"

	defaultOutDir   = "out"
	summaryFileName = "_summary.json"

	errorTypeRead    = "read_failed"
	errorTypeConvert = "convert_failed"
	errorTypeOutput  = "output_failed"
	errorTypeUnknown = "unknown"
)

type options struct {
	Command     string
	Format      string
	OutPath     string
	Lexicon     string
	Segmenter   string
	Keyword     string
	Secondary   []string
	ShowVersion bool
	ShowHelp    bool
	Files       []string
}

type outputPlan struct {
	outputDir  string
	singleFile string
	summaryDir string
	toStdout   bool
}

type summaryItem struct {
	SourceFile   string `json:"source_file"`
	Success      bool   `json:"success"`
	DurationMS   int64  `json:"duration_ms"`
	OutputPath   string `json:"output_path,omitempty"`
	Language     string `json:"language,omitempty"`
	Score        int    `json:"score,omitempty"`
	ErrorType    string `json:"error_type,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type taskSummary struct {
	GeneratedAt     string        `json:"generated_at"`
	Command         string        `json:"command"`
	Format          string        `json:"format"`
	TotalFiles      int           `json:"total_files"`
	SuccessCount    int           `json:"success_count"`
	FailureCount    int           `json:"failure_count"`
	TotalDurationMS int64         `json:"total_duration_ms"`
	Results         []summaryItem `json:"results"`
}

type fileOutput struct {
	outputPath string
	language   string
	score      int
}

type processError struct {
	errorType string
	err       error
}

func (e *processError) Error() string {
	return e.err.Error()
}

func (e *processError) Unwrap() error {
	return e.err
}

func newProcessError(errorType string, err error) *processError {
	return &processError{errorType: errorType, err: err}
}

func errorDetails(err error) (string, string) {
	var procErr *processError
	if errors.As(err, &procErr) {
		return procErr.errorType, procErr.err.Error()
	}
	return errorTypeUnknown, err.Error()
}

func Run(args []string, stdout io.Writer, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.ShowHelp {
		return nil
	}
	if opts.ShowVersion {
		_, _ = fmt.Fprintln(stdout, version.String())
		return nil
	}

	opts.Files = normalizeFiles(opts.Files)
	if len(opts.Files) == 0 {
		return errors.New("at least one input file is required")
	}

	overlay, err := lexicon.LoadOverlay(opts.Lexicon)
	if err != nil {
		return err
	}

	seg := segment.New(opts.Segmenter)

	outPlan, err := buildOutputPlan(opts)
	if err != nil {
		return err
	}
	if err := prepareOutputPlan(outPlan); err != nil {
		return err
	}

	runStart := time.Now()
	summary := taskSummary{
		GeneratedAt: runStart.UTC().Format(time.RFC3339),
		Command:     opts.Command,
		Format:      opts.Format,
		TotalFiles:  len(opts.Files),
		Results:     make([]summaryItem, 0, len(opts.Files)),
	}

	for _, sourceFile := range opts.Files {
		itemStart := time.Now()
		item := summaryItem{SourceFile: sourceFile}

		output, err := processFile(opts, seg, overlay, sourceFile, outPlan, stdout)
		item.DurationMS = time.Since(itemStart).Milliseconds()
		if err != nil {
			errorType, errorMessage := errorDetails(err)
			item.Success = false
			item.ErrorType = errorType
			item.ErrorMessage = errorMessage
			summary.FailureCount++
			summary.Results = append(summary.Results, item)
			_, _ = fmt.Fprintf(stderr, "Failed [%s]: %s (%s)\n", errorType, sourceFile, errorMessage)
			continue
		}

		item.Success = true
		item.OutputPath = output.outputPath
		item.Language = output.language
		item.Score = output.score
		summary.SuccessCount++
		summary.Results = append(summary.Results, item)

		if output.outputPath != "" {
			_, _ = fmt.Fprintf(stdout, "Output: %s\n", output.outputPath)
		}
	}

	summary.TotalDurationMS = time.Since(runStart).Milliseconds()

	if len(opts.Files) > 1 {
		summaryPath := filepath.Join(outPlan.summaryDir, summaryFileName)
		if err := writeSummary(summaryPath, summary); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(stdout, "Summary: %s\n", summaryPath)
		_, _ = fmt.Fprintf(
			stdout,
			"Done: %d succeeded, %d failed, total %s\n",
			summary.SuccessCount,
			summary.FailureCount,
			time.Duration(summary.TotalDurationMS)*time.Millisecond,
		)
	}

	if summary.FailureCount > 0 {
		return fmt.Errorf("%d file(s) failed", summary.FailureCount)
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	if len(args) == 0 {
		printUsage(stderr)
		return options{}, errors.New("a command is required: seo or voice")
	}

	switch args[0] {
	case "-version", "--version":
		return options{ShowVersion: true}, nil
	case "-h", "-help", "--help", "help":
		printUsage(stderr)
		return options{ShowHelp: true}, nil
	}

	command := args[0]
	if command != commandSEO && command != commandVoice {
		printUsage(stderr)
		return options{}, fmt.Errorf("unknown command %q: expected seo or voice", command)
	}

	fs := flag.NewFlagSet("contentaudit "+command, flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaultSegmenter := strings.TrimSpace(os.Getenv("CONTENTAUDIT_SEGMENTER"))
	if defaultSegmenter == "" {
		defaultSegmenter = segment.StrategyDict
	}

	opts := options{Command: command}
	fs.StringVar(&opts.Format, "format", formatText, "Output format: text or json")
	fs.StringVar(&opts.OutPath, "out", "", "Output path: file for single input, directory for multiple (default: stdout for one file, ./out/ for several)")
	fs.StringVar(&opts.Lexicon, "lexicon", os.Getenv("CONTENTAUDIT_LEXICON"), "Path to JSON lexicon overlay extending the built-in voice terms")
	fs.StringVar(&opts.Segmenter, "segmenter", defaultSegmenter, "Chinese segmentation strategy: dict or scan")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Print version information and exit")

	var secondary string
	if command == commandSEO {
		fs.StringVar(&opts.Keyword, "keyword", "", "Primary target keyword")
		fs.StringVar(&secondary, "secondary", "", "Comma-separated secondary keywords")
	}

	fs.Usage = func() {
		printUsage(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			opts.ShowHelp = true
			return opts, nil
		}
		return options{}, err
	}

	if opts.Format != formatText && opts.Format != formatJSON {
		return options{}, fmt.Errorf("invalid -format %q: expected text or json", opts.Format)
	}
	if opts.Segmenter != segment.StrategyDict && opts.Segmenter != segment.StrategyScan {
		return options{}, fmt.Errorf("invalid -segmenter %q: expected dict or scan", opts.Segmenter)
	}

	opts.Secondary = splitKeywords(secondary)
	opts.Files = fs.Args()
	if opts.ShowVersion {
		return opts, nil
	}
	if len(opts.Files) == 0 {
		fs.Usage()
		return options{}, errors.New("at least one input file is required")
	}

	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: contentaudit <command> [flags] <file> [file...]")
	fmt.Fprintln(w, "用法: contentaudit <命令> [选项] <文件> [文件...]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  seo     Analyze content for search-engine optimization")
	fmt.Fprintln(w, "  voice   Analyze content for brand-voice characteristics")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "  contentaudit seo -keyword \"claude code\" post.md")
	fmt.Fprintln(w, "  contentaudit voice article.html")
	fmt.Fprintln(w, "")
}

func normalizeFiles(files []string) []string {
	out := make([]string, 0, len(files))
	for _, raw := range files {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func splitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func buildOutputPlan(opts options) (outputPlan, error) {
	if opts.OutPath == "" {
		if len(opts.Files) == 1 {
			return outputPlan{toStdout: true, summaryDir: "."}, nil
		}
		return outputPlan{
			outputDir:  defaultOutDir,
			summaryDir: defaultOutDir,
		}, nil
	}

	if len(opts.Files) == 1 {
		return outputPlan{
			singleFile: opts.OutPath,
			summaryDir: filepath.Dir(opts.OutPath),
		}, nil
	}

	return outputPlan{
		outputDir:  opts.OutPath,
		summaryDir: opts.OutPath,
	}, nil
}

func prepareOutputPlan(plan outputPlan) error {
	if plan.outputDir != "" {
		if err := os.MkdirAll(plan.outputDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if plan.singleFile != "" {
		dir := filepath.Dir(plan.singleFile)
		if dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
	}

	if plan.summaryDir != "" && plan.summaryDir != "." {
		if err := os.MkdirAll(plan.summaryDir, 0o755); err != nil {
			return fmt.Errorf("create summary directory: %w", err)
		}
	}

	return nil
}

func processFile(
	opts options,
	seg segment.Segmenter,
	overlay lexicon.Overlay,
	sourceFile string,
	outPlan outputPlan,
	stdout io.Writer,
) (fileOutput, error) {
	raw, err := os.ReadFile(sourceFile)
	if err != nil {
		return fileOutput{}, newProcessError(errorTypeRead, fmt.Errorf("read input file %s: %w", sourceFile, err))
	}

	content := string(raw)
	if isHTMLPath(sourceFile) {
		doc, err := htmldoc.FromHTML(content)
		if err != nil {
			return fileOutput{}, newProcessError(errorTypeConvert, fmt.Errorf("convert %s: %w", sourceFile, err))
		}
		content = doc.Markdown
	}

	var rendered string
	output := fileOutput{}
	switch opts.Command {
	case commandSEO:
		result := seo.New(seg).Analyze(seo.Input{
			Content:           content,
			Keyword:           opts.Keyword,
			SecondaryKeywords: opts.Secondary,
		})
		output.language = string(result.Language)
		output.score = result.OptimizationScore
		if opts.Format == formatJSON {
			rendered, err = report.JSON(result)
		} else {
			rendered = report.SEOText(result)
		}
	case commandVoice:
		result := voice.New(seg, overlay).Analyze(content)
		output.language = string(result.Language)
		if opts.Format == formatJSON {
			rendered, err = report.JSON(result)
		} else {
			rendered = report.VoiceText(result)
		}
	}
	if err != nil {
		return fileOutput{}, newProcessError(errorTypeConvert, err)
	}

	if outPlan.toStdout {
		_, _ = fmt.Fprintln(stdout, rendered)
		return output, nil
	}

	outPath := outputPathForFile(outPlan, sourceFile, opts.Command, opts.Format)
	if err := os.WriteFile(outPath, []byte(rendered+"\n"), 0o644); err != nil {
		return fileOutput{}, newProcessError(errorTypeOutput, fmt.Errorf("write output file %s: %w", outPath, err))
	}
	output.outputPath = outPath

	return output, nil
}

func isHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

func outputPathForFile(plan outputPlan, sourceFile, command, format string) string {
	if plan.singleFile != "" {
		return plan.singleFile
	}

	base := filepath.Base(sourceFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "output"
	}

	ext := ".txt"
	if format == formatJSON {
		ext = ".json"
	}
	return filepath.Join(plan.outputDir, base+"."+command+ext)
}

func writeSummary(path string, summary taskSummary) error {
	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	payload = append(payload, '\n')

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write summary file %s: %w", path, err)
	}
	return nil
}
