package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/file-organizer/internal/category"
	"github.com/fenilsonani/file-organizer/internal/mover"
	"github.com/fenilsonani/file-organizer/internal/organizer"
	"github.com/fenilsonani/file-organizer/internal/ui/styles"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// ParseFormat validates a format name
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatSummary, nil
	case FormatTable, FormatJSON, FormatYAML, FormatSummary:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Reporter renders organize results
type Reporter struct {
	writer io.Writer
	format OutputFormat
	table  *category.Table
	color  bool
}

// New creates a new Reporter
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// WithTable sets the category table used for "did you mean" hints
func (r *Reporter) WithTable(t *category.Table) *Reporter {
	r.table = t
	return r
}

// WithColor enables lipgloss styling of the summary output
func (r *Reporter) WithColor(enabled bool) *Reporter {
	r.color = enabled
	return r
}

// Format returns the output format
func (r *Reporter) Format() OutputFormat {
	return r.format
}

// Report renders the result of one organize batch
func (r *Reporter) Report(result *organizer.Result) error {
	switch r.format {
	case FormatTable:
		return r.reportTable(result)
	case FormatJSON:
		return r.reportJSON(result)
	case FormatYAML:
		return r.reportYAML(result)
	case FormatSummary:
		return r.reportSummary(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) render(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// reportSummary prints the user messages followed by any failures
func (r *Reporter) reportSummary(result *organizer.Result) error {
	if result.DryRun {
		fmt.Fprintln(r.writer, r.render(styles.WarningStyle, "Dry run: no files were changed."))
	}

	for _, line := range Messages(result, r.table) {
		style := styles.SuccessStyle
		if !strings.HasPrefix(line, "Success!") {
			style = styles.InfoStyle
		}
		fmt.Fprintf(r.writer, "\n%s\n", r.render(style, line))
	}

	r.writeFailures(result)
	return nil
}

func (r *Reporter) writeFailures(result *organizer.Result) {
	if !result.HasFailures() {
		return
	}

	fmt.Fprintf(r.writer, "\n%s\n", r.render(styles.ErrorStyle,
		fmt.Sprintf("%d succeeded, %d failed", result.Moved, len(result.Failures))))
	for _, failure := range result.Failures {
		fmt.Fprintf(r.writer, "  %s\n", failure.UserMessage())
	}
	fmt.Fprint(r.writer, mover.FormatErrorSummary(result.Failures))
}

// reportTable prints one row per attempted move
func (r *Reporter) reportTable(result *organizer.Result) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Folder", "Size", "Status"})

	for _, o := range result.Outcomes {
		errText := ""
		if o.Err != nil {
			errText = o.Err.Reason.String()
		}
		tw.AppendRow(table.Row{
			filepath.Base(o.Source),
			o.Folder,
			humanize.Bytes(uint64(o.Size)),
			outcomeStatus(o.DryRun, o.Replaced, o.Unchanged, errText),
		})
	}
	for _, f := range result.Unclassified {
		tw.AppendRow(table.Row{f.Name, "", humanize.Bytes(uint64(f.Size)), "no category"})
	}

	tw.AppendFooter(table.Row{
		fmt.Sprintf("%d matched", result.Matched),
		"",
		humanize.Bytes(uint64(result.MovedBytes)),
		fmt.Sprintf("%d moved, %d failed", result.Moved, len(result.Failures)),
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	fmt.Fprintln(r.writer, tw.Render())

	for _, line := range Messages(result, r.table) {
		fmt.Fprintln(r.writer, line)
	}
	r.writeFailures(result)
	return nil
}

type fileReport struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Folder      string `json:"folder" yaml:"folder"`
	Size        int64  `json:"size" yaml:"size"`
	Status      string `json:"status" yaml:"status"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

type runReport struct {
	RunID              string         `json:"run_id" yaml:"run_id"`
	Timestamp          string         `json:"timestamp" yaml:"timestamp"`
	Mode               organizer.Mode `json:"mode" yaml:"mode"`
	Filter             string         `json:"filter,omitempty" yaml:"filter,omitempty"`
	Folder             string         `json:"folder,omitempty" yaml:"folder,omitempty"`
	Keyword            string         `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	WorkDir            string         `json:"work_dir" yaml:"work_dir"`
	Root               string         `json:"root" yaml:"root"`
	DryRun             bool           `json:"dry_run" yaml:"dry_run"`
	Matched            int            `json:"matched" yaml:"matched"`
	Moved              int            `json:"moved" yaml:"moved"`
	Failed             int            `json:"failed" yaml:"failed"`
	MovedSize          int64          `json:"moved_size" yaml:"moved_size"`
	MovedSizeFormatted string         `json:"moved_size_formatted" yaml:"moved_size_formatted"`
	Duration           string         `json:"duration" yaml:"duration"`
	Messages           []string       `json:"messages" yaml:"messages"`
	Files              []fileReport   `json:"files" yaml:"files"`
	Unclassified       []string       `json:"unclassified" yaml:"unclassified"`
}

func (r *Reporter) buildReport(result *organizer.Result) runReport {
	report := runReport{
		RunID:              result.RunID,
		Timestamp:          result.Started.Format(time.RFC3339),
		Mode:               result.Mode,
		Filter:             result.Filter,
		Folder:             result.Folder,
		Keyword:            result.Keyword,
		WorkDir:            result.WorkDir,
		Root:               result.Root,
		DryRun:             result.DryRun,
		Matched:            result.Matched,
		Moved:              result.Moved,
		Failed:             len(result.Failures),
		MovedSize:          result.MovedBytes,
		MovedSizeFormatted: humanize.Bytes(uint64(result.MovedBytes)),
		Duration:           result.Duration().String(),
		Messages:           Messages(result, r.table),
		Files:              make([]fileReport, 0, len(result.Outcomes)),
		Unclassified:       make([]string, 0, len(result.Unclassified)),
	}
	if report.Messages == nil {
		report.Messages = []string{}
	}

	for _, o := range result.Outcomes {
		fr := fileReport{
			Source:      o.Source,
			Destination: o.Destination,
			Folder:      o.Folder,
			Size:        o.Size,
		}
		errText := ""
		if o.Err != nil {
			errText = o.Err.Reason.String()
			fr.Error = o.Err.Error()
		}
		fr.Status = outcomeStatus(o.DryRun, o.Replaced, o.Unchanged, errText)
		report.Files = append(report.Files, fr)
	}
	for _, f := range result.Unclassified {
		report.Unclassified = append(report.Unclassified, f.Path)
	}
	return report
}

// reportJSON generates a JSON report
func (r *Reporter) reportJSON(result *organizer.Result) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.buildReport(result))
}

// reportYAML generates a YAML report
func (r *Reporter) reportYAML(result *organizer.Result) error {
	encoder := yaml.NewEncoder(r.writer)
	defer encoder.Close()
	return encoder.Encode(r.buildReport(result))
}

// SaveToFile saves the report to a file
func SaveToFile(result *organizer.Result, path string, format OutputFormat, t *category.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return New(file, format).WithTable(t).Report(result)
}
