package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/reactome/releasefetch/ensembl"
	"github.com/reactome/releasefetch/instanceedit"
)

// HumanFormatter outputs in human-readable format with colors
type HumanFormatter struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
	info    *color.Color
	dim     *color.Color
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter(w io.Writer) *HumanFormatter {
	return &HumanFormatter{
		out:     w,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		info:    color.New(color.FgCyan),
		dim:     color.New(color.Faint),
	}
}

// FormatFetchResults renders the results as a table followed by a summary line
func (f *HumanFormatter) FormatFetchResults(results []FetchResult) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"Source", "Outcome", "Size", "Duration", "Destination"})

	failed := 0
	for _, r := range results {
		outcome := f.success.Sprint(r.Outcome)
		if r.Err != nil {
			failed++
			outcome = f.failure.Sprint(r.Outcome)
		}
		t.AppendRow(table.Row{r.Source, outcome, humanSize(r.Size), r.Duration.Round(time.Millisecond), r.Destination})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d/%d ok", len(results)-failed, len(results)), "", "", ""})

	if _, err := fmt.Fprintln(f.out, t.Render()); err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			if _, err := f.failure.Fprintf(f.out, "✗ %s: %v\n", r.Source, r.Err); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatEnsemblResult outputs the status line followed by the body
func (f *HumanFormatter) FormatEnsemblResult(url string, result ensembl.Result, remaining int64) error {
	status := f.success
	if result.Status != 200 {
		status = f.failure
	}

	status.Fprintf(f.out, "%d %s\n", result.Status, url)
	if result.WaitTime > 0 {
		fmt.Fprintf(f.out, "  %s\n", f.dim.Sprintf("last wait: %s", result.WaitTime))
	}
	fmt.Fprintf(f.out, "  %s\n", f.dim.Sprintf("requests remaining: %d", remaining))
	if result.Body != "" {
		_, err := fmt.Fprintln(f.out, result.Body)
		return err
	}
	return nil
}

// FormatGunzipResults outputs one line per decompressed file
func (f *HumanFormatter) FormatGunzipResults(results []GunzipResult) error {
	for _, r := range results {
		if _, err := f.success.Fprintf(f.out, "✓ Extracted %s to %s ", r.Source, r.Target); err != nil {
			return err
		}
		fmt.Fprintln(f.out, f.dim.Sprintf("(%s)", humanSize(r.Size)))
	}
	return nil
}

// FormatInstanceEdit outputs the stored InstanceEdit
func (f *HumanFormatter) FormatInstanceEdit(edit *instanceedit.Instance) error {
	f.success.Fprintf(f.out, "✓ Created InstanceEdit %d\n", edit.DBID)
	fmt.Fprintf(f.out, "  Name: %s\n", f.info.Sprint(edit.DisplayName))
	fmt.Fprintf(f.out, "  Note: %s\n", edit.Note)
	if edit.Author != nil {
		fmt.Fprintf(f.out, "  Author: %s %s\n", edit.Author.DisplayName, f.dim.Sprintf("[%d]", edit.Author.DBID))
	}
	return nil
}

func humanSize(size int64) string {
	if size < 0 {
		return "-"
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
