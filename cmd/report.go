// file: cmd/report.go
// version: 2.0.0
// guid: ca41c78d-a6fe-43d5-b2a3-bfe97b837046

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/jdfalk/musort/internal/organizer"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// printReport writes the run summary, the planned actions for dry runs, and
// the ledger when it is not empty.
func printReport(w io.Writer, r *organizer.Report, showActions bool) {
	title := "Run " + r.RunID
	if r.DryRun {
		title += " (dry run)"
	}
	fmt.Fprintf(w, "%s in %s\n", title, r.Duration.Round(time.Millisecond))
	fmt.Fprintln(w, statsTable(r.Stats).Render())

	if showActions && len(r.Actions) > 0 {
		fmt.Fprintln(w, actionsTable(r).Render())
	}
	if len(r.Entries) > 0 {
		fmt.Fprintln(w, problemsTable(r).Render())
	}
}

func newReportTable(header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)
	return tw
}

// statsTable lists every counter, zeros included, so runs compare line by line.
func statsTable(s organizer.Stats) table.Writer {
	tw := newReportTable(table.Row{"Result", "Count"})
	tw.AppendRows([]table.Row{
		{"Folders with music", s.Folders},
		{"Albums classified", s.Classified},
		{"Directories moved", s.DirsMoved},
		{"Files renamed", s.FilesRenamed},
		{"Duplicates removed", s.DuplicatesRemoved},
		{"Empty directories removed", s.EmptyRemoved},
		{"Conflicts", s.Conflicts},
		{"Unreadable files", s.TagFailures},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw
}

func actionsTable(r *organizer.Report) table.Writer {
	tw := newReportTable(table.Row{"Action", "From", "To"})
	for _, a := range r.Actions {
		tw.AppendRow(table.Row{string(a.Kind), relTo(r.Root, a.From), relTo(r.Target, a.To)})
	}
	return tw
}

func problemsTable(r *organizer.Report) table.Writer {
	tw := newReportTable(table.Row{"Problem", "Item", "Detail"})
	for _, e := range r.Entries {
		tw.AppendRow(table.Row{e.Kind.String(), relTo(r.Root, e.Identity()), e.Detail()})
	}
	return tw
}

// relTo shortens absolute paths below base; anything else is returned as is.
func relTo(base, path string) string {
	if path == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
