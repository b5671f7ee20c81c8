package reporter

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/file-organizer/internal/category"
	"github.com/fenilsonani/file-organizer/internal/ui/styles"
)

type categoryReport struct {
	Name       string   `json:"name" yaml:"name"`
	Folder     string   `json:"folder" yaml:"folder"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// ReportCategories lists the category table and the folder each category
// moves files into
func (r *Reporter) ReportCategories(t *category.Table, root string) error {
	cats := t.Categories()

	switch r.format {
	case FormatJSON, FormatYAML:
		out := make([]categoryReport, 0, len(cats))
		for _, c := range cats {
			out = append(out, categoryReport{Name: c.Name, Folder: filepath.Join(root, c.Name), Extensions: c.Extensions})
		}
		if r.format == FormatJSON {
			encoder := json.NewEncoder(r.writer)
			encoder.SetIndent("", "  ")
			return encoder.Encode(out)
		}
		encoder := yaml.NewEncoder(r.writer)
		defer encoder.Close()
		return encoder.Encode(out)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Category", "Folder", "Extensions"})
	for i, c := range cats {
		tw.AppendRow(table.Row{i + 1, c.Name, filepath.Join(root, c.Name), strings.Join(c.Extensions, " ")})
	}
	fmt.Fprintln(r.writer, tw.Render())

	for _, o := range t.Overlaps() {
		fmt.Fprintln(r.writer, r.render(styles.WarningStyle,
			fmt.Sprintf("%s is listed in %s and %s; files go to %s", o.Extension, o.Winner, o.Shadowed, o.Winner)))
	}
	return nil
}
