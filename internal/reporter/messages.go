package reporter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/file-organizer/internal/category"
	"github.com/fenilsonani/file-organizer/internal/organizer"
)

const maxSuggestions = 3

// Messages returns the lines shown to the user after a batch, in order.
// A type batch yields at most one aggregate line; a keyword batch yields
// one line per moved file. A batch without a filter that found nothing to
// move yields no lines.
func Messages(result *organizer.Result, table *category.Table) []string {
	var lines []string

	if result.Mode == organizer.ModeKeyword {
		for _, o := range result.Succeeded() {
			lines = append(lines, fmt.Sprintf("Success! %s has been moved to %s", filepath.Base(o.Source), result.Folder))
		}
		return lines
	}

	switch {
	case result.Moved > 0:
		lines = append(lines, fmt.Sprintf("Success! %d file(s) have been moved to their respective folders.", result.Moved))
	case result.Filter == "":
		return nil
	case result.Matched == 0:
		lines = append(lines, fmt.Sprintf("No files with the extension '%s' are found in the current directory.", result.Filter))
	case len(result.Unclassified) == result.Matched:
		lines = append(lines, fmt.Sprintf("Files with the extension '%s' do not belong to any category.", result.Filter))
	}

	if hint := suggestion(result.Filter, table); hint != "" {
		lines = append(lines, hint)
	}
	return lines
}

// suggestion returns a "did you mean" hint for a filter no category owns
func suggestion(filter string, table *category.Table) string {
	if filter == "" || table == nil {
		return ""
	}
	if _, ok := table.Classify(filter); ok {
		return ""
	}
	suggestions := table.Suggest(filter, maxSuggestions)
	if len(suggestions) == 0 {
		return ""
	}
	return fmt.Sprintf("Did you mean %s?", strings.Join(suggestions, ", "))
}

// outcomeStatus describes one move outcome in a word or two
func outcomeStatus(dryRun bool, replaced, unchanged bool, err string) string {
	switch {
	case err != "":
		return err
	case unchanged:
		return "already in place"
	case dryRun && replaced:
		return "would replace"
	case dryRun:
		return "would move"
	case replaced:
		return "replaced"
	default:
		return "moved"
	}
}
