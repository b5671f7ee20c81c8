package config

import (
	"strings"

	"github.com/fenilsonani/file-organizer/internal/category"
)

// GetDefault returns the default configuration
func GetDefault() *Config {
	return &Config{
		Categories:      defaultCategories(),
		DestinationRoot: "", // home directory
		Overwrite:       false,
		DryRun:          false,
		LogLevel:        "warn",
		LogFormat:       "text",
		Output:          "summary",
	}
}

func defaultCategories() []CategoryConfig {
	defaults := category.DefaultCategories()
	out := make([]CategoryConfig, len(defaults))
	for i, c := range defaults {
		out[i] = CategoryConfig{Name: c.Name, Extensions: c.Extensions}
	}
	return out
}

const exampleTOMLHeader = `# File Organizer Configuration File
# destination_root: where category folders are created, empty means your home directory
# overwrite: replace files that already exist in a destination folder
# log_level: debug, info, warn, error; log_format: text or json
# output: summary, table, json, yaml
# Categories are checked in order; the first one listing an extension wins.

`

// GetExampleConfig returns an example configuration with comments
func GetExampleConfig() string {
	var b strings.Builder

	b.WriteString(`# File Organizer Configuration File
# Location: ~/.config/file-organizer/config.yaml

# Where category folders are created. Empty or "~" means your home directory.
destination_root: ""

# Replace files that already exist in a destination folder.
# When false, a name collision is reported and the file stays where it is.
overwrite: false

# Show what would be moved without touching any file
dry_run: false

# Diagnostic logging on stderr: debug, info, warn, error
log_level: warn
log_format: text   # text or json

# Report printed after a run: summary, table, json, yaml
output: summary

# Categories are checked in order; the first one listing an extension wins.
# Each category name is also the name of its folder.
categories:
`)
	for _, c := range category.DefaultCategories() {
		b.WriteString("  - name: " + c.Name + "\n")
		b.WriteString("    extensions: [")
		for i, ext := range c.Extensions {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(`"` + ext + `"`)
		}
		b.WriteString("]\n")
	}

	return b.String()
}
