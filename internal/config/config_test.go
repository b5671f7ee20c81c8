package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// =============================================================================
// GetDefault Tests
// =============================================================================

func TestGetDefault(t *testing.T) {
	cfg := GetDefault()

	if cfg == nil {
		t.Fatal("GetDefault returned nil")
	}

	if len(cfg.Categories) != 7 {
		t.Fatalf("expected 7 default categories, got %d", len(cfg.Categories))
	}
	if cfg.Categories[0].Name != "Pictures" {
		t.Errorf("expected first category Pictures, got %q", cfg.Categories[0].Name)
	}
	if cfg.Overwrite {
		t.Error("expected Overwrite to be disabled by default")
	}
	if cfg.DryRun {
		t.Error("expected DryRun to be disabled by default")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected LogLevel warn, got %q", cfg.LogLevel)
	}
	if cfg.Output != "summary" {
		t.Errorf("expected Output summary, got %q", cfg.Output)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestGetDefaultTable(t *testing.T) {
	table, err := GetDefault().Table()
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	if name, ok := table.Classify(".pdf"); !ok || name != "Documents" {
		t.Errorf("Classify(.pdf) = %q, %v; want Documents", name, ok)
	}
}

// =============================================================================
// Load Tests
// =============================================================================

func TestLoadNonExistentFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load should not error for non-existent file: %v", err)
	}
	if cfg.Output != "summary" {
		t.Error("expected default config for missing file")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
overwrite: true
log_level: debug
categories:
  - name: Notes
    extensions: [".TXT", "md"]
  - name: Images
    extensions: [".png"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Overwrite {
		t.Error("expected Overwrite true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	// keys absent from the file keep defaults
	if cfg.Output != "summary" {
		t.Errorf("Output = %q, want summary", cfg.Output)
	}
	if len(cfg.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cfg.Categories))
	}

	table, err := cfg.Table()
	if err != nil {
		t.Fatal(err)
	}
	if name, ok := table.Classify(".md"); !ok || name != "Notes" {
		t.Errorf("Classify(.md) = %q, %v; want Notes", name, ok)
	}
	if _, ok := table.Classify(".pdf"); ok {
		t.Error("custom table should replace the defaults")
	}
}

func TestLoadYAMLWithoutCategoriesKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("dry_run: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.DryRun {
		t.Error("expected DryRun true")
	}
	if len(cfg.Categories) != 7 {
		t.Errorf("expected default categories, got %d", len(cfg.Categories))
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
destination_root = "~/Sorted"
output = "json"

[[categories]]
name = "Books"
extensions = [".epub", ".mobi"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if got := cfg.ResolveDestinationRoot("/home/u"); got != filepath.Join("/home/u", "Sorted") {
		t.Errorf("ResolveDestinationRoot = %q", got)
	}
	if len(cfg.Categories) != 1 || cfg.Categories[0].Name != "Books" {
		t.Errorf("unexpected categories: %+v", cfg.Categories)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		errorMsg string
	}{
		{"bad yaml", "categories: [", "failed to parse"},
		{"bad log level", "log_level: loud\n", "log level"},
		{"bad output", "output: html\n", "output"},
		{"relative destination", "destination_root: sorted\n", "destination root"},
		{"duplicate category", "categories:\n  - name: A\n    extensions: [.a]\n  - name: A\n    extensions: [.b]\n", "duplicate category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errorMsg)
			}
		})
	}
}

// =============================================================================
// Save / Example Tests
// =============================================================================

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := GetDefault()
	cfg.Overwrite = true
	cfg.DestinationRoot = "/srv/sorted"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded.Overwrite || loaded.DestinationRoot != "/srv/sorted" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestExampleConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	created, err := EnsureConfigExists(path)
	if err != nil {
		t.Fatalf("EnsureConfigExists() error = %v", err)
	}
	if !created {
		t.Fatal("expected file to be created")
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("example config does not load: %v", err)
	}
	if len(cfg.Categories) != len(GetDefault().Categories) {
		t.Errorf("example config has %d categories", len(cfg.Categories))
	}

	created, err = EnsureConfigExists(path)
	if err != nil || created {
		t.Errorf("second EnsureConfigExists() = %v, %v; want false, nil", created, err)
	}
}

func TestEnsureConfigExistsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file-organizer", "config.toml")

	created, err := EnsureConfigExists(path)
	if err != nil || !created {
		t.Fatalf("EnsureConfigExists() = %v, %v", created, err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("TOML example does not load: %v", err)
	}
	want := GetDefault()
	if len(cfg.Categories) != len(want.Categories) || cfg.Categories[0].Name != want.Categories[0].Name {
		t.Errorf("categories = %+v", cfg.Categories)
	}
	if cfg.LogLevel != want.LogLevel || cfg.Output != want.Output {
		t.Errorf("LogLevel = %q, Output = %q", cfg.LogLevel, cfg.Output)
	}
}

func TestResolveDestinationRoot(t *testing.T) {
	tests := []struct {
		root string
		want string
	}{
		{"", "/home/u"},
		{"~", "/home/u"},
		{"~/Sorted", filepath.Join("/home/u", "Sorted")},
		{"/data/sorted/", "/data/sorted"},
	}

	for _, tt := range tests {
		cfg := &Config{DestinationRoot: tt.root}
		if got := cfg.ResolveDestinationRoot("/home/u"); got != tt.want {
			t.Errorf("ResolveDestinationRoot(%q) = %q, want %q", tt.root, got, tt.want)
		}
	}
}
