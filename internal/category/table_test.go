package category

import (
	"strings"
	"testing"
)

func TestClassifyDefaultTable(t *testing.T) {
	table := Default()

	for _, c := range table.Categories() {
		for _, ext := range c.Extensions {
			for _, variant := range []string{ext, strings.ToUpper(ext)} {
				name, ok := table.Classify(variant)
				if !ok {
					t.Errorf("Classify(%q) found no category", variant)
					continue
				}
				if name != c.Name {
					t.Errorf("Classify(%q) = %q, want %q", variant, name, c.Name)
				}
				owner, _ := table.Lookup(name)
				if !contains(owner.Extensions, strings.ToLower(variant)) {
					t.Errorf("category %s does not contain %s", name, variant)
				}
			}
		}
	}
}

func TestClassifyNoMatch(t *testing.T) {
	table := Default()

	for _, ext := range []string{"", ".xyz", "txt", ".tar.gz"} {
		if name, ok := table.Classify(ext); ok {
			t.Errorf("Classify(%q) = %q, want no match", ext, name)
		}
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	table := MustTable([]Category{
		{Name: "Notes", Extensions: []string{".txt"}},
		{Name: "Documents", Extensions: []string{".pdf", ".txt"}},
	})

	name, ok := table.Classify(".txt")
	if !ok || name != "Notes" {
		t.Fatalf("Classify(.txt) = %q, %v; want Notes", name, ok)
	}

	overlaps := table.Overlaps()
	if len(overlaps) != 1 {
		t.Fatalf("Overlaps() = %v, want one overlap", overlaps)
	}
	if overlaps[0].Winner != "Notes" || overlaps[0].Shadowed != "Documents" {
		t.Errorf("unexpected overlap: %+v", overlaps[0])
	}
}

func TestDefaultTableHasNoOverlaps(t *testing.T) {
	if overlaps := Default().Overlaps(); len(overlaps) != 0 {
		t.Errorf("default table overlaps: %v", overlaps)
	}
}

func TestNewTable(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		wantErr    bool
	}{
		{"valid", []Category{{Name: "A", Extensions: []string{"TXT", ".Md"}}}, false},
		{"empty name", []Category{{Name: " ", Extensions: []string{".a"}}}, true},
		{"duplicate name", []Category{{Name: "A"}, {Name: "A"}}, true},
		{"empty extension", []Category{{Name: "A", Extensions: []string{"."}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.categories)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTable() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTableNormalizesExtensions(t *testing.T) {
	table := MustTable([]Category{{Name: "Docs", Extensions: []string{"TXT", ".Md"}}})

	c, _ := table.Lookup("Docs")
	if c.Extensions[0] != ".txt" || c.Extensions[1] != ".md" {
		t.Errorf("extensions = %v, want [.txt .md]", c.Extensions)
	}
}

func TestTableIsImmutable(t *testing.T) {
	table := Default()

	cats := table.Categories()
	cats[0].Name = "Changed"
	cats[0].Extensions[0] = ".changed"

	if table.Names()[0] != "Pictures" {
		t.Error("mutating Categories() result changed the table")
	}
	if name, ok := table.Classify(".jpg"); !ok || name != "Pictures" {
		t.Error("mutating extensions changed the table")
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := map[string]string{
		"txt":    ".txt",
		".TXT":   ".txt",
		" .pdf ": ".pdf",
		"..md":   ".md",
		"":       "",
		".":      "",
	}
	for in, want := range tests {
		if got := NormalizeExtension(in); got != want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSuggest(t *testing.T) {
	table := Default()

	got := table.Suggest(".jpgg", 3)
	if len(got) == 0 {
		t.Fatal("expected suggestions for .jpgg")
	}
	if !contains(got, ".jpg") {
		t.Errorf("Suggest(.jpgg) = %v, want it to include .jpg", got)
	}

	if got := table.Suggest("", 3); got != nil {
		t.Errorf("Suggest(\"\") = %v, want nil", got)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
