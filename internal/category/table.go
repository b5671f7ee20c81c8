package category

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Category is a named bucket of file extensions. Its name is also the name
// of the destination folder.
type Category struct {
	Name       string
	Extensions []string
}

// Overlap describes an extension claimed by more than one category
type Overlap struct {
	Extension string
	Winner    string
	Shadowed  string
}

// Table is an ordered, immutable category table.
// Lookups scan categories in order and the first match wins.
type Table struct {
	categories []Category
}

// NewTable builds a table from the given categories. Names must be unique
// and non-empty; extensions are normalized to lowercase with a leading dot.
func NewTable(categories []Category) (*Table, error) {
	seen := make(map[string]bool, len(categories))
	out := make([]Category, 0, len(categories))

	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("category name must not be empty")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate category: %s", name)
		}
		seen[name] = true

		exts := make([]string, 0, len(c.Extensions))
		for _, ext := range c.Extensions {
			norm := NormalizeExtension(ext)
			if norm == "" {
				return nil, fmt.Errorf("category %s: empty extension", name)
			}
			exts = append(exts, norm)
		}
		out = append(out, Category{Name: name, Extensions: exts})
	}

	return &Table{categories: out}, nil
}

// MustTable is like NewTable but panics on error. Meant for static tables.
func MustTable(categories []Category) *Table {
	t, err := NewTable(categories)
	if err != nil {
		panic(err)
	}
	return t
}

// Classify returns the name of the first category owning ext.
func (t *Table) Classify(ext string) (string, bool) {
	ext = strings.ToLower(ext)
	if ext == "" {
		return "", false
	}
	for _, c := range t.categories {
		for _, e := range c.Extensions {
			if e == ext {
				return c.Name, true
			}
		}
	}
	return "", false
}

// Lookup returns a copy of the named category
func (t *Table) Lookup(name string) (Category, bool) {
	for _, c := range t.categories {
		if c.Name == name {
			return copyCategory(c), true
		}
	}
	return Category{}, false
}

// Names returns category names in table order
func (t *Table) Names() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Categories returns a copy of the table contents
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = copyCategory(c)
	}
	return out
}

// Len returns the number of categories
func (t *Table) Len() int {
	return len(t.categories)
}

// Overlaps lists extensions owned by more than one category. The category
// listed first in the table is the winner.
func (t *Table) Overlaps() []Overlap {
	owner := make(map[string]string)
	var overlaps []Overlap
	for _, c := range t.categories {
		for _, e := range c.Extensions {
			if first, ok := owner[e]; ok {
				if first != c.Name {
					overlaps = append(overlaps, Overlap{Extension: e, Winner: first, Shadowed: c.Name})
				}
				continue
			}
			owner[e] = c.Name
		}
	}
	return overlaps
}

// Suggest returns known extensions that fuzzily match ext, best first.
// At most limit suggestions are returned.
func (t *Table) Suggest(ext string, limit int) []string {
	ext = strings.TrimPrefix(NormalizeExtension(ext), ".")
	if ext == "" || limit <= 0 {
		return nil
	}

	var known []string
	seen := make(map[string]bool)
	for _, c := range t.categories {
		for _, e := range c.Extensions {
			if !seen[e] {
				seen[e] = true
				known = append(known, strings.TrimPrefix(e, "."))
			}
		}
	}

	var out []string
	added := make(map[string]bool)
	add := func(s string) bool {
		if s == ext || added[s] {
			return false
		}
		added[s] = true
		out = append(out, "."+s)
		return len(out) == limit
	}

	// typed text is a subsequence of a known extension ("jpe" -> "jpeg")
	for _, m := range fuzzy.Find(ext, known) {
		if add(m.Str) {
			return out
		}
	}
	// a known extension is a subsequence of the typed text ("jpgg" -> "jpg")
	for _, k := range known {
		if len(fuzzy.Find(k, []string{ext})) > 0 && len(k) > 1 {
			if add(k) {
				return out
			}
		}
	}
	return out
}

// NormalizeExtension lowercases ext and enforces a single leading dot.
// An empty or dot-only input yields "".
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	ext = strings.TrimLeft(ext, ".")
	if ext == "" {
		return ""
	}
	return "." + ext
}

func copyCategory(c Category) Category {
	exts := make([]string, len(c.Extensions))
	copy(exts, c.Extensions)
	return Category{Name: c.Name, Extensions: exts}
}
