package scanner

import "time"

// FileEntry is a snapshot of one directory entry taken at scan time.
// It is not revalidated before the organizer acts on it.
type FileEntry struct {
	Path      string // absolute
	Name      string
	Ext       string // lowercase, leading dot, "" when the name has no suffix
	IsRegular bool
	Size      int64
	ModTime   time.Time
}

// ScanResult represents the result of a scan operation
type ScanResult struct {
	Dir     string
	Entries []FileEntry
	Errors  []error
}

// Files returns the regular files of the scan, in directory order
func (r *ScanResult) Files() []FileEntry {
	files := make([]FileEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		if e.IsRegular {
			files = append(files, e)
		}
	}
	return files
}
