package organizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fenilsonani/file-organizer/internal/category"
)

var (
	// ErrEmptyKeyword is returned when a keyword move is requested with a
	// blank keyword. A blank keyword would match every file.
	ErrEmptyKeyword = errors.New("keyword must not be empty")

	// ErrEmptyExtension is returned when an extension filter normalizes to
	// nothing, e.g. "."
	ErrEmptyExtension = errors.New("extension must not be empty")

	// ErrUnknownMode is returned by Run for a mode it cannot dispatch
	ErrUnknownMode = errors.New("unknown organize mode")
)

// Mode selects which batch an organize request runs
type Mode int

const (
	ModeAll Mode = iota
	ModeType
	ModeKeyword
)

// String returns the mode name used in reports and flags
func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeType:
		return "type"
	case ModeKeyword:
		return "keyword"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MarshalText renders the mode by name in json and yaml reports
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Request describes one organize invocation
type Request struct {
	Mode      Mode
	Extension string // ModeType only
	Folder    string // ModeKeyword only
	Keyword   string // ModeKeyword only
}

// Normalize validates the request and returns a copy with the extension
// lowercased and dotted and the keyword and folder trimmed
func (r Request) Normalize() (Request, error) {
	switch r.Mode {
	case ModeAll:
		return Request{Mode: ModeAll}, nil
	case ModeType:
		ext := category.NormalizeExtension(r.Extension)
		if ext == "" {
			return r, ErrEmptyExtension
		}
		return Request{Mode: ModeType, Extension: ext}, nil
	case ModeKeyword:
		keyword := strings.TrimSpace(r.Keyword)
		if keyword == "" {
			return r, ErrEmptyKeyword
		}
		return Request{Mode: ModeKeyword, Folder: strings.TrimSpace(r.Folder), Keyword: keyword}, nil
	default:
		return r, fmt.Errorf("%w: %s", ErrUnknownMode, r.Mode)
	}
}
