package organizer

import (
	"errors"
	"testing"
)

func TestRequestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		want    Request
		wantErr error
	}{
		{"all drops fields", Request{Mode: ModeAll, Extension: "txt"}, Request{Mode: ModeAll}, nil},
		{"type adds dot", Request{Mode: ModeType, Extension: "PDF"}, Request{Mode: ModeType, Extension: ".pdf"}, nil},
		{"type keeps dot", Request{Mode: ModeType, Extension: " .Md "}, Request{Mode: ModeType, Extension: ".md"}, nil},
		{"type empty", Request{Mode: ModeType, Extension: "."}, Request{}, ErrEmptyExtension},
		{"keyword trims", Request{Mode: ModeKeyword, Folder: " Notes ", Keyword: " report "}, Request{Mode: ModeKeyword, Folder: "Notes", Keyword: "report"}, nil},
		{"keyword empty", Request{Mode: ModeKeyword, Folder: "Notes"}, Request{}, ErrEmptyKeyword},
		{"unknown mode", Request{Mode: Mode(9)}, Request{}, ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Normalize()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Normalize() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	tests := map[Mode]string{
		ModeAll:     "all",
		ModeType:    "type",
		ModeKeyword: "keyword",
		Mode(7):     "mode(7)",
	}
	for mode, want := range tests {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %s, want %s", int(mode), got, want)
		}
		text, _ := mode.MarshalText()
		if string(text) != want {
			t.Errorf("MarshalText() = %s, want %s", text, want)
		}
	}
}
