package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/fenilsonani/file-organizer/internal/category"
)

// Option is a menu choice
type Option int

const (
	OptionOrganizeAll Option = iota + 1
	OptionOrganizeType
	OptionOrganizeKeyword
	OptionExit
)

// Options lists the menu choices in display order
var Options = []Option{OptionOrganizeAll, OptionOrganizeType, OptionOrganizeKeyword, OptionExit}

// Description returns the menu line for o
func (o Option) Description() string {
	switch o {
	case OptionOrganizeAll:
		return "Organize all files in the current directory by file type and move to its specified home folders. E.g. .txt to Documents, .jpg to Pictures, etc."
	case OptionOrganizeType:
		return "Move specified file type in current directory to its respective home folder"
	case OptionOrganizeKeyword:
		return "Create a custom folder and move all files containing a user-specified keyword in their name to that folder."
	case OptionExit:
		return "Select 4 to exit."
	default:
		return ""
	}
}

var (
	ErrNotANumber  = errors.New("not a number")
	ErrOutOfRange  = errors.New("option out of range")
	ErrEmptyAnswer = errors.New("empty answer")
)

// InputError is a rejected answer. Message is shown to the user before
// asking again.
type InputError struct {
	Input   string
	Message string
	Err     error
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ParseOption parses a menu answer. Surrounding whitespace is ignored.
func ParseOption(input string) (Option, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, &InputError{Input: input, Message: "Please enter a valid number 1-4", Err: ErrNotANumber}
	}
	if n < int(OptionOrganizeAll) || n > int(OptionExit) {
		return 0, &InputError{Input: input, Message: "Invalid Input. Please select 1-4.", Err: ErrOutOfRange}
	}
	return Option(n), nil
}

// ParseExtension normalizes an extension answer: lowercased, with a single
// leading dot added when missing
func ParseExtension(input string) (string, error) {
	ext := category.NormalizeExtension(input)
	if ext == "" {
		return "", &InputError{Input: input, Message: "Please enter a file extension, e.g. .txt", Err: ErrEmptyAnswer}
	}
	return ext, nil
}

// ParseRequired trims input and rejects an empty answer. field names the
// answer in the error message.
func ParseRequired(field, input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", &InputError{Input: input, Message: field + " must not be empty", Err: ErrEmptyAnswer}
	}
	return s, nil
}
