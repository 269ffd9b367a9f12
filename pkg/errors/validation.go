package errors

import (
	"os"
	"strconv"
	"strings"
	"unicode"
)

// ValidatePath checks that path is a usable input file path and that the file
// exists. kind names the file in messages, e.g. "wordsearch" or "dictionary".
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - The path must exist and must not be a directory
func ValidatePath(kind, path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "%s file path cannot be empty", kind)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "%s file path contains invalid characters", kind)
		}
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Wrap(ErrCodeFileNotFound, err, "%s file %s does not exist", kind, path)
	}
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "cannot access %s file %s", kind, path)
	}
	if info.IsDir() {
		return New(ErrCodeInvalidPath, "%s file %s is a directory", kind, path)
	}
	return nil
}

// ParseNonNegative parses s as a non-negative decimal integer. Only ASCII
// digits are accepted: signs, spaces and empty strings are rejected.
// name is used in the message, e.g. "count %s is not an integer".
func ParseNonNegative(code Code, name, s string) (int, error) {
	if s == "" {
		return 0, New(code, "%s %s is not an integer", name, s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, New(code, "%s %s is not an integer", name, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, Wrap(code, err, "%s %s is out of range", name, s)
	}
	return n, nil
}
