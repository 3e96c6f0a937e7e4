package todo

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinTitleLen is the shortest accepted title in bytes.
	MinTitleLen = 3
	// MaxTitleLen is the longest accepted title in bytes.
	MaxTitleLen = 200
)

// ValidateTitle checks a title; lengths are in bytes. The first failing
// rule wins: empty, whitespace only, invalid UTF-8, too short, too long.
func ValidateTitle(title string) error {
	if len(title) == 0 {
		return ErrTitleEmpty
	}
	if strings.TrimSpace(title) == "" {
		return ErrTitleWhitespaceOnly
	}
	if !utf8.ValidString(title) {
		return ErrTitleInvalidUTF8
	}
	if len(title) < MinTitleLen {
		return ErrTitleTooShort
	}
	if len(title) > MaxTitleLen {
		return ErrTitleTooLong
	}
	return nil
}
