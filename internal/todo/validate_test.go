package todo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  error
	}{
		{"empty", "", ErrTitleEmpty},
		{"spaces", "   ", ErrTitleWhitespaceOnly},
		{"tabs and newlines", "\t\n ", ErrTitleWhitespaceOnly},
		{"single space", " ", ErrTitleWhitespaceOnly},
		{"too short", "ab", ErrTitleTooShort},
		{"short with padding is fine", " a ", nil},
		{"minimum", "abc", nil},
		{"maximum", strings.Repeat("x", MaxTitleLen), nil},
		{"too long", strings.Repeat("x", MaxTitleLen+1), ErrTitleTooLong},
		{"multibyte counts bytes", "é", ErrTitleTooShort},
		{"multibyte at limit", strings.Repeat("é", MaxTitleLen/2), nil},
		{"multibyte over limit", strings.Repeat("é", MaxTitleLen/2+1), ErrTitleTooLong},
		{"invalid utf8", "ab\xff", ErrTitleInvalidUTF8},
		{"truncated rune", "abc\xc3", ErrTitleInvalidUTF8},
		{"invalid utf8 but short", "\xff", ErrTitleInvalidUTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsTitleError(err))
		})
	}
}

func TestIsTitleError_Others(t *testing.T) {
	assert.False(t, IsTitleError(ErrRecordNotFound))
	assert.False(t, IsTitleError(nil))
}
