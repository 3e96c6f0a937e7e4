package todo

import "errors"

// Title validation failures.
var (
	ErrTitleEmpty          = errors.New("title can't be empty")
	ErrTitleWhitespaceOnly = errors.New("title cannot be only whitespace")
	ErrTitleInvalidUTF8    = errors.New("title must be valid UTF-8")
	ErrTitleTooShort       = errors.New("title should have minimum 3 length")
	ErrTitleTooLong        = errors.New("title can't be greater than 200 chars")
)

// Operation failures.
var (
	ErrAlreadyInitialized = errors.New("counter already initialized")
	ErrCounterMissing     = errors.New("counter not initialized")
	ErrRecordNotFound     = errors.New("todo not found")
	ErrAddressInUse       = errors.New("todo address already in use")
	ErrCounterExhausted   = errors.New("todo sequence exhausted")
	ErrUnverified         = errors.New("caller identity is not verified")
)

// IsTitleError reports whether err is one of the title validation errors.
func IsTitleError(err error) bool {
	return errors.Is(err, ErrTitleEmpty) ||
		errors.Is(err, ErrTitleWhitespaceOnly) ||
		errors.Is(err, ErrTitleInvalidUTF8) ||
		errors.Is(err, ErrTitleTooShort) ||
		errors.Is(err, ErrTitleTooLong)
}
