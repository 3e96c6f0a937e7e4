package client

import "errors"

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNoKey       = errors.New("no owner key loaded")
	ErrBadResponse = errors.New("malformed server response")
)
