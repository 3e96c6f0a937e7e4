// Package api maps between domain errors and the gRPC statuses that carry
// them across todokeeper.v1.TodoService.
package api

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/todo"
)

// wireErrors travel as status messages and are restored on the client.
var wireErrors = []struct {
	err  error
	code codes.Code
}{
	{todo.ErrTitleEmpty, codes.InvalidArgument},
	{todo.ErrTitleWhitespaceOnly, codes.InvalidArgument},
	{todo.ErrTitleInvalidUTF8, codes.InvalidArgument},
	{todo.ErrTitleTooShort, codes.InvalidArgument},
	{todo.ErrTitleTooLong, codes.InvalidArgument},
	{todo.ErrAlreadyInitialized, codes.AlreadyExists},
	{todo.ErrAddressInUse, codes.AlreadyExists},
	{todo.ErrCounterMissing, codes.FailedPrecondition},
	{todo.ErrRecordNotFound, codes.NotFound},
	{todo.ErrCounterExhausted, codes.ResourceExhausted},
	{todo.ErrUnverified, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
}

// ToStatus converts a domain error into a status error. Errors without a
// mapping become Internal with a generic message; ok is false for them so
// the caller can log the original.
func ToStatus(err error) (st error, ok bool) {
	if err == nil {
		return nil, true
	}
	if _, isStatus := status.FromError(err); isStatus {
		return err, true
	}
	for _, w := range wireErrors {
		if errors.Is(err, w.err) {
			return status.Error(w.code, w.err.Error()), true
		}
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error()), true
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error()), true
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error()), false
}

// FromStatus restores the domain error carried by a status error. Unknown
// statuses are returned unchanged.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, w := range wireErrors {
		if st.Code() == w.code && st.Message() == w.err.Error() {
			return w.err
		}
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return common.ErrorUnauthorized
	case codes.Internal:
		return common.ErrorInternal
	}
	return err
}
