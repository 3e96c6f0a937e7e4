package api

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/todo"
)

func TestStatusRoundTrip(t *testing.T) {
	tests := []struct {
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
		{common.ErrTokenExpired, codes.Unauthenticated},
		{common.ErrInvalidToken, codes.Unauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tt.err)
			st, ok := ToStatus(wrapped)
			require.True(t, ok)
			assert.Equal(t, tt.code, status.Code(st))
			assert.ErrorIs(t, FromStatus(st), tt.err)
		})
	}
}

func TestToStatus_Unknown(t *testing.T) {
	st, ok := ToStatus(errors.New("disk on fire"))
	assert.False(t, ok)
	assert.Equal(t, codes.Internal, status.Code(st))
	assert.NotContains(t, st.Error(), "disk on fire")
	assert.ErrorIs(t, FromStatus(st), common.ErrorInternal)
}

func TestToStatus_Context(t *testing.T) {
	st, _ := ToStatus(context.DeadlineExceeded)
	assert.Equal(t, codes.DeadlineExceeded, status.Code(st))

	st, _ = ToStatus(fmt.Errorf("wrapped: %w", context.Canceled))
	assert.Equal(t, codes.Canceled, status.Code(st))
}

func TestToStatus_PassesStatusThrough(t *testing.T) {
	in := status.Error(codes.Unimplemented, "nope")
	st, ok := ToStatus(in)
	assert.True(t, ok)
	assert.Equal(t, in, st)
}

func TestFromStatus_NonStatus(t *testing.T) {
	plain := errors.New("plain")
	assert.Equal(t, plain, FromStatus(plain))
	assert.NoError(t, FromStatus(nil))
	assert.ErrorIs(t, FromStatus(status.Error(codes.Unauthenticated, "missing token")), common.ErrorUnauthorized)
}
