package sqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryTimeoutError_Error(t *testing.T) {
	cause := errors.New("context canceled")

	tests := []struct {
		name string
		err  *QueryTimeoutError
		want string
	}{
		{
			name: "message and cause",
			err:  &QueryTimeoutError{Message: "query cancelled", Cause: cause},
			want: "[QUERY_TIMEOUT] query cancelled: context canceled",
		},
		{
			name: "message only",
			err:  &QueryTimeoutError{Message: "query cancelled"},
			want: "[QUERY_TIMEOUT] query cancelled",
		},
		{
			name: "cause only",
			err:  &QueryTimeoutError{Cause: cause},
			want: "[QUERY_TIMEOUT] context canceled",
		},
		{
			name: "empty",
			err:  &QueryTimeoutError{},
			want: "[QUERY_TIMEOUT]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestQueryTimeoutError_Unwrap(t *testing.T) {
	cause := errors.New("interrupted")
	err := &QueryTimeoutError{Cause: cause}

	require.ErrorIs(t, err, cause)
	require.Same(t, cause, err.Unwrap())
}

// A QueryTimeoutError must never satisfy ClassifiedError; the two result
// paths of Classify stay distinct.
func TestQueryTimeoutError_NotClassified(t *testing.T) {
	var err error = &QueryTimeoutError{Message: "cancelled"}

	var classified ClassifiedError
	require.False(t, errors.As(err, &classified))
}

func TestQueryTimeoutError_SurvivesWrapping(t *testing.T) {
	inner := &QueryTimeoutError{Message: "cancelled"}
	wrapped := fmt.Errorf("executing report: %w", inner)

	var timeout *QueryTimeoutError
	require.ErrorAs(t, wrapped, &timeout)
	require.Same(t, inner, timeout)
	require.True(t, IsTimeout(wrapped))
}
