package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeAPIRequest, "request failed")
	assert.Equal(t, "[API-001] request failed", err.Error())

	wrapped := Wrap(ErrCodeAPITransport, "send request", errors.New("connection refused"))
	assert.Equal(t, "[API-002] send request: connection refused", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ErrCodeSessionWrite, "persist session", cause)

	require.ErrorIs(t, err, cause)

	var re *RentError
	require.ErrorAs(t, fmt.Errorf("outer: %w", err), &re)
	assert.Equal(t, ErrCodeSessionWrite, re.Code)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeAuthLogin, CodeOf(New(ErrCodeAuthLogin, "bad credentials")))
	assert.Equal(t, ErrCodeAuthLogin, CodeOf(fmt.Errorf("wrapped: %w", New(ErrCodeAuthLogin, "bad credentials"))))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
}
