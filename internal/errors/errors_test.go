package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeOf(nil))
	assert.Equal(t, ExitError, ExitCodeOf(errors.New("boom")))
	assert.Equal(t, ExitUsageError, ExitCodeOf(NewUsageError(nil, "bad input")))

	wrapped := fmt.Errorf("running show: %w", NewConfigError(nil, "bad config"))
	assert.Equal(t, ExitConfigError, ExitCodeOf(wrapped))
}

func TestCLIErrorUnwrap(t *testing.T) {
	sentinel := errors.New("quantity must be a positive integer")
	err := NewUsageError(sentinel, "Please enter a valid positive number.")

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "Please enter a valid positive number.: quantity must be a positive integer", err.Error())
}

func TestFormatError(t *testing.T) {
	err := NewUsageError(errors.New("parse failure"), "Bad quantity")

	assert.Equal(t, "Bad quantity", FormatError(err, false))
	assert.Contains(t, FormatError(err, true), "Technical details:\n  parse failure")

	assert.Equal(t, "plain", FormatError(errors.New("plain"), true))
}

func TestWithStackTrace(t *testing.T) {
	err := NewError(nil, "failed").WithStackTrace()

	assert.Contains(t, err.StackTrace, "TestWithStackTrace")
	assert.Contains(t, FormatError(err, true), "Stack trace:")
}
