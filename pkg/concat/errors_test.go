// File: pkg/concat/errors_test.go
package concat

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotDirectoryError(t *testing.T) {
	underlying := errors.New("stat failed")
	err := &NotDirectoryError{Path: "/tmp/x", Err: underlying}

	assert.Contains(t, err.Error(), "/tmp/x")
	assert.Contains(t, err.Error(), "is not a directory")
	assert.ErrorIs(t, err, underlying)

	bare := &NotDirectoryError{Path: "/tmp/y"}
	assert.Equal(t, "/tmp/y is not a directory", bare.Error())
}

func TestClipboardErrorIsDistinctFromFilesystemErrors(t *testing.T) {
	underlying := errors.New("xclip not found")
	err := fmt.Errorf("publish failed: %w", &ClipboardError{Err: underlying})

	var clipErr *ClipboardError
	require.ErrorAs(t, err, &clipErr)
	assert.ErrorIs(t, err, underlying)

	var notDir *NotDirectoryError
	assert.False(t, errors.As(err, &notDir))
	assert.NotErrorIs(t, err, ErrNoMatches)
	assert.Contains(t, clipErr.Error(), "clipboard unavailable")
}
