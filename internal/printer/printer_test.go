package printer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Run("returns error with title", func(t *testing.T) {
		err := Error("Operation failed", "Could not reach Redis", []string{})
		require.Error(t, err)
		require.Equal(t, "Operation failed", err.Error())
	})

	t.Run("returns error with title when including suggestions", func(t *testing.T) {
		err := Error("Operation failed", "Could not reach Redis", []string{
			"Run 'seytic up' to start a local Redis",
			"Check the redis.addr value in seytic.yml",
		})
		require.Error(t, err)
		require.Equal(t, "Operation failed", err.Error())
	})
}

func TestFieldErrors(t *testing.T) {
	err := FieldErrors("Validation failed", map[string]string{
		"title":  "Title is required",
		"status": "Invalid status",
	})
	require.Error(t, err)
	require.Equal(t, "Validation failed", err.Error())
}

// Note: the printing functions write colored output to stdout/stderr. The
// returned error only carries the title so Cobra doesn't duplicate output.
