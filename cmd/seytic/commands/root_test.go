package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seytic/seytic/pkg/ticket"
)

func TestCommandRegistration(t *testing.T) {
	want := []string{
		"up", "down",
		"signup", "login", "logout", "whoami",
		"add", "list", "update", "delete", "stats",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		assert.True(t, registered[name], "command %q should be registered", name)
	}
}

func TestBuildPatch(t *testing.T) {
	t.Run("only changed flags are patched", func(t *testing.T) {
		cmd := updateCmd
		require.NoError(t, cmd.Flags().Set("status", "closed"))
		t.Cleanup(func() {
			updateStatus = ""
			cmd.Flags().Lookup("status").Changed = false
		})

		patch, errs := buildPatch(cmd)
		assert.Empty(t, errs)
		require.NotNil(t, patch.Status)
		assert.Equal(t, ticket.StatusClosed, *patch.Status)
		assert.Nil(t, patch.Title)
		assert.Nil(t, patch.Priority)
	})

	t.Run("invalid status is a field error", func(t *testing.T) {
		cmd := updateCmd
		require.NoError(t, cmd.Flags().Set("status", "resolved"))
		t.Cleanup(func() {
			updateStatus = ""
			cmd.Flags().Lookup("status").Changed = false
		})

		patch, errs := buildPatch(cmd)
		assert.Equal(t, "Invalid status", errs["status"])
		assert.Nil(t, patch.Status)
	})

	t.Run("empty title is a field error", func(t *testing.T) {
		cmd := updateCmd
		require.NoError(t, cmd.Flags().Set("title", ""))
		t.Cleanup(func() {
			updateTitle = ""
			cmd.Flags().Lookup("title").Changed = false
		})

		patch, errs := buildPatch(cmd)
		assert.Equal(t, "Title is required", errs["title"])
		assert.Nil(t, patch.Title)
	})
}

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "-", formatMillis(0))
	assert.NotEqual(t, "-", formatMillis(1700000000000))
}
