package ticket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	for _, s := range []Status{StatusOpen, StatusInProgress, StatusClosed} {
		assert.NoError(t, s.Validate(), "status %q should be valid", s)
	}
	assert.Error(t, Status("done").Validate())
	assert.Error(t, Status("").Validate())
}

func TestPriorityValidate(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		assert.NoError(t, p.Validate(), "priority %q should be valid", p)
	}
	assert.Error(t, Priority("urgent").Validate())
	assert.Error(t, Priority("").Validate())
}

// The wire format is fixed: camelCase field names, no version field.
func TestTicketWireFormat(t *testing.T) {
	data, err := json.Marshal(Ticket{
		ID:          1700000000000,
		Title:       "Fix bug",
		Description: "It crashes",
		Status:      StatusOpen,
		Priority:    PriorityHigh,
		CreatedAt:   1700000000000,
		UpdatedAt:   1700000000000,
	})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, name := range []string{"id", "title", "description", "status", "priority", "createdAt", "updatedAt"} {
		assert.Contains(t, fields, name)
	}
	assert.Len(t, fields, 7)
}

// Records written without newer fields still decode; absent fields read as
// zero values. This is the only schema-evolution guarantee.
func TestTicketDecodePartial(t *testing.T) {
	var ticket Ticket
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"title":"old record"}`), &ticket))
	assert.Equal(t, int64(5), ticket.ID)
	assert.Equal(t, "old record", ticket.Title)
	assert.Empty(t, ticket.Status)
	assert.Zero(t, ticket.CreatedAt)
}
