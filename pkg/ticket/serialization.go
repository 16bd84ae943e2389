package ticket

import (
	"encoding/json"
	"fmt"
)

// The collection is persisted as a single JSON array of ticket objects.
// Field names on the wire are fixed (id, title, description, status,
// priority, createdAt, updatedAt); there is no version field, so schema
// evolution is additive only: absent fields decode to zero values.

// encodeCollection serializes tickets to the stored JSON form.
func encodeCollection(tickets []Ticket) (string, error) {
	data, err := json.Marshal(tickets)
	if err != nil {
		return "", fmt.Errorf("failed to serialize ticket collection: %w", err)
	}
	return string(data), nil
}

// decodeCollection parses the stored JSON form back into tickets.
// Malformed input is data corruption and is returned as an error rather
// than being read as an empty collection.
func decodeCollection(raw string) ([]Ticket, error) {
	var tickets []Ticket
	if err := json.Unmarshal([]byte(raw), &tickets); err != nil {
		return nil, fmt.Errorf("corrupt ticket collection: %w", err)
	}
	return tickets, nil
}
