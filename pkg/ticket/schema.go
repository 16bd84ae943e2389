package ticket

import "fmt"

// Storage key helpers
//
// All Seytic state lives under a handful of well-known keys. Keys can be
// namespaced by workspace name so multiple workspaces coexist on a single
// Redis server. The empty workspace uses the bare key names, which is the
// layout the original application persisted: one value under "tickets".
//
// Key pattern: seytic:{workspace}:{name}, or {name} when workspace is "".

// DefaultTicketsKey is the bare key holding the serialized collection.
const DefaultTicketsKey = "tickets"

// TicketsKey returns the storage key for a workspace's ticket collection.
func TicketsKey(workspace string) string {
	return scopedKey(workspace, "tickets")
}

// SessionKey returns the storage key for a workspace's active session.
func SessionKey(workspace string) string {
	return scopedKey(workspace, "session")
}

// UsersKey returns the storage key for a workspace's registered users.
func UsersKey(workspace string) string {
	return scopedKey(workspace, "users")
}

func scopedKey(workspace, name string) string {
	if workspace == "" {
		return name
	}
	return fmt.Sprintf("seytic:%s:%s", workspace, name)
}
