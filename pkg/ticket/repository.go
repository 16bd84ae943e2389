package ticket

import (
	"context"
	"fmt"
	"time"
)

// Repository owns CRUD over the ticket collection. Every operation reads
// the full collection from the store and mutations write the full
// collection back; there is no partial update.
//
// The repository performs no field validation. Callers gate input with
// ValidateFields before Add and Update.
type Repository struct {
	store Store
	key   string
	now   func() int64
}

// Option configures a Repository.
type Option func(*Repository)

// WithKey overrides the storage key for the collection.
// Use TicketsKey(workspace) to namespace by workspace.
func WithKey(key string) Option {
	return func(r *Repository) { r.key = key }
}

// WithClock overrides the millisecond clock used to assign ticket IDs.
// Tests inject a deterministic clock; callers that need collision-free IDs
// under high-frequency creation can inject a monotonic one.
func WithClock(now func() int64) Option {
	return func(r *Repository) { r.now = now }
}

// NewRepository creates a Repository over the given store.
// Returns an error if store is nil.
func NewRepository(store Store, opts ...Option) (*Repository, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}

	r := &Repository{
		store: store,
		key:   DefaultTicketsKey,
		now:   func() int64 { return time.Now().UnixMilli() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Fields is the caller-supplied portion of a new ticket. The repository
// assigns the ID; everything else is taken as given. A zero Status is
// filled with StatusOpen.
type Fields struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	CreatedAt   int64
	UpdatedAt   int64
}

// Patch is a partial ticket for Update. Nil fields are left untouched;
// set fields replace the existing value. The ID is never patched.
type Patch struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	CreatedAt   *int64
	UpdatedAt   *int64
}

func (p Patch) apply(t Ticket) Ticket {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.CreatedAt != nil {
		t.CreatedAt = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		t.UpdatedAt = *p.UpdatedAt
	}
	return t
}

// List returns the stored collection in insertion order.
// A missing value is an empty collection, never an error. A value that
// fails to parse is surfaced as an error.
func (r *Repository) List(ctx context.Context) ([]Ticket, error) {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Ticket{}, nil
	}

	tickets, err := decodeCollection(raw)
	if err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []Ticket{}
	}
	return tickets, nil
}

// Add creates a ticket from fields, assigns its ID from the clock
// (milliseconds since epoch), appends it to the collection, and persists.
// Returns the created ticket with its assigned ID.
func (r *Repository) Add(ctx context.Context, fields Fields) (Ticket, error) {
	tickets, err := r.List(ctx)
	if err != nil {
		return Ticket{}, err
	}

	t := Ticket{
		ID:          r.now(),
		Title:       fields.Title,
		Description: fields.Description,
		Status:      fields.Status,
		Priority:    fields.Priority,
		CreatedAt:   fields.CreatedAt,
		UpdatedAt:   fields.UpdatedAt,
	}
	if t.Status == "" {
		t.Status = StatusOpen
	}

	tickets = append(tickets, t)
	if err := r.write(ctx, tickets); err != nil {
		return Ticket{}, err
	}
	return t, nil
}

// Update shallow-merges patch over the ticket with the given ID, leaving
// every other record untouched and in order, and persists the collection.
// A missing ID is a silent no-op: the collection is rewritten unchanged.
// Returns the resulting collection.
func (r *Repository) Update(ctx context.Context, id int64, patch Patch) ([]Ticket, error) {
	tickets, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i, t := range tickets {
		if t.ID == id {
			tickets[i] = patch.apply(t)
		}
	}

	if err := r.write(ctx, tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// Delete removes the ticket with the given ID (at most one) and persists
// the reduced collection. A missing ID is a silent no-op, so Delete is
// idempotent. Returns the resulting collection.
func (r *Repository) Delete(ctx context.Context, id int64) ([]Ticket, error) {
	tickets, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	kept := tickets[:0]
	for _, t := range tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if err := r.write(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Stats reads the collection and returns its derived counts.
func (r *Repository) Stats(ctx context.Context) (Stats, error) {
	tickets, err := r.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(tickets), nil
}

func (r *Repository) write(ctx context.Context, tickets []Ticket) error {
	raw, err := encodeCollection(tickets)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.key, raw)
}
