// Package session implements the Seytic session provider: signup, login,
// logout, and current-session lookup over the same key-value store the
// ticket repository uses. One session is active at a time, stored as a
// JSON value under the session key; registered users live under the users
// key as a map of email to user record with a bcrypt password hash.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/seytic/seytic/pkg/ticket"
)

var (
	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password. Callers get no hint which of the two it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned by Signup when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// User identifies an authenticated person. The ID is assigned at signup
// as milliseconds since epoch, matching ticket ID assignment.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the active login, persisted under the session key.
type Session struct {
	Token     string `json:"token"`
	User      User   `json:"user"`
	CreatedAt int64  `json:"createdAt"`
}

// storedUser is the persisted user record. The password hash never leaves
// this package.
type storedUser struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// Manager provides session operations over an injected store. All
// operations are synchronous and take a context, matching the ticket
// repository's contract.
type Manager struct {
	store      ticket.Store
	usersKey   string
	sessionKey string
	now        func() int64
}

// Option configures a Manager.
type Option func(*Manager)

// WithWorkspace namespaces the users and session keys by workspace.
func WithWorkspace(workspace string) Option {
	return func(m *Manager) {
		m.usersKey = ticket.UsersKey(workspace)
		m.sessionKey = ticket.SessionKey(workspace)
	}
}

// WithClock overrides the millisecond clock used for user IDs and session
// creation timestamps.
func WithClock(now func() int64) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a session Manager over the given store.
func NewManager(store ticket.Store, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}

	m := &Manager{
		store:      store,
		usersKey:   ticket.UsersKey(""),
		sessionKey: ticket.SessionKey(""),
		now:        func() int64 { return time.Now().UnixMilli() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Signup registers a new user and logs them in. Returns ErrEmailTaken if
// the email is already registered. Field-level validation is the caller's
// job via ValidateSignup.
func (m *Manager) Signup(ctx context.Context, email, password, name string) (*Session, error) {
	users, err := m.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	if _, exists := users[email]; exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	users[email] = storedUser{
		User:         User{ID: m.now(), Name: name, Email: email},
		PasswordHash: string(hash),
	}
	if err := m.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	return m.startSession(ctx, users[email].User)
}

// Login verifies credentials and starts a session, replacing any existing
// one. Returns ErrInvalidCredentials on an unknown email or wrong password.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	users, err := m.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	user, exists := users[email]
	if !exists {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return m.startSession(ctx, user.User)
}

// Current returns the active session, or nil when nobody is logged in.
func (m *Manager) Current(ctx context.Context) (*Session, error) {
	raw, ok, err := m.store.Get(ctx, m.sessionKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("corrupt session: %w", err)
	}
	return &sess, nil
}

// Logout clears the active session. Logging out twice is a no-op.
// The store contract has no delete, so the session value is emptied.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Set(ctx, m.sessionKey, "")
}

func (m *Manager) startSession(ctx context.Context, user User) (*Session, error) {
	sess := &Session{
		Token:     uuid.New().String(),
		User:      user,
		CreatedAt: m.now(),
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := m.store.Set(ctx, m.sessionKey, string(raw)); err != nil {
		return nil, err
	}
	return sess, nil
}

func (m *Manager) loadUsers(ctx context.Context) (map[string]storedUser, error) {
	raw, ok, err := m.store.Get(ctx, m.usersKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return make(map[string]storedUser), nil
	}

	var users map[string]storedUser
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("corrupt user store: %w", err)
	}
	if users == nil {
		users = make(map[string]storedUser)
	}
	return users, nil
}

func (m *Manager) saveUsers(ctx context.Context, users map[string]storedUser) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to serialize user store: %w", err)
	}
	return m.store.Set(ctx, m.usersKey, string(raw))
}
