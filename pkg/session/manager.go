// Package session holds the authenticated identity and its signed token,
// mirrored to two durable storage locations so a session survives a reload
// and logout can never leave a stale copy behind.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/storage"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/token"
)

// ErrInvalidCredentials is the one auth failure surfaced to callers so the UI
// can render an inline message. Everything else degrades to anonymous state.
var ErrInvalidCredentials = errors.New("session: invalid email or password")

// Storage keys. The full auth record (schema version 2) and a bare token
// mirror are written to both stores.
const (
	AuthStateKey   = "furniture_mart_auth_v2"
	TokenMirrorKey = "furniture_mart_token"
)

// Manager owns the session state machine: Anonymous --login--> Authenticated,
// Authenticated --logout or lazy expiry--> Anonymous. Expiry is enforced only
// when validity is checked, never via a timer.
type Manager struct {
	mu       sync.Mutex
	primary  storage.Store
	fallback storage.Store
	codec    *token.Codec
	auth     Authenticator

	user  *models.User
	token string
}

func NewManager(primary, fallback storage.Store, codec *token.Codec, auth Authenticator) *Manager {
	return &Manager{
		primary:  primary,
		fallback: fallback,
		codec:    codec,
		auth:     auth,
	}
}

// Login validates credentials, mints a fresh token and persists the session.
// A credential mismatch returns ErrInvalidCredentials and leaves the manager
// anonymous. Storage failures are logged; the in-memory session still stands.
func (m *Manager) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}

	raw, err := m.codec.Encode(user)
	if err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	m.token = raw
	m.persistLocked(ctx)
	return user, nil
}

// Logout clears the in-memory session and purges the token from every durable
// storage location it may have been written to.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = nil
	m.token = ""
	m.purge(ctx)
}

// InitializeAuth restores the session at process start: read the token mirror
// from the primary store, fall back to the secondary, and reconstruct the user
// from the decoded payload. An expired or malformed token is purged from all
// locations and the manager stays anonymous; this is expected, so no error
// reaches the caller.
func (m *Manager) InitializeAuth(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, found := m.readToken(ctx)
	if !found {
		return
	}

	claims, err := m.codec.Validate(raw)
	if err != nil {
		if errors.Is(err, token.ErrExpiredToken) {
			log.Printf("Stored session token expired, clearing it")
		} else {
			log.Printf("Warning: stored session token is malformed, clearing it")
		}
		m.purge(ctx)
		return
	}

	user := claims.User()
	m.user = &user
	m.token = raw
}

// ValidateToken reports whether a token is currently held and unexpired.
func (m *Manager) ValidateToken() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != "" && !m.codec.IsExpired(m.token)
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

func (m *Manager) CurrentUser() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// HasElevatedAccess reports whether the current user may use the admin
// console. Editors are intentionally admin-capable for gating purposes.
func (m *Manager) HasElevatedAccess() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil && m.user.HasElevatedAccess()
}

// Snapshot returns the persisted auth shape for API consumers.
func (m *Manager) Snapshot() models.AuthSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() models.AuthSnapshot {
	return models.AuthSnapshot{
		Version:         models.AuthSchemaVersion,
		User:            m.user,
		Token:           m.token,
		IsAuthenticated: m.user != nil,
	}
}

func (m *Manager) readToken(ctx context.Context) (string, bool) {
	for _, store := range []storage.Store{m.primary, m.fallback} {
		raw, err := store.Get(ctx, TokenMirrorKey)
		if err == nil && raw != "" {
			return raw, true
		}
		if err != nil && err != storage.ErrNotFound {
			log.Printf("Warning: failed to read session token: %v", err)
		}
	}
	return "", false
}

func (m *Manager) persistLocked(ctx context.Context) {
	state, err := json.Marshal(m.snapshotLocked())
	if err != nil {
		log.Printf("Warning: failed to serialize session state: %v", err)
		return
	}
	for _, store := range []storage.Store{m.primary, m.fallback} {
		if err := store.Set(ctx, AuthStateKey, string(state)); err != nil {
			log.Printf("Warning: failed to persist session state: %v", err)
		}
		if err := store.Set(ctx, TokenMirrorKey, m.token); err != nil {
			log.Printf("Warning: failed to mirror session token: %v", err)
		}
	}
}

// purge removes the auth record and token mirror from both stores. Clearing
// both locations avoids stale-session resurrection on the next restore.
func (m *Manager) purge(ctx context.Context) {
	for _, store := range []storage.Store{m.primary, m.fallback} {
		if err := store.Remove(ctx, AuthStateKey); err != nil {
			log.Printf("Warning: failed to clear session state: %v", err)
		}
		if err := store.Remove(ctx, TokenMirrorKey); err != nil {
			log.Printf("Warning: failed to clear session token: %v", err)
		}
	}
}
