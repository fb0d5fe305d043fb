package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/storage"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/token"
)

const (
	demoEmail    = "admin@furnituremart.com"
	demoPassword = "admin123"
)

func newTestManager(t *testing.T) (*Manager, *storage.MemoryStore, *storage.MemoryStore, *token.Codec) {
	t.Helper()
	primary := storage.NewMemoryStore()
	fallback := storage.NewMemoryStore()
	codec := token.NewCodec([]byte("test-key"))
	auth, err := NewDefaultDemoAuthenticator()
	require.NoError(t, err)
	return NewManager(primary, fallback, codec, auth), primary, fallback, codec
}

func TestLoginSuccess(t *testing.T) {
	manager, primary, fallback, _ := newTestManager(t)
	ctx := context.Background()

	user, err := manager.Login(ctx, demoEmail, demoPassword)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, manager.IsAuthenticated())
	assert.True(t, manager.ValidateToken())
	assert.True(t, manager.HasElevatedAccess())

	// The session is mirrored to both storage locations.
	for _, store := range []*storage.MemoryStore{primary, fallback} {
		raw, err := store.Get(ctx, TokenMirrorKey)
		require.NoError(t, err)
		assert.Equal(t, manager.Token(), raw)
		_, err = store.Get(ctx, AuthStateKey)
		require.NoError(t, err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	manager, _, _, _ := newTestManager(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong_email", email: "wrong@x.com", password: demoPassword},
		{name: "wrong_password", email: demoEmail, password: "bad"},
		{name: "both_wrong", email: "wrong@x.com", password: "bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.Login(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.False(t, manager.IsAuthenticated())
		})
	}
}

func TestLogoutClearsEveryLocation(t *testing.T) {
	manager, primary, fallback, _ := newTestManager(t)
	ctx := context.Background()

	_, err := manager.Login(ctx, demoEmail, demoPassword)
	require.NoError(t, err)

	manager.Logout(ctx)

	assert.False(t, manager.IsAuthenticated())
	assert.Empty(t, manager.Token())
	for _, store := range []*storage.MemoryStore{primary, fallback} {
		_, err := store.Get(ctx, TokenMirrorKey)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.Get(ctx, AuthStateKey)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	}
}

func TestInitializeAuthRestoresValidSession(t *testing.T) {
	manager, primary, _, codec := newTestManager(t)
	ctx := context.Background()

	raw, err := codec.Encode(models.User{ID: "u1", Email: "editor@x.com", Name: "Editor", Role: models.RoleEditor})
	require.NoError(t, err)
	require.NoError(t, primary.Set(ctx, TokenMirrorKey, raw))

	manager.InitializeAuth(ctx)

	require.True(t, manager.IsAuthenticated())
	user, ok := manager.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, models.RoleEditor, user.Role)
	assert.True(t, manager.HasElevatedAccess())
}

func TestInitializeAuthFallsBackToSecondStore(t *testing.T) {
	manager, _, fallback, codec := newTestManager(t)
	ctx := context.Background()

	raw, err := codec.Encode(models.User{ID: "u2", Email: "viewer@x.com", Role: models.RoleViewer})
	require.NoError(t, err)
	require.NoError(t, fallback.Set(ctx, TokenMirrorKey, raw))

	manager.InitializeAuth(ctx)

	require.True(t, manager.IsAuthenticated())
	assert.False(t, manager.HasElevatedAccess(), "viewers are not admin-capable")
}

func TestInitializeAuthPurgesExpiredToken(t *testing.T) {
	manager, primary, fallback, codec := newTestManager(t)
	ctx := context.Background()

	raw, err := codec.EncodeWithTTL(models.User{ID: "u1", Role: models.RoleAdmin}, -time.Hour)
	require.NoError(t, err)
	require.NoError(t, primary.Set(ctx, TokenMirrorKey, raw))
	require.NoError(t, fallback.Set(ctx, TokenMirrorKey, raw))

	manager.InitializeAuth(ctx)

	assert.False(t, manager.IsAuthenticated())
	for _, store := range []*storage.MemoryStore{primary, fallback} {
		_, err := store.Get(ctx, TokenMirrorKey)
		assert.ErrorIs(t, err, storage.ErrNotFound, "expired token must be purged from storage")
	}
}

func TestInitializeAuthPurgesMalformedToken(t *testing.T) {
	manager, primary, _, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, primary.Set(ctx, TokenMirrorKey, "not.a.token"))

	manager.InitializeAuth(ctx)

	assert.False(t, manager.IsAuthenticated())
	_, err := primary.Get(ctx, TokenMirrorKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInitializeAuthWithEmptyStorage(t *testing.T) {
	manager, _, _, _ := newTestManager(t)
	manager.InitializeAuth(context.Background())
	assert.False(t, manager.IsAuthenticated())
	assert.False(t, manager.ValidateToken())
}

func TestValidateTokenLazyExpiry(t *testing.T) {
	manager, _, _, codec := newTestManager(t)

	expired, err := codec.EncodeWithTTL(models.User{ID: "u1", Role: models.RoleAdmin}, -time.Second)
	require.NoError(t, err)

	// A held token that aged out is only noticed when validity is checked.
	manager.token = expired
	user := models.User{ID: "u1", Role: models.RoleAdmin}
	manager.user = &user

	assert.True(t, manager.IsAuthenticated())
	assert.False(t, manager.ValidateToken())
}

func TestSnapshotConsistency(t *testing.T) {
	manager, _, _, _ := newTestManager(t)
	ctx := context.Background()

	snapshot := manager.Snapshot()
	assert.False(t, snapshot.IsAuthenticated)
	assert.Nil(t, snapshot.User)

	_, err := manager.Login(ctx, demoEmail, demoPassword)
	require.NoError(t, err)

	snapshot = manager.Snapshot()
	assert.Equal(t, models.AuthSchemaVersion, snapshot.Version)
	assert.True(t, snapshot.IsAuthenticated)
	require.NotNil(t, snapshot.User)
	assert.Equal(t, snapshot.Token, manager.Token())
}
