package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/amanv05/second-brain-backend/internal/models"
)

func newShareFixture(t *testing.T) (*UserService, *ContentService, *ShareService) {
	t.Helper()
	db := newTestDB(t)
	users := NewUserService(db, bcrypt.MinCost)
	contents := NewContentService(db)
	shares := NewShareService(db, contents, users)
	return users, contents, shares
}

func TestEnableSharingIsIdempotent(t *testing.T) {
	users, _, shares := newShareFixture(t)
	owner := newTestUser(t, users, "alice")

	first, created, err := shares.EnableSharing(owner.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, first, 16) // 8 random bytes, hex encoded

	second, created, err := shares.EnableSharing(owner.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)
}

func TestDisableThenEnableRotatesHash(t *testing.T) {
	users, _, shares := newShareFixture(t)
	owner := newTestUser(t, users, "alice")

	first, _, err := shares.EnableSharing(owner.ID)
	require.NoError(t, err)

	require.NoError(t, shares.DisableSharing(owner.ID))

	second, created, err := shares.EnableSharing(owner.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first, second)
}

func TestDisableSharingIsIdempotent(t *testing.T) {
	users, _, shares := newShareFixture(t)
	owner := newTestUser(t, users, "alice")

	// No link exists yet; disabling is still not an error.
	require.NoError(t, shares.DisableSharing(owner.ID))
	require.NoError(t, shares.DisableSharing(owner.ID))
}

func TestResolveShare(t *testing.T) {
	users, contents, shares := newShareFixture(t)
	alice := newTestUser(t, users, "alice")
	bob := newTestUser(t, users, "bob")

	_, err := contents.CreateContent(alice.ID, "https://x.com/a", "A", models.ContentTypeArticle, []string{"go"})
	require.NoError(t, err)
	_, err = contents.CreateContent(bob.ID, "https://x.com/b", "B", models.ContentTypeVideo, nil)
	require.NoError(t, err)

	hash, _, err := shares.EnableSharing(alice.ID)
	require.NoError(t, err)

	got, username, err := shares.ResolveShare(hash)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	require.Len(t, got, 1)
	assert.Equal(t, "https://x.com/a", got[0].Link)
	assert.Equal(t, []string{"go"}, got[0].Tags)
}

func TestResolveShareUnknownHash(t *testing.T) {
	_, _, shares := newShareFixture(t)

	_, _, err := shares.ResolveShare("deadbeefdeadbeef")
	assert.ErrorIs(t, err, ErrShareLinkNotFound)
}

func TestResolveShareRevokedHash(t *testing.T) {
	users, _, shares := newShareFixture(t)
	owner := newTestUser(t, users, "alice")

	hash, _, err := shares.EnableSharing(owner.ID)
	require.NoError(t, err)

	require.NoError(t, shares.DisableSharing(owner.ID))

	_, _, err = shares.ResolveShare(hash)
	assert.ErrorIs(t, err, ErrShareLinkNotFound)
}
