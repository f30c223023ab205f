package sessions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, &Session{UserID: 7, Username: "casey", Email: "casey@example.com", Role: "client"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), sess.UserID)
	assert.Equal(t, "casey", sess.Username)
	assert.Equal(t, "client", sess.Role)
}

func TestMemoryStoreDestroy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, &Session{UserID: 1})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	// destroying an unknown token is not an error
	assert.NoError(t, store.Destroy(ctx, "nope"))
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a, err := store.Create(ctx, &Session{UserID: 1})
	require.NoError(t, err)
	b, err := store.Create(ctx, &Session{UserID: 1})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
