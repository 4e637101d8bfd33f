package service

import (
	"context"
	"testing"

	"github.com/momen-x/e-commerce-Admin-dashboard/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeAnonymousCaller(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")

	_, err := newGate(db).Authorize(context.Background(), 0, store.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthenticated))
	assert.EqualError(t, err, "Unauthorized")
}

func TestAuthorizeUnknownStore(t *testing.T) {
	db := openTestDB(t)

	_, err := newGate(db).Authorize(context.Background(), 1, 999)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAuthorizeForeignOwner(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")

	_, err := newGate(db).Authorize(context.Background(), 2, store.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.EqualError(t, err, "Access denied")
}

func TestAuthorizeOwner(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 7, "Shop1")

	got, err := newGate(db).Authorize(context.Background(), 7, store.ID)
	require.NoError(t, err)
	assert.Equal(t, store.ID, got.ID)
	assert.Equal(t, uint(7), got.OwnerID)
}

func TestStoreExists(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")
	gate := newGate(db)
	ctx := context.Background()

	got, err := gate.StoreExists(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shop1", got.Name)

	_, err = gate.StoreExists(ctx, 999)
	assert.True(t, apperr.IsNotFound(err))
}
