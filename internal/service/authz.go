// Package service implements the business operations behind the HTTP
// handlers: tenant-ownership authorization, the store cascade deletion and
// the order aggregate update.
package service

import (
	"context"

	"github.com/momen-x/e-commerce-Admin-dashboard/internal/apperr"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/repository"
)

// AuthzGate verifies tenant ownership before any mutation. Every store-scoped
// write goes through Authorize; public reads only need StoreExists.
type AuthzGate struct {
	stores *repository.StoreRepository
}

// NewAuthzGate returns the authorization gate
func NewAuthzGate(stores *repository.StoreRepository) *AuthzGate {
	return &AuthzGate{stores: stores}
}

// Authorize resolves the store and verifies the caller owns it. A zero
// caller id means the request carried no identity. The resolved store is
// returned so callers avoid a second lookup.
func (g *AuthzGate) Authorize(ctx context.Context, callerID, storeID uint) (*model.Store, error) {
	if callerID == 0 {
		return nil, apperr.Unauthenticated("Unauthorized")
	}
	store, err := g.stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID != callerID {
		return nil, apperr.Forbidden("Access denied")
	}
	return store, nil
}

// StoreExists is the weaker check used by public catalog and order reads
func (g *AuthzGate) StoreExists(ctx context.Context, storeID uint) (*model.Store, error) {
	return g.stores.Get(ctx, storeID)
}
