package services

import (
	"context"

	"github.com/ImmrAD/the-digital-diner/entity"
)

// CatalogLookup is the capability the relational side uses to reach menu
// items in the document store. Cart and order pricing always go through
// it; menu item ids stored in cart_items and order_items carry no foreign
// key, so a NotFound here is an expected outcome, not a broken invariant.
type CatalogLookup interface {
	GetByID(ctx context.Context, id string) (*entity.MenuItem, error)
}

// MenuStore is the full document-store surface behind the menu service.
// *repository.MenuRepository implements it.
type MenuStore interface {
	CatalogLookup
	ListActive(ctx context.Context) ([]entity.MenuItem, error)
	ListActiveByCategory(ctx context.Context, category string) ([]entity.MenuItem, error)
	Create(ctx context.Context, item *entity.MenuItem) error
	Deactivate(ctx context.Context, id string) error
}
