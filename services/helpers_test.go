package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/ImmrAD/the-digital-diner/entity"
	"github.com/ImmrAD/the-digital-diner/pkg/apperr"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

// fakeCatalog stands in for the document store.
type fakeCatalog struct {
	items map[string]entity.MenuItem
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{items: map[string]entity.MenuItem{}}
}

func (f *fakeCatalog) put(id string, item entity.MenuItem) {
	f.items[id] = item
}

func (f *fakeCatalog) GetByID(_ context.Context, id string) (*entity.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, apperr.NotFoundf("menu item %s not found", id)
	}
	return &item, nil
}

func (f *fakeCatalog) ListActive(_ context.Context) ([]entity.MenuItem, error) {
	out := []entity.MenuItem{}
	for _, it := range f.items {
		if it.Active {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListActiveByCategory(_ context.Context, category string) ([]entity.MenuItem, error) {
	out := []entity.MenuItem{}
	for _, it := range f.items {
		if it.Active && it.Category == category {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Create(_ context.Context, item *entity.MenuItem) error {
	f.items[fmt.Sprintf("item-%d", len(f.items)+1)] = *item
	return nil
}

func (f *fakeCatalog) Deactivate(_ context.Context, id string) error {
	item, ok := f.items[id]
	if !ok {
		return apperr.NotFoundf("menu item %s not found", id)
	}
	item.Active = false
	f.items[id] = item
	return nil
}

func activeItem(name string, small, medium, large int64) entity.MenuItem {
	return entity.MenuItem{
		Name:     name,
		Category: "mains",
		Prices:   entity.PriceSet{Small: small, Medium: medium, Large: large},
		Active:   true,
	}
}
