package services

import (
	"context"
	"testing"
	"time"

	"github.com/ImmrAD/the-digital-diner/entity"
	"github.com/ImmrAD/the-digital-diner/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuService() (*MenuService, *fakeCatalog) {
	catalog := newFakeCatalog()
	// nil cache client: every read goes straight to the store
	return NewMenuService(catalog, nil, time.Minute), catalog
}

func TestMenuListActiveFiltersInactive(t *testing.T) {
	svc, catalog := newMenuService()
	catalog.put("a", activeItem("Burger", 500, 700, 900))
	retired := activeItem("Old Dish", 100, 200, 300)
	retired.Active = false
	catalog.put("b", retired)

	items, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Burger", items[0].Name)
}

func TestMenuListByCategory(t *testing.T) {
	svc, catalog := newMenuService()
	burger := activeItem("Burger", 500, 700, 900)
	burger.Category = "mains"
	cola := activeItem("Cola", 100, 150, 200)
	cola.Category = "drinks"
	catalog.put("a", burger)
	catalog.put("b", cola)

	items, err := svc.ListActiveByCategory(context.Background(), "drinks")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cola", items[0].Name)

	_, err = svc.ListActiveByCategory(context.Background(), "  ")
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestMenuCreateValidation(t *testing.T) {
	svc, _ := newMenuService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMenuItemIn{Category: "mains", Prices: entity.PriceSet{Small: 1, Medium: 1, Large: 1}})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.Create(ctx, &CreateMenuItemIn{Name: "Burger", Prices: entity.PriceSet{Small: 1, Medium: 1, Large: 1}})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.Create(ctx, &CreateMenuItemIn{Name: "Burger", Category: "mains"})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	// price ordering across sizes is deliberately not checked
	item, err := svc.Create(ctx, &CreateMenuItemIn{
		Name: "Odd", Category: "mains",
		Prices: entity.PriceSet{Small: 900, Medium: 700, Large: 500},
	})
	require.NoError(t, err)
	assert.True(t, item.Active)
}

func TestMenuDeactivateUnknown(t *testing.T) {
	svc, _ := newMenuService()

	err := svc.Deactivate(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
