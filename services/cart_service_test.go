package services

import (
	"context"
	"testing"

	"github.com/ImmrAD/the-digital-diner/entity"
	"github.com/ImmrAD/the-digital-diner/pkg/apperr"
	"github.com/ImmrAD/the-digital-diner/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T) (*CartService, *fakeCatalog) {
	t.Helper()
	db := newTestDB(t)
	catalog := newFakeCatalog()
	svc := NewCartService(db, repository.NewCartRepository(db), catalog)
	return svc, catalog
}

func TestGetMissingCartIsEmpty(t *testing.T) {
	svc, _ := newCartService(t)

	cart, err := svc.Get("user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestAddItemAccumulates(t *testing.T) {
	svc, catalog := newCartService(t)
	catalog.put("m1", activeItem("Burger", 500, 700, 900))
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "m1", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	cart, err = svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "m1", Quantity: 3})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, entity.SizeMedium, cart.Items[0].Size)
}

func TestAddItemDifferentSizesAreSeparateLines(t *testing.T) {
	svc, catalog := newCartService(t)
	catalog.put("m1", activeItem("Burger", 500, 700, 900))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "m1", Size: "small", Quantity: 1})
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "m1", Size: "large", Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestAddItemKeepsInstructionsUnlessReplaced(t *testing.T) {
	svc, catalog := newCartService(t)
	catalog.put("m1", activeItem("Burger", 500, 700, 900))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "m1", Quantity: 1, SpecialInstructions: "no onions"})
	require.NoError(t, err)

	// empty instructions keep the prior value
	cart, err := svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "m1", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "no onions", cart.Items[0].SpecialInstructions)

	// non-empty instructions replace it
	cart, err = svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "m1", Quantity: 1, SpecialInstructions: "extra cheese"})
	require.NoError(t, err)
	assert.Equal(t, "extra cheese", cart.Items[0].SpecialInstructions)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestAddUnknownOrInactiveItem(t *testing.T) {
	svc, catalog := newCartService(t)
	inactive := activeItem("Retired", 100, 200, 300)
	inactive.Active = false
	catalog.put("old", inactive)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "missing", Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	_, err = svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "old", Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestMutateWithoutCartIsNotFound(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, err := svc.UpdateItem(ctx, "ghost", &UpdateCartIn{MenuItemID: "m1", Quantity: 2})
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	_, err = svc.RemoveItem(ctx, "ghost", &RemoveFromCartIn{MenuItemID: "m1"})
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	_, err = svc.Clear(ctx, "ghost")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestUpdateItemIsAbsolute(t *testing.T) {
	svc, catalog := newCartService(t)
	catalog.put("m1", activeItem("Burger", 500, 700, 900))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "m1", Quantity: 5})
	require.NoError(t, err)

	cart, err := svc.UpdateItem(ctx, "u1", &UpdateCartIn{MenuItemID: "m1", Quantity: 2, SpecialInstructions: "rare"})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "rare", cart.Items[0].SpecialInstructions)

	// zero quantity removes the line
	cart, err = svc.UpdateItem(ctx, "u1", &UpdateCartIn{MenuItemID: "m1", Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveAbsentLineIsNoop(t *testing.T) {
	svc, catalog := newCartService(t)
	catalog.put("m1", activeItem("Burger", 500, 700, 900))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "m1", Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "u1", &RemoveFromCartIn{MenuItemID: "never-added"})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestClearKeepsCartRow(t *testing.T) {
	svc, catalog := newCartService(t)
	catalog.put("m1", activeItem("Burger", 500, 700, 900))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", &AddToCartIn{MenuItemID: "m1", Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.Clear(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// the cart row survives, so clearing again still finds it
	cart, err = svc.Clear(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestAddItemRejectsUnknownSize(t *testing.T) {
	svc, catalog := newCartService(t)
	catalog.put("m1", activeItem("Burger", 500, 700, 900))

	_, err := svc.AddItem(context.Background(), "u1", &AddToCartIn{MenuItemID: "m1", Size: "jumbo", Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}
