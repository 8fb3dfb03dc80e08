package services

import (
	"context"
	"strings"

	"github.com/ImmrAD/the-digital-diner/entity"
	"github.com/ImmrAD/the-digital-diner/pkg/apperr"
	"github.com/ImmrAD/the-digital-diner/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	Catalog  CatalogLookup
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catalog CatalogLookup) *CartService {
	return &CartService{DB: db, CartRepo: cr, Catalog: catalog}
}

type AddToCartIn struct {
	MenuItemID          string `json:"menu_item_id" binding:"required"`
	Size                string `json:"size"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

type UpdateCartIn struct {
	MenuItemID          string `json:"menu_item_id" binding:"required"`
	Size                string `json:"size"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

type RemoveFromCartIn struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Size       string `json:"size"`
}

func normalizeSize(size string) (string, error) {
	size = strings.ToLower(strings.TrimSpace(size))
	switch size {
	case "":
		return entity.SizeMedium, nil
	case entity.SizeSmall, entity.SizeMedium, entity.SizeLarge:
		return size, nil
	}
	return "", apperr.Validationf("unknown size %q", size)
}

// Get never reports a missing cart as an error; the caller sees an empty
// item list instead.
func (s *CartService) Get(userID string) (*entity.Cart, error) {
	return s.CartRepo.GetCartWithItems(userID)
}

// AddItem creates the cart lazily and folds repeat adds of the same line
// into one row. The menu item must exist and be active in the catalog.
func (s *CartService) AddItem(ctx context.Context, userID string, in *AddToCartIn) (*entity.Cart, error) {
	size, err := normalizeSize(in.Size)
	if err != nil {
		return nil, err
	}
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	item, err := s.Catalog.GetByID(ctx, in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if !item.Active {
		return nil, apperr.Validationf("menu item %q is not available", item.Name)
	}

	var out *entity.Cart
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		row := &entity.CartItem{
			CartID:              cart.ID,
			MenuItemID:          in.MenuItemID,
			Size:                size,
			Quantity:            qty,
			SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
		}
		if err := s.CartRepo.AddItem(tx, row); err != nil {
			return err
		}
		cart.Items, err = s.CartRepo.ItemsOf(tx, cart.ID)
		if err != nil {
			return err
		}
		out = cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateItem sets quantity and instructions absolutely. Unlike AddItem it
// requires an existing cart.
func (s *CartService) UpdateItem(ctx context.Context, userID string, in *UpdateCartIn) (*entity.Cart, error) {
	size, err := normalizeSize(in.Size)
	if err != nil {
		return nil, err
	}

	var out *entity.Cart
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindCart(tx, userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return apperr.NotFoundf("cart not found")
		}
		if err := s.CartRepo.SetItem(tx, cart.ID, in.MenuItemID, size, in.Quantity, strings.TrimSpace(in.SpecialInstructions)); err != nil {
			return err
		}
		cart.Items, err = s.CartRepo.ItemsOf(tx, cart.ID)
		if err != nil {
			return err
		}
		out = cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID string, in *RemoveFromCartIn) (*entity.Cart, error) {
	size, err := normalizeSize(in.Size)
	if err != nil {
		return nil, err
	}

	var out *entity.Cart
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindCart(tx, userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return apperr.NotFoundf("cart not found")
		}
		if err := s.CartRepo.RemoveItem(tx, cart.ID, in.MenuItemID, size); err != nil {
			return err
		}
		cart.Items, err = s.CartRepo.ItemsOf(tx, cart.ID)
		if err != nil {
			return err
		}
		out = cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Clear empties the item list but keeps the cart row.
func (s *CartService) Clear(ctx context.Context, userID string) (*entity.Cart, error) {
	var out *entity.Cart
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindCart(tx, userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return apperr.NotFoundf("cart not found")
		}
		if err := s.CartRepo.ClearItems(tx, cart.ID); err != nil {
			return err
		}
		cart.Items = []entity.CartItem{}
		out = cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
