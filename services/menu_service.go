package services

import (
	"context"
	"strings"
	"time"

	"github.com/ImmrAD/the-digital-diner/entity"
	"github.com/ImmrAD/the-digital-diner/pkg/apperr"
	"github.com/ImmrAD/the-digital-diner/pkg/cache"
)

const menuCacheKey = "menu:active"

// MenuService fronts the catalog with a small read cache. The menu is
// read-mostly, so list responses are cached and dropped on every write.
type MenuService struct {
	Store MenuStore
	Cache *cache.Client
	TTL   time.Duration
}

func NewMenuService(store MenuStore, c *cache.Client, ttl time.Duration) *MenuService {
	return &MenuService{Store: store, Cache: c, TTL: ttl}
}

type CreateMenuItemIn struct {
	Name           string                `json:"name" binding:"required"`
	Description    string                `json:"description"`
	Category       string                `json:"category" binding:"required"`
	Ingredients    []string              `json:"ingredients"`
	Prices         entity.PriceSet       `json:"prices"`
	DietaryOptions entity.DietaryOptions `json:"dietaryOptions"`
	ImageURL       string                `json:"imageUrl"`
}

func (s *MenuService) ListActive(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := s.Cache.GetJSON(ctx, menuCacheKey, &items); err == nil {
		return items, nil
	}

	items, err := s.Store.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.Cache.SetJSON(ctx, menuCacheKey, items, s.TTL)
	return items, nil
}

func (s *MenuService) ListActiveByCategory(ctx context.Context, category string) ([]entity.MenuItem, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperr.Validationf("category is required")
	}

	key := menuCacheKey + ":" + category
	var items []entity.MenuItem
	if err := s.Cache.GetJSON(ctx, key, &items); err == nil {
		return items, nil
	}

	items, err := s.Store.ListActiveByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	_ = s.Cache.SetJSON(ctx, key, items, s.TTL)
	return items, nil
}

// Create accepts any price ordering across sizes; only presence is
// checked. New items are visible immediately.
func (s *MenuService) Create(ctx context.Context, in *CreateMenuItemIn) (*entity.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validationf("name is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, apperr.Validationf("category is required")
	}
	if in.Prices.Small <= 0 || in.Prices.Medium <= 0 || in.Prices.Large <= 0 {
		return nil, apperr.Validationf("prices must be positive for all sizes")
	}

	item := &entity.MenuItem{
		Name:           strings.TrimSpace(in.Name),
		Description:    strings.TrimSpace(in.Description),
		Category:       strings.TrimSpace(in.Category),
		Ingredients:    in.Ingredients,
		Prices:         in.Prices,
		DietaryOptions: in.DietaryOptions,
		ImageURL:       in.ImageURL,
		Active:         true,
	}
	if err := s.Store.Create(ctx, item); err != nil {
		return nil, err
	}

	s.invalidate(ctx, item.Category)
	return item, nil
}

// Deactivate hides the item from the catalog without removing it, so
// existing order history still resolves.
func (s *MenuService) Deactivate(ctx context.Context, id string) error {
	item, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Store.Deactivate(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, item.Category)
	return nil
}

func (s *MenuService) invalidate(ctx context.Context, category string) {
	_ = s.Cache.Delete(ctx, menuCacheKey, menuCacheKey+":"+category)
}
