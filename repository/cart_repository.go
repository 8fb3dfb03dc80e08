package repository

import (
	"errors"
	"time"

	"github.com/ImmrAD/the-digital-diner/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetCartWithItems returns the user's cart, or an empty cart when none
// exists yet, so the client can always render something.
func (r *CartRepository) GetCartWithItems(userID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []entity.CartItem{}
	}
	return &c, nil
}

// FindCart returns (nil, nil) when the user has no cart row.
func (r *CartRepository) FindCart(tx *gorm.DB, userID string) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID string) (*entity.Cart, error) {
	c, err := r.FindCart(tx, userID)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}
	c = &entity.Cart{UserID: userID}
	if err := tx.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// AddItem folds the line into an existing one with a single upsert so two
// concurrent adds cannot lose an increment. Instructions are overwritten
// only when the caller supplied a non-empty value.
func (r *CartRepository) AddItem(tx *gorm.DB, row *entity.CartItem) error {
	assignments := map[string]any{
		"quantity":   gorm.Expr("quantity + ?", row.Quantity),
		"updated_at": time.Now(),
	}
	if row.SpecialInstructions != "" {
		assignments["special_instructions"] = row.SpecialInstructions
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "cart_id"}, {Name: "menu_item_id"}, {Name: "size"},
		},
		DoUpdates: clause.Assignments(assignments),
	}).Create(row).Error
}

// SetItem is the absolute variant: quantity and instructions replace the
// stored values. A non-positive quantity removes the line.
func (r *CartRepository) SetItem(tx *gorm.DB, cartID uint, menuItemID, size string, quantity int, instructions string) error {
	if quantity <= 0 {
		return r.RemoveItem(tx, cartID, menuItemID, size)
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "cart_id"}, {Name: "menu_item_id"}, {Name: "size"},
		},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":             quantity,
			"special_instructions": instructions,
			"updated_at":           time.Now(),
		}),
	}).Create(&entity.CartItem{
		CartID:              cartID,
		MenuItemID:          menuItemID,
		Size:                size,
		Quantity:            quantity,
		SpecialInstructions: instructions,
	}).Error
}

// RemoveItem is a no-op when the line is absent.
func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID uint, menuItemID, size string) error {
	return tx.Where("cart_id = ? AND menu_item_id = ? AND size = ?", cartID, menuItemID, size).
		Delete(&entity.CartItem{}).Error
}

// ClearItems empties the cart but keeps the cart row.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ItemsOf(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	items := []entity.CartItem{}
	err := tx.Where("cart_id = ?", cartID).Order("id").Find(&items).Error
	return items, err
}
