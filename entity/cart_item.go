package entity

import (
	"time"
)

// CartItem references a menu item that lives in the document store, so
// MenuItemID carries no foreign key. One line per (cart, menu item, size);
// repeat adds fold into the existing line.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	CartID uint `gorm:"uniqueIndex:idx_cart_line" json:"cartId"`

	MenuItemID string `gorm:"size:50;not null;uniqueIndex:idx_cart_line" json:"menuItemId"`
	Size       string `gorm:"size:10;not null;default:medium;uniqueIndex:idx_cart_line" json:"size"`

	Quantity            int    `gorm:"not null" json:"quantity"`
	SpecialInstructions string `gorm:"type:text" json:"specialInstructions,omitempty"`
}
