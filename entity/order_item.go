package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID string `gorm:"size:50;not null" json:"menuItemId"`
	Size       string `gorm:"size:10;not null;default:medium" json:"size"`
	Quantity   int    `gorm:"not null" json:"quantity"`

	// UnitPrice is the catalog price captured at order time. It is never
	// recomputed after the order is created.
	UnitPrice int64 `gorm:"not null" json:"unitPrice"`

	SpecialInstructions string `gorm:"type:text" json:"specialInstructions,omitempty"`

	// MenuItemName is filled in at read time from the current catalog.
	// Best effort only; stays empty when the lookup fails.
	MenuItemName string `gorm:"-" json:"name,omitempty"`
}
