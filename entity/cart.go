package entity

import (
	"time"
)

// Cart is keyed by a free-form user identifier so guest carts work the same
// way as carts of registered users. The row is created lazily on the first
// add and never deleted; clearing only empties the item list.
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	UserID    string    `gorm:"size:100;uniqueIndex;not null" json:"userId"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
