package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// PriceSet holds the per-size prices of a menu item, in cents.
type PriceSet struct {
	Small  int64 `bson:"small" json:"small"`
	Medium int64 `bson:"medium" json:"medium"`
	Large  int64 `bson:"large" json:"large"`
}

// For returns the price for a size. Unknown sizes report ok=false.
func (p PriceSet) For(size string) (int64, bool) {
	switch size {
	case SizeSmall:
		return p.Small, true
	case SizeMedium:
		return p.Medium, true
	case SizeLarge:
		return p.Large, true
	}
	return 0, false
}

type DietaryOptions struct {
	Vegetarian bool `bson:"vegetarian" json:"vegetarian"`
	Vegan      bool `bson:"vegan" json:"vegan"`
	GlutenFree bool `bson:"glutenFree" json:"glutenFree"`
}

// MenuItem lives in the menuitems collection of the document store.
// Deactivated items keep their document; Active only controls visibility.
type MenuItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Category       string             `bson:"category" json:"category"`
	Ingredients    []string           `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Prices         PriceSet           `bson:"prices" json:"prices"`
	DietaryOptions DietaryOptions     `bson:"dietaryOptions,omitempty" json:"dietaryOptions"`
	ImageURL       string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Active         bool               `bson:"active" json:"active"`
}
