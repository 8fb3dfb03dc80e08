package repository

import (
	"context"
	"errors"

	"github.com/ImmrAD/the-digital-diner/entity"
	"github.com/ImmrAD/the-digital-diner/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuRepository owns the menuitems collection in the document store.
// Menu item ids are referenced from the relational cart and order rows,
// so callers must treat a missing document as a real outcome.
type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(client *mongo.Client, dbName string) *MenuRepository {
	return &MenuRepository{col: client.Database(dbName).Collection("menuitems")}
}

func (r *MenuRepository) ListActive(ctx context.Context) ([]entity.MenuItem, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *MenuRepository) ListActiveByCategory(ctx context.Context, category string) ([]entity.MenuItem, error) {
	return r.find(ctx, bson.M{"active": true, "category": category})
}

func (r *MenuRepository) find(ctx context.Context, filter bson.M) ([]entity.MenuItem, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []entity.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

// GetByID is the catalog lookup the cart and order services price against.
// A malformed or unknown id is NotFound; referential integrity across the
// two stores is never assumed.
func (r *MenuRepository) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("menu item %s not found", id)
	}

	var item entity.MenuItem
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFoundf("menu item %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Deactivate soft-deletes: the document stays so order history can still
// resolve its name.
func (r *MenuRepository) Deactivate(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("menu item %s not found", id)
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("menu item %s not found", id)
	}
	return nil
}
