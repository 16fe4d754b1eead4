package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/shop-api/internal/core/domain"
)

// CartRepository implements ports.CartRepository using MongoDB. Carts are
// keyed by user_id (unique index), one document per user.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(collectionCarts)}
}

type mongoCartItem struct {
	Product  primitive.ObjectID `bson:"product"`
	Quantity int                `bson:"quantity"`
}

type mongoCart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Items     []mongoCartItem    `bson:"items"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCart
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}

	cart := &domain.Cart{
		UserID:    mc.UserID,
		Items:     make([]domain.CartItem, 0, len(mc.Items)),
		UpdatedAt: mc.UpdatedAt.UTC(),
	}
	for _, it := range mc.Items {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: it.Product.Hex(), Quantity: it.Quantity})
	}
	return cart, nil
}

// Replace overwrites the stored items in a single upsert. There is no version
// check: of two concurrent saves for the same user, the later one wins.
func (r *CartRepository) Replace(ctx context.Context, cart *domain.Cart) error {
	items := make([]mongoCartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		oid, err := parseID(it.ProductID)
		if err != nil {
			return fmt.Errorf("%w: unknown product %s", domain.ErrValidation, it.ProductID)
		}
		items = append(items, mongoCartItem{Product: oid, Quantity: it.Quantity})
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"items":      items,
			"updated_at": cart.UpdatedAt,
		},
	}
	if _, err := r.col.UpdateOne(ctx, bson.M{"user_id": cart.UserID}, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("replace cart: %w", err)
	}
	return nil
}
