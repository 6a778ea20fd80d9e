package order

import (
	"context"
	"time"

	"cardpay-system/domain/entities"
	pErrors "cardpay-system/errors"
	"cardpay-system/utils/helpers"
	"cardpay-system/utils/mongoindex"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderCollection struct {
	collection *mongo.Collection
}

func NewOrderCollection(db *mongo.Client, dbName string) *OrderCollection {
	collection := db.Database(dbName).Collection("orders")

	ctx := helpers.ContextWithTimeOut()
	mongoindex.EnsureIndex(ctx, collection, []bson.E{{Key: "order_id", Value: 1}}, true)

	return &OrderCollection{collection: collection}
}

func (o *OrderCollection) FindByOrderID(ctx context.Context, orderID string) (res *entities.OrderEntity, err error) {
	err = o.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, pErrors.ErrOrderNotFound
	}
	return
}

func (o *OrderCollection) AmountMinorUnits(ctx context.Context, orderID string) (int64, error) {
	order, err := o.FindByOrderID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	return order.Amount, nil
}

func (o *OrderCollection) MarkPaid(ctx context.Context, orderID string, paidAt time.Time) error {
	_, err := o.collection.UpdateOne(ctx,
		bson.M{"order_id": orderID},
		bson.M{"$set": bson.M{
			"status":     entities.ORDER_SUCCESS,
			"succeed_at": paidAt,
			"updated_at": time.Now().UTC(),
		}},
	)
	return err
}

func (o *OrderCollection) MarkFailed(ctx context.Context, orderID string, reason string) error {
	_, err := o.collection.UpdateOne(ctx,
		bson.M{"order_id": orderID, "status": bson.M{"$ne": entities.ORDER_SUCCESS}},
		bson.M{"$set": bson.M{
			"status":      entities.ORDER_FAILED,
			"fail_reason": reason,
			"updated_at":  time.Now().UTC(),
		}},
	)
	return err
}
