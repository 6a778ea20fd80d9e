package payment

import (
	"context"
	"time"

	"cardpay-system/domain/entities"
	"cardpay-system/utils/helpers"
	"cardpay-system/utils/mongoindex"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentCollection struct {
	collection *mongo.Collection
}

func NewPaymentCollection(db *mongo.Client, dbName string) *PaymentCollection {
	collection := db.Database(dbName).Collection("payments")

	ctx := helpers.ContextWithTimeOut()
	mongoindex.EnsureIndex(ctx, collection, []bson.E{{Key: "order_id", Value: 1}}, true)

	return &PaymentCollection{collection: collection}
}

// Upsert writes the record keyed by order id. A replayed callback lands on
// the same document instead of creating a second charge record.
func (p *PaymentCollection) Upsert(ctx context.Context, payment *entities.PaymentEntity) (*entities.PaymentEntity, error) {
	payment.UpdatedAt = time.Now().UTC()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = payment.UpdatedAt
	}

	upsert := true
	_, err := p.collection.UpdateOne(ctx,
		bson.M{"order_id": payment.OrderID},
		bson.M{"$set": payment},
		&options.UpdateOptions{Upsert: &upsert},
	)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (p *PaymentCollection) FindByOrderID(ctx context.Context, orderID string) (res *entities.PaymentEntity, err error) {
	err = p.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&res)
	return
}
