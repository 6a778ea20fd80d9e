package transaction_log

import (
	"context"

	"cardpay-system/domain/entities"
	"cardpay-system/utils/helpers"
	"cardpay-system/utils/mongoindex"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionLogCollection struct {
	collection *mongo.Collection
}

func NewTransactionLogCollection(db *mongo.Client, dbName string) *TransactionLogCollection {
	collection := db.Database(dbName).Collection("transaction_logs")

	ctx := helpers.ContextWithTimeOut()
	mongoindex.EnsureIndex(ctx, collection, []bson.E{{Key: "correlation_id", Value: 1}}, true)
	mongoindex.EnsureIndex(ctx, collection, []bson.E{{Key: "order_id", Value: 1}}, false)

	return &TransactionLogCollection{collection: collection}
}

func (t *TransactionLogCollection) Create(ctx context.Context, entry *entities.TransactionLogEntry) error {
	_, err := t.collection.InsertOne(ctx, entry)
	return err
}

// Complete replaces the open entry with its finished state. Completed entries
// are immutable afterwards except for appended notes.
func (t *TransactionLogCollection) Complete(ctx context.Context, entry *entities.TransactionLogEntry) error {
	_, err := t.collection.UpdateOne(ctx,
		bson.M{"correlation_id": entry.CorrelationID, "completed": false},
		bson.M{"$set": entry},
	)
	return err
}

func (t *TransactionLogCollection) AppendNote(ctx context.Context, correlationID string, note string) error {
	_, err := t.collection.UpdateOne(ctx,
		bson.M{"correlation_id": correlationID},
		bson.M{"$push": bson.M{"notes": note}},
	)
	return err
}

func (t *TransactionLogCollection) FindByCorrelationID(ctx context.Context, correlationID string) (res *entities.TransactionLogEntry, err error) {
	err = t.collection.FindOne(ctx, bson.M{"correlation_id": correlationID}).Decode(&res)
	return
}
