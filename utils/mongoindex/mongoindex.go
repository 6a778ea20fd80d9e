package mongoindex

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndex creates the index over keys unless the collection already
// carries one under the same name. Names follow the driver's key_direction
// convention, so an index created by hand counts as present.
func EnsureIndex(ctx context.Context, c *mongo.Collection, keys []bson.E, unique bool) error {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%v_%v", k.Key, k.Value))
	}
	name := strings.Join(parts, "_")

	cur, err := c.Indexes().List(ctx)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		idx := bson.M{}
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if idx["name"] == name {
			return nil
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}

	_, err = c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D(keys),
		Options: options.Index().SetName(name).SetUnique(unique),
	})
	return err
}
