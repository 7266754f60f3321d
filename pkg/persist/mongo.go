package persist

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/canvasflow/designer/pkg/errors"
)

// DefaultMongoCollection holds saved canvases when no collection is named.
const DefaultMongoCollection = "canvases"

// MongoBackend stores one document per key:
//
//	{_id: key, data: <blob>, updatedAt: <time>}
type MongoBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
	owned  bool
}

type canvasDoc struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// NewMongoBackend connects to uri and uses database.collection.
func NewMongoBackend(ctx context.Context, uri, database, collection string) (*MongoBackend, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePersistence, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodePersistence, err, "ping mongodb")
	}
	b := NewMongoBackendFromClient(client, database, collection)
	b.owned = true
	return b, nil
}

// NewMongoBackendFromClient uses an existing client. Close does not
// disconnect a client the backend did not create.
func NewMongoBackendFromClient(client *mongo.Client, database, collection string) *MongoBackend {
	if collection == "" {
		collection = DefaultMongoCollection
	}
	return &MongoBackend{client: client, coll: client.Database(database).Collection(collection)}
}

func (b *MongoBackend) Name() string { return "mongo" }

func (b *MongoBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var doc canvasDoc
	err := b.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodePersistence, err, "mongodb find %s", key)
	}
	return doc.Data, true, nil
}

func (b *MongoBackend) Save(ctx context.Context, key string, data []byte) error {
	update := bson.M{"$set": bson.M{"data": data, "updatedAt": time.Now().UTC()}}
	_, err := b.coll.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodePersistence, err, "mongodb upsert %s", key)
	}
	return nil
}

func (b *MongoBackend) Remove(ctx context.Context, key string) error {
	if _, err := b.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return errors.Wrap(errors.ErrCodePersistence, err, "mongodb delete %s", key)
	}
	return nil
}

func (b *MongoBackend) Close() error {
	if !b.owned {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return b.client.Disconnect(ctx)
}

var _ Backend = (*MongoBackend)(nil)
