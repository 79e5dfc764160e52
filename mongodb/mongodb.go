package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

type MongoDBConn struct {
	Client *mongo.Client
	dbName string
	opts   *options.ClientOptions
}

func (db *MongoDBConn) Connect(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, db.opts)
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return err
	}

	db.Client = client

	return nil
}

func (db *MongoDBConn) Disconnect(ctx context.Context) error {

	if db.Client == nil {
		return nil
	}

	return db.Client.Disconnect(ctx)
}

func (db *MongoDBConn) GetDatabase() *mongo.Database {

	return db.Client.Database(db.dbName)
}

func (db *MongoDBConn) GetCollection(collectionName string) *mongo.Collection {

	return db.GetDatabase().Collection(collectionName)
}

func New(uri string, dbName string) MongoDBConn {

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	return MongoDBConn{
		dbName: dbName,
		opts:   opts,
	}
}

func InitConnection(ctx context.Context, uri string, dbName string) (*MongoDBConn, error) {

	mongodbConn := New(uri, dbName)
	if err := mongodbConn.Connect(ctx); err != nil {
		return nil, err
	}

	return &mongodbConn, nil
}
