package storage

import (
	"context"
	"errors"
	"fmt"

	serverError "github.com/supakorn-kn/books-api/errors"
	"github.com/supakorn-kn/books-api/mongodb"
	"github.com/supakorn-kn/books-api/objects"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultMirrorID = "books"

// MongoStore keeps the whole collection in one mirror document, so Save stays a
// single-document replace like the file store.
type MongoStore struct {
	coll     *mongo.Collection
	mirrorID string
}

type mirrorDocument struct {
	ID    string         `bson:"_id"`
	Books []objects.Book `bson:"books"`
}

func NewMongoStore(conn *mongodb.MongoDBConn, collectionName string) *MongoStore {

	return &MongoStore{
		coll:     conn.GetCollection(collectionName),
		mirrorID: DefaultMirrorID,
	}
}

func (s *MongoStore) location() string {
	return fmt.Sprintf("mongodb collection %s", s.coll.Name())
}

func (s *MongoStore) Load(ctx context.Context) (objects.Collection, error) {

	result := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: s.mirrorID}})

	var doc mirrorDocument
	err := result.Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return objects.NewCollection(), nil
	}

	if err != nil {
		return objects.Collection{}, serverError.StorageLoadFailedError.Wrap(err, s.location(), err)
	}

	return objects.Collection{Books: doc.Books}.Clone(), nil
}

func (s *MongoStore) Save(ctx context.Context, c objects.Collection) error {

	doc := mirrorDocument{ID: s.mirrorID, Books: c.Clone().Books}

	option := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: s.mirrorID}}, doc, option)
	if err != nil {
		return serverError.StorageSaveFailedError.Wrap(err, s.location(), err)
	}

	return nil
}
