// Package mongostore implements the store repositories on MongoDB. Documents
// keep ObjectID _id values; the models carry them as hex strings.
package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"AssetVerse-backend/internal/platform/mongodb"
	"AssetVerse-backend/internal/store"
)

func New(client *mongo.Client, db *mongo.Database) *store.Store {
	return &store.Store{
		Users:        &Users{c: db.Collection(mongodb.CollUsers)},
		Packages:     &Packages{c: db.Collection(mongodb.CollPackages)},
		Assets:       &Assets{c: db.Collection(mongodb.CollAssets)},
		Requests:     &Requests{c: db.Collection(mongodb.CollRequests)},
		Assignments:  &Assignments{c: db.Collection(mongodb.CollAssignments)},
		Affiliations: &Affiliations{c: db.Collection(mongodb.CollAffiliations)},
		Close:        func(ctx context.Context) error { return mongodb.Disconnect(ctx, client) },
	}
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return store.ErrDuplicate
	}
	return err
}

// oid parses a hex id. A malformed id cannot name a document.
func oid(id string) (primitive.ObjectID, error) {
	o, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrNotFound
	}
	return o, nil
}

// newOID returns the parsed id, or a fresh one when id is empty.
func newOID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NewObjectID(), nil
	}
	o, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return o, nil
}

// decodeAll drains cur into docs and converts each one.
func decodeAll[D any, M any](ctx context.Context, cur *mongo.Cursor, conv func(D) M) ([]M, error) {
	defer cur.Close(ctx)
	out := []M{}
	for cur.Next(ctx) {
		var d D
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, conv(d))
	}
	return out, cur.Err()
}
