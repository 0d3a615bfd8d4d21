package mongodb

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"AssetVerse-backend/internal/platform/config"
)

// Collection names
const (
	CollUsers        = "users"
	CollPackages     = "packages"
	CollAssets       = "assets"
	CollRequests     = "requests"
	CollAssignments  = "assignedAssets"
	CollAffiliations = "employeeAffiliations"
)

func Connect(c config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	clientOptions := options.Client().
		ApplyURI(c.URI).
		SetConnectTimeout(20 * time.Second).
		SetServerSelectionTimeout(15 * time.Second).
		SetSocketTimeout(20 * time.Second).
		SetMaxPoolSize(50)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("create mongo client: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelPing()
	if err := client.Ping(ctxPing, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, client.Database(c.Database), nil
}

func Disconnect(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("[WARN] mongo disconnect: %v", err)
		return err
	}
	return nil
}

var indexes = map[string][]mongo.IndexModel{
	CollUsers: {
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
	},
	CollAssets: {
		{
			Keys:    bson.D{{Key: "hrEmail", Value: 1}},
			Options: options.Index().SetName("idx_hrEmail"),
		},
	},
	CollRequests: {
		{
			Keys:    bson.D{{Key: "requesterEmail", Value: 1}},
			Options: options.Index().SetName("idx_requesterEmail"),
		},
		{
			Keys:    bson.D{{Key: "hrEmail", Value: 1}},
			Options: options.Index().SetName("idx_hrEmail"),
		},
	},
	CollAssignments: {
		{
			Keys:    bson.D{{Key: "employeeEmail", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_employeeEmail_status"),
		},
	},
	CollAffiliations: {
		{
			Keys: bson.D{{Key: "employeeEmail", Value: 1}},
			// one active affiliation per employee
			Options: options.Index().SetName("uniq_active_employeeEmail").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": "active"}),
		},
		{
			Keys:    bson.D{{Key: "hrEmail", Value: 1}},
			Options: options.Index().SetName("idx_hrEmail"),
		},
	},
}

// EnsureIndexes creates the indexes the stores rely on. Existing indexes with
// the same keys and options are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
