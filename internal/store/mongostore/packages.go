package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"AssetVerse-backend/internal/store"
)

type packageDoc struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          string             `bson:"name"`
	EmployeeLimit int                `bson:"employeeLimit"`
	Price         float64            `bson:"price"`
	Features      []string           `bson:"features"`
}

func (d packageDoc) toModel() store.Package {
	return store.Package{ID: d.ID.Hex(), Name: d.Name, EmployeeLimit: d.EmployeeLimit, Price: d.Price, Features: d.Features}
}

type Packages struct{ c *mongo.Collection }

func (s *Packages) List(ctx context.Context) ([]store.Package, error) {
	opts := options.Find().SetSort(bson.D{{Key: "employeeLimit", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur, packageDoc.toModel)
}

func (s *Packages) Insert(ctx context.Context, p *store.Package) error {
	id, err := newOID(p.ID)
	if err != nil {
		return err
	}
	features := p.Features
	if features == nil {
		features = []string{}
	}
	d := packageDoc{ID: id, Name: p.Name, EmployeeLimit: p.EmployeeLimit, Price: p.Price, Features: features}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return mapErr(err)
	}
	p.ID = id.Hex()
	return nil
}
