package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"AssetVerse-backend/internal/store"
)

type assetDoc struct {
	ID                primitive.ObjectID `bson:"_id"`
	ProductName       string             `bson:"productName"`
	ProductType       string             `bson:"productType"`
	ProductImage      string             `bson:"productImage"`
	ProductQuantity   int                `bson:"productQuantity"`
	AvailableQuantity int                `bson:"availableQuantity"`
	HREmail           string             `bson:"hrEmail"`
	CompanyName       string             `bson:"companyName"`
	DateAdded         time.Time          `bson:"dateAdded"`
}

func (d assetDoc) toModel() store.Asset {
	return store.Asset{
		ID:                d.ID.Hex(),
		ProductName:       d.ProductName,
		ProductType:       d.ProductType,
		ProductImage:      d.ProductImage,
		ProductQuantity:   d.ProductQuantity,
		AvailableQuantity: d.AvailableQuantity,
		HREmail:           d.HREmail,
		CompanyName:       d.CompanyName,
		DateAdded:         d.DateAdded,
	}
}

type Assets struct{ c *mongo.Collection }

func (s *Assets) Insert(ctx context.Context, a *store.Asset) error {
	id, err := newOID(a.ID)
	if err != nil {
		return err
	}
	if a.DateAdded.IsZero() {
		a.DateAdded = time.Now().UTC()
	}
	d := assetDoc{
		ID: id, ProductName: a.ProductName, ProductType: a.ProductType, ProductImage: a.ProductImage,
		ProductQuantity: a.ProductQuantity, AvailableQuantity: a.AvailableQuantity,
		HREmail: a.HREmail, CompanyName: a.CompanyName, DateAdded: a.DateAdded,
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return mapErr(err)
	}
	a.ID = id.Hex()
	return nil
}

func (s *Assets) Get(ctx context.Context, id string) (*store.Asset, error) {
	o, err := oid(id)
	if err != nil {
		return nil, err
	}
	var d assetDoc
	if err := s.c.FindOne(ctx, bson.M{"_id": o}).Decode(&d); err != nil {
		return nil, mapErr(err)
	}
	a := d.toModel()
	return &a, nil
}

func (s *Assets) List(ctx context.Context, hrEmail string) ([]store.Asset, error) {
	filter := bson.M{}
	if hrEmail != "" {
		filter["hrEmail"] = hrEmail
	}
	opts := options.Find().SetSort(bson.D{{Key: "dateAdded", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur, assetDoc.toModel)
}

func (s *Assets) Update(ctx context.Context, id string, p store.AssetPatch) error {
	o, err := oid(id)
	if err != nil {
		return err
	}
	filter := bson.M{"_id": o}
	update := bson.M{}
	set := bson.M{}
	if p.ProductName != nil {
		set["productName"] = *p.ProductName
	}
	if p.ProductType != nil {
		set["productType"] = *p.ProductType
	}
	if p.ProductImage != nil {
		set["productImage"] = *p.ProductImage
	}
	if len(set) > 0 {
		update["$set"] = set
	}
	if p.QuantityDelta != 0 {
		filter["availableQuantity"] = bson.M{"$gte": -p.QuantityDelta}
		filter["productQuantity"] = bson.M{"$gte": -p.QuantityDelta}
		update["$inc"] = bson.M{"productQuantity": p.QuantityDelta, "availableQuantity": p.QuantityDelta}
	}
	if len(update) == 0 {
		_, err := s.Get(ctx, id)
		return err
	}

	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return store.ErrGuard
}

func (s *Assets) Delete(ctx context.Context, id string) error {
	o, err := oid(id)
	if err != nil {
		return err
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": o})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Assets) DecrementAvailable(ctx context.Context, id string) (bool, error) {
	o, err := oid(id)
	if err != nil {
		return false, nil
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": o, "availableQuantity": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"availableQuantity": -1}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (s *Assets) IncrementAvailable(ctx context.Context, id string) (bool, error) {
	o, err := oid(id)
	if err != nil {
		return false, nil
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": o, "$expr": bson.M{"$lt": bson.A{"$availableQuantity", "$productQuantity"}}},
		bson.M{"$inc": bson.M{"availableQuantity": 1}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
