package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"AssetVerse-backend/internal/store"
)

type affiliationDoc struct {
	ID              primitive.ObjectID `bson:"_id"`
	EmployeeEmail   string             `bson:"employeeEmail"`
	EmployeeName    string             `bson:"employeeName"`
	EmployeePhoto   string             `bson:"employeePhoto"`
	HREmail         string             `bson:"hrEmail"`
	CompanyName     string             `bson:"companyName"`
	CompanyLogo     string             `bson:"companyLogo"`
	AffiliationDate time.Time          `bson:"affiliationDate"`
	AssetsCount     int                `bson:"assetsCount"`
	Status          string             `bson:"status"`
}

func (d affiliationDoc) toModel() store.Affiliation {
	return store.Affiliation{
		ID:              d.ID.Hex(),
		EmployeeEmail:   d.EmployeeEmail,
		EmployeeName:    d.EmployeeName,
		EmployeePhoto:   d.EmployeePhoto,
		HREmail:         d.HREmail,
		CompanyName:     d.CompanyName,
		CompanyLogo:     d.CompanyLogo,
		AffiliationDate: d.AffiliationDate,
		AssetsCount:     d.AssetsCount,
		Status:          d.Status,
	}
}

type Affiliations struct{ c *mongo.Collection }

func (s *Affiliations) Get(ctx context.Context, id string) (*store.Affiliation, error) {
	o, err := oid(id)
	if err != nil {
		return nil, err
	}
	return s.findOne(ctx, bson.M{"_id": o})
}

func (s *Affiliations) GetActive(ctx context.Context, employeeEmail string) (*store.Affiliation, error) {
	return s.findOne(ctx, bson.M{"employeeEmail": employeeEmail, "status": store.AffiliationActive})
}

func (s *Affiliations) findOne(ctx context.Context, filter bson.M) (*store.Affiliation, error) {
	var d affiliationDoc
	if err := s.c.FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, mapErr(err)
	}
	a := d.toModel()
	return &a, nil
}

func (s *Affiliations) List(ctx context.Context, hrEmail string) ([]store.Affiliation, error) {
	filter := bson.M{}
	if hrEmail != "" {
		filter["hrEmail"] = hrEmail
	}
	opts := options.Find().SetSort(bson.D{{Key: "affiliationDate", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur, affiliationDoc.toModel)
}

// IncrementOrCreateActive is a single upsert keyed on {employeeEmail, active}.
// Two first approvals racing on the same employee collide on the partial
// unique index; the loser retries and lands on the increment branch.
func (s *Affiliations) IncrementOrCreateActive(ctx context.Context, seed *store.Affiliation) (bool, error) {
	created, err := s.upsertActive(ctx, seed)
	if errors.Is(err, store.ErrDuplicate) {
		return s.upsertActive(ctx, seed)
	}
	return created, err
}

func (s *Affiliations) upsertActive(ctx context.Context, seed *store.Affiliation) (bool, error) {
	date := seed.AffiliationDate
	if date.IsZero() {
		date = time.Now().UTC()
	}
	id := primitive.NewObjectID()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"employeeEmail": seed.EmployeeEmail, "status": store.AffiliationActive},
		bson.M{
			"$inc": bson.M{"assetsCount": 1},
			"$setOnInsert": bson.M{
				"_id":             id,
				"employeeName":    seed.EmployeeName,
				"employeePhoto":   seed.EmployeePhoto,
				"hrEmail":         seed.HREmail,
				"companyName":     seed.CompanyName,
				"companyLogo":     seed.CompanyLogo,
				"affiliationDate": date,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, mapErr(err)
	}
	if res.UpsertedCount == 1 {
		seed.ID = id.Hex()
		seed.AffiliationDate = date
		seed.AssetsCount = 1
		seed.Status = store.AffiliationActive
		return true, nil
	}
	return false, nil
}

func (s *Affiliations) DecrementActive(ctx context.Context, employeeEmail string) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"employeeEmail": employeeEmail, "status": store.AffiliationActive, "assetsCount": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"assetsCount": -1}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (s *Affiliations) Deactivate(ctx context.Context, id string) (bool, error) {
	o, err := oid(id)
	if err != nil {
		return false, nil
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": o, "status": store.AffiliationActive},
		bson.M{"$set": bson.M{"status": store.AffiliationInactive, "assetsCount": 0}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}
