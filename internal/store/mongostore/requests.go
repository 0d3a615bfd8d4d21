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

type requestDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	AssetID        string             `bson:"assetId"`
	AssetName      string             `bson:"assetName"`
	AssetType      string             `bson:"assetType"`
	AssetImage     string             `bson:"assetImage"`
	RequesterEmail string             `bson:"requesterEmail"`
	EmployeeName   string             `bson:"employeeName"`
	HREmail        string             `bson:"hrEmail"`
	CompanyName    string             `bson:"companyName"`
	RequestDate    time.Time          `bson:"requestDate"`
	ApprovalDate   *time.Time         `bson:"approvalDate"`
	RequestStatus  string             `bson:"requestStatus"`
	Note           string             `bson:"note"`
	ProcessedBy    string             `bson:"processedBy"`
}

func (d requestDoc) toModel() store.AssetRequest {
	return store.AssetRequest{
		ID:             d.ID.Hex(),
		AssetID:        d.AssetID,
		AssetName:      d.AssetName,
		AssetType:      d.AssetType,
		AssetImage:     d.AssetImage,
		RequesterEmail: d.RequesterEmail,
		EmployeeName:   d.EmployeeName,
		HREmail:        d.HREmail,
		CompanyName:    d.CompanyName,
		RequestDate:    d.RequestDate,
		ApprovalDate:   d.ApprovalDate,
		RequestStatus:  d.RequestStatus,
		Note:           d.Note,
		ProcessedBy:    d.ProcessedBy,
	}
}

type Requests struct{ c *mongo.Collection }

func (s *Requests) Insert(ctx context.Context, r *store.AssetRequest) error {
	id, err := newOID(r.ID)
	if err != nil {
		return err
	}
	if r.RequestDate.IsZero() {
		r.RequestDate = time.Now().UTC()
	}
	if r.RequestStatus == "" {
		r.RequestStatus = store.RequestPending
	}
	d := requestDoc{
		ID: id, AssetID: r.AssetID, AssetName: r.AssetName, AssetType: r.AssetType, AssetImage: r.AssetImage,
		RequesterEmail: r.RequesterEmail, EmployeeName: r.EmployeeName, HREmail: r.HREmail,
		CompanyName: r.CompanyName, RequestDate: r.RequestDate, ApprovalDate: r.ApprovalDate,
		RequestStatus: r.RequestStatus, Note: r.Note, ProcessedBy: r.ProcessedBy,
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return mapErr(err)
	}
	r.ID = id.Hex()
	return nil
}

func (s *Requests) Get(ctx context.Context, id string) (*store.AssetRequest, error) {
	o, err := oid(id)
	if err != nil {
		return nil, err
	}
	var d requestDoc
	if err := s.c.FindOne(ctx, bson.M{"_id": o}).Decode(&d); err != nil {
		return nil, mapErr(err)
	}
	r := d.toModel()
	return &r, nil
}

func (s *Requests) List(ctx context.Context, email string) ([]store.AssetRequest, error) {
	filter := bson.M{}
	if email != "" {
		filter["$or"] = bson.A{bson.M{"requesterEmail": email}, bson.M{"hrEmail": email}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "requestDate", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur, requestDoc.toModel)
}

func (s *Requests) Transition(ctx context.Context, id, from, to string, at *time.Time, by string) (bool, error) {
	o, err := oid(id)
	if err != nil {
		return false, nil
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": o, "requestStatus": from},
		bson.M{"$set": bson.M{"requestStatus": to, "approvalDate": at, "processedBy": by}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}
