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

type assignmentDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	AssetID        string             `bson:"assetId"`
	RequestID      string             `bson:"requestId,omitempty"`
	AssetName      string             `bson:"assetName"`
	AssetType      string             `bson:"assetType"`
	AssetImage     string             `bson:"assetImage"`
	EmployeeEmail  string             `bson:"employeeEmail"`
	EmployeeName   string             `bson:"employeeName"`
	HREmail        string             `bson:"hrEmail"`
	CompanyName    string             `bson:"companyName"`
	AssignmentDate time.Time          `bson:"assignmentDate"`
	ApprovalDate   time.Time          `bson:"approvalDate"`
	ReturnDate     *time.Time         `bson:"returnDate"`
	Status         string             `bson:"status"`
}

func (d assignmentDoc) toModel() store.AssignedAsset {
	return store.AssignedAsset{
		ID:             d.ID.Hex(),
		AssetID:        d.AssetID,
		RequestID:      d.RequestID,
		AssetName:      d.AssetName,
		AssetType:      d.AssetType,
		AssetImage:     d.AssetImage,
		EmployeeEmail:  d.EmployeeEmail,
		EmployeeName:   d.EmployeeName,
		HREmail:        d.HREmail,
		CompanyName:    d.CompanyName,
		AssignmentDate: d.AssignmentDate,
		ApprovalDate:   d.ApprovalDate,
		ReturnDate:     d.ReturnDate,
		Status:         d.Status,
	}
}

type Assignments struct{ c *mongo.Collection }

func (s *Assignments) Insert(ctx context.Context, a *store.AssignedAsset) error {
	id, err := newOID(a.ID)
	if err != nil {
		return err
	}
	if a.Status == "" {
		a.Status = store.AssignmentAssigned
	}
	d := assignmentDoc{
		ID: id, AssetID: a.AssetID, RequestID: a.RequestID, AssetName: a.AssetName, AssetType: a.AssetType,
		AssetImage: a.AssetImage, EmployeeEmail: a.EmployeeEmail, EmployeeName: a.EmployeeName,
		HREmail: a.HREmail, CompanyName: a.CompanyName, AssignmentDate: a.AssignmentDate,
		ApprovalDate: a.ApprovalDate, ReturnDate: a.ReturnDate, Status: a.Status,
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return mapErr(err)
	}
	a.ID = id.Hex()
	return nil
}

func (s *Assignments) Get(ctx context.Context, id string) (*store.AssignedAsset, error) {
	o, err := oid(id)
	if err != nil {
		return nil, err
	}
	var d assignmentDoc
	if err := s.c.FindOne(ctx, bson.M{"_id": o}).Decode(&d); err != nil {
		return nil, mapErr(err)
	}
	a := d.toModel()
	return &a, nil
}

func (s *Assignments) ListByEmployee(ctx context.Context, email string) ([]store.AssignedAsset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "assignmentDate", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"employeeEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur, assignmentDoc.toModel)
}

func (s *Assignments) ListOutstanding(ctx context.Context, email string) ([]store.AssignedAsset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "assignmentDate", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"employeeEmail": email, "status": store.AssignmentAssigned}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur, assignmentDoc.toModel)
}

func (s *Assignments) MarkReturned(ctx context.Context, id string, at time.Time) (bool, error) {
	o, err := oid(id)
	if err != nil {
		return false, nil
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": o, "status": store.AssignmentAssigned},
		bson.M{"$set": bson.M{"status": store.AssignmentReturned, "returnDate": at}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (s *Assignments) Delete(ctx context.Context, id string) error {
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
