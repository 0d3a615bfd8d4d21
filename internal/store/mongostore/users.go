package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"AssetVerse-backend/internal/store"
)

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Email        string             `bson:"email"`
	Name         string             `bson:"name"`
	CompanyName  string             `bson:"companyName,omitempty"`
	CompanyLogo  string             `bson:"companyLogo,omitempty"`
	DateOfBirth  string             `bson:"dateOfBirth,omitempty"`
	ProfileImage string             `bson:"profileImage,omitempty"`
	Role         string             `bson:"role"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d userDoc) toModel() store.User {
	return store.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		Name:         d.Name,
		CompanyName:  d.CompanyName,
		CompanyLogo:  d.CompanyLogo,
		DateOfBirth:  d.DateOfBirth,
		ProfileImage: d.ProfileImage,
		Role:         d.Role,
		CreatedAt:    d.CreatedAt,
	}
}

type Users struct{ c *mongo.Collection }

// Create relies on the unique email index; a second insert fails with ErrDuplicate.
func (s *Users) Create(ctx context.Context, u *store.User) error {
	id, err := newOID(u.ID)
	if err != nil {
		return err
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	d := userDoc{
		ID: id, Email: u.Email, Name: u.Name, CompanyName: u.CompanyName, CompanyLogo: u.CompanyLogo,
		DateOfBirth: u.DateOfBirth, ProfileImage: u.ProfileImage, Role: u.Role, CreatedAt: u.CreatedAt,
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return mapErr(err)
	}
	u.ID = id.Hex()
	return nil
}

func (s *Users) GetByEmail(ctx context.Context, email string) (*store.User, error) {
	var d userDoc
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&d); err != nil {
		return nil, mapErr(err)
	}
	u := d.toModel()
	return &u, nil
}

func (s *Users) UpdateProfile(ctx context.Context, email string, p store.ProfilePatch) (int64, error) {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.CompanyName != nil {
		set["companyName"] = *p.CompanyName
	}
	if p.CompanyLogo != nil {
		set["companyLogo"] = *p.CompanyLogo
	}
	if p.DateOfBirth != nil {
		set["dateOfBirth"] = *p.DateOfBirth
	}
	if len(set) == 0 {
		return 0, nil
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (s *Users) UpdateProfileImage(ctx context.Context, email, image string) (int64, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"profileImage": image}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
