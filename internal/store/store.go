// Package store defines the entities shared by every backend and one
// repository interface per collection. Implementations live in sqlstore and
// mongostore.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate key")
	ErrGuard     = errors.New("store: guard not satisfied")
)

// NewID returns a 24-hex ObjectID string. All backends use the same id shape.
func NewID() string { return primitive.NewObjectID().Hex() }

// ValidID reports whether s has the 24-hex ObjectID shape.
func ValidID(s string) bool { return primitive.IsValidObjectID(s) }

type Users interface {
	// Create inserts u unless a user with the same email exists (ErrDuplicate).
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, email string, p ProfilePatch) (int64, error)
	UpdateProfileImage(ctx context.Context, email, image string) (int64, error)
}

type Packages interface {
	List(ctx context.Context) ([]Package, error)
	Insert(ctx context.Context, p *Package) error
}

type Assets interface {
	Insert(ctx context.Context, a *Asset) error
	Get(ctx context.Context, id string) (*Asset, error)
	// List returns assets owned by hrEmail, or all assets when hrEmail is empty.
	List(ctx context.Context, hrEmail string) ([]Asset, error)
	Update(ctx context.Context, id string, p AssetPatch) error
	Delete(ctx context.Context, id string) error
	// DecrementAvailable takes one unit when availableQuantity > 0. It reports
	// false when the guard matched nothing.
	DecrementAvailable(ctx context.Context, id string) (bool, error)
	// IncrementAvailable puts one unit back while availableQuantity < productQuantity.
	IncrementAvailable(ctx context.Context, id string) (bool, error)
}

type Requests interface {
	Insert(ctx context.Context, r *AssetRequest) error
	Get(ctx context.Context, id string) (*AssetRequest, error)
	// List returns requests where email is the requester or the HR owner, or
	// every request when email is empty.
	List(ctx context.Context, email string) ([]AssetRequest, error)
	// Transition moves a request from one status to another and stamps the
	// processing fields. It reports false when the request was not in from.
	Transition(ctx context.Context, id, from, to string, at *time.Time, by string) (bool, error)
}

type Assignments interface {
	Insert(ctx context.Context, a *AssignedAsset) error
	Get(ctx context.Context, id string) (*AssignedAsset, error)
	// ListByEmployee is sorted by assignmentDate, newest first.
	ListByEmployee(ctx context.Context, email string) ([]AssignedAsset, error)
	ListOutstanding(ctx context.Context, email string) ([]AssignedAsset, error)
	// MarkReturned flips assigned to returned. It reports false when the
	// assignment was not assigned.
	MarkReturned(ctx context.Context, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, id string) error
}

type Affiliations interface {
	Get(ctx context.Context, id string) (*Affiliation, error)
	GetActive(ctx context.Context, employeeEmail string) (*Affiliation, error)
	// List returns affiliations granted by hrEmail, or all when hrEmail is empty.
	List(ctx context.Context, hrEmail string) ([]Affiliation, error)
	// IncrementOrCreateActive bumps assetsCount on the employee's active
	// affiliation, or inserts seed with assetsCount=1 when none exists.
	IncrementOrCreateActive(ctx context.Context, seed *Affiliation) (created bool, err error)
	// DecrementActive lowers assetsCount by one on the active affiliation,
	// never below zero. It reports false when nothing was decremented.
	DecrementActive(ctx context.Context, employeeEmail string) (bool, error)
	// Deactivate sets status=inactive and assetsCount=0 on an active
	// affiliation. It reports false when the affiliation was not active.
	Deactivate(ctx context.Context, id string) (bool, error)
}

// Store bundles the repositories of one backend.
type Store struct {
	Users        Users
	Packages     Packages
	Assets       Assets
	Requests     Requests
	Assignments  Assignments
	Affiliations Affiliations

	// Close releases the backend connection.
	Close func(ctx context.Context) error
}
