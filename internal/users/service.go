package users

import (
	"context"
	"errors"
	"log"
	"strings"

	"AssetVerse-backend/internal/platform/apierr"
	"AssetVerse-backend/internal/store"
)

type Service struct{ users store.Users }

func NewService(st *store.Store) *Service { return &Service{users: st.Users} }

// Create inserts the user unless the email is taken. The unique index decides,
// so two first sign-ins racing on one email yield one insert and one Conflict.
func (s *Service) Create(ctx context.Context, in CreateUserRequest) (*InsertResult, error) {
	email := normalizeEmail(in.Email)
	role := strings.ToLower(strings.TrimSpace(in.Role))
	switch role {
	case "":
		role = store.RoleEmployee
	case store.RoleHR, store.RoleEmployee:
	default:
		return nil, apierr.ErrInvalid("role must be hr or employee")
	}

	u := &store.User{
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		CompanyName:  in.CompanyName,
		CompanyLogo:  in.CompanyLogo,
		DateOfBirth:  in.DateOfBirth,
		ProfileImage: in.ProfileImage,
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apierr.ErrConflict("user already exists")
		}
		return nil, err
	}
	log.Printf("[INFO] user %s created (%s)", email, role)
	return &InsertResult{Acknowledged: true, InsertedID: u.ID}, nil
}

func (s *Service) Get(ctx context.Context, email string) (*store.User, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apierr.ErrNotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, email string, in UpdateProfileRequest) (*UpdateResult, error) {
	n, err := s.users.UpdateProfile(ctx, normalizeEmail(email), store.ProfilePatch{
		Name:        in.Name,
		CompanyName: in.CompanyName,
		CompanyLogo: in.CompanyLogo,
		DateOfBirth: in.DateOfBirth,
	})
	if err != nil {
		return nil, err
	}
	return s.updated(ctx, email, n)
}

func (s *Service) UpdateProfileImage(ctx context.Context, email, image string) (*UpdateResult, error) {
	n, err := s.users.UpdateProfileImage(ctx, normalizeEmail(email), image)
	if err != nil {
		return nil, err
	}
	return s.updated(ctx, email, n)
}

// updated turns a zero match into NotFound. An empty patch matches nothing,
// so the user is looked up before reporting it missing.
func (s *Service) updated(ctx context.Context, email string, n int64) (*UpdateResult, error) {
	if n == 0 {
		if _, err := s.Get(ctx, email); err != nil {
			return nil, err
		}
	}
	return &UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func normalizeEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }
