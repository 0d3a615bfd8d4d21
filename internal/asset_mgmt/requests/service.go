package requests

import (
	"context"
	"errors"
	"strings"

	"AssetVerse-backend/internal/asset_mgmt/lifecycle"
	"AssetVerse-backend/internal/platform/apierr"
	"AssetVerse-backend/internal/store"
)

type Service struct {
	st *store.Store
	lc *lifecycle.Service
}

func NewService(st *store.Store, lc *lifecycle.Service) *Service {
	return &Service{st: st, lc: lc}
}

// List returns requests where email is the requester or the HR owner.
func (s *Service) List(ctx context.Context, email string) ([]store.AssetRequest, error) {
	return s.st.Requests.List(ctx, email)
}

// Get is visible to the requester and the HR owner only.
func (s *Service) Get(ctx context.Context, email, id string) (*store.AssetRequest, error) {
	if !store.ValidID(id) {
		return nil, apierr.ErrInvalid("invalid request id")
	}
	r, err := s.st.Requests.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apierr.ErrNotFound("request not found")
		}
		return nil, err
	}
	if !strings.EqualFold(r.RequesterEmail, email) && !strings.EqualFold(r.HREmail, email) {
		return nil, apierr.ErrForbidden("forbidden access")
	}
	return r, nil
}

func (s *Service) Submit(ctx context.Context, email string, in lifecycle.SubmitInput) (*store.AssetRequest, error) {
	return s.lc.Submit(ctx, email, in)
}

func (s *Service) Approve(ctx context.Context, email, id string) (*lifecycle.ApproveResult, error) {
	return s.lc.Approve(ctx, email, id)
}

func (s *Service) Reject(ctx context.Context, email, id string) (*lifecycle.RejectResult, error) {
	return s.lc.Reject(ctx, email, id)
}
