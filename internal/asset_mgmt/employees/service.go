package employees

import (
	"context"

	"AssetVerse-backend/internal/asset_mgmt/lifecycle"
	"AssetVerse-backend/internal/store"
)

type Service struct {
	st *store.Store
	lc *lifecycle.Service
}

func NewService(st *store.Store, lc *lifecycle.Service) *Service {
	return &Service{st: st, lc: lc}
}

// List returns the affiliations granted by hrEmail, active and inactive.
func (s *Service) List(ctx context.Context, hrEmail string) ([]store.Affiliation, error) {
	return s.st.Affiliations.List(ctx, hrEmail)
}

func (s *Service) Remove(ctx context.Context, email, id string) (*lifecycle.RemoveResult, error) {
	return s.lc.RemoveEmployee(ctx, email, id)
}
