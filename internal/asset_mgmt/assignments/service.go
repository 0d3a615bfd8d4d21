package assignments

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

// ListMine returns the employee's assignments, newest first.
func (s *Service) ListMine(ctx context.Context, email string) ([]store.AssignedAsset, error) {
	return s.st.Assignments.ListByEmployee(ctx, email)
}

func (s *Service) Return(ctx context.Context, email, id string) (*lifecycle.ReturnResult, error) {
	return s.lc.Return(ctx, email, id)
}
