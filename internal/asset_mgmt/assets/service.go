package assets

import (
	"context"
	"errors"
	"log"
	"strings"

	"AssetVerse-backend/internal/platform/apierr"
	"AssetVerse-backend/internal/store"
)

type Service struct{ st *store.Store }

func NewService(st *store.Store) *Service { return &Service{st: st} }

// ===== read =====

func (s *Service) List(ctx context.Context, hrEmail string) ([]store.Asset, error) {
	return s.st.Assets.List(ctx, hrEmail)
}

func (s *Service) Get(ctx context.Context, id string) (*store.Asset, error) {
	if !store.ValidID(id) {
		return nil, apierr.ErrInvalid("invalid asset id")
	}
	a, err := s.st.Assets.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apierr.ErrNotFound("asset not found")
		}
		return nil, err
	}
	return a, nil
}

// ===== write =====

// Create adds an asset owned by the caller with every unit available.
func (s *Service) Create(ctx context.Context, email string, in CreateAssetRequest) (*CreateAssetResponse, error) {
	if in.HREmail != "" && !strings.EqualFold(in.HREmail, email) {
		return nil, apierr.ErrForbidden("hrEmail must match the signed-in user")
	}
	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return nil, apierr.ErrInvalid("productName is required")
	}
	typ, err := normalizeType(in.ProductType)
	if err != nil {
		return nil, err
	}
	if in.ProductQuantity == nil || *in.ProductQuantity < 0 {
		return nil, apierr.ErrInvalid("productQuantity must be >= 0")
	}

	company := in.CompanyName
	if company == "" {
		if hr, err := s.st.Users.GetByEmail(ctx, email); err == nil {
			company = hr.CompanyName
		}
	}

	a := &store.Asset{
		ProductName:       name,
		ProductType:       typ,
		ProductImage:      in.ProductImage,
		ProductQuantity:   *in.ProductQuantity,
		AvailableQuantity: *in.ProductQuantity,
		HREmail:           email,
		CompanyName:       company,
	}
	if err := s.st.Assets.Insert(ctx, a); err != nil {
		return nil, err
	}
	log.Printf("[INFO] asset %s (%s x%d) added by %s", a.ID, a.ProductName, a.ProductQuantity, email)
	return &CreateAssetResponse{Acknowledged: true, InsertedID: a.ID}, nil
}

// Update edits an asset the caller owns. A productQuantity change moves
// availableQuantity by the same delta; units already handed out stay out.
func (s *Service) Update(ctx context.Context, email, id string, in UpdateAssetRequest) (*MutationResponse, error) {
	cur, err := s.owned(ctx, email, id)
	if err != nil {
		return nil, err
	}

	p := store.AssetPatch{ProductImage: in.ProductImage}
	if in.ProductName != nil {
		name := strings.TrimSpace(*in.ProductName)
		if name == "" {
			return nil, apierr.ErrInvalid("productName cannot be empty")
		}
		p.ProductName = &name
	}
	if in.ProductType != nil {
		typ, err := normalizeType(*in.ProductType)
		if err != nil {
			return nil, err
		}
		p.ProductType = &typ
	}
	if in.ProductQuantity != nil {
		if *in.ProductQuantity < 0 {
			return nil, apierr.ErrInvalid("productQuantity must be >= 0")
		}
		p.QuantityDelta = *in.ProductQuantity - cur.ProductQuantity
	}

	if err := s.st.Assets.Update(ctx, id, p); err != nil {
		switch {
		case errors.Is(err, store.ErrGuard):
			return nil, apierr.ErrInvalid("quantity below units currently assigned")
		case errors.Is(err, store.ErrNotFound):
			return nil, apierr.ErrNotFound("asset not found")
		}
		return nil, err
	}
	return &MutationResponse{Acknowledged: true, ModifiedCount: 1}, nil
}

func (s *Service) Delete(ctx context.Context, email, id string) (*MutationResponse, error) {
	if _, err := s.owned(ctx, email, id); err != nil {
		return nil, err
	}
	if err := s.st.Assets.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apierr.ErrNotFound("asset not found")
		}
		return nil, err
	}
	log.Printf("[INFO] asset %s deleted by %s", id, email)
	return &MutationResponse{Acknowledged: true, ModifiedCount: 1}, nil
}

// ===== helpers =====

func (s *Service) owned(ctx context.Context, email, id string) (*store.Asset, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(a.HREmail, email) {
		return nil, apierr.ErrForbidden("only the owning HR can change this asset")
	}
	return a, nil
}

func normalizeType(t string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "returnable":
		return store.TypeReturnable, nil
	case "consumable", "non-returnable":
		return store.TypeConsumable, nil
	}
	return "", apierr.ErrInvalid("productType must be Returnable or Consumable")
}
