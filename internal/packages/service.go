package packages

import (
	"context"
	"errors"
	"log"
	"time"

	"AssetVerse-backend/internal/platform/cache"
	"AssetVerse-backend/internal/store"
)

const cacheKey = "packages"

// Defaults are written when the collection is empty.
var Defaults = []store.Package{
	{Name: "Basic", EmployeeLimit: 5, Price: 5, Features: []string{"Asset Tracking", "Employee Management", "Basic Support"}},
	{Name: "Standard", EmployeeLimit: 10, Price: 8, Features: []string{"All Basic features", "Advanced Analytics", "Priority Support"}},
	{Name: "Premium", EmployeeLimit: 20, Price: 15, Features: []string{"All Standard features", "Custom Branding", "24/7 Support"}},
}

type Service struct {
	packages store.Packages
	cache    *cache.Cache
	ttl      time.Duration
}

// NewService accepts a nil cache.
func NewService(st *store.Store, c *cache.Cache, ttl time.Duration) *Service {
	return &Service{packages: st.Packages, cache: c, ttl: ttl}
}

// EnsureDefaults seeds the default packages once.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	existing, err := s.packages.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, p := range Defaults {
		if err := s.packages.Insert(ctx, &p); err != nil {
			return err
		}
	}
	log.Printf("[INFO] seeded %d default packages", len(Defaults))
	return s.cache.Delete(ctx, cacheKey)
}

// List reads through the cache. Cache failures fall back to the store.
func (s *Service) List(ctx context.Context) ([]store.Package, error) {
	var out []store.Package
	err := s.cache.GetJSON(ctx, cacheKey, &out)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Printf("[WARN] packages cache read: %v", err)
	}

	out, err = s.packages.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, cacheKey, out, s.ttl); err != nil {
		log.Printf("[WARN] packages cache write: %v", err)
	}
	return out, nil
}
