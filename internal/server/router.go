package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"AssetVerse-backend/internal/asset_mgmt/assets"
	"AssetVerse-backend/internal/asset_mgmt/assignments"
	"AssetVerse-backend/internal/asset_mgmt/employees"
	"AssetVerse-backend/internal/asset_mgmt/lifecycle"
	"AssetVerse-backend/internal/asset_mgmt/requests"
	"AssetVerse-backend/internal/packages"
	"AssetVerse-backend/internal/platform/apidocs"
	"AssetVerse-backend/internal/platform/auth"
	"AssetVerse-backend/internal/platform/cache"
	"AssetVerse-backend/internal/platform/config"
	"AssetVerse-backend/internal/platform/httpmw"
	"AssetVerse-backend/internal/store"
	"AssetVerse-backend/internal/users"
)

type Deps struct {
	Config *config.Config
	Store  *store.Store
	Auth   *auth.Service
	Cache  *cache.Cache // optional
}

var devOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// NewRouter wires every feature package onto one engine and seeds the
// default packages.
func NewRouter(ctx context.Context, d Deps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), httpmw.RequestID(), httpmw.Metrics())
	_ = r.SetTrustedProxies(nil)

	origins := d.Config.AllowOrigins
	if len(origins) == 0 && d.Config.Mode == config.ModeDev {
		origins = devOrigins
	}
	if len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", httpmw.HeaderRequestID},
			ExposeHeaders:    []string{"Content-Length", httpmw.HeaderRequestID},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", httpmw.MetricsHandler())

	st := d.Store
	pkgSvc := packages.NewService(st, d.Cache, d.Config.Redis.PackagesTTL)
	seedCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pkgSvc.EnsureDefaults(seedCtx); err != nil {
		return nil, err
	}

	userSvc := users.NewService(st)
	lc := lifecycle.NewService(st)

	// public
	apidocs.RegisterRoutes(r)
	users.RegisterPublicRoutes(r, userSvc)
	packages.RegisterRoutes(r, pkgSvc)
	if d.Config.Mode == config.ModeDev {
		log.Printf("[WARN] dev mode: POST /auth/token issues tokens for any email")
		auth.RegisterDevRoutes(r, d.Auth)
	}

	// bearer token required
	api := r.Group("", auth.RequireAuth(d.Auth))
	users.RegisterRoutes(api, userSvc)
	assets.RegisterRoutes(api, assets.NewService(st))
	requests.RegisterRoutes(api, requests.NewService(st, lc))
	assignments.RegisterRoutes(api, assignments.NewService(st, lc))
	employees.RegisterRoutes(api, employees.NewService(st, lc))

	return r, nil
}
