package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"AssetVerse-backend/internal/platform/auth"
	"AssetVerse-backend/internal/platform/cache"
	"AssetVerse-backend/internal/platform/config"
	"AssetVerse-backend/internal/platform/db"
	"AssetVerse-backend/internal/platform/mongodb"
	"AssetVerse-backend/internal/server"
	"AssetVerse-backend/internal/store"
	"AssetVerse-backend/internal/store/mongostore"
	"AssetVerse-backend/internal/store/sqlstore"
)

func main() {
	path := os.Getenv("ASSETVERSE_CONFIG")
	if path == "" {
		path = config.DefaultPath
	}
	flag.StringVar(&path, "config", path, "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("[ERROR] config: %v", err)
	}
	log.Printf("[INFO] mode:%s store:%s", cfg.Mode, cfg.StoreDriver)

	ctx := context.Background()

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("[ERROR] store: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := st.Close(ctx); err != nil {
			log.Printf("[WARN] close store: %v", err)
		}
	}()

	// redis is optional; without it /packages reads the store every time
	var c *cache.Cache
	if cfg.Redis.URL != "" {
		c, err = cache.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			log.Printf("[WARN] redis unavailable, running without cache: %v", err)
			c = nil
		} else {
			log.Printf("[INFO] connected to redis")
			defer c.Close()
		}
	}

	gin.SetMode(gin.ReleaseMode)
	r, err := server.NewRouter(ctx, server.Deps{
		Config: cfg,
		Store:  st,
		Auth:   auth.NewService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL),
		Cache:  c,
	})
	if err != nil {
		log.Fatalf("[ERROR] router: %v", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		var err error
		if cfg.TLS() {
			log.Printf("[INFO] listening on https://0.0.0.0%s", srv.Addr)
			err = srv.ListenAndServeTLS(cfg.Certificate.Cert, cfg.Certificate.Key)
		} else {
			log.Printf("[INFO] listening on http://0.0.0.0%s", srv.Addr)
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	switch cfg.StoreDriver {
	case "mongo":
		client, database, err := mongodb.Connect(cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, database); err != nil {
			_ = mongodb.Disconnect(ctx, client)
			return nil, err
		}
		log.Printf("[INFO] connected to mongo: %s", cfg.Mongo.Database)
		return mongostore.New(client, database), nil

	case db.DriverMySQL, db.DriverSQLite:
		conn, err := openSQL(cfg)
		if err != nil {
			return nil, err
		}
		if err := db.Bootstrap(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, err
		}
		log.Printf("[INFO] connected to %s", cfg.StoreDriver)
		return sqlstore.New(conn), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func openSQL(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.StoreDriver == db.DriverSQLite {
		return db.OpenSQLite(cfg.SQLitePath)
	}
	return db.ConnectMySQL(cfg.DB)
}
