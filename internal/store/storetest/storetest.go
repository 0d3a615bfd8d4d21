// Package storetest opens throwaway stores for tests.
package storetest

import (
	"context"
	"testing"

	"AssetVerse-backend/internal/platform/db"
	"AssetVerse-backend/internal/store"
	"AssetVerse-backend/internal/store/sqlstore"
)

// NewSQLite returns a store over a private in-memory SQLite database with the
// schema applied. It is closed when the test ends.
func NewSQLite(t testing.TB) *store.Store {
	t.Helper()
	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Bootstrap(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatal(err)
	}
	st := sqlstore.New(conn)
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	return st
}
