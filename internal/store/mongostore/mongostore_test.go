package mongostore_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"AssetVerse-backend/internal/platform/config"
	"AssetVerse-backend/internal/platform/mongodb"
	"AssetVerse-backend/internal/store"
	"AssetVerse-backend/internal/store/mongostore"
)

// newStore connects to MONGODB_TEST_URI and uses a throwaway database.
func newStore(t *testing.T) *store.Store {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}
	name := fmt.Sprintf("assetverse_test_%d", time.Now().UnixNano())
	client, db, err := mongodb.Connect(config.MongoConfig{URI: uri, Database: name})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		t.Fatal(err)
	}
	st := mongostore.New(client, db)
	t.Cleanup(func() {
		_ = db.Drop(ctx)
		_ = st.Close(ctx)
	})
	return st
}

func TestUsersUniqueEmail(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	if err := st.Users.Create(ctx, &store.User{Email: "hr@acme.io", Role: store.RoleHR}); err != nil {
		t.Fatal(err)
	}
	if err := st.Users.Create(ctx, &store.User{Email: "hr@acme.io"}); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}
}

func TestAssetGuards(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	a := &store.Asset{ProductName: "Chair", ProductType: store.TypeReturnable, ProductQuantity: 1, AvailableQuantity: 1, HREmail: "hr@acme.io"}
	if err := st.Assets.Insert(ctx, a); err != nil {
		t.Fatal(err)
	}
	if ok, _ := st.Assets.IncrementAvailable(ctx, a.ID); ok {
		t.Fatal("increment above productQuantity succeeded")
	}
	if ok, _ := st.Assets.DecrementAvailable(ctx, a.ID); !ok {
		t.Fatal("first decrement failed")
	}
	if ok, _ := st.Assets.DecrementAvailable(ctx, a.ID); ok {
		t.Fatal("decrement below zero succeeded")
	}
	if err := st.Assets.Update(ctx, a.ID, store.AssetPatch{QuantityDelta: -1}); !errors.Is(err, store.ErrGuard) {
		t.Fatalf("err = %v, want ErrGuard", err)
	}
}

func TestAffiliationUpsert(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	seed := func() *store.Affiliation {
		return &store.Affiliation{EmployeeEmail: "emp@acme.io", HREmail: "hr@acme.io"}
	}

	if created, err := st.Affiliations.IncrementOrCreateActive(ctx, seed()); err != nil || !created {
		t.Fatalf("first = %v, %v", created, err)
	}
	if created, err := st.Affiliations.IncrementOrCreateActive(ctx, seed()); err != nil || created {
		t.Fatalf("second = %v, %v", created, err)
	}
	act, err := st.Affiliations.GetActive(ctx, "emp@acme.io")
	if err != nil || act.AssetsCount != 2 {
		t.Fatalf("active = %+v, %v", act, err)
	}
	if ok, _ := st.Affiliations.Deactivate(ctx, act.ID); !ok {
		t.Fatal("deactivate failed")
	}
	if ok, _ := st.Affiliations.DecrementActive(ctx, "emp@acme.io"); ok {
		t.Fatal("decrement on inactive affiliation succeeded")
	}
}
