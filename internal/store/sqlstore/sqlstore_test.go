package sqlstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"AssetVerse-backend/internal/store"
	"AssetVerse-backend/internal/store/storetest"
)

func TestUsersCreateIsInsertIfAbsent(t *testing.T) {
	st := storetest.NewSQLite(t)
	ctx := context.Background()

	u := &store.User{Email: "hr@acme.io", Name: "Hana", Role: store.RoleHR}
	if err := st.Users.Create(ctx, u); err != nil {
		t.Fatal(err)
	}
	if !store.ValidID(u.ID) {
		t.Fatalf("id %q is not an ObjectID", u.ID)
	}
	err := st.Users.Create(ctx, &store.User{Email: "hr@acme.io", Name: "Other"})
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("second create err = %v, want ErrDuplicate", err)
	}

	got, err := st.Users.GetByEmail(ctx, "hr@acme.io")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Hana" || got.Role != store.RoleHR {
		t.Fatalf("unexpected user %+v", got)
	}

	name := "Hana K."
	n, err := st.Users.UpdateProfile(ctx, "hr@acme.io", store.ProfilePatch{Name: &name})
	if err != nil || n != 1 {
		t.Fatalf("UpdateProfile = %d, %v", n, err)
	}
	n, err = st.Users.UpdateProfileImage(ctx, "nobody@acme.io", "x.png")
	if err != nil || n != 0 {
		t.Fatalf("UpdateProfileImage(missing) = %d, %v", n, err)
	}
	if _, err := st.Users.GetByEmail(ctx, "nobody@acme.io"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPackagesRoundTripFeatures(t *testing.T) {
	st := storetest.NewSQLite(t)
	ctx := context.Background()

	if err := st.Packages.Insert(ctx, &store.Package{Name: "Standard", EmployeeLimit: 10, Price: 8, Features: []string{"a", "b"}}); err != nil {
		t.Fatal(err)
	}
	if err := st.Packages.Insert(ctx, &store.Package{Name: "Basic", EmployeeLimit: 5, Price: 5}); err != nil {
		t.Fatal(err)
	}
	ps, err := st.Packages.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 2 || ps[0].Name != "Basic" || len(ps[1].Features) != 2 {
		t.Fatalf("unexpected packages %+v", ps)
	}
}

func TestAssetCountersAreGuarded(t *testing.T) {
	st := storetest.NewSQLite(t)
	ctx := context.Background()

	a := &store.Asset{ProductName: "Laptop", ProductType: store.TypeReturnable, ProductQuantity: 1, AvailableQuantity: 1, HREmail: "hr@acme.io"}
	if err := st.Assets.Insert(ctx, a); err != nil {
		t.Fatal(err)
	}

	ok, err := st.Assets.IncrementAvailable(ctx, a.ID)
	if err != nil || ok {
		t.Fatalf("increment at capacity = %v, %v; want false", ok, err)
	}
	ok, err = st.Assets.DecrementAvailable(ctx, a.ID)
	if err != nil || !ok {
		t.Fatalf("first decrement = %v, %v", ok, err)
	}
	ok, err = st.Assets.DecrementAvailable(ctx, a.ID)
	if err != nil || ok {
		t.Fatalf("decrement at zero = %v, %v; want false", ok, err)
	}

	got, _ := st.Assets.Get(ctx, a.ID)
	if got.AvailableQuantity != 0 || got.ProductQuantity != 1 {
		t.Fatalf("counters = %d/%d", got.AvailableQuantity, got.ProductQuantity)
	}

	// the only unit is out, so shrinking would drive availableQuantity negative
	if err := st.Assets.Update(ctx, a.ID, store.AssetPatch{QuantityDelta: -1}); !errors.Is(err, store.ErrGuard) {
		t.Fatalf("shrink err = %v, want ErrGuard", err)
	}
	name := "Laptop Pro"
	if err := st.Assets.Update(ctx, a.ID, store.AssetPatch{ProductName: &name, QuantityDelta: 3}); err != nil {
		t.Fatal(err)
	}
	got, _ = st.Assets.Get(ctx, a.ID)
	if got.ProductName != "Laptop Pro" || got.ProductQuantity != 4 || got.AvailableQuantity != 3 {
		t.Fatalf("after update %+v", got)
	}

	if err := st.Assets.Update(ctx, store.NewID(), store.AssetPatch{}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("update missing err = %v", err)
	}
	if err := st.Assets.Delete(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if err := st.Assets.Delete(ctx, a.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestRequestTransitionHappensOnce(t *testing.T) {
	st := storetest.NewSQLite(t)
	ctx := context.Background()

	r := &store.AssetRequest{AssetID: store.NewID(), RequesterEmail: "emp@acme.io", HREmail: "hr@acme.io"}
	if err := st.Requests.Insert(ctx, r); err != nil {
		t.Fatal(err)
	}
	now := time.Now().UTC().Truncate(time.Second)
	ok, err := st.Requests.Transition(ctx, r.ID, store.RequestPending, store.RequestApproved, &now, "hr@acme.io")
	if err != nil || !ok {
		t.Fatalf("first transition = %v, %v", ok, err)
	}
	ok, err = st.Requests.Transition(ctx, r.ID, store.RequestPending, store.RequestRejected, &now, "hr@acme.io")
	if err != nil || ok {
		t.Fatalf("second transition = %v, %v; want false", ok, err)
	}

	got, err := st.Requests.Get(ctx, r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.RequestStatus != store.RequestApproved || got.ApprovalDate == nil || !got.ApprovalDate.Equal(now) || got.ProcessedBy != "hr@acme.io" {
		t.Fatalf("unexpected request %+v", got)
	}

	for _, email := range []string{"emp@acme.io", "hr@acme.io"} {
		list, err := st.Requests.List(ctx, email)
		if err != nil || len(list) != 1 {
			t.Fatalf("List(%s) = %d, %v", email, len(list), err)
		}
	}
	list, _ := st.Requests.List(ctx, "stranger@acme.io")
	if len(list) != 0 {
		t.Fatalf("stranger sees %d requests", len(list))
	}
}

func TestAssignmentsOrderAndReturn(t *testing.T) {
	st := storetest.NewSQLite(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	older := &store.AssignedAsset{AssetID: store.NewID(), EmployeeEmail: "emp@acme.io", HREmail: "hr@acme.io", AssignmentDate: base, ApprovalDate: base}
	newer := &store.AssignedAsset{AssetID: store.NewID(), EmployeeEmail: "emp@acme.io", HREmail: "hr@acme.io", AssignmentDate: base.Add(time.Hour), ApprovalDate: base}
	for _, a := range []*store.AssignedAsset{older, newer} {
		if err := st.Assignments.Insert(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	list, err := st.Assignments.ListByEmployee(ctx, "emp@acme.io")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != newer.ID {
		t.Fatalf("want newest first, got %+v", list)
	}

	ok, err := st.Assignments.MarkReturned(ctx, older.ID, base.Add(2*time.Hour))
	if err != nil || !ok {
		t.Fatalf("MarkReturned = %v, %v", ok, err)
	}
	ok, _ = st.Assignments.MarkReturned(ctx, older.ID, base.Add(3*time.Hour))
	if ok {
		t.Fatal("second MarkReturned succeeded")
	}

	out, _ := st.Assignments.ListOutstanding(ctx, "emp@acme.io")
	if len(out) != 1 || out[0].ID != newer.ID {
		t.Fatalf("outstanding = %+v", out)
	}
	got, _ := st.Assignments.Get(ctx, older.ID)
	if got.Status != store.AssignmentReturned || got.ReturnDate == nil {
		t.Fatalf("returned assignment %+v", got)
	}
}

func TestAffiliationActiveCounter(t *testing.T) {
	st := storetest.NewSQLite(t)
	ctx := context.Background()
	seed := func() *store.Affiliation {
		return &store.Affiliation{EmployeeEmail: "emp@acme.io", HREmail: "hr@acme.io", CompanyName: "Acme"}
	}

	created, err := st.Affiliations.IncrementOrCreateActive(ctx, seed())
	if err != nil || !created {
		t.Fatalf("first = %v, %v", created, err)
	}
	created, err = st.Affiliations.IncrementOrCreateActive(ctx, seed())
	if err != nil || created {
		t.Fatalf("second = %v, %v", created, err)
	}
	act, err := st.Affiliations.GetActive(ctx, "emp@acme.io")
	if err != nil || act.AssetsCount != 2 {
		t.Fatalf("active = %+v, %v", act, err)
	}

	for i := 0; i < 3; i++ {
		_, _ = st.Affiliations.DecrementActive(ctx, "emp@acme.io")
	}
	act, _ = st.Affiliations.GetActive(ctx, "emp@acme.io")
	if act.AssetsCount != 0 {
		t.Fatalf("count went to %d, want clamp at 0", act.AssetsCount)
	}

	ok, err := st.Affiliations.Deactivate(ctx, act.ID)
	if err != nil || !ok {
		t.Fatalf("Deactivate = %v, %v", ok, err)
	}
	ok, _ = st.Affiliations.Deactivate(ctx, act.ID)
	if ok {
		t.Fatal("second Deactivate succeeded")
	}
	if _, err := st.Affiliations.GetActive(ctx, "emp@acme.io"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("GetActive after deactivate err = %v", err)
	}

	// a new active row may coexist with the inactive one
	created, err = st.Affiliations.IncrementOrCreateActive(ctx, seed())
	if err != nil || !created {
		t.Fatalf("re-affiliate = %v, %v", created, err)
	}
	all, _ := st.Affiliations.List(ctx, "hr@acme.io")
	if len(all) != 2 {
		t.Fatalf("List = %d rows", len(all))
	}
}
