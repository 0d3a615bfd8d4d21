package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"AssetVerse-backend/internal/platform/apierr"
	"AssetVerse-backend/internal/store"
	"AssetVerse-backend/internal/store/storetest"
)

const (
	hrEmail  = "hr@acme.io"
	empA     = "alice@acme.io"
	empB     = "bob@acme.io"
	stranger = "mallory@evil.io"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := storetest.NewSQLite(t)
	svc := NewService(st)
	svc.clock = fixedClock{t: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)}
	return svc, st
}

func seedAsset(t *testing.T, st *store.Store, typ string, qty int) *store.Asset {
	t.Helper()
	a := &store.Asset{
		ProductName: "Laptop", ProductType: typ, ProductQuantity: qty, AvailableQuantity: qty,
		HREmail: hrEmail, CompanyName: "Acme",
	}
	if err := st.Assets.Insert(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	return a
}

func submit(t *testing.T, svc *Service, assetID, email string) *store.AssetRequest {
	t.Helper()
	r, err := svc.Submit(context.Background(), email, SubmitInput{AssetID: assetID, RequesterEmail: email, EmployeeName: email})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func available(t *testing.T, st *store.Store, id string) int {
	t.Helper()
	a, err := st.Assets.Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	return a.AvailableQuantity
}

func requestStatus(t *testing.T, st *store.Store, id string) string {
	t.Helper()
	r, err := st.Requests.Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	return r.RequestStatus
}

func wantCode(t *testing.T, err error, code apierr.Code) {
	t.Helper()
	if !apierr.Is(err, code) {
		t.Fatalf("err = %v, want %s", err, code)
	}
}

func TestSubmit(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedAsset(t, st, store.TypeReturnable, 0)

	// no stock check on submit
	r := submit(t, svc, a.ID, empA)
	if r.RequestStatus != store.RequestPending || r.ApprovalDate != nil {
		t.Fatalf("unexpected request %+v", r)
	}
	if r.HREmail != hrEmail || r.AssetName != "Laptop" || r.AssetType != store.TypeReturnable {
		t.Fatalf("snapshot not taken from asset: %+v", r)
	}

	_, err := svc.Submit(ctx, empA, SubmitInput{AssetID: a.ID, RequesterEmail: empB})
	wantCode(t, err, apierr.CodeForbidden)

	_, err = svc.Submit(ctx, empA, SubmitInput{AssetID: "nope", RequesterEmail: empA})
	wantCode(t, err, apierr.CodeInvalidArgument)

	_, err = svc.Submit(ctx, empA, SubmitInput{AssetID: store.NewID(), RequesterEmail: empA})
	wantCode(t, err, apierr.CodeNotFound)
}

func TestSubmitSnapshotComesFromAsset(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedAsset(t, st, store.TypeConsumable, 2)

	for _, typ := range []string{store.TypeReturnable, "banana"} {
		_, err := svc.Submit(ctx, empA, SubmitInput{AssetID: a.ID, RequesterEmail: empA, AssetType: typ})
		wantCode(t, err, apierr.CodeInvalidArgument)
	}

	r, err := svc.Submit(ctx, empA, SubmitInput{
		AssetID: a.ID, RequesterEmail: empA, AssetType: "consumable",
		AssetName: "Gold Bar", AssetImage: "https://img/x.png", CompanyName: "Other",
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.AssetType != store.TypeConsumable || r.AssetName != "Laptop" || r.AssetImage != "" || r.CompanyName != "Acme" {
		t.Fatalf("snapshot taken from input: %+v", r)
	}

	res, err := svc.Approve(ctx, hrEmail, r.ID)
	if err != nil {
		t.Fatal(err)
	}
	_, err = svc.Return(ctx, empA, res.Assignment.ID)
	wantCode(t, err, apierr.CodeNotReturnable)
	if got := available(t, st, a.ID); got != 1 {
		t.Fatalf("available = %d, want 1", got)
	}
}

func TestApproveHappyPath(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedAsset(t, st, store.TypeReturnable, 2)
	r := submit(t, svc, a.ID, empA)

	res, err := svc.Approve(ctx, hrEmail, r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.ModifiedCount != 1 || res.Request.RequestStatus != store.RequestApproved {
		t.Fatalf("unexpected result %+v", res)
	}
	if got := available(t, st, a.ID); got != 1 {
		t.Fatalf("available = %d, want 1", got)
	}

	stored, _ := st.Requests.Get(ctx, r.ID)
	if stored.ProcessedBy != hrEmail || stored.ApprovalDate == nil {
		t.Fatalf("processing fields not stamped: %+v", stored)
	}

	asg, err := st.Assignments.Get(ctx, res.Assignment.ID)
	if err != nil {
		t.Fatal(err)
	}
	if asg.Status != store.AssignmentAssigned || asg.ReturnDate != nil || asg.EmployeeEmail != empA || asg.RequestID != r.ID {
		t.Fatalf("unexpected assignment %+v", asg)
	}

	aff, err := st.Affiliations.GetActive(ctx, empA)
	if err != nil || aff.AssetsCount != 1 || aff.HREmail != hrEmail {
		t.Fatalf("affiliation = %+v, %v", aff, err)
	}
}

func TestApproveRequiresOwningHR(t *testing.T) {
	svc, st := newTestService(t)
	a := seedAsset(t, st, store.TypeReturnable, 1)
	r := submit(t, svc, a.ID, empA)

	_, err := svc.Approve(context.Background(), stranger, r.ID)
	wantCode(t, err, apierr.CodeForbidden)
	_, err = svc.Reject(context.Background(), stranger, r.ID)
	wantCode(t, err, apierr.CodeForbidden)

	if got := available(t, st, a.ID); got != 1 {
		t.Fatalf("available = %d after forbidden approve", got)
	}
	if got := requestStatus(t, st, r.ID); got != store.RequestPending {
		t.Fatalf("status = %s", got)
	}
}

func TestApproveMissing(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Approve(context.Background(), hrEmail, store.NewID())
	wantCode(t, err, apierr.CodeNotFound)
	_, err = svc.Approve(context.Background(), hrEmail, "123")
	wantCode(t, err, apierr.CodeInvalidArgument)
}

// available 1: approve A takes the unit, approve B fails and B stays pending.
func TestApproveOutOfStock(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedAsset(t, st, store.TypeReturnable, 1)
	ra := submit(t, svc, a.ID, empA)
	rb := submit(t, svc, a.ID, empB)

	if _, err := svc.Approve(ctx, hrEmail, ra.ID); err != nil {
		t.Fatal(err)
	}
	if got := available(t, st, a.ID); got != 0 {
		t.Fatalf("available = %d, want 0", got)
	}

	_, err := svc.Approve(ctx, hrEmail, rb.ID)
	wantCode(t, err, apierr.CodeOutOfStock)
	if got := requestStatus(t, st, rb.ID); got != store.RequestPending {
		t.Fatalf("B status = %s, want pending", got)
	}
	if got := available(t, st, a.ID); got != 0 {
		t.Fatalf("available = %d, want 0", got)
	}
	if _, err := st.Affiliations.GetActive(ctx, empB); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("B got an affiliation: %v", err)
	}
}

func TestRequestLeavesPendingOnce(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedAsset(t, st, store.TypeReturnable, 5)

	approved := submit(t, svc, a.ID, empA)
	if _, err := svc.Approve(ctx, hrEmail, approved.ID); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Reject(ctx, hrEmail, approved.ID)
	wantCode(t, err, apierr.CodeAlreadyProcessed)
	_, err = svc.Approve(ctx, hrEmail, approved.ID)
	wantCode(t, err, apierr.CodeAlreadyProcessed)

	rejected := submit(t, svc, a.ID, empA)
	res, err := svc.Reject(ctx, hrEmail, rejected.ID)
	if err != nil || res.ModifiedCount != 1 {
		t.Fatalf("reject = %+v, %v", res, err)
	}
	_, err = svc.Approve(ctx, hrEmail, rejected.ID)
	wantCode(t, err, apierr.CodeAlreadyProcessed)

	// only the first approval took stock; reject has no side effects
	if got := available(t, st, a.ID); got != 4 {
		t.Fatalf("available = %d, want 4", got)
	}
	aff, _ := st.Affiliations.GetActive(ctx, empA)
	if aff.AssetsCount != 1 {
		t.Fatalf("assetsCount = %d, want 1", aff.AssetsCount)
	}
}

func TestSecondApprovalIncrementsAffiliation(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedAsset(t, st, store.TypeReturnable, 3)

	for i := 0; i < 2; i++ {
		r := submit(t, svc, a.ID, empA)
		if _, err := svc.Approve(ctx, hrEmail, r.ID); err != nil {
			t.Fatal(err)
		}
	}
	all, _ := st.Affiliations.List(ctx, hrEmail)
	if len(all) != 1 || all[0].AssetsCount != 2 || all[0].Status != store.AffiliationActive {
		t.Fatalf("affiliations = %+v", all)
	}
}

func TestReturn(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedAsset(t, st, store.TypeReturnable, 1)
	r := submit(t, svc, a.ID, empA)
	res, err := svc.Approve(ctx, hrEmail, r.ID)
	if err != nil {
		t.Fatal(err)
	}
	asgID := res.Assignment.ID

	_, err = svc.Return(ctx, empB, asgID)
	wantCode(t, err, apierr.CodeForbidden)

	out, err := svc.Return(ctx, empA, asgID)
	if err != nil {
		t.Fatal(err)
	}
	if out.Assignment.Status != store.AssignmentReturned || out.Assignment.ReturnDate == nil {
		t.Fatalf("unexpected result %+v", out)
	}
	if got := available(t, st, a.ID); got != 1 {
		t.Fatalf("available = %d, want 1", got)
	}
	aff, _ := st.Affiliations.GetActive(ctx, empA)
	if aff.AssetsCount != 0 {
		t.Fatalf("assetsCount = %d, want 0", aff.AssetsCount)
	}

	_, err = svc.Return(ctx, empA, asgID)
	wantCode(t, err, apierr.CodeInvalidState)
	if got := available(t, st, a.ID); got != 1 {
		t.Fatalf("available = %d after double return", got)
	}
}

func TestReturnConsumable(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedAsset(t, st, store.TypeConsumable, 2)
	r := submit(t, svc, a.ID, empA)
	res, err := svc.Approve(ctx, hrEmail, r.ID)
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Return(ctx, empA, res.Assignment.ID)
	wantCode(t, err, apierr.CodeNotReturnable)
	if got := available(t, st, a.ID); got != 1 {
		t.Fatalf("available = %d, want 1", got)
	}
}

// assetsCount 2: remove-employee deactivates, zeroes the count and returns both
// items, putting each unit back.
func TestRemoveEmployee(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	laptop := seedAsset(t, st, store.TypeReturnable, 1)
	pens := seedAsset(t, st, store.TypeConsumable, 5)

	for _, id := range []string{laptop.ID, pens.ID} {
		r := submit(t, svc, id, empA)
		if _, err := svc.Approve(ctx, hrEmail, r.ID); err != nil {
			t.Fatal(err)
		}
	}
	aff, _ := st.Affiliations.GetActive(ctx, empA)
	if aff.AssetsCount != 2 {
		t.Fatalf("assetsCount = %d, want 2", aff.AssetsCount)
	}

	_, err := svc.RemoveEmployee(ctx, stranger, aff.ID)
	wantCode(t, err, apierr.CodeForbidden)

	res, err := svc.RemoveEmployee(ctx, hrEmail, aff.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.ReturnedAssets != 2 {
		t.Fatalf("returned %d, want 2", res.ReturnedAssets)
	}

	got, _ := st.Affiliations.Get(ctx, aff.ID)
	if got.Status != store.AffiliationInactive || got.AssetsCount != 0 {
		t.Fatalf("affiliation = %+v", got)
	}
	items, _ := st.Assignments.ListByEmployee(ctx, empA)
	for _, it := range items {
		if it.Status != store.AssignmentReturned || it.ReturnDate == nil {
			t.Fatalf("assignment not returned: %+v", it)
		}
	}
	if available(t, st, laptop.ID) != 1 || available(t, st, pens.ID) != 5 {
		t.Fatalf("stock not restored: laptop=%d pens=%d", available(t, st, laptop.ID), available(t, st, pens.ID))
	}

	_, err = svc.RemoveEmployee(ctx, hrEmail, aff.ID)
	wantCode(t, err, apierr.CodeInvalidState)
}

// interruptedAssignments fails MarkReturned once, after the first item.
type interruptedAssignments struct {
	store.Assignments
	calls *int
}

func (a interruptedAssignments) MarkReturned(ctx context.Context, id string, at time.Time) (bool, error) {
	*a.calls++
	if *a.calls == 2 {
		return false, errors.New("mark returned: connection reset")
	}
	return a.Assignments.MarkReturned(ctx, id, at)
}

func TestRemoveEmployeeCanBeRetried(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	laptop := seedAsset(t, st, store.TypeReturnable, 1)
	monitor := seedAsset(t, st, store.TypeReturnable, 1)
	for _, id := range []string{laptop.ID, monitor.ID} {
		r := submit(t, svc, id, empA)
		if _, err := svc.Approve(ctx, hrEmail, r.ID); err != nil {
			t.Fatal(err)
		}
	}
	aff, _ := st.Affiliations.GetActive(ctx, empA)

	base := st.Assignments
	calls := 0
	st.Assignments = interruptedAssignments{Assignments: base, calls: &calls}
	if _, err := svc.RemoveEmployee(ctx, hrEmail, aff.ID); err == nil {
		t.Fatal("expected remove to fail")
	}
	got, _ := st.Affiliations.Get(ctx, aff.ID)
	if got.Status != store.AffiliationActive {
		t.Fatalf("affiliation deactivated before items were returned: %+v", got)
	}
	outstanding, _ := base.ListOutstanding(ctx, empA)
	if len(outstanding) != 1 {
		t.Fatalf("outstanding = %d, want 1", len(outstanding))
	}

	st.Assignments = base
	res, err := svc.RemoveEmployee(ctx, hrEmail, aff.ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.ReturnedAssets != 1 {
		t.Fatalf("returned %d on retry, want 1", res.ReturnedAssets)
	}
	got, _ = st.Affiliations.Get(ctx, aff.ID)
	if got.Status != store.AffiliationInactive {
		t.Fatalf("affiliation = %+v", got)
	}
	if available(t, st, laptop.ID) != 1 || available(t, st, monitor.ID) != 1 {
		t.Fatalf("stock not restored: laptop=%d monitor=%d", available(t, st, laptop.ID), available(t, st, monitor.ID))
	}
}

func TestStockStaysWithinBounds(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedAsset(t, st, store.TypeReturnable, 2)

	var assignments []string
	for _, emp := range []string{empA, empB, empA} {
		r := submit(t, svc, a.ID, emp)
		res, err := svc.Approve(ctx, hrEmail, r.ID)
		if err == nil {
			assignments = append(assignments, res.Assignment.ID)
		}
		if n := available(t, st, a.ID); n < 0 || n > 2 {
			t.Fatalf("available = %d out of [0,2]", n)
		}
	}
	if len(assignments) != 2 {
		t.Fatalf("approved %d, want 2", len(assignments))
	}
	for _, id := range assignments {
		asg, _ := st.Assignments.Get(ctx, id)
		if _, err := svc.Return(ctx, asg.EmployeeEmail, id); err != nil {
			t.Fatal(err)
		}
		if n := available(t, st, a.ID); n < 0 || n > 2 {
			t.Fatalf("available = %d out of [0,2]", n)
		}
	}
	if got := available(t, st, a.ID); got != 2 {
		t.Fatalf("available = %d, want 2", got)
	}
}

// ===== compensation =====

type failingAssignments struct{ store.Assignments }

func (failingAssignments) Insert(context.Context, *store.AssignedAsset) error {
	return errors.New("insert assignment: connection reset")
}

type failingAffiliations struct{ store.Affiliations }

func (failingAffiliations) IncrementOrCreateActive(context.Context, *store.Affiliation) (bool, error) {
	return false, errors.New("upsert affiliation: connection reset")
}

func TestApproveCompensatesFailedAssignment(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedAsset(t, st, store.TypeReturnable, 1)
	r := submit(t, svc, a.ID, empA)

	st.Assignments = failingAssignments{st.Assignments}
	if _, err := svc.Approve(ctx, hrEmail, r.ID); err == nil {
		t.Fatal("expected approve to fail")
	}
	if got := available(t, st, a.ID); got != 1 {
		t.Fatalf("available = %d, want 1 after compensation", got)
	}
	stored, _ := st.Requests.Get(ctx, r.ID)
	if stored.RequestStatus != store.RequestPending || stored.ApprovalDate != nil || stored.ProcessedBy != "" {
		t.Fatalf("request not reopened: %+v", stored)
	}
}

func TestApproveCompensatesFailedAffiliation(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	a := seedAsset(t, st, store.TypeReturnable, 1)
	r := submit(t, svc, a.ID, empA)

	st.Affiliations = failingAffiliations{st.Affiliations}
	if _, err := svc.Approve(ctx, hrEmail, r.ID); err == nil {
		t.Fatal("expected approve to fail")
	}
	if got := available(t, st, a.ID); got != 1 {
		t.Fatalf("available = %d, want 1 after compensation", got)
	}
	if got := requestStatus(t, st, r.ID); got != store.RequestPending {
		t.Fatalf("status = %s, want pending", got)
	}
	items, _ := st.Assignments.ListByEmployee(ctx, empA)
	if len(items) != 0 {
		t.Fatalf("assignment left behind: %+v", items)
	}
}
