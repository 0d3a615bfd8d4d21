// Package lifecycle moves assets through request, approval, assignment and
// return. Every multi-document change is a sequence of guarded updates with
// compensations for the steps already applied.
package lifecycle

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"AssetVerse-backend/internal/platform/apierr"
	"AssetVerse-backend/internal/store"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type Service struct {
	st    *store.Store
	clock Clock
}

func NewService(st *store.Store) *Service {
	return &Service{st: st, clock: realClock{}}
}

// ===== submit =====

// Submit records a pending request. There is no stock check and no duplicate
// prevention; stock is only taken on approval.
func (s *Service) Submit(ctx context.Context, email string, in SubmitInput) (_ *store.AssetRequest, err error) {
	defer func() { observe("submit", err) }()

	if !strings.EqualFold(strings.TrimSpace(in.RequesterEmail), email) {
		return nil, apierr.ErrForbidden("requesterEmail must match the signed-in user")
	}
	if !store.ValidID(in.AssetID) {
		return nil, apierr.ErrInvalid("invalid assetId")
	}
	asset, err := s.st.Assets.Get(ctx, in.AssetID)
	if err != nil {
		return nil, mapStoreErr(err, "asset not found")
	}
	if in.HREmail != "" && !strings.EqualFold(in.HREmail, asset.HREmail) {
		return nil, apierr.ErrInvalid("hrEmail does not own this asset")
	}
	// the snapshot always comes from the stored asset; Return gates on its type
	if in.AssetType != "" && !strings.EqualFold(strings.TrimSpace(in.AssetType), asset.ProductType) {
		return nil, apierr.ErrInvalid("assetType does not match the asset")
	}

	r := &store.AssetRequest{
		AssetID:        asset.ID,
		AssetName:      asset.ProductName,
		AssetType:      asset.ProductType,
		AssetImage:     asset.ProductImage,
		RequesterEmail: email,
		EmployeeName:   in.EmployeeName,
		HREmail:        asset.HREmail,
		CompanyName:    asset.CompanyName,
		RequestDate:    s.clock.Now(),
		RequestStatus:  store.RequestPending,
		Note:           in.Note,
	}
	if err := s.st.Requests.Insert(ctx, r); err != nil {
		return nil, err
	}
	log.Printf("[INFO] request %s submitted by %s for asset %s", r.ID, email, r.AssetID)
	return r, nil
}

// ===== approve =====

// Approve takes one unit of stock, flips the request, records the assignment
// and counts it on the employee's active affiliation, in that order. A failed
// step undoes the earlier ones.
func (s *Service) Approve(ctx context.Context, email, requestID string) (_ *ApproveResult, err error) {
	defer func() { observe("approve", err) }()

	req, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(req.HREmail, email) {
		return nil, apierr.ErrForbidden("only the owning HR can process this request")
	}
	if req.RequestStatus != store.RequestPending {
		return nil, apierr.ErrAlreadyProcessed("request already " + req.RequestStatus)
	}

	// 1) stock
	ok, err := s.st.Assets.DecrementAvailable(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if !ok {
		if _, err := s.st.Assets.Get(ctx, req.AssetID); err != nil {
			return nil, mapStoreErr(err, "asset not found")
		}
		return nil, apierr.ErrOutOfStock("asset is out of stock")
	}

	sg := newSaga("approve", requestID)
	sg.onRollback("restock", func(ctx context.Context) error {
		if ok, err := s.st.Assets.IncrementAvailable(ctx, req.AssetID); err != nil || ok {
			return err
		}
		return errors.New("stock already at productQuantity")
	})

	// 2) request pending -> approved
	now := s.clock.Now()
	ok, err = s.st.Requests.Transition(ctx, req.ID, store.RequestPending, store.RequestApproved, &now, email)
	if err == nil && !ok {
		err = apierr.ErrAlreadyProcessed("request was processed concurrently")
	}
	if err != nil {
		sg.rollback(ctx, err)
		return nil, err
	}
	sg.onRollback("reopen request", func(ctx context.Context) error {
		ok, err := s.st.Requests.Transition(ctx, req.ID, store.RequestApproved, store.RequestPending, nil, "")
		if err == nil && !ok {
			err = errors.New("request no longer approved")
		}
		return err
	})

	// 3) assignment
	asg := &store.AssignedAsset{
		AssetID:        req.AssetID,
		RequestID:      req.ID,
		AssetName:      req.AssetName,
		AssetType:      req.AssetType,
		AssetImage:     req.AssetImage,
		EmployeeEmail:  req.RequesterEmail,
		EmployeeName:   req.EmployeeName,
		HREmail:        req.HREmail,
		CompanyName:    req.CompanyName,
		AssignmentDate: now,
		ApprovalDate:   now,
		Status:         store.AssignmentAssigned,
	}
	if err := s.st.Assignments.Insert(ctx, asg); err != nil {
		sg.rollback(ctx, err)
		return nil, err
	}
	sg.onRollback("delete assignment", func(ctx context.Context) error {
		return s.st.Assignments.Delete(ctx, asg.ID)
	})

	// 4) affiliation
	seed := s.affiliationSeed(ctx, req, now)
	if _, err := s.st.Affiliations.IncrementOrCreateActive(ctx, seed); err != nil {
		sg.rollback(ctx, err)
		return nil, err
	}

	req.RequestStatus = store.RequestApproved
	req.ApprovalDate = &now
	req.ProcessedBy = email
	log.Printf("[INFO] request %s approved by %s, assignment %s", req.ID, email, asg.ID)
	return &ApproveResult{ModifiedCount: 1, Request: *req, Assignment: *asg}, nil
}

// affiliationSeed builds the row inserted on an employee's first approval.
// Photo and logo are copied from the user records when they exist.
func (s *Service) affiliationSeed(ctx context.Context, req *store.AssetRequest, now time.Time) *store.Affiliation {
	seed := &store.Affiliation{
		EmployeeEmail:   req.RequesterEmail,
		EmployeeName:    req.EmployeeName,
		HREmail:         req.HREmail,
		CompanyName:     req.CompanyName,
		AffiliationDate: now,
	}
	if emp, err := s.st.Users.GetByEmail(ctx, req.RequesterEmail); err == nil {
		seed.EmployeePhoto = emp.ProfileImage
		if seed.EmployeeName == "" {
			seed.EmployeeName = emp.Name
		}
	}
	if hr, err := s.st.Users.GetByEmail(ctx, req.HREmail); err == nil {
		seed.CompanyLogo = hr.CompanyLogo
		if seed.CompanyName == "" {
			seed.CompanyName = hr.CompanyName
		}
	}
	return seed
}

// ===== reject =====

func (s *Service) Reject(ctx context.Context, email, requestID string) (_ *RejectResult, err error) {
	defer func() { observe("reject", err) }()

	req, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(req.HREmail, email) {
		return nil, apierr.ErrForbidden("only the owning HR can process this request")
	}

	now := s.clock.Now()
	ok, err := s.st.Requests.Transition(ctx, req.ID, store.RequestPending, store.RequestRejected, &now, email)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierr.ErrAlreadyProcessed("request already processed")
	}

	req.RequestStatus = store.RequestRejected
	req.ApprovalDate = &now
	req.ProcessedBy = email
	log.Printf("[INFO] request %s rejected by %s", req.ID, email)
	return &RejectResult{ModifiedCount: 1, Request: *req}, nil
}

// ===== return =====

// Return gives a Returnable item back. The assignment flip is the commit
// point; the stock and affiliation counters follow and are only logged when
// their guards do not match.
func (s *Service) Return(ctx context.Context, email, assignmentID string) (_ *ReturnResult, err error) {
	defer func() { observe("return", err) }()

	if !store.ValidID(assignmentID) {
		return nil, apierr.ErrInvalid("invalid assignment id")
	}
	asg, err := s.st.Assignments.Get(ctx, assignmentID)
	if err != nil {
		return nil, mapStoreErr(err, "assignment not found")
	}
	if !strings.EqualFold(asg.EmployeeEmail, email) {
		return nil, apierr.ErrForbidden("only the assigned employee can return this asset")
	}
	if asg.Status != store.AssignmentAssigned {
		return nil, apierr.ErrInvalidState("asset already returned")
	}
	if asg.AssetType != store.TypeReturnable {
		return nil, apierr.ErrNotReturnable("only Returnable assets can be returned")
	}

	now := s.clock.Now()
	ok, err := s.st.Assignments.MarkReturned(ctx, asg.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierr.ErrInvalidState("asset already returned")
	}

	s.restock(ctx, "return", asg.AssetID)
	if ok, err := s.st.Affiliations.DecrementActive(ctx, asg.EmployeeEmail); err != nil {
		log.Printf("[ERROR] return %s: decrement assetsCount for %s: %v", asg.ID, asg.EmployeeEmail, err)
	} else if !ok {
		log.Printf("[WARN] return %s: no active affiliation with assets for %s", asg.ID, asg.EmployeeEmail)
	}

	asg.Status = store.AssignmentReturned
	asg.ReturnDate = &now
	log.Printf("[INFO] assignment %s returned by %s", asg.ID, email)
	return &ReturnResult{ModifiedCount: 1, Assignment: *asg}, nil
}

// ===== remove employee =====

// RemoveEmployee returns every outstanding item of the employee, then
// deactivates the affiliation. Items go first so a failed run can be repeated.
func (s *Service) RemoveEmployee(ctx context.Context, email, affiliationID string) (_ *RemoveResult, err error) {
	defer func() { observe("remove_employee", err) }()

	if !store.ValidID(affiliationID) {
		return nil, apierr.ErrInvalid("invalid affiliation id")
	}
	aff, err := s.st.Affiliations.Get(ctx, affiliationID)
	if err != nil {
		return nil, mapStoreErr(err, "affiliation not found")
	}
	if !strings.EqualFold(aff.HREmail, email) {
		return nil, apierr.ErrForbidden("only the owning HR can remove this employee")
	}
	if aff.Status != store.AffiliationActive {
		return nil, apierr.ErrInvalidState("employee already removed")
	}

	items, err := s.st.Assignments.ListOutstanding(ctx, aff.EmployeeEmail)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	returned := 0
	for _, it := range items {
		ok, err := s.st.Assignments.MarkReturned(ctx, it.ID, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			// returned concurrently by the employee
			continue
		}
		returned++
		s.restock(ctx, "remove_employee", it.AssetID)
	}

	ok, err := s.st.Affiliations.Deactivate(ctx, aff.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierr.ErrInvalidState("employee already removed")
	}

	log.Printf("[INFO] affiliation %s (%s) removed by %s, %d item(s) returned", aff.ID, aff.EmployeeEmail, email, returned)
	return &RemoveResult{ModifiedCount: 1, ReturnedAssets: returned}, nil
}

// ===== helpers =====

func (s *Service) loadRequest(ctx context.Context, id string) (*store.AssetRequest, error) {
	if !store.ValidID(id) {
		return nil, apierr.ErrInvalid("invalid request id")
	}
	req, err := s.st.Requests.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "request not found")
	}
	return req, nil
}

// restock puts one unit back. The asset may have been deleted or shrunk in
// the meantime, so a miss is logged rather than failing the caller.
func (s *Service) restock(ctx context.Context, op, assetID string) {
	ok, err := s.st.Assets.IncrementAvailable(ctx, assetID)
	switch {
	case err != nil:
		log.Printf("[ERROR] %s: restock asset %s: %v", op, assetID, err)
	case !ok:
		log.Printf("[WARN] %s: asset %s not restocked (missing or already full)", op, assetID)
	}
}

func mapStoreErr(err error, notFound string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apierr.ErrNotFound(notFound)
	}
	return err
}
