package sqlstore

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"AssetVerse-backend/internal/store"
)

const assignmentCols = `id, asset_id, request_id, asset_name, asset_type, asset_image, employee_email, employee_name, hr_email, company_name, assignment_date, approval_date, return_date, status`

type Assignments struct{ db *sqlx.DB }

func (s *Assignments) Insert(ctx context.Context, a *store.AssignedAsset) error {
	if a.ID == "" {
		a.ID = store.NewID()
	}
	if a.Status == "" {
		a.Status = store.AssignmentAssigned
	}
	_, err := s.db.NamedExecContext(ctx, `
	INSERT INTO assigned_assets (`+assignmentCols+`)
	VALUES (:id, :asset_id, :request_id, :asset_name, :asset_type, :asset_image, :employee_email, :employee_name,
	        :hr_email, :company_name, :assignment_date, :approval_date, :return_date, :status)`, a)
	return mapErr(err)
}

func (s *Assignments) Get(ctx context.Context, id string) (*store.AssignedAsset, error) {
	var a store.AssignedAsset
	if err := s.db.GetContext(ctx, &a, `SELECT `+assignmentCols+` FROM assigned_assets WHERE id = ?`, id); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (s *Assignments) ListByEmployee(ctx context.Context, email string) ([]store.AssignedAsset, error) {
	out := []store.AssignedAsset{}
	err := s.db.SelectContext(ctx, &out, `
	SELECT `+assignmentCols+` FROM assigned_assets
	WHERE employee_email = ?
	ORDER BY assignment_date DESC, id DESC`, email)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Assignments) ListOutstanding(ctx context.Context, email string) ([]store.AssignedAsset, error) {
	out := []store.AssignedAsset{}
	err := s.db.SelectContext(ctx, &out, `
	SELECT `+assignmentCols+` FROM assigned_assets
	WHERE employee_email = ? AND status = ?
	ORDER BY assignment_date ASC, id ASC`, email, store.AssignmentAssigned)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Assignments) MarkReturned(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
	UPDATE assigned_assets SET status = ?, return_date = ?
	WHERE id = ? AND status = ?`, store.AssignmentReturned, at, id, store.AssignmentAssigned)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *Assignments) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assigned_assets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	ok, err := affected(res)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}
	return nil
}
