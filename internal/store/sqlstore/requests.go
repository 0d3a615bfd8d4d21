package sqlstore

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"AssetVerse-backend/internal/store"
)

const requestCols = `id, asset_id, asset_name, asset_type, asset_image, requester_email, employee_name, hr_email, company_name, request_date, approval_date, request_status, note, processed_by`

type Requests struct{ db *sqlx.DB }

func (s *Requests) Insert(ctx context.Context, r *store.AssetRequest) error {
	if r.ID == "" {
		r.ID = store.NewID()
	}
	if r.RequestDate.IsZero() {
		r.RequestDate = time.Now().UTC()
	}
	if r.RequestStatus == "" {
		r.RequestStatus = store.RequestPending
	}
	_, err := s.db.NamedExecContext(ctx, `
	INSERT INTO asset_requests (`+requestCols+`)
	VALUES (:id, :asset_id, :asset_name, :asset_type, :asset_image, :requester_email, :employee_name, :hr_email,
	        :company_name, :request_date, :approval_date, :request_status, :note, :processed_by)`, r)
	return mapErr(err)
}

func (s *Requests) Get(ctx context.Context, id string) (*store.AssetRequest, error) {
	var r store.AssetRequest
	if err := s.db.GetContext(ctx, &r, `SELECT `+requestCols+` FROM asset_requests WHERE id = ?`, id); err != nil {
		return nil, mapErr(err)
	}
	return &r, nil
}

func (s *Requests) List(ctx context.Context, email string) ([]store.AssetRequest, error) {
	q := `SELECT ` + requestCols + ` FROM asset_requests`
	var args []any
	if email != "" {
		q += ` WHERE requester_email = ? OR hr_email = ?`
		args = append(args, email, email)
	}
	q += ` ORDER BY request_date DESC, id DESC`

	out := []store.AssetRequest{}
	if err := s.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Requests) Transition(ctx context.Context, id, from, to string, at *time.Time, by string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
	UPDATE asset_requests
	SET request_status = ?, approval_date = ?, processed_by = ?
	WHERE id = ? AND request_status = ?`, to, at, by, id, from)
	if err != nil {
		return false, err
	}
	return affected(res)
}
