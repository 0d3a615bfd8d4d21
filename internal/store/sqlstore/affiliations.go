package sqlstore

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"AssetVerse-backend/internal/platform/db"
	"AssetVerse-backend/internal/store"
)

// active_email is generated on MySQL, so every statement names its columns.
const affiliationCols = `id, employee_email, employee_name, employee_photo, hr_email, company_name, company_logo, affiliation_date, assets_count, status`

type Affiliations struct{ db *sqlx.DB }

func (s *Affiliations) Get(ctx context.Context, id string) (*store.Affiliation, error) {
	var a store.Affiliation
	if err := s.db.GetContext(ctx, &a, `SELECT `+affiliationCols+` FROM affiliations WHERE id = ?`, id); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (s *Affiliations) GetActive(ctx context.Context, employeeEmail string) (*store.Affiliation, error) {
	var a store.Affiliation
	err := s.db.GetContext(ctx, &a, `
	SELECT `+affiliationCols+` FROM affiliations
	WHERE employee_email = ? AND status = ?`, employeeEmail, store.AffiliationActive)
	if err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (s *Affiliations) List(ctx context.Context, hrEmail string) ([]store.Affiliation, error) {
	q := `SELECT ` + affiliationCols + ` FROM affiliations`
	var args []any
	if hrEmail != "" {
		q += ` WHERE hr_email = ?`
		args = append(args, hrEmail)
	}
	q += ` ORDER BY affiliation_date DESC, id DESC`

	out := []store.Affiliation{}
	if err := s.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// IncrementOrCreateActive bumps the active row or inserts seed. A concurrent
// insert of the same employee loses on the unique key and is retried once as
// an increment.
func (s *Affiliations) IncrementOrCreateActive(ctx context.Context, seed *store.Affiliation) (bool, error) {
	created, err := s.incrementOrCreate(ctx, seed)
	if errors.Is(err, store.ErrDuplicate) {
		return s.incrementOrCreate(ctx, seed)
	}
	return created, err
}

func (s *Affiliations) incrementOrCreate(ctx context.Context, seed *store.Affiliation) (bool, error) {
	var created bool
	err := db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		res, err := tx.ExecContext(ctx, `
		UPDATE affiliations SET assets_count = assets_count + 1
		WHERE employee_email = ? AND status = ?`, seed.EmployeeEmail, store.AffiliationActive)
		if err != nil {
			return err
		}
		if ok, err := affected(res); err != nil || ok {
			return err
		}

		id := seed.ID
		if id == "" {
			id = store.NewID()
		}
		if seed.AffiliationDate.IsZero() {
			seed.AffiliationDate = time.Now().UTC()
		}
		seed.AssetsCount = 1
		seed.Status = store.AffiliationActive
		_, err = tx.ExecContext(ctx, `
		INSERT INTO affiliations (`+affiliationCols+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, seed.EmployeeEmail, seed.EmployeeName, seed.EmployeePhoto, seed.HREmail,
			seed.CompanyName, seed.CompanyLogo, seed.AffiliationDate, seed.AssetsCount, seed.Status)
		if err != nil {
			return mapErr(err)
		}
		seed.ID = id
		created = true
		return nil
	})
	return created, err
}

func (s *Affiliations) DecrementActive(ctx context.Context, employeeEmail string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
	UPDATE affiliations SET assets_count = assets_count - 1
	WHERE employee_email = ? AND status = ? AND assets_count > 0`, employeeEmail, store.AffiliationActive)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *Affiliations) Deactivate(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
	UPDATE affiliations SET status = ?, assets_count = 0
	WHERE id = ? AND status = ?`, store.AffiliationInactive, id, store.AffiliationActive)
	if err != nil {
		return false, err
	}
	return affected(res)
}
