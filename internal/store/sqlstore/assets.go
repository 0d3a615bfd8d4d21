package sqlstore

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"AssetVerse-backend/internal/store"
)

const assetCols = `id, product_name, product_type, product_image, product_quantity, available_quantity, hr_email, company_name, date_added`

type Assets struct{ db *sqlx.DB }

func (s *Assets) Insert(ctx context.Context, a *store.Asset) error {
	if a.ID == "" {
		a.ID = store.NewID()
	}
	if a.DateAdded.IsZero() {
		a.DateAdded = time.Now().UTC()
	}
	_, err := s.db.NamedExecContext(ctx, `
	INSERT INTO assets (`+assetCols+`)
	VALUES (:id, :product_name, :product_type, :product_image, :product_quantity, :available_quantity, :hr_email, :company_name, :date_added)`, a)
	return mapErr(err)
}

func (s *Assets) Get(ctx context.Context, id string) (*store.Asset, error) {
	var a store.Asset
	if err := s.db.GetContext(ctx, &a, `SELECT `+assetCols+` FROM assets WHERE id = ?`, id); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (s *Assets) List(ctx context.Context, hrEmail string) ([]store.Asset, error) {
	q := `SELECT ` + assetCols + ` FROM assets`
	var args []any
	if hrEmail != "" {
		q += ` WHERE hr_email = ?`
		args = append(args, hrEmail)
	}
	q += ` ORDER BY date_added DESC, id DESC`

	out := []store.Asset{}
	if err := s.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies the patch in one statement. The quantity delta is guarded so
// neither counter can go negative.
func (s *Assets) Update(ctx context.Context, id string, p store.AssetPatch) error {
	res, err := s.db.ExecContext(ctx, `
	UPDATE assets SET
	product_name       = COALESCE(?, product_name),
	product_type       = COALESCE(?, product_type),
	product_image      = COALESCE(?, product_image),
	product_quantity   = product_quantity + ?,
	available_quantity = available_quantity + ?
	WHERE id = ?
	AND available_quantity + ? >= 0
	AND product_quantity + ? >= 0`,
		p.ProductName, p.ProductType, p.ProductImage,
		p.QuantityDelta, p.QuantityDelta,
		id,
		p.QuantityDelta, p.QuantityDelta,
	)
	if err != nil {
		return err
	}
	ok, err := affected(res)
	if err != nil || ok {
		return err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return store.ErrGuard
}

func (s *Assets) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
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

func (s *Assets) DecrementAvailable(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
	UPDATE assets SET available_quantity = available_quantity - 1
	WHERE id = ? AND available_quantity > 0`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *Assets) IncrementAvailable(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
	UPDATE assets SET available_quantity = available_quantity + 1
	WHERE id = ? AND available_quantity < product_quantity`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}
