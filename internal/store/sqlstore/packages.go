package sqlstore

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"AssetVerse-backend/internal/store"
)

type Packages struct{ db *sqlx.DB }

// packageRow stores features as a JSON array column.
type packageRow struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	EmployeeLimit int     `db:"employee_limit"`
	Price         float64 `db:"price"`
	FeaturesJSON  string  `db:"features_json"`
}

func (r packageRow) toModel() (store.Package, error) {
	p := store.Package{ID: r.ID, Name: r.Name, EmployeeLimit: r.EmployeeLimit, Price: r.Price}
	if r.FeaturesJSON != "" {
		if err := json.Unmarshal([]byte(r.FeaturesJSON), &p.Features); err != nil {
			return store.Package{}, err
		}
	}
	return p, nil
}

func (s *Packages) List(ctx context.Context) ([]store.Package, error) {
	var rows []packageRow
	if err := s.db.SelectContext(ctx, &rows, `
	SELECT id, name, employee_limit, price, features_json
	FROM packages
	ORDER BY employee_limit ASC, id ASC`); err != nil {
		return nil, err
	}
	out := make([]store.Package, 0, len(rows))
	for _, r := range rows {
		p, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Packages) Insert(ctx context.Context, p *store.Package) error {
	if p.ID == "" {
		p.ID = store.NewID()
	}
	features := p.Features
	if features == nil {
		features = []string{}
	}
	buf, err := json.Marshal(features)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
	INSERT INTO packages (id, name, employee_limit, price, features_json)
	VALUES (?, ?, ?, ?, ?)`, p.ID, p.Name, p.EmployeeLimit, p.Price, string(buf))
	return mapErr(err)
}
