package sqlstore

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"AssetVerse-backend/internal/store"
)

const userCols = `id, email, name, company_name, company_logo, date_of_birth, profile_image, role, created_at`

type Users struct{ db *sqlx.DB }

func (s *Users) Create(ctx context.Context, u *store.User) error {
	if u.ID == "" {
		u.ID = store.NewID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.NamedExecContext(ctx, `
	INSERT INTO users (`+userCols+`)
	VALUES (:id, :email, :name, :company_name, :company_logo, :date_of_birth, :profile_image, :role, :created_at)`, u)
	return mapErr(err)
}

func (s *Users) GetByEmail(ctx context.Context, email string) (*store.User, error) {
	var u store.User
	err := s.db.GetContext(ctx, &u, `SELECT `+userCols+` FROM users WHERE email = ?`, email)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (s *Users) UpdateProfile(ctx context.Context, email string, p store.ProfilePatch) (int64, error) {
	var (
		sets []string
		args []any
	)
	add := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *v)
		}
	}
	add("name", p.Name)
	add("company_name", p.CompanyName)
	add("company_logo", p.CompanyLogo)
	add("date_of_birth", p.DateOfBirth)
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, email)

	res, err := s.db.ExecContext(ctx, `UPDATE users SET `+strings.Join(sets, ", ")+` WHERE email = ?`, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Users) UpdateProfileImage(ctx context.Context, email, image string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET profile_image = ? WHERE email = ?`, image, email)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
