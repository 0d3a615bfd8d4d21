// Package sqlstore implements the store repositories on MySQL or SQLite
// through sqlx. Queries use ? placeholders, which both drivers accept.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"AssetVerse-backend/internal/store"
)

// New wires every repository to db. Close closes db.
func New(db *sqlx.DB) *store.Store {
	return &store.Store{
		Users:        &Users{db: db},
		Packages:     &Packages{db: db},
		Assets:       &Assets{db: db},
		Requests:     &Requests{db: db},
		Assignments:  &Assignments{db: db},
		Affiliations: &Affiliations{db: db},
		Close:        func(context.Context) error { return db.Close() },
	}
}

// mapErr turns driver errors into the store sentinels.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case isDuplicate(err):
		return store.ErrDuplicate
	}
	return err
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062 // duplicate key
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return false
}

// affected reports whether res touched exactly one row.
func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
