package core

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type (
	// DBExecutor is satisfied by *sqlx.DB and *sqlx.Tx.
	DBExecutor interface {
		sqlx.ExtContext

		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	DBTransactor interface {
		DBExecutor

		Commit() error
		Rollback() error
	}

	DB interface {
		DBExecutor

		Begin(ctx context.Context, opts *sql.TxOptions) (DBTransactor, error)
		Close() error
	}
)

var (
	// ReadCommitted is the isolation used by create-if-absent operations; the unique
	// constraints behind every natural key settle races.
	ReadCommitted = &sql.TxOptions{Isolation: sql.LevelReadCommitted}

	// Serializable is used where a conflict cannot be expressed as a constraint.
	Serializable = &sql.TxOptions{Isolation: sql.LevelSerializable}
)

// RunInTx runs fn inside a transaction. The transaction is committed when fn returns nil
// and rolled back on any error or panic.
func RunInTx(ctx context.Context, db DB, opts *sql.TxOptions, fn func(tx DBExecutor) error) (err error) {
	tx, err := db.Begin(ctx, opts)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				err = errors.Wrap(err, fmt.Sprintf("rolling back: %v", rbErr))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "committing transaction")
	}
	return nil
}
