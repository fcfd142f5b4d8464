// Package sqlxrepos implements the domain repositories with hand-written SQL over sqlx.
// Queries are written with `?` placeholders and rebound for the executor's driver.
package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/storage/database"
)

const classKeyJoins = `
	JOIN courses co ON co.course_id = cl.course_id
	WHERE co.subject = ? AND co.num = ? AND cl.season = ? AND cl.year = ?`

func classKeyArgs(key core.ClassKey) []interface{} {
	return []interface{}{key.Subject, key.Number, key.Season, key.Year}
}

func get(ctx context.Context, exec core.DBExecutor, dest interface{}, query string, args ...interface{}) error {
	return exec.GetContext(ctx, dest, exec.Rebind(query), args...)
}

func sel(ctx context.Context, exec core.DBExecutor, dest interface{}, query string, args ...interface{}) error {
	return exec.SelectContext(ctx, dest, exec.Rebind(query), args...)
}

func exec(ctx context.Context, ex core.DBExecutor, query string, args ...interface{}) (sql.Result, error) {
	return ex.ExecContext(ctx, ex.Rebind(query), args...)
}

func getClassID(ctx context.Context, ex core.DBExecutor, key core.ClassKey, notFound error) (int, error) {
	var id int
	err := get(ctx, ex, &id, `SELECT cl.class_id FROM classes cl`+classKeyJoins, classKeyArgs(key)...)
	return id, trapNoRowsErr(err, notFound, "getting class id")
}

// trapNoRowsErr maps the "no rows" error to notFound.
func trapNoRowsErr(err error, notFound error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return errors.Wrap(err, msg)
}

// constraintErrs maps an insert error to the domain errors of the violated constraint.
type constraintErrs struct {
	unique     error
	foreignKey error
}

func (ce constraintErrs) trap(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case ce.unique != nil && database.IsUniqueViolation(err):
		return ce.unique
	case ce.foreignKey != nil && database.IsForeignKeyViolation(err):
		return ce.foreignKey
	case database.IsSerializationFailure(err):
		return core.ErrTxConflict
	}
	return errors.Wrap(err, msg)
}
