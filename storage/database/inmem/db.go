// Package inmemdb implements the domain repositories in memory, enforcing the same
// uniqueness and reference constraints as the SQL schema. It backs the tests.
package inmemdb

import (
	"context"
	"database/sql"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/catalog"
	"github.com/code-sharingan/Learning-management-system/core/coursework"
	"github.com/code-sharingan/Learning-management-system/core/enrollment"
	"github.com/code-sharingan/Learning-management-system/core/people"
	"github.com/code-sharingan/Learning-management-system/core/schedule"
)

var errSQLNotSupported = errors.New("inmemdb: SQL statements are not supported")

type (
	enrollKey struct {
		uid     string
		classID int
	}

	submissionKey struct {
		uid          string
		assignmentID int
	}

	tables struct {
		departments map[string]catalog.Department
		courses     map[int]catalog.Course
		people      map[string]people.Person
		classes     map[int]schedule.Class
		categories  map[int]coursework.Category
		assignments map[int]coursework.Assignment
		enrolled    map[enrollKey]enrollment.Enrollment
		submissions map[submissionKey]coursework.Submission
		seq         int
	}
)

func newTables() *tables {
	return &tables{
		departments: make(map[string]catalog.Department),
		courses:     make(map[int]catalog.Course),
		people:      make(map[string]people.Person),
		classes:     make(map[int]schedule.Class),
		categories:  make(map[int]coursework.Category),
		assignments: make(map[int]coursework.Assignment),
		enrolled:    make(map[enrollKey]enrollment.Enrollment),
		submissions: make(map[submissionKey]coursework.Submission),
	}
}

func (t *tables) nextID() int {
	t.seq++
	return t.seq
}

func (t *tables) clone() *tables {
	c := newTables()
	for k, v := range t.departments {
		c.departments[k] = v
	}
	for k, v := range t.courses {
		c.courses[k] = v
	}
	for k, v := range t.people {
		c.people[k] = v
	}
	for k, v := range t.classes {
		c.classes[k] = v
	}
	for k, v := range t.categories {
		c.categories[k] = v
	}
	for k, v := range t.assignments {
		c.assignments[k] = v
	}
	for k, v := range t.enrolled {
		c.enrolled[k] = v
	}
	for k, v := range t.submissions {
		c.submissions[k] = v
	}
	c.seq = t.seq
	return c
}

// classID resolves a class by its natural key.
func (t *tables) classID(key core.ClassKey) (int, bool) {
	for _, cls := range t.classes {
		crs := t.courses[cls.CourseID]
		if crs.Subject == key.Subject && crs.Number == key.Number && cls.Season == key.Season && cls.Year == key.Year {
			return cls.ID, true
		}
	}
	return 0, false
}

func (t *tables) hasRole(uid, role string) bool {
	p, ok := t.people[uid]
	return ok && p.Role == role
}

// executor rejects raw SQL; the repositories of this package do not issue any.
type executor struct{}

func (executor) DriverName() string       { return "inmem" }
func (executor) Rebind(q string) string    { return q }
func (executor) BindNamed(string, interface{}) (string, []interface{}, error) {
	return "", nil, errSQLNotSupported
}
func (executor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errSQLNotSupported
}
func (executor) QueryxContext(context.Context, string, ...interface{}) (*sqlx.Rows, error) {
	return nil, errSQLNotSupported
}
func (executor) QueryRowxContext(context.Context, string, ...interface{}) *sqlx.Row {
	return nil
}
func (executor) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, errSQLNotSupported
}
func (executor) GetContext(context.Context, interface{}, string, ...interface{}) error {
	return errSQLNotSupported
}
func (executor) SelectContext(context.Context, interface{}, string, ...interface{}) error {
	return errSQLNotSupported
}

// DB is an in-memory core.DB. Transactions snapshot every table on Begin and restore
// the snapshot on Rollback, so they must not interleave.
type DB struct {
	executor

	mutex sync.Mutex
	data  *tables
}

var _ core.DB = (*DB)(nil) // interface compliance check

func New() *DB {
	return &DB{data: newTables()}
}

func (db *DB) Begin(_ context.Context, _ *sql.TxOptions) (core.DBTransactor, error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	return &tx{db: db, snapshot: db.data.clone()}, nil
}

func (db *DB) Close() error { return nil }

// Reset drops every row.
func (db *DB) Reset() {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.data = newTables()
}

// read runs fn holding the lock.
func (db *DB) read(fn func(t *tables)) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	fn(db.data)
}

// write runs fn holding the lock.
func (db *DB) write(fn func(t *tables) error) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	return fn(db.data)
}

type tx struct {
	executor

	db       *DB
	snapshot *tables
	done     bool
}

func (t *tx) Commit() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true
	return nil
}

func (t *tx) Rollback() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true
	t.db.mutex.Lock()
	defer t.db.mutex.Unlock()
	t.db.data = t.snapshot
	return nil
}
