package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/trezcool/goose"

	"github.com/code-sharingan/Learning-management-system/core"
	appfs "github.com/code-sharingan/Learning-management-system/fs"
)

// DB wraps *sqlx.DB to satisfy core.DB.
type DB struct {
	*sqlx.DB
}

var _ core.DB = (*DB)(nil) // interface compliance check

func (db *DB) Begin(ctx context.Context, opts *sql.TxOptions) (core.DBTransactor, error) {
	sqlxTx, err := db.BeginTxx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &tx{sqlxTx}, nil
}

type tx struct {
	*sqlx.Tx
}

// Commit reports transactions aborted by a concurrent one as core.ErrTxConflict.
func (t *tx) Commit() error {
	if err := t.Tx.Commit(); err != nil {
		if IsSerializationFailure(err) {
			return core.ErrTxConflict
		}
		return err
	}
	return nil
}

func dsn(dbName string, admin bool, conf *core.Config) string {
	username, password := conf.Database.User, conf.Database.Password
	if admin && conf.Database.AdminUser != "" {
		username, password = conf.Database.AdminUser, conf.Database.AdminPassword
	}

	if conf.Database.Engine == core.EngineMySQL {
		cfg := mysql.NewConfig()
		cfg.User = username
		cfg.Passwd = password
		cfg.Net = "tcp"
		cfg.Addr = conf.Database.Address()
		cfg.DBName = dbName
		cfg.ParseTime = true
		cfg.ClientFoundRows = true
		cfg.Loc = time.UTC
		cfg.Params = map[string]string{"time_zone": "'+00:00'"}
		cfg.TLSConfig = "preferred"
		if conf.Database.DisableTLS {
			cfg.TLSConfig = "false"
		}
		return cfg.FormatDSN()
	}

	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     conf.Database.Address(),
		Path:     dbName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func open(dbName string, admin bool, conf *core.Config) (*sqlx.DB, error) {
	return sqlx.Open(conf.Database.Engine, dsn(dbName, admin, conf))
}

// Open opens the application database and waits for it to answer.
func Open(conf *core.Config) (*DB, error) {
	db, err := open(conf.Database.Name, false, conf)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{db}, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

func exists(db *sqlx.DB, query string, args ...interface{}) (bool, error) {
	var found []int
	if err := db.Select(&found, db.Rebind(query), args...); err != nil {
		return false, err
	}
	return len(found) > 0, nil
}

func createAppUser(db *sqlx.DB, conf *core.Config) error {
	if conf.Database.User == "" || conf.Database.Engine != core.EnginePostgres {
		return nil
	}

	found, err := exists(db, "SELECT 1 FROM pg_roles WHERE rolname = ?", conf.Database.User)
	if err != nil {
		return errors.Wrap(err, "checking app user")
	}
	if !found {
		q := fmt.Sprintf(
			"CREATE USER %s CREATEDB ENCRYPTED PASSWORD %s",
			pq.QuoteIdentifier(conf.Database.User), pq.QuoteLiteral(conf.Database.Password),
		)
		if _, err = db.Exec(q); err != nil {
			return errors.Wrap(err, "creating app user")
		}
	}
	return nil
}

func createDB(db *sqlx.DB, conf *core.Config) error {
	if conf.Database.Engine == core.EngineMySQL {
		q := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", conf.Database.Name)
		if _, err := db.Exec(q); err != nil {
			return errors.Wrap(err, "creating database")
		}
		return nil
	}

	found, err := exists(db, "SELECT 1 FROM pg_database WHERE datname = ?", conf.Database.Name)
	if err != nil {
		return errors.Wrap(err, "checking DB")
	}
	if !found {
		if _, err = db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(conf.Database.Name)); err != nil {
			return errors.Wrap(err, "creating database")
		}
	}
	return nil
}

// maintenanceDB is the database connected to while the application one may not exist yet.
func maintenanceDB(conf *core.Config) string {
	if conf.Database.Engine == core.EngineMySQL {
		return ""
	}
	return "postgres"
}

// CreateIfNotExist creates the application user (postgres only) and database.
func CreateIfNotExist(conf *core.Config) error {
	// connect as admin
	db, err := open(maintenanceDB(conf), true, conf)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer func() { _ = db.Close() }()

	if err = ping(db); err != nil {
		return errors.Wrap(err, "pinging database")
	}
	if err = createAppUser(db, conf); err != nil {
		return errors.Wrap(err, "creating app user")
	}
	if conf.Database.Engine == core.EngineMySQL {
		return createDB(db, conf)
	}

	// create DB as app user
	appDB, err := open(maintenanceDB(conf), false, conf)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer func() { _ = appDB.Close() }()
	return createDB(appDB, conf)
}

// MigrationsDir returns the embedded migrations directory of the engine.
func MigrationsDir(engine string) string {
	return path.Join("migrations", engine)
}

// RunMigrations runs a goose command against the embedded migrations of the engine.
func RunMigrations(db *sql.DB, engine, command string, args ...string) error {
	if err := goose.SetDialect(engine); err != nil {
		return errors.Wrap(err, "setting migrations dialect")
	}
	return goose.RunFS(command, db, appfs.FS, MigrationsDir(engine), args...)
}

// Migrate applies every pending migration.
func Migrate(db *DB) error {
	if err := RunMigrations(db.DB.DB, db.DriverName(), "up"); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}

// IsUniqueViolation reports whether err was raised by a unique or primary key constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return false
}

// IsForeignKeyViolation reports whether err was raised by a missing referenced row.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1452
	}
	return false
}

// IsSerializationFailure reports whether err aborted a transaction that may be retried.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1213 || myErr.Number == 1205
	}
	return false
}
