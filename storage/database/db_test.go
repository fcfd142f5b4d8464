package database

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/code-sharingan/Learning-management-system/core"
)

func TestErrorClassifiers(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		unique        bool
		foreignKey    bool
		serialization bool
	}{
		{name: "nil", err: nil},
		{name: "plain", err: errors.New("boom")},
		{name: "pq unique", err: &pq.Error{Code: "23505"}, unique: true},
		{name: "pq foreign key", err: &pq.Error{Code: "23503"}, foreignKey: true},
		{name: "pq serialization", err: &pq.Error{Code: "40001"}, serialization: true},
		{name: "pq deadlock", err: &pq.Error{Code: "40P01"}, serialization: true},
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: 1062}, unique: true},
		{name: "mysql foreign key", err: &mysql.MySQLError{Number: 1452}, foreignKey: true},
		{name: "mysql deadlock", err: &mysql.MySQLError{Number: 1213}, serialization: true},
		{name: "wrapped", err: errors.Wrap(&pq.Error{Code: "23505"}, "inserting"), unique: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err), "IsUniqueViolation")
			assert.Equal(t, tt.foreignKey, IsForeignKeyViolation(tt.err), "IsForeignKeyViolation")
			assert.Equal(t, tt.serialization, IsSerializationFailure(tt.err), "IsSerializationFailure")
		})
	}
}

func TestDSN(t *testing.T) {
	conf := &core.Config{Database: core.DatabaseConfig{
		Engine:        core.EnginePostgres,
		Host:          "db",
		Port:          5432,
		Name:          "lms",
		User:          "lms",
		Password:      "secret",
		AdminUser:     "postgres",
		AdminPassword: "root",
		DisableTLS:    true,
	}}
	assert.Equal(t, "postgres://lms:secret@db:5432/lms?sslmode=disable&timezone=utc", dsn("lms", false, conf))
	assert.Equal(t, "postgres://postgres:root@db:5432/postgres?sslmode=disable&timezone=utc", dsn("postgres", true, conf))

	conf.Database.Engine = core.EngineMySQL
	conf.Database.Port = 3306
	cfg, err := mysql.ParseDSN(dsn("lms", false, conf))
	assert.NoError(t, err)
	assert.Equal(t, "lms", cfg.User)
	assert.Equal(t, "db:3306", cfg.Addr)
	assert.Equal(t, "lms", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.True(t, cfg.ClientFoundRows)
}

func TestMigrationsDir(t *testing.T) {
	assert.Equal(t, "migrations/postgres", MigrationsDir(core.EnginePostgres))
	assert.Equal(t, "migrations/mysql", MigrationsDir(core.EngineMySQL))
}
