package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/code-sharingan/Learning-management-system/apps/api/echo"
	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/people"
	"github.com/code-sharingan/Learning-management-system/storage/database/inmem"
	"github.com/code-sharingan/Learning-management-system/tests"
)

var peopleSvc people.Service

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	// set up DB & repos
	db := inmemdb.New()
	repos := testutil.NewInmemRepos(db)
	fx := testutil.Fixture{T: t, DB: db, Repos: repos}
	fx.CreateDepartment("CS", "Computer Science")
	peopleSvc = people.NewService(db, repos.People)

	validate, _ := core.NewValidator()
	var out bytes.Buffer

	// start CLI
	return &commandLine{
		conf: &core.Config{
			AppName:   "LMS",
			SecretKey: "secret",
			Server:    core.ServerConfig{JWTExpirationDelta: time.Hour},
			Database:  core.DatabaseConfig{Engine: core.EnginePostgres},
		},
		peopleSvc: peopleSvc,
		validate:  validate,
		out:       &out,
	}, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    string
}

func runCLITests(t *testing.T, cli *commandLine, out *bytes.Buffer, tests []cliTest) {
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			case err != nil:
				t.Errorf("cli.run() unexpected error = %v", err)
			}
			if tt.wantOut != "" && out.String() != tt.wantOut {
				t.Errorf("cli.run() out = %q, wantOut %q", out.String(), tt.wantOut)
			}
		})
	}
}

func Test_commandLine_migrate(t *testing.T) {
	cli, out := setup(t)

	var gotEngine string
	gooseRunFunc = func(db *sql.DB, engine, command string, args ...string) error {
		gotEngine = engine
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to":
			if len(args) == 0 {
				return fmt.Errorf("up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		case "down-to":
			if len(args) == 0 {
				return fmt.Errorf("down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "down-to: non-int arg", args: []string{"migrate", "down-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-to", args: []string{"migrate", "up-to", "2"}},
		{name: "down-to", args: []string{"migrate", "down-to", "1"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "create", args: []string{"migrate", "create", "grades", "sql"}},
	}
	runCLITests(t, cli, out, tests)
	assert.Equal(t, core.EnginePostgres, gotEngine)
}

func Test_commandLine_addUser(t *testing.T) {
	cli, out := setup(t)

	tests := []cliTest{
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "missing names", args: []string{"adduser", "-role", "Student"}, wantErr: errHelp},
		{name: "unknown department", args: []string{"adduser", "-role", "Student", "-fname", "Ada", "-lname", "Lovelace", "-subject", "BIO"}, wantErrStr: "creating person: department not found"},
		{name: "administrator", args: []string{"adduser", "-role", "Administrator", "-fname", "Root", "-lname", "Admin"}, wantOut: "u0000001\n"},
		{name: "student", args: []string{"adduser", "-role", "Student", "-fname", "Ada", "-lname", "Lovelace", "-dob", "1815-12-10", "-subject", "cs"}, wantOut: "u0000002\n"},
	}
	runCLITests(t, cli, out, tests)

	err := cli.run([]string{"admin", "adduser", "-role", "Student", "-fname", "Ada", "-lname", "Lovelace", "-dob", "10/12/1815", "-subject", "CS"})
	assert.Error(t, err)

	err = cli.run([]string{"admin", "adduser", "-role", "Dean", "-fname", "Ada", "-lname", "Lovelace", "-subject", "CS"})
	var vErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &vErrs), "want validation errors, got %v", err)

	p, err := peopleSvc.Get(context.Background(), "u0000002")
	require.NoError(t, err)
	assert.Equal(t, "CS", p.Subject)
	assert.Equal(t, core.NewDate(1815, time.December, 10), p.DOB)
}

func Test_commandLine_token(t *testing.T) {
	cli, out := setup(t)
	require.NoError(t, cli.run([]string{"admin", "adduser", "-role", "Professor", "-fname", "Danny", "-lname", "Kopta", "-subject", "CS"}))

	tests := []cliTest{
		{name: "no args", args: []string{"token"}, wantErr: errHelp},
		{name: "unknown person", args: []string{"token", "-uid", "u0000099"}, wantErrStr: "finding person: person not found"},
	}
	runCLITests(t, cli, out, tests)

	out.Reset()
	require.NoError(t, cli.run([]string{"admin", "token", "-uid", "u0000001"}))
	claims := new(echoapi.Claims)
	_, err := jwt.ParseWithClaims(strings.TrimSpace(out.String()), claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "u0000001", claims.Subject)
	assert.Equal(t, people.RoleProfessor, claims.Role)
}
