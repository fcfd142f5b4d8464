package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/people"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf      *core.Config
	sqlDB     *sql.DB
	peopleSvc people.Service
	validate  *validator.Validate
	out       io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]                                   - run a goose command (up, down, status, ...)")
	fmt.Fprintln(cli.out, "  adduser -role ROLE -fname NAME -lname NAME [-dob DATE] [-subject SUBJ] - create a person and print their uid")
	fmt.Fprintln(cli.out, "  token -uid UID                                           - print a signed API token for a person")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserCmd.SetOutput(cli.out)
	addUserRole := addUserCmd.String("role", "", "Administrator, Professor or Student.")
	addUserFname := addUserCmd.String("fname", "", "The person's first name.")
	addUserLname := addUserCmd.String("lname", "", "The person's last name.")
	addUserDOB := addUserCmd.String("dob", "", "The person's date of birth (YYYY-MM-DD).")
	addUserSubject := addUserCmd.String("subject", "", "The department of a professor or student.")

	tokenCmd := flag.NewFlagSet("token", flag.ContinueOnError)
	tokenCmd.SetOutput(cli.out)
	tokenUID := tokenCmd.String("uid", "", "The uid of the person the token is issued to.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserRole == "" || *addUserFname == "" || *addUserLname == "" {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserRole, *addUserFname, *addUserLname, *addUserDOB, *addUserSubject)
	case "token":
		if err := tokenCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *tokenUID == "" {
			tokenCmd.Usage()
			return errHelp
		}
		return cli.token(*tokenUID)
	default:
		cli.printUsage()
		return errHelp
	}
}
