package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/people"
)

// addUser creates a person and prints the uid they were given.
func (cli *commandLine) addUser(role, fname, lname, dob, subject string) error {
	np := people.NewPerson{
		Role:      core.CleanString(role),
		FirstName: fname,
		LastName:  lname,
		Subject:   subject,
	}
	if dob != "" {
		d, err := core.ParseDate(dob)
		if err != nil {
			return errors.Wrap(err, "parsing dob")
		}
		np.DOB = d
	}
	if err := np.Validate(cli.validate); err != nil {
		return err
	}

	p, err := cli.peopleSvc.Create(context.Background(), np)
	if err != nil {
		return errors.Wrap(err, "creating person")
	}
	fmt.Fprintln(cli.out, p.UID)
	return nil
}
