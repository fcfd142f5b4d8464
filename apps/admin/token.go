package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	echoapi "github.com/code-sharingan/Learning-management-system/apps/api/echo"
)

// token prints a signed API token for an existing person.
func (cli *commandLine) token(uid string) error {
	p, err := cli.peopleSvc.Get(context.Background(), uid)
	if err != nil {
		return errors.Wrap(err, "finding person")
	}
	token, err := echoapi.GenerateToken(echoapi.NewClaims(p, cli.conf), cli.conf.SecretKey)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	fmt.Fprintln(cli.out, token)
	return nil
}
