package main

import (
	"github.com/code-sharingan/Learning-management-system/storage/database"
)

var gooseRunFunc = database.RunMigrations // mockable

func (cli *commandLine) migrate(args []string) error {
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(cli.sqlDB, cli.conf.Database.Engine, args[0], arguments...)
}
