package main

import (
	"fmt"
	"os"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/people"
	"github.com/code-sharingan/Learning-management-system/services/logger"
	"github.com/code-sharingan/Learning-management-system/storage/database"
	"github.com/code-sharingan/Learning-management-system/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(logsvc.NewStdLogger("ADMIN : ", conf), conf)
	logger.Enable(!conf.Debug)

	// set up DB
	if err := database.CreateIfNotExist(conf); err != nil {
		logger.Fatal(fmt.Sprintf("creating database: %v", err), err)
	}
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
	}

	validate, _ := core.NewValidator()

	// start CLI
	cli := commandLine{
		conf:      conf,
		sqlDB:     db.DB.DB,
		peopleSvc: people.NewService(db, sqlxrepos.NewPeopleRepository()),
		validate:  validate,
		out:       os.Stdout,
	}
	err = cli.run(os.Args)
	_ = db.Close()
	if err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %v", err), err)
		}
		os.Exit(1)
	}
}
