package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

func main() {
	var postgresURL, migrationsPath string
	var down bool

	pflag.StringVar(&postgresURL, "postgresURL", os.Getenv("POSTGRES_CONN"), "path to storage")
	pflag.StringVar(&migrationsPath, "migrations", "migrations", "path to migrations")
	pflag.BoolVar(&down, "down", false, "roll back all migrations")
	pflag.Parse()

	if postgresURL == "" {
		panic("postgresURL is required")
	}

	m, err := migrate.New(
		"file://"+migrationsPath,
		postgresURL,
	)
	if err != nil {
		panic(err)
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}

		panic(err)
	}
}
