package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josbet/floreria/config"
	"github.com/josbet/floreria/database/seeders"
	"github.com/josbet/floreria/pkg/database"
	"github.com/josbet/floreria/pkg/migration"
)

// bootDB loads config and opens the database connection.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	if _, err := database.Connect(); err != nil {
		return err
	}
	return nil
}

// floreria migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Running migrations…")
		return migration.New(database.DB).Run()
	},
}

// floreria migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Rolling back last batch…")
		return migration.New(database.DB).Rollback()
	},
}

// floreria migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Status()
	},
}

// floreria seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Running seeders…")
		return seeders.RunAll(database.DB)
	},
}

// floreria init-db — migrate plus seed, safe to run repeatedly.
var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the schema and seed the admin user and starter catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Running migrations…")
		if err := migration.New(database.DB).Run(); err != nil {
			return err
		}
		fmt.Println("Running seeders…")
		if err := seeders.RunAll(database.DB); err != nil {
			return err
		}
		fmt.Println("Database ready.")
		return nil
	},
}
