// Package main is the dbhelper command that inspects and checks the engines defined in the settings files.
package main

import (
	"fmt"
	"os"

	// Register the gorm dialects and the database/sql drivers.
	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	// Register the engine drivers.
	_ "github.com/neuronlabs/dbhelper/drivers/gormdriver"
	_ "github.com/neuronlabs/dbhelper/drivers/sqlxdriver"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
