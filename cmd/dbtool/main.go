// Command dbtool prepares the loadbook database outside of the service:
//
//	dbtool migrate   create or update tables and indexes
//	dbtool seed      migrate, then insert sample data into an empty database
//	dbtool reset     delete every load and booking
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"loadbook/cmd"
	"loadbook/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) != 2 {
		usage()
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx := context.Background()
	sqlDB, err := sql.Open("postgres", configs.URL())
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer sqlDB.Close()

	if err = sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("Error connecting to %s: %v", configs.DBName, describe(err))
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error opening gorm session: %v", err)
	}

	switch os.Args[1] {
	case "migrate":
		err = postgres.Migrate(gormDB)
	case "seed":
		err = seed(ctx, configs, gormDB)
	case "reset":
		err = reset(ctx, sqlDB)
	default:
		usage()
	}
	if err != nil {
		log.Fatalf("%s failed: %v", os.Args[1], describe(err))
	}
	log.Infof("%s complete", os.Args[1])
}

func seed(ctx context.Context, configs cmd.Config, gormDB *gorm.DB) error {
	if err := postgres.Migrate(gormDB); err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	_, err := app.CreateSeeder().Run(ctx)
	return err
}

// reset empties the tables in one statement; the schema is kept.
func reset(ctx context.Context, db *sql.DB) error {
	tables := []string{pq.QuoteIdentifier("bookings"), pq.QuoteIdentifier("loads")}
	_, err := db.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", strings.Join(tables, ", ")))
	return err
}

// describe adds the SQLSTATE and hint of server errors to the message.
func describe(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err.Error()
	}
	msg := fmt.Sprintf("%s (SQLSTATE %s)", pqErr.Message, pqErr.Code)
	if pqErr.Hint != "" {
		msg += ": " + pqErr.Hint
	}
	return msg
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dbtool migrate|seed|reset")
	os.Exit(2)
}
