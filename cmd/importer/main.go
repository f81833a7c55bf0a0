package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/moneyledger/money-ledger/internal/importers"
	"github.com/moneyledger/money-ledger/internal/logger"
	"github.com/moneyledger/money-ledger/internal/repositories"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Import data from various statement export formats:
//
//	importer [-database DSN] [-log-level LEVEL] <format> <path>
func main() {
	database := flag.String("database", "", "Database connection string (defaults to $DATABASE_URL)")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] <format> <path>\n\nSupported formats: %s\n\nFlags:\n",
			os.Args[0], strings.Join(importers.Formats(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	format, path := flag.Arg(0), flag.Arg(1)

	if err := run(context.Background(), *database, *logLevel, format, path); err != nil {
		log.Fatalf("import failed: %v", err)
	}
}

// run connects to the store, creates the schema if absent, and executes the
// import as one atomic batch.
func run(ctx context.Context, dsn, logLevel, format, path string) error {
	if err := logger.Initialize(logLevel); err != nil {
		return err
	}
	defer logger.Sync()

	imp, err := importers.Lookup(format)
	if err != nil {
		return err
	}

	if dsn == "" {
		_ = godotenv.Load()
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return fmt.Errorf("no database connection string: pass -database or set DATABASE_URL")
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer db.Close()

	if err := repositories.CreateSchema(ctx, db); err != nil {
		return err
	}

	runner := importers.NewRunner(
		db,
		repositories.NewAccountReadRepository(db, repositories.TxFromContext),
		repositories.NewAccountWriteRepository(db, repositories.TxFromContext),
		repositories.NewWalletWriteRepository(db, repositories.TxFromContext),
		repositories.NewTransactionWriteRepository(db, repositories.TxFromContext),
		repositories.NewFlowWriteRepository(db, repositories.TxFromContext),
	)

	return runner.Run(ctx, imp, path)
}
