// Package main is the entrypoint for the devplane API server.
//
// The server exposes configuration resolution and cost estimation over
// HTTP so other tooling can price environments without shelling out to
// the CLI. See internal/api for the routes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/devplane/devplane/internal/api"
	"github.com/devplane/devplane/internal/logging"
	"github.com/devplane/devplane/internal/pricing"
	"github.com/devplane/devplane/internal/store"
)

// Version is set at build time
var Version = "dev"

func main() {
	var (
		addr      string
		logLevel  string
		logFormat string
		builtin   bool
	)

	flag.StringVar(&addr, "addr", ":8090", "The address the API server binds to.")
	flag.StringVar(&logLevel, "log-level", "info", "Minimum log level (debug, info, warn, error).")
	flag.StringVar(&logFormat, "log-format", "", "Log format (console or json). Empty picks console on a terminal.")
	flag.BoolVar(&builtin, "builtin", false, "Price against the builtin table, ignoring snapshots.")
	flag.Parse()

	if err := logging.Init(logging.Config{Level: logLevel, Format: logFormat}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logging.Sync()

	table := activeTable(builtin)

	logging.Sugar.Infow("starting devplane-server",
		"version", Version,
		"addr", addr,
		"table_version", table.Version,
	)

	srv := api.NewServerWithTable(Version, table)
	if err := srv.ListenAndServe(addr); err != nil {
		logging.Sugar.Errorw("server stopped", "error", err)
		os.Exit(1)
	}
}

// activeTable returns the newest stored price snapshot, falling back to the
// builtin table when no store or snapshot is available. Mirrors what the CLI
// does for plan and cost.
func activeTable(builtin bool) *pricing.Table {
	if builtin {
		return pricing.DefaultTable()
	}

	dbURL, err := store.DefaultDatabaseURL()
	if err != nil {
		logging.Sugar.Debugw("no local store, using builtin prices", "error", err)
		return pricing.DefaultTable()
	}
	db, err := store.OpenFromURL(dbURL)
	if err != nil {
		logging.Sugar.Debugw("no local store, using builtin prices", "error", err)
		return pricing.DefaultTable()
	}
	if err := store.AutoMigrate(db); err != nil {
		logging.Sugar.Debugw("store migration failed, using builtin prices", "error", err)
		return pricing.DefaultTable()
	}

	snap, err := store.NewSnapshotRepository(db).Latest(context.Background())
	if err != nil {
		logging.Sugar.Debugw("no price snapshot stored, using builtin prices", "error", err)
		return pricing.DefaultTable()
	}

	logging.Sugar.Infow("serving prices from snapshot",
		"table_version", snap.Table.Version,
		"fetched_at", snap.CreatedAt,
	)
	return snap.Table
}
