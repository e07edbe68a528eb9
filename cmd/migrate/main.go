// Command migrate applies the embedded schema migrations against the
// PostgreSQL instance from the service configuration.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"sklad/config"
	"sklad/internal/infra/persistence/migrate"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		fatalf("load config failed: %v", err)
	}
	if cfg.Postgres == nil {
		fatalf("postgres configuration is required")
	}

	databaseURL := migrate.URLFromParts(
		cfg.Postgres.UserName,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DBName,
		cfg.Postgres.SSLMode,
	)

	switch args[0] {
	case "up":
		if err := migrate.Up(databaseURL); err != nil {
			fatalf("up failed: %v", err)
		}
		slog.Info("migrations applied")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				fatalf("down: invalid steps argument %q", args[1])
			}
			steps = n
		}
		if err := migrate.Down(databaseURL, steps); err != nil {
			fatalf("down failed: %v", err)
		}
		slog.Info("migrations rolled back", slog.Int("steps", steps))

	case "version":
		version, dirty, err := migrate.Version(databaseURL)
		if err != nil {
			fatalf("version failed: %v", err)
		}
		fmt.Printf("version: %d  dirty: %v\n", version, dirty)

	case "force":
		if len(args) < 2 {
			fatalf("force: version argument required")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			fatalf("force: invalid version %q", args[1])
		}
		if err := migrate.Force(databaseURL, version); err != nil {
			fatalf("force failed: %v", err)
		}
		slog.Info("migration version forced", slog.Int("version", version))

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Roll back N migrations (default: 1)
  version      Print current migration version
  force <V>    Force set migration version (recover from dirty state)`)
}

func fatalf(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
