// Command seed loads demo users into the Sustainify database.
//
//	seed [-force] [-- server flags]
//
// Database settings are read the same way the server reads them, so
//
//	DATABASE_URL=sustainify.db seed
//	seed -force -- -t postgres -d "postgres://..."
//
// both work. Without -force nothing is inserted into a non-empty table.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sustainify/server/cliparse"
	"github.com/sustainify/server/db"
	"github.com/sustainify/server/models"
	"github.com/sustainify/server/store"
)

var demoUsers = []struct {
	name  string
	score int64
}{
	{"John Doe", 950},
	{"Jane Smith", 875},
	{"Robert Johnson", 810},
	{"Emily Davis", 790},
	{"Michael Brown", 760},
	{"Sarah Wilson", 720},
	{"David Miller", 705},
	{"Jessica Taylor", 690},
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	flags := flag.NewFlagSet("seed", flag.ExitOnError)
	force := flags.Bool("force", false, "Insert demo users even if users already exist")
	flags.Parse(os.Args[1:])

	cfg, err := cliparse.ParseFlags(flags.Args())
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	ctx := context.Background()
	if err := db.CreateSchema(ctx, conn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

	n, err := seedUsers(ctx, store.New(conn, nil), *force)
	if err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Seeding done", "inserted", n)
}

// seedUsers inserts the demo users and returns how many were written.
func seedUsers(ctx context.Context, s *store.Store, force bool) (int, error) {
	existing, err := s.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	if existing > 0 && !force {
		slog.Info("users already present, skipping", "count", existing)
		return 0, nil
	}

	for i, d := range demoUsers {
		u, err := s.CreateUser(ctx, models.NewUser{
			Username: d.name,
			Email:    emailFor(d.name),
			Score:    d.score,
		})
		if err != nil {
			return i, err
		}
		slog.Debug("seeded user", "id", u.ID, "username", u.Username)
	}
	return len(demoUsers), nil
}

func emailFor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
}
