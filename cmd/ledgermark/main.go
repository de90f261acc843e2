// Command ledgermark invokes the events contract against a configured host
// event log, recording an admin identity as an "init" event.
package main

import (
	"context"
	"database/sql"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/lib/pq"  // Postgres driver
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Mindburn-Labs/ledgermark/pkg/config"
	"github.com/Mindburn-Labs/ledgermark/pkg/contract"
	"github.com/Mindburn-Labs/ledgermark/pkg/host"
	"github.com/Mindburn-Labs/ledgermark/pkg/identity"
)

func main() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run is the entrypoint, split out for testing.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("ledgermark", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kind := fs.String("kind", string(identity.KindEd25519), "admin identity kind: ed25519, account, or contract")
	key := fs.String("key", "", "hex key material for ed25519/contract identities")
	account := fs.String("account", "", "account identifier for account identities")
	backend := fs.String("backend", "", "event log backend: memory, stdout, postgres, sqlite, or redis")
	profile := fs.String("profile", cfg.ProfilePath, "path to a YAML wiring profile")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	if *profile != "" {
		p, err := config.LoadProfile(*profile)
		if err != nil {
			logger.Error("profile load failed", "path", *profile, "error", err)
			return 1
		}
		p.Apply(cfg)
	}
	// Flags take precedence over both the profile and the environment.
	if *backend != "" {
		cfg.Backend = *backend
	}

	admin, err := buildIdentity(*kind, *key, *account)
	if err != nil {
		logger.Error("invalid admin identity", "error", err)
		return 1
	}

	env, cleanup, err := buildEnv(cfg.Backend, cfg, stdout)
	if err != nil {
		logger.Error("event log setup failed", "backend", cfg.Backend, "error", err)
		return 1
	}
	defer cleanup()

	ctx := context.Background()
	if err := contract.New(env).Init(ctx, admin); err != nil {
		logger.Error("init failed", "error", err)
		return 1
	}

	logger.Info("admin identity recorded", "kind", admin.Kind(), "backend", cfg.Backend)
	return 0
}

func buildIdentity(kind, key, account string) (identity.Identity, error) {
	switch identity.Kind(kind) {
	case identity.KindEd25519:
		raw, err := hex.DecodeString(key)
		if err != nil {
			return identity.Identity{}, fmt.Errorf("decode key material: %w", err)
		}
		return identity.NewEd25519(raw)
	case identity.KindContract:
		raw, err := hex.DecodeString(key)
		if err != nil {
			return identity.Identity{}, fmt.Errorf("decode key material: %w", err)
		}
		return identity.NewContract(raw)
	case identity.KindAccount:
		return identity.NewAccount(account)
	default:
		return identity.Identity{}, fmt.Errorf("unrecognized identity kind %q", kind)
	}
}

func buildEnv(backend string, cfg *config.Config, stdout io.Writer) (host.Env, func(), error) {
	noop := func() {}
	switch backend {
	case "memory":
		log := host.NewMemoryLog()
		if cfg.MaxEvents > 0 {
			log.WithMaxEntries(cfg.MaxEvents)
		}
		return log, noop, nil
	case "stdout":
		return host.NewWriterLogWithWriter(stdout), noop, nil
	case "postgres":
		return openSQLBackend("postgres", cfg.DatabaseURL)
	case "sqlite":
		return openSQLBackend("sqlite", cfg.DatabasePath)
	case "redis":
		log := host.NewRedisLog(cfg.RedisAddr, "", 0, cfg.RedisStream)
		return log, func() { _ = log.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unrecognized backend %q", backend)
	}
}

func openSQLBackend(driver, dsn string) (host.Env, func(), error) {
	noop := func() {}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, noop, fmt.Errorf("open database: %w", err)
	}
	log := host.NewSQLLog(db)
	if err := log.Init(context.Background()); err != nil {
		_ = db.Close()
		return nil, noop, fmt.Errorf("init event table: %w", err)
	}
	return log, func() { _ = db.Close() }, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
