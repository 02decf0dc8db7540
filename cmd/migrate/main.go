package main

import (
	"context"
	"flag"
	"log/slog"
	"net/url"
	"os"
	"time"

	"hall-booking/internal/handler/middleware"
	"hall-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
)

// migrate applies the SQL files under migrations/ with the atlas CLI.
// atlas.sum must be regenerated (atlas migrate hash) whenever a migration changes.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(*dir)),
	)
	if err != nil {
		logger.Error("failed to prepare migration directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), *bin)
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    databaseURL(cfg.DB),
		DryRun: *dryRun,
	})
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	for _, applied := range res.Applied {
		logger.Info("migration applied", "version", applied.Version, "dry_run", *dryRun)
	}
	logger.Info("database is up to date", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
}

func databaseURL(c config.DBConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}
