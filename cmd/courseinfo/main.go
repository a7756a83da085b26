package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Guilhem-Bonnet/courseinfo/internal/adapters/sqlite"
	"github.com/Guilhem-Bonnet/courseinfo/internal/app"
	"github.com/Guilhem-Bonnet/courseinfo/internal/config"
)

func main() {
	def := config.Default()
	dbPath := flag.String("db", def.DBPath, "Chemin SQLite (ex: courses.db)")
	baseURL := flag.String("base-url", def.BaseURL, "URL de base du provider")
	timeout := flag.Duration("timeout", def.HTTPTimeout, "Timeout HTTP")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	args := flag.Args()
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(os.Stderr, "Usage: courseinfo [flags] <author-id>")
		os.Exit(2)
	}
	authorID := args[0]

	ctx := context.Background()
	db, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		logger.Fatal().Err(err).Str("db", *dbPath).Msg("failed to open db")
	}
	defer func() { _ = db.Close() }()

	repo := sqlite.NewCoursesRepository(db.SQL)
	retriever := app.NewPluralsightService(*baseURL, *timeout)
	catalog := app.NewCourseCatalogService(repo, retriever, *baseURL, nil)

	logger.Info().Str("author", authorID).Msg("retrieving courses")
	stored, err := catalog.Sync(ctx, authorID)
	if err != nil {
		logger.Fatal().Err(err).Str("author", authorID).Msg("sync failed")
	}
	logger.Info().Int("stored", stored).Str("db", *dbPath).Msg("courses saved")
}
