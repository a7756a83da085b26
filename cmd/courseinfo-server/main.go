package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Guilhem-Bonnet/courseinfo/internal/adapters/httpapi"
	"github.com/Guilhem-Bonnet/courseinfo/internal/adapters/memorybus"
	"github.com/Guilhem-Bonnet/courseinfo/internal/adapters/sqlite"
	"github.com/Guilhem-Bonnet/courseinfo/internal/app"
	"github.com/Guilhem-Bonnet/courseinfo/internal/buildinfo"
	"github.com/Guilhem-Bonnet/courseinfo/internal/config"
)

func main() {
	def := config.Default()
	addr := flag.String("addr", def.Addr, "Adresse d'écoute (ex: 127.0.0.1:8080)")
	dbPath := flag.String("db", def.DBPath, "Chemin SQLite (ex: courses.db)")
	baseURL := flag.String("base-url", def.BaseURL, "URL de base du provider")
	timeout := flag.Duration("timeout", def.HTTPTimeout, "Timeout HTTP sortant")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", "courseinfo-server").Logger()
	log.Logger = logger

	logger.Info().Interface("build", buildinfo.Current()).Str("db", *dbPath).Msg("starting")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open db")
	}
	defer func() { _ = db.Close() }()

	bus := memorybus.New()
	defer bus.Close()

	repo := sqlite.NewCoursesRepository(db.SQL)
	retriever := app.NewPluralsightService(*baseURL, *timeout)
	catalog := app.NewCourseCatalogService(repo, retriever, *baseURL, bus)

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := httpapi.NewServer(logger, catalog, bus)
	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", *addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server crashed")
			stop()
		}
	}()

	<-shutdownCtx.Done()
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
	logger.Info().Msg("bye")
}
