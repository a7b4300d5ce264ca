package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"moodprobe/adapters/memstore"
	"moodprobe/app"
	"moodprobe/domain/bank"
	"moodprobe/domain/belief"
	"moodprobe/domain/catalog"
	"moodprobe/internal"
	"moodprobe/internal/api"
	"moodprobe/internal/config"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	cat := catalog.Default()
	b, err := bank.Default(cat)
	if err != nil {
		// Static bank/catalog mismatch is fatal at startup.
		log.Fatalf("question bank validation failed: %v", err)
	}
	logger.Info("loaded %d states, %d questions", cat.Len(), b.Len())

	store := memstore.New()
	service := app.NewAssessmentServiceWithModels(cat, b, store,
		cfg.Assessment.Likelihood(), belief.UniformResponse{}, cfg.Assessment.Criteria())
	server := api.NewServer(service, logger)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("assessment API listening on :%s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}
	logger.Info("shut down cleanly")
}
