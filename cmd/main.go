package main

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/eduforge/intern-matcher/internal/clients/gemini"
	"github.com/eduforge/intern-matcher/internal/clients/serp"
	"github.com/eduforge/intern-matcher/internal/config"
	"github.com/eduforge/intern-matcher/internal/logger"
	"github.com/eduforge/intern-matcher/internal/metrics"
	"github.com/eduforge/intern-matcher/internal/repositories"
	"github.com/eduforge/intern-matcher/internal/server"
	"github.com/eduforge/intern-matcher/internal/services"
	"github.com/eduforge/intern-matcher/internal/sessions"
	log "github.com/sirupsen/logrus"
	"os/signal"
	"syscall"
	"time"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	aiClient, err := gemini.NewClient(ctx, cfg.AI.Key, gemini.Model(cfg.AI.Model))
	if err != nil {
		log.Fatalf("can't create AI client: %v", err)
	}
	aiClient.SetMinuteRateLimit(cfg.AI.MaxRequestsPerMinute)
	aiClient.SetDayRateLimit(cfg.AI.MaxRequestsPerDay)

	searchClient := serp.NewClient(cfg.Search.BaseURL, cfg.Search.Key)
	searchClient.SetRateLimit(cfg.Search.MaxRequestsPerSecond)

	bus := EventBus.New()

	runs := repositories.NewRunsRepository(dbContext.DB)

	_, err = services.NewRunRecorder(bus, runs)
	if err != nil {
		log.Fatalf("can't create run recorder: %v", err)
	}

	runsCleaner, err := services.NewRunsCleaner(runs, cfg.DB.RunExpirationInDays)
	if err != nil {
		log.Fatalf("can't create runs cleaner: %v", err)
	}
	defer runsCleaner.Stop()

	sessionStore, err := sessions.NewStore(cfg.Sessions.TTL)
	if err != nil {
		log.Fatalf("can't create session store: %v", err)
	}
	defer sessionStore.Stop()

	retriever := services.NewOpportunityRetriever(searchClient, cfg.Matching.MaxResults)
	scorer := services.NewOpportunityScorer(aiClient)
	pipeline := services.NewMatchPipeline(bus, retriever, scorer, cfg.Matching.TopK)
	profiling := services.NewProfilingService(aiClient, sessionStore)

	srv := server.New(cfg.Server.Port, pipeline, runs, profiling)
	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("api server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("api server shutdown failed: %v", err)
	}
	log.Info("Services stopped.")
}
