package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/presence/internal/config"
	"example.com/presence/internal/names"
	"example.com/presence/internal/notify"
	"example.com/presence/internal/persistence/postgres"
	"example.com/presence/internal/relay"
	"example.com/presence/internal/report"
	"example.com/presence/internal/source"
	httptransport "example.com/presence/internal/transport/http"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	store := postgres.NewStore(pool)
	cache := names.NewCache(cfg.PlayerNamesPath)
	notifier := notify.NewSlackNotifier(cfg.SlackWebhookURL)

	var listenerOpts []source.Option
	if len(cfg.KafkaBrokers) > 0 {
		publisher := relay.NewPublisher(cfg.KafkaBrokers, cfg.RelayTopic)
		defer publisher.Close()
		listenerOpts = append(listenerOpts, source.WithRelay(publisher))
	}

	listener := source.NewListener(source.Config{
		ServerURL:        cfg.SpaceServerURL,
		SpaceID:          cfg.SpaceID,
		APIKey:           cfg.SpaceAPIKey,
		DebounceInterval: cfg.DebounceInterval,
		ReconnectDelay:   cfg.ReconnectDelay,
	}, store, cache, notifier, listenerOpts...)

	go func() {
		if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("listener stopped with error: %v", err)
		}
	}()

	service := report.NewService(store, notifier, cache.Resolve)
	scheduler, err := report.NewScheduler(service, cfg.DailyReportCron, cfg.WeeklyReportCron)
	if err != nil {
		log.Fatalf("invalid report schedule: %v", err)
	}
	scheduler.Start()

	metricsSrv := httptransport.NewMetricsServer(httptransport.ServerConfig{Address: cfg.MetricsAddress})
	go func() {
		log.Printf("metrics listening on %s", cfg.MetricsAddress)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutdown requested")
	cancel()
	scheduler.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("metrics server shutdown error: %v", err)
	}
}
