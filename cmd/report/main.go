// Command report sends a single occupancy ranking on demand, for operators
// who do not want to wait for the scheduled trigger.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/presence/internal/config"
	"example.com/presence/internal/names"
	"example.com/presence/internal/notify"
	"example.com/presence/internal/persistence/postgres"
	"example.com/presence/internal/report"
)

func main() {
	period := flag.String("period", "daily", "report period: daily or weekly")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	store := postgres.NewStore(pool)
	cache := names.NewCache(cfg.PlayerNamesPath)
	notifier := notify.NewSlackNotifier(cfg.SlackWebhookURL)
	service := report.NewService(store, notifier, cache.Resolve)

	switch *period {
	case "daily":
		err = service.SendDailyReport(ctx)
	case "weekly":
		err = service.SendWeeklyReport(ctx)
	default:
		log.Fatalf("unknown period %q (want daily or weekly)", *period)
	}
	if err != nil {
		log.Fatalf("%s report failed: %v", *period, err)
	}
	log.Printf("%s report sent", *period)
}
