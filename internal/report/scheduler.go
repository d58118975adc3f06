package report

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler fires the daily and weekly reports on fixed wall-clock cron
// expressions. Missed triggers while the process is down are not backfilled.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	logger  *log.Logger
}

// NewScheduler registers the two report cadences. The expressions use the
// standard five-field cron syntax, e.g. "59 23 * * *".
func NewScheduler(service *Service, dailySpec, weeklySpec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		service: service,
		logger:  log.New(log.Writer(), "[scheduler] ", log.LstdFlags),
	}

	if _, err := s.cron.AddFunc(dailySpec, func() { s.run("daily", s.service.SendDailyReport) }); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc(weeklySpec, func() { s.run("weekly", s.service.SendWeeklyReport) }); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) run(period string, send func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := send(ctx); err != nil {
		// Already counted and logged by the service; note the missed trigger.
		s.logger.Printf("%s report not delivered: %v", period, err)
		return
	}
	s.logger.Printf("%s report delivered", period)
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for any in-flight report to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
