package report

import (
	"context"
	"log"
	"time"

	"example.com/presence/internal/domain"
	"example.com/presence/internal/notify"
)

const (
	dailyTitle  = "本日の入室時間ランキング"
	weeklyTitle = "今週の入室時間ランキング"
)

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithLogger overrides the logger used to report errors.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service queries the activity store, aggregates occupancy, and hands the
// formatted ranking to the notifier.
type Service struct {
	store    domain.ActivityStore
	notifier notify.Notifier
	resolve  NameResolver
	now      func() time.Time
	logger   *log.Logger
}

// NewService constructs a Service.
func NewService(store domain.ActivityStore, notifier notify.Notifier, resolve NameResolver, opts ...Option) *Service {
	s := &Service{
		store:    store,
		notifier: notifier,
		resolve:  resolve,
		now:      time.Now,
		logger:   log.New(log.Writer(), "[report] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendDailyReport delivers the ranking for the current calendar day.
func (s *Service) SendDailyReport(ctx context.Context) error {
	start, end := DayWindow(s.now())
	return s.send(ctx, "daily", dailyTitle, start, end)
}

// SendWeeklyReport delivers the ranking for the current calendar week
// (starting Monday).
func (s *Service) SendWeeklyReport(ctx context.Context) error {
	start, end := WeekWindow(s.now())
	return s.send(ctx, "weekly", weeklyTitle, start, end)
}

func (s *Service) send(ctx context.Context, period, title string, start, end time.Time) error {
	records, err := s.store.QueryRange(ctx, start, end)
	if err != nil {
		s.logger.Printf("query failed (period=%s): %v", period, err)
		recordReportFailed(period)
		return err
	}

	durations := domain.Aggregate(records, start, end)
	message := FormatRanking(title, durations, s.resolve)

	if err := s.notifier.Send(ctx, message); err != nil {
		// Delivery is best effort; recipients simply get no report.
		s.logger.Printf("delivery failed (period=%s): %v", period, err)
		recordReportFailed(period)
		return err
	}

	recordReportSent(period)
	return nil
}
