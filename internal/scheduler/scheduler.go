package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Refresher — то, что планировщик дёргает на каждом тике
type Refresher interface {
	Refresh(ctx context.Context)
}

type Scheduler struct {
	target   Refresher
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler — конструктор планировщика периодического обновления выбранной монеты
func NewScheduler(target Refresher, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		target:   target,
		interval: interval,
		logger:   logger,
	}
}

// Start — обновляет данные каждые interval до остановки контекста.
// Первого запуска сразу нет: начальная загрузка идёт при старте приложения.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.logger.Debug("tick: refreshing selection")
			s.target.Refresh(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}
