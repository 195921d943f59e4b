package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const poolCheckTimeout = 5 * time.Second

// JobService runs the periodic maintenance jobs of the server.
type JobService struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewJobService(db *sql.DB, logger *slog.Logger) *JobService {
	return &JobService{db: db, logger: logger}
}

// CheckPool pings the database and logs the pool occupancy, so exhaustion of
// the bounded pool shows up in the logs before requests start timing out.
func (s *JobService) CheckPool(ctx context.Context) (sql.DBStats, error) {
	ctx, cancel := context.WithTimeout(ctx, poolCheckTimeout)
	defer cancel()

	stats := s.db.Stats()
	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("pool health check failed", "error", err)
		return stats, fmt.Errorf("ping database: %w", err)
	}

	s.logger.Info("pool health",
		"max_open", stats.MaxOpenConnections,
		"open", stats.OpenConnections,
		"in_use", stats.InUse,
		"idle", stats.Idle,
		"wait_count", stats.WaitCount,
		"wait_duration", stats.WaitDuration,
	)
	return stats, nil
}

// Schedule registers the pool health check on c with the given cron spec.
func (s *JobService) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	id, err := c.AddFunc(spec, func() {
		_, _ = s.CheckPool(context.Background())
	})
	if err != nil {
		return 0, fmt.Errorf("schedule pool health check %q: %w", spec, err)
	}
	return id, nil
}
