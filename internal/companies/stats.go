package companies

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/launchlist/launchlist/pkg/logging"
)

// Stats summarizes the directory for the landing page.
type Stats struct {
	Total          int64            `json:"total"`
	TopCompanies   int64            `json:"top_companies"`
	Hiring         int64            `json:"hiring"`
	Nonprofit      int64            `json:"nonprofit"`
	IndustryCounts map[string]int64 `json:"industry_counts"`
}

// StatsRepository aggregates directory metrics in SQL. The original
// client-side tallies are replaced by GROUP BY on the server, which preserves
// the counts while scaling past small result sets.
type StatsRepository struct {
	pool PgxPool
}

// NewStatsRepository creates a stats repository.
func NewStatsRepository(pool PgxPool) *StatsRepository {
	if pool == nil {
		panic("companies: pgx pool required for stats")
	}
	return &StatsRepository{pool: pool}
}

// GetStats computes directory totals and per-industry counts.
func (r *StatsRepository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{IndustryCounts: make(map[string]int64)}

	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM companies`, &stats.Total},
		{`SELECT COUNT(*) FROM companies WHERE is_top = TRUE`, &stats.TopCompanies},
		{`SELECT COUNT(*) FROM companies WHERE hiring = TRUE`, &stats.Hiring},
		{`SELECT COUNT(*) FROM companies WHERE industry = 'Nonprofit'`, &stats.Nonprofit},
	}
	for _, c := range counts {
		if err := r.pool.QueryRow(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("companies stats: count: %w", err)
		}
	}

	rows, err := r.pool.Query(ctx,
		`SELECT industry, COUNT(*) FROM companies WHERE industry IS NOT NULL GROUP BY industry`)
	if err != nil {
		return nil, fmt.Errorf("companies stats: industry counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var industry string
		var count int64
		if err := rows.Scan(&industry, &count); err != nil {
			return nil, fmt.Errorf("companies stats: scan industry count: %w", err)
		}
		stats.IndustryCounts[industry] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("companies stats: industry rows: %w", err)
	}

	return stats, nil
}

const statsCacheKey = "directory:stats"

// StatsSource produces directory stats.
type StatsSource interface {
	GetStats(ctx context.Context) (*Stats, error)
}

// CachedStats fronts a StatsSource with a short-lived Redis cache. Cache
// failures are logged and fall through to the source.
type CachedStats struct {
	source StatsSource
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewCachedStats wraps source with a Redis cache. A nil client disables
// caching entirely.
func NewCachedStats(source StatsSource, client *redis.Client, ttl time.Duration, logger *logging.Logger) *CachedStats {
	if source == nil {
		panic("companies: stats source cannot be nil")
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CachedStats{source: source, client: client, ttl: ttl, logger: logger}
}

// GetStats serves from cache when fresh, otherwise recomputes and stores.
func (c *CachedStats) GetStats(ctx context.Context) (*Stats, error) {
	if c.client != nil {
		raw, err := c.client.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var stats Stats
			if jsonErr := json.Unmarshal([]byte(raw), &stats); jsonErr == nil {
				return &stats, nil
			}
			c.logger.Warn("discarding corrupt stats cache entry")
		} else if err != redis.Nil {
			c.logger.Warn("stats cache read failed", "error", err)
		}
	}

	stats, err := c.source.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	if c.client != nil {
		if data, jsonErr := json.Marshal(stats); jsonErr == nil {
			if err := c.client.Set(ctx, statsCacheKey, data, c.ttl).Err(); err != nil {
				c.logger.Warn("stats cache write failed", "error", err)
			}
		}
	}
	return stats, nil
}
