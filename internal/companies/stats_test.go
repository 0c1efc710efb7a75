package companies

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/redis/go-redis/v9"
)

func TestGetStatsAggregates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewStatsRepository(mock)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM companies$`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery(`WHERE is_top = TRUE`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(`WHERE hiring = TRUE`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))
	mock.ExpectQuery(`WHERE industry = 'Nonprofit'`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(`GROUP BY industry`).
		WillReturnRows(pgxmock.NewRows([]string{"industry", "count"}).
			AddRow("Technology", int64(8)).
			AddRow("Healthcare", int64(4)))

	stats, err := repo.GetStats(context.Background())
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.Total != 12 || stats.TopCompanies != 3 || stats.Hiring != 5 || stats.Nonprofit != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.IndustryCounts["Technology"] != 8 {
		t.Fatalf("unexpected industry counts: %v", stats.IndustryCounts)
	}
}

type fixedStats struct {
	stats *Stats
	err   error
	calls int
}

func (f *fixedStats) GetStats(context.Context) (*Stats, error) {
	f.calls++
	return f.stats, f.err
}

func TestCachedStatsReadsThroughAndCaches(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	source := &fixedStats{stats: &Stats{Total: 7}}
	cached := NewCachedStats(source, client, time.Minute, nil)

	stats, err := cached.GetStats(context.Background())
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.Total != 7 {
		t.Fatalf("expected total 7, got %d", stats.Total)
	}
	if source.calls != 1 {
		t.Fatalf("expected one source call, got %d", source.calls)
	}

	// second read should come from cache
	if _, err := cached.GetStats(context.Background()); err != nil {
		t.Fatalf("cached get: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected cache hit, source called %d times", source.calls)
	}

	raw, err := mr.Get("directory:stats")
	if err != nil {
		t.Fatalf("expected cache entry: %v", err)
	}
	var stored Stats
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("stored entry not json: %v", err)
	}
	if stored.Total != 7 {
		t.Fatalf("stored total = %d, want 7", stored.Total)
	}
}

func TestCachedStatsExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	source := &fixedStats{stats: &Stats{Total: 1}}
	cached := NewCachedStats(source, client, time.Minute, nil)

	if _, err := cached.GetStats(context.Background()); err != nil {
		t.Fatalf("get stats: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := cached.GetStats(context.Background()); err != nil {
		t.Fatalf("get stats after expiry: %v", err)
	}
	if source.calls != 2 {
		t.Fatalf("expected recompute after expiry, source called %d times", source.calls)
	}
}

func TestCachedStatsFallsThroughOnCacheFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	source := &fixedStats{stats: &Stats{Total: 3}}
	cached := NewCachedStats(source, client, time.Minute, nil)

	stats, err := cached.GetStats(context.Background())
	if err != nil {
		t.Fatalf("expected fallthrough, got %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("expected source stats, got %+v", stats)
	}
}

func TestCachedStatsPropagatesSourceError(t *testing.T) {
	source := &fixedStats{err: errors.New("db down")}
	cached := NewCachedStats(source, nil, time.Minute, nil)

	if _, err := cached.GetStats(context.Background()); err == nil {
		t.Fatal("expected source error")
	}
}
