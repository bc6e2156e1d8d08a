package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stemsi/skills-assessment/internal/config"
)

// newTestRedis connects to REDIS_TEST_URL or skips the test.
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse REDIS_TEST_URL: %v", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisResultRepository(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()
	repo := NewRedisResultRepository(rdb)

	const cand = "redis-test-candidate"
	key := config.CacheKey.CandidateResultsKey(cand)
	_ = rdb.Del(ctx, key).Err()
	t.Cleanup(func() { _ = rdb.Del(context.Background(), key).Err() })

	if _, err := repo.Get(ctx, cand, "e1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get before put: got %v, want ErrNotFound", err)
	}

	if err := repo.Put(ctx, cand, "e1", sampleResult(0)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(ctx, cand, "e1", sampleResult(2)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(ctx, cand, "e2", sampleResult(1)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := repo.Get(ctx, cand, "e1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CorrectCount != 2 || !got.SubmittedAt.Equal(sampleResult(0).SubmittedAt) {
		t.Errorf("result = %+v, want latest write", got)
	}
	if *got.Outcomes[0].UserAnswer != 1 {
		t.Errorf("outcome lost through round trip: %+v", got.Outcomes)
	}

	all, err := repo.ListByCandidate(ctx, cand)
	if err != nil {
		t.Fatalf("ListByCandidate: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d results, want 2", len(all))
	}

	none, err := repo.ListByCandidate(ctx, "redis-test-nobody")
	if err != nil || len(none) != 0 {
		t.Errorf("empty candidate: %v %v", none, err)
	}
}
