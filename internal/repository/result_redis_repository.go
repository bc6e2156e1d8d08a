package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/stemsi/skills-assessment/internal/config"
	"github.com/stemsi/skills-assessment/internal/model"
)

// RedisResultRepository stores results in one Redis hash per candidate,
// one field per exam. HSET replaces the field atomically.
type RedisResultRepository struct {
	rdb *redis.Client
}

// NewRedisResultRepository creates a new RedisResultRepository.
func NewRedisResultRepository(rdb *redis.Client) *RedisResultRepository {
	return &RedisResultRepository{rdb: rdb}
}

// Put stores result under (candidateID, examID), replacing any previous entry.
func (r *RedisResultRepository) Put(ctx context.Context, candidateID, examID string, result *model.Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	key := config.CacheKey.CandidateResultsKey(candidateID)
	if err := r.rdb.HSet(ctx, key, examID, raw).Err(); err != nil {
		return fmt.Errorf("store result: %w", err)
	}
	return nil
}

// Get returns the stored result or ErrNotFound.
func (r *RedisResultRepository) Get(ctx context.Context, candidateID, examID string) (*model.Result, error) {
	key := config.CacheKey.CandidateResultsKey(candidateID)
	raw, err := r.rdb.HGet(ctx, key, examID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get result: %w", err)
	}

	var res model.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	return &res, nil
}

// ListByCandidate returns every stored result for candidateID keyed by exam id.
func (r *RedisResultRepository) ListByCandidate(ctx context.Context, candidateID string) (map[string]*model.Result, error) {
	key := config.CacheKey.CandidateResultsKey(candidateID)
	fields, err := r.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	out := make(map[string]*model.Result, len(fields))
	for examID, raw := range fields {
		var res model.Result
		if err := json.Unmarshal([]byte(raw), &res); err != nil {
			return nil, fmt.Errorf("unmarshal result for exam %s: %w", examID, err)
		}
		out[examID] = &res
	}
	return out, nil
}
