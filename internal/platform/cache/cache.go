// Package cache keeps a Redis copy of the job list so the public listing does
// not hit Postgres on every page view. Writes to any job drop the entry and
// bump a generation counter; a fill is only stored if the counter has not
// moved since the listing started.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	jobListKey    = "careers:jobs:all"
	generationKey = "careers:jobs:generation"
)

// fillScript stores ARGV[2] under KEYS[2] only while KEYS[1] still holds the
// generation in ARGV[1]. ARGV[3] is the TTL in milliseconds, 0 for none.
var fillScript = redis.NewScript(`
if (redis.call('GET', KEYS[1]) or '0') ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// JobListCache is a Redis-backed cache for the full job list.
type JobListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New connects to Redis at redisURL and returns a JobListCache.
// URL format: redis://localhost:6379/0
func New(ctx context.Context, redisURL string, ttl time.Duration, logger *slog.Logger) (*JobListCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: redis ping failed: %w", err)
	}

	return NewWithClient(client, ttl, logger), nil
}

// NewWithClient wraps an existing client without pinging it.
func NewWithClient(client *redis.Client, ttl time.Duration, logger *slog.Logger) *JobListCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobListCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "job_list_cache")),
	}
}

// GetJobs returns the cached job list and the current generation in one round
// trip. ok is false on a miss. A Redis failure is logged and reported as a
// miss with generation -1, so the caller's fill is skipped.
func (c *JobListCache) GetJobs(ctx context.Context) ([]*domain.Job, int64, bool) {
	values, err := c.client.MGet(ctx, jobListKey, generationKey).Result()
	if err != nil {
		c.logger.Warn("job list cache read failed", slog.String("error", err.Error()))
		return nil, -1, false
	}

	generation, err := parseGeneration(values[1])
	if err != nil {
		c.logger.Warn("job list generation is corrupt", slog.String("error", err.Error()))
		return nil, -1, false
	}

	data, ok := values[0].(string)
	if !ok {
		return nil, generation, false
	}

	var jobs []*domain.Job
	if err := json.Unmarshal([]byte(data), &jobs); err != nil {
		c.logger.Warn("job list cache entry is corrupt", slog.String("error", err.Error()))
		return nil, generation, false
	}
	return jobs, generation, true
}

// SetJobs stores jobs with the configured TTL if the generation is still the
// one GetJobs reported. stored is false when a write invalidated the list in
// between or generation is negative.
func (c *JobListCache) SetJobs(ctx context.Context, generation int64, jobs []*domain.Job) (bool, error) {
	if generation < 0 {
		return false, nil
	}

	data, err := json.Marshal(jobs)
	if err != nil {
		return false, fmt.Errorf("cache: marshal error: %w", err)
	}

	stored, err := fillScript.Run(ctx, c.client,
		[]string{generationKey, jobListKey},
		strconv.FormatInt(generation, 10), data, c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("cache: fill failed: %w", err)
	}
	return stored == 1, nil
}

// InvalidateJobs bumps the generation and drops the cached job list in one
// transaction.
func (c *JobListCache) InvalidateJobs(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, jobListKey)
		return nil
	})
	return err
}

func parseGeneration(value interface{}) (int64, error) {
	if value == nil {
		return 0, nil
	}
	s, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected generation type %T", value)
	}
	return strconv.ParseInt(s, 10, 64)
}

// Close closes the Redis connection.
func (c *JobListCache) Close() error {
	return c.client.Close()
}
