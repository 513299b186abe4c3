//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *JobListCache {
	t.Helper()
	url := os.Getenv("CAREERS_TEST_REDIS_URL")
	if url == "" {
		t.Skip("CAREERS_TEST_REDIS_URL not set")
	}

	c, err := New(context.Background(), url, time.Minute, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, c.InvalidateJobs(context.Background()))
	return c
}

func TestJobListCacheFillAndInvalidate(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	_, generation, ok := c.GetJobs(ctx)
	require.False(t, ok)

	job := &domain.Job{ID: uuid.New(), Title: "Backend Engineer"}
	stored, err := c.SetJobs(ctx, generation, []*domain.Job{job})
	require.NoError(t, err)
	assert.True(t, stored)

	jobs, _, ok := c.GetJobs(ctx)
	require.True(t, ok)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)

	require.NoError(t, c.InvalidateJobs(ctx))
	_, _, ok = c.GetJobs(ctx)
	assert.False(t, ok)
}

func TestJobListCacheRejectsFillAfterInvalidate(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	_, generation, ok := c.GetJobs(ctx)
	require.False(t, ok)

	// A job write lands after the listing read the store.
	require.NoError(t, c.InvalidateJobs(ctx))

	stored, err := c.SetJobs(ctx, generation, []*domain.Job{})
	require.NoError(t, err)
	assert.False(t, stored)

	_, _, ok = c.GetJobs(ctx)
	assert.False(t, ok, "the older listing must not be cached")
}
