package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	var dest map[string]int
	assert.ErrorIs(t, repo.Get(ctx, "detect:abc", &dest), appErrors.ErrCacheMiss)
	require.NoError(t, repo.Set(ctx, "detect:abc", map[string]int{"clashes": 1}, time.Minute))
	require.NoError(t, repo.DeleteByPattern(ctx, "detect:*"))
	require.NoError(t, repo.Ping(ctx))
	require.NoError(t, repo.Close())
}
