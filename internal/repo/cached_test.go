package repo

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artist-portfolio/internal/core/cache"
	"artist-portfolio/internal/domain"
)

func TestCachedFallsThroughWithoutRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	c := cache.NewWithClient(rdb, "test:")
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	s := NewCached(NewSeededMemStore(), c, time.Minute, nil)

	items, err := s.ListPortfolioByKind(ctx, domain.KindAudio)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	_, err = s.CreatePortfolioItem(ctx, domain.PortfolioItem{Title: "New", Type: domain.KindAudio, Category: "podcast"})
	require.NoError(t, err)

	items, err = s.ListPortfolioByKind(ctx, domain.KindAudio)
	require.NoError(t, err)
	assert.Len(t, items, 4)

	skills, err := s.ListSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, 9)

	empty, err := NewCached(NewMemStore(), c, time.Minute, nil).ListSkillsByKind(ctx, domain.KindVisual)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
