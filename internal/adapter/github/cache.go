package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/ghcontributors/internal/app"
)

// CachedClient wraps contributor fetcher with in-memory caching layer.
// Only successful results are cached. Callers always get their own copy of the cached slice.
type CachedClient struct {
	client app.ContributorFetcher
	cache  *lru.Cache
	ttl    time.Duration
}

var _ app.ContributorFetcher = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.ContributorFetcher, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for contributors: %w", err)
	}

	return &CachedClient{
		client: client,
		cache:  cache,
		ttl:    ttl,
	}, nil
}

// ContributorsForPage returns contributors of a file at pagePath.
func (c *CachedClient) ContributorsForPage(ctx context.Context, owner, name, branch, pagePath string) ([]app.Contributor, error) {
	key := c.cacheKey(owner, name, branch, pagePath)
	val, ok := c.cache.Get(key)
	if ok {
		entry := val.(contributorsCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return copyContributors(entry.data), nil
		}
	}

	contributors, err := c.client.ContributorsForPage(ctx, owner, name, branch, pagePath)
	if err != nil {
		return contributors, err
	}

	c.cache.Add(key, contributorsCacheEntry{
		created: time.Now(),
		data:    copyContributors(contributors),
	})

	return contributors, nil
}

func (c *CachedClient) cacheKey(owner, name, branch, pagePath string) string {
	return owner + "/" + name + "@" + branch + ":" + pagePath
}

type contributorsCacheEntry struct {
	created time.Time
	data    []app.Contributor
}

func copyContributors(c []app.Contributor) []app.Contributor {
	if c == nil {
		return nil
	}
	cp := make([]app.Contributor, len(c))
	copy(cp, c)
	return cp
}
