package content

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
)

const revalidateKeyPrefix = "content.revalidate."

// errNoContent keeps empty results out of the cache.
var errNoContent = errors.New("content: empty result")

// Purger drops cached query results.
type Purger interface {
	Purge(ctx context.Context) error
}

// Revalidating serves repeated queries from a go-repository-cache service
// for a fixed TTL. Only successful, non-empty results are kept.
type Revalidating struct {
	next       Fetcher
	cache      repocache.CacheService
	serializer repocache.KeySerializer
}

// RevalidateOption customises a Revalidating fetcher.
type RevalidateOption func(*Revalidating)

// WithRevalidateCache supplies the cache service and key serializer. The
// service TTL is the revalidation window.
func WithRevalidateCache(service repocache.CacheService, serializer repocache.KeySerializer) RevalidateOption {
	return func(r *Revalidating) {
		r.cache = service
		r.serializer = serializer
	}
}

// RevalidateCacheConfig is the cache configuration for a ttl window. Early
// refreshes and missing-record markers are off so every miss goes upstream.
func RevalidateCacheConfig(ttl time.Duration) repocache.Config {
	cfg := repocache.DefaultConfig()
	cfg.TTL = ttl
	cfg.EarlyRefresh = nil
	cfg.MissingRecordStorage = false
	return cfg
}

// NewRevalidating wraps next. A non-positive ttl returns next unchanged, as
// does a cache service that cannot be built.
func NewRevalidating(next Fetcher, ttl time.Duration, opts ...RevalidateOption) Fetcher {
	if ttl <= 0 || next == nil {
		return next
	}
	r := &Revalidating{next: next}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.cache == nil {
		service, err := repocache.NewCacheService(RevalidateCacheConfig(ttl))
		if err != nil {
			return next
		}
		r.cache = service
	}
	if r.serializer == nil {
		r.serializer = repocache.NewDefaultKeySerializer()
	}
	return r
}

func (r *Revalidating) Fetch(ctx context.Context, query Query, params Params, out any) error {
	key := r.serializer.SerializeKey(revalidateKeyPrefix+query.Name, map[string]any(params))

	raw, err := repocache.GetOrFetch[json.RawMessage](ctx, r.cache, key, func(ctx context.Context) (json.RawMessage, error) {
		var raw json.RawMessage
		if err := r.next.Fetch(ctx, query, params, &raw); err != nil {
			return nil, err
		}
		if isEmptyJSON(raw) {
			return nil, errNoContent
		}
		return raw, nil
	})
	if errors.Is(err, errNoContent) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := decodeInto(raw, out); err != nil {
		return newFetchError(query.Name, err)
	}
	return nil
}

// Purge drops every cached result.
func (r *Revalidating) Purge(ctx context.Context) error {
	return r.cache.DeleteByPrefix(ctx, revalidateKeyPrefix)
}

func decodeInto(raw json.RawMessage, out any) error {
	if out == nil || isNullJSON(raw) {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// isEmptyJSON reports null, [] and {} results.
func isEmptyJSON(raw json.RawMessage) bool {
	if isNullJSON(raw) {
		return true
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}
	switch v := value.(type) {
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}
