package countries

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNoUsableEntries marks a source that answered but produced nothing
	// playable after normalization and filtering.
	ErrNoUsableEntries = errors.New("no usable countries in response")
	// ErrNoSources means the loader was built without any sources.
	ErrNoSources = errors.New("no flag sources configured")
)

// Loader tries its sources in order and returns the first usable entry set.
// A source that errors, responds with an unknown shape, or filters down to
// nothing is skipped; only when every source fails does Load fail, carrying
// the last source's error.
type Loader struct {
	sources []Source
}

// NewLoader builds a loader over the given sources, tried in argument order.
func NewLoader(sources ...Source) *Loader {
	return &Loader{sources: sources}
}

// DefaultSources returns the standard fallback chain: restcountries v2, then
// v3.1, then the apicountries mirror, then the static snapshot. Empty URLs
// select each source's default endpoint.
func DefaultSources(v2URL, v31URL, mirrorURL, snapshotURL string, timeout time.Duration) []Source {
	return []Source{
		NewRestV2(v2URL, timeout),
		NewRestV31(v31URL, timeout),
		NewMirror(mirrorURL, timeout),
		NewSnapshot(snapshotURL, timeout),
	}
}

// Load fetches from the first source that yields a non-empty entry set.
// Later sources are never contacted once one succeeds.
func (l *Loader) Load(ctx context.Context) ([]Entry, error) {
	if len(l.sources) == 0 {
		return nil, ErrNoSources
	}
	var lastErr error
	for _, src := range l.sources {
		entries, err := src.Fetch(ctx)
		if err != nil {
			log.Warn().Str("source", src.Name()).Err(err).Msg("flag source failed")
			lastErr = fmt.Errorf("%s: %w", src.Name(), err)
			continue
		}
		if len(entries) == 0 {
			log.Warn().Str("source", src.Name()).Msg("flag source had no playable countries")
			lastErr = fmt.Errorf("%s: %w", src.Name(), ErrNoUsableEntries)
			continue
		}
		log.Info().Str("source", src.Name()).Int("count", len(entries)).Msg("flags loaded")
		return entries, nil
	}
	return nil, fmt.Errorf("all flag sources failed: %w", lastErr)
}

// Catalog caches the loaded entry set so only the first round start pays for
// the network. Loading is lazy; concurrent callers share one fetch.
type Catalog struct {
	loader *Loader

	mu      sync.Mutex
	entries []Entry
}

// NewCatalog wraps a loader in a cache.
func NewCatalog(loader *Loader) *Catalog {
	return &Catalog{loader: loader}
}

// Entries returns the cached entry set, loading it on first use. The mutex
// is held across the load so concurrent first calls do not race duplicate
// fetches.
func (c *Catalog) Entries(ctx context.Context) ([]Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries != nil {
		return c.entries, nil
	}
	entries, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.entries = entries
	return entries, nil
}

// Loaded reports whether the catalog holds a usable entry set.
func (c *Catalog) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries != nil
}

// Reload forces a fresh fetch, replacing the cache only on success. The
// previous entry set stays in place when every source fails.
func (c *Catalog) Reload(ctx context.Context) ([]Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.entries = entries
	return entries, nil
}
