package cache

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"github.com/Josh-Zirena/git-commit-ai/internal/diff"
)

// Cache is the key-value store callers may inject around the engine.
// The engine itself stays stateless and cache-free; memoization lives
// entirely on this side of the boundary.
type Cache interface {
	Get(key uint64) (*diff.Output, bool)
	Set(key uint64, out *diff.Output)
}

// Key hashes raw diff content together with the options that shape the
// result, so a config change never serves a stale entry.
func Key(raw string, opts diff.Options) uint64 {
	d := xxhash.New()
	d.WriteString(raw)
	fmt.Fprintf(d, "|%d|%d|%d|%d|%t",
		opts.MaxDirectSize, opts.MaxChunkSize, opts.MaxTotalSize,
		opts.MaxFiles, opts.EnableSummarization)
	return d.Sum64()
}

// LRU is a bounded in-memory Cache
type LRU struct {
	inner *lru.Cache[uint64, *diff.Output]
}

// NewLRU creates an LRU cache holding at most size results
func NewLRU(size int) (*LRU, error) {
	inner, err := lru.New[uint64, *diff.Output](size)
	if err != nil {
		return nil, fmt.Errorf("creating result cache: %w", err)
	}
	return &LRU{inner: inner}, nil
}

// Get returns the cached output for key, if present
func (c *LRU) Get(key uint64) (*diff.Output, bool) {
	return c.inner.Get(key)
}

// Set stores out under key, evicting the least recently used entry when
// the cache is full
func (c *LRU) Set(key uint64, out *diff.Output) {
	c.inner.Add(key, out)
}

// Processor memoizes whole engine runs. Outputs are treated as
// read-only by every consumer, so returning a shared pointer is safe.
type Processor struct {
	engine *diff.Engine
	cache  Cache
}

// NewProcessor wraps engine with the given cache. A nil cache disables
// memoization and every call goes straight to the engine.
func NewProcessor(engine *diff.Engine, c Cache) *Processor {
	return &Processor{engine: engine, cache: c}
}

// Process returns the cached output for raw when available, running the
// engine otherwise. Errors are never cached: structurally invalid input
// fails identically on every call anyway.
func (p *Processor) Process(raw string) (*diff.Output, error) {
	if p.cache == nil {
		return p.engine.Process(raw)
	}

	key := Key(raw, p.engine.Options())
	if out, ok := p.cache.Get(key); ok {
		log.Debug().Uint64("key", key).Msg("Result cache hit")
		return out, nil
	}

	out, err := p.engine.Process(raw)
	if err != nil {
		return nil, err
	}
	p.cache.Set(key, out)
	return out, nil
}
