package category

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/simplelru"
	"github.com/sirupsen/logrus"
)

// Registry owns category instances so that a category is built once and then
// shared. Built-in categories are pinned; parameterized categories live in a
// bounded LRU (capacity 0 means unbounded).
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	capacity int
	pinned   map[string]Category
	cache    *lru.LRU            // capacity > 0
	entries  map[string]Category // capacity == 0
	stats    Stats
	log      logrus.FieldLogger
}

// Stats counts cache activity for parameterized categories.
type Stats struct {
	Hits      int
	Misses    int
	Evictions int
}

// Option configures a Registry.
type Option func(*Registry)

// WithCapacity bounds the number of cached parameterized categories.
// Non-positive values disable eviction.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		if n < 0 {
			n = 0
		}
		r.capacity = n
	}
}

// WithLogger sets the logger used for cache diagnostics; nil keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry returns a registry with the built-in categories pinned.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		pinned: map[string]Category{},
		log:    logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(r)
	}
	if r.capacity > 0 {
		// NewLRU only fails for a non-positive size.
		r.cache, _ = lru.NewLRU(r.capacity, r.onEvict)
	} else {
		r.entries = map[string]Category{}
	}
	for _, c := range []Category{Sets(), Rings(), CommutativeRings(), Homsets()} {
		r.pinned[c.Key()] = c
	}
	return r
}

// onEvict runs under r.mu, from inside cache.Add.
func (r *Registry) onEvict(key, _ interface{}) {
	r.stats.Evictions++
	r.log.WithField("key", key).Debug("category cache evict")
}

// Pin stores c permanently. If a category with the same key is already
// pinned, the existing instance is returned.
func (r *Registry) Pin(c Category) Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	if got, ok := r.pinned[c.Key()]; ok {
		return got
	}
	r.pinned[c.Key()] = c
	return c
}

// Lookup returns the category stored under key without building it.
func (r *Registry) Lookup(key string) (Category, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookupLocked(key)
}

func (r *Registry) lookupLocked(key string) (Category, bool) {
	if c, ok := r.pinned[key]; ok {
		return c, true
	}
	if r.cache != nil {
		if v, ok := r.cache.Get(key); ok {
			return v.(Category), true
		}
		return nil, false
	}
	c, ok := r.entries[key]
	return c, ok
}

// Get returns the category stored under key, calling build on a miss.
// build runs without the lock held, so it may use the registry itself.
func (r *Registry) Get(key string, build func() (Category, error)) (Category, error) {
	r.mu.Lock()
	c, ok := r.lookupLocked(key)
	if ok {
		r.stats.Hits++
	}
	r.mu.Unlock()
	if ok {
		r.log.WithField("key", key).Debug("category cache hit")
		return c, nil
	}

	c, err := build()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Misses++
	if got, ok := r.lookupLocked(key); ok {
		// built concurrently by another caller; keep the first instance
		return got, nil
	}
	if r.cache != nil {
		r.cache.Add(key, c)
	} else {
		r.entries[key] = c
	}
	r.log.WithFields(logrus.Fields{"key": key, "size": r.lenLocked()}).Debug("category cache miss")
	return c, nil
}

func (r *Registry) lenLocked() int {
	if r.cache != nil {
		return r.cache.Len()
	}
	return len(r.entries)
}

// Len reports the number of cached parameterized categories.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lenLocked()
}

// Stats returns a snapshot of cache counters.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}
