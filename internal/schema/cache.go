package schema

import (
	"database/sql"
	"sync"

	"github.com/wennys/modelbuddy/pkg/types"
)

// Cache memoizes table schemas for the lifetime of the process. Concurrent
// first access for the same table triggers exactly one Describe; later calls
// return the stored schema without a store round-trip. Entries are never
// invalidated (schema migration is out of scope).
type Cache struct {
	db      *sql.DB
	dialect Dialect

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	once   sync.Once
	schema types.Schema
	err    error
}

// NewCache creates a schema cache over an externally managed store handle.
func NewCache(db *sql.DB, dialect Dialect) *Cache {
	return &Cache{
		db:      db,
		dialect: dialect,
		entries: make(map[string]*cacheEntry),
	}
}

// Dialect returns the dialect the cache introspects with.
func (c *Cache) Dialect() Dialect { return c.dialect }

// Get returns the schema for a table, introspecting on first access.
// Failed introspections are not cached; a later Get retries.
func (c *Cache) Get(table string) (types.Schema, error) {
	c.mu.Lock()
	e, ok := c.entries[table]
	if !ok {
		e = &cacheEntry{}
		c.entries[table] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.schema, e.err = c.dialect.Describe(c.db, table)
	})
	if e.err != nil {
		c.mu.Lock()
		if c.entries[table] == e {
			delete(c.entries, table)
		}
		c.mu.Unlock()
		return nil, &types.SchemaError{Table: table, Err: e.err}
	}
	return e.schema, nil
}
