package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is an explicit connection handle around a pgx pool.
//
// The pool is created on first use and reused by every caller afterwards.
// Initialization is guarded by a mutex so concurrent first callers share a
// single connection attempt; a failed attempt is not latched and the next
// caller retries. A missing or wrong DATABASE_URL therefore surfaces as a
// request-time store failure, not a startup failure.
type DB struct {
	connString string

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewDB creates a handle for the given connection string without connecting.
func NewDB(connString string) *DB {
	return &DB{connString: connString}
}

// Connect returns the shared pool, establishing it on first use.
func (db *DB) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.pool != nil {
		return db.pool, nil
	}

	pool, err := pgxpool.New(ctx, db.connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	db.pool = pool
	return pool, nil
}

// Ping reports whether the database is reachable, connecting if needed.
func (db *DB) Ping(ctx context.Context) error {
	pool, err := db.Connect(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

// Close releases the pool if one was established.
func (db *DB) Close() {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.pool != nil {
		db.pool.Close()
		db.pool = nil
	}
}
