// Package store provides durable storage for visitor preferences.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a preference is not found in the store.
var ErrNotFound = errors.New("preference not found")

// KV reads and writes single preferences of a visitor.
type KV interface {
	Get(ctx context.Context, visitor, key string) (string, error)
	Set(ctx context.Context, visitor, key, value string) error
}

// Interface is the preference storage contract implemented by Store and Cached.
type Interface interface {
	KV
	Delete(ctx context.Context, visitor, key string) error
	List(ctx context.Context, visitor string) ([]Preference, error)
	Close() error
}

// Preference is a single stored preference of a visitor.
type Preference struct {
	Visitor   string    `db:"visitor"`
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// DBType identifies the database backend.
type DBType int

// supported database backends
const (
	DBTypeSQLite DBType = iota
	DBTypePostgres
)

// RWLocker is the subset of sync.RWMutex used by Store.
type RWLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// noopLocker is used for postgres, which handles concurrency itself.
type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
