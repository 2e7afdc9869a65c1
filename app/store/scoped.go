package store

import (
	"context"
	"errors"
	"fmt"
)

// Scoped binds a store to one visitor and a context, exposing the plain
// key-value Load/Save contract expected by the theme machine.
type Scoped struct {
	ctx     context.Context
	store   KV
	visitor string
}

// NewScoped creates a store view for a single visitor.
func NewScoped(ctx context.Context, st KV, visitor string) *Scoped {
	return &Scoped{ctx: ctx, store: st, visitor: visitor}
}

// Load returns the stored value, or an empty string if the key was never written.
func (s *Scoped) Load(key string) (string, error) {
	v, err := s.store.Get(s.ctx, s.visitor, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	return v, nil
}

// Save writes the value for the key.
func (s *Scoped) Save(key, value string) error {
	if err := s.store.Set(s.ctx, s.visitor, key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
