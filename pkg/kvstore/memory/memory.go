package memory

import (
	"context"

	"github.com/patrickmn/go-cache"

	"github.com/medponto/clinica-core/pkg/kvstore"
)

// Store keeps documents in process memory. Entries never expire; the process
// lifetime is the storage lifetime.
type Store struct {
	c *cache.Cache
}

func New() *Store {
	return &Store{c: cache.New(cache.NoExpiration, 0)}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return "", kvstore.ErrKeyNotFound
	}
	return v.(string), nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	s.c.Set(key, value, cache.NoExpiration)
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	s.c.Delete(key)
	return nil
}
