package store

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/homanp/ohh/hand"
)

// CachedHandStore is a read-through LRU cache in front of another store.
// Loads of recently saved or loaded hands skip the backing store.
type CachedHandStore struct {
	backing HandStore
	cache   *lru.Cache
}

func NewCachedHandStore(backing HandStore, size int) (*CachedHandStore, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to initialize hand history cache")
	}
	return &CachedHandStore{
		backing: backing,
		cache:   cache,
	}, nil
}

func (c *CachedHandStore) Save(h *hand.HandHistory) error {
	err := c.backing.Save(h)
	if err != nil {
		return err
	}
	c.cache.Add(h.GameNumber, h.Clone())
	return nil
}

func (c *CachedHandStore) Load(gameNumber string) (*hand.HandHistory, error) {
	if v, ok := c.cache.Get(gameNumber); ok {
		return v.(*hand.HandHistory).Clone(), nil
	}
	loaded, err := c.backing.Load(gameNumber)
	if err != nil {
		return nil, err
	}
	c.cache.Add(gameNumber, loaded.Clone())
	return loaded, nil
}

func (c *CachedHandStore) Remove(gameNumber string) error {
	c.cache.Remove(gameNumber)
	return c.backing.Remove(gameNumber)
}
