package store

import (
	"fmt"

	"github.com/homanp/ohh/hand"
	"github.com/homanp/ohh/util"
)

// HandStore persists finalized hand history documents keyed by game number.
type HandStore interface {
	Save(h *hand.HandHistory) error
	Load(gameNumber string) (*hand.HandHistory, error)
	Remove(gameNumber string) error
}

// NewHandStore creates a store for the given persistence method
// (memory, file, redis or postgres), configured from the environment.
// External backends are fronted by an LRU cache unless HAND_CACHE_SIZE is 0.
func NewHandStore(method string) (HandStore, error) {
	backing, err := newBackingStore(method)
	if err != nil {
		return nil, err
	}
	// The memory store is already in-process; caching it gains nothing.
	if method == "memory" {
		return backing, nil
	}
	cacheSize := util.Env.GetHandCacheSize()
	if cacheSize <= 0 {
		return backing, nil
	}
	return NewCachedHandStore(backing, cacheSize)
}

func newBackingStore(method string) (HandStore, error) {
	switch method {
	case "memory":
		return NewMemoryHandStore(), nil
	case "file":
		return NewFileHandStore(util.Env.GetHandDataDir())
	case "redis":
		redisHost := util.Env.GetRedisHost()
		redisPort := util.Env.GetRedisPort()
		redisURL := fmt.Sprintf("%s:%d", redisHost, redisPort)
		return NewRedisHandStore(redisURL, util.Env.GetRedisPW(), util.Env.GetRedisDB()), nil
	case "postgres":
		return NewPostgresHandStore(util.Env.GetPostgresConnStr())
	}
	return nil, fmt.Errorf("Unsupported persist method: %s", method)
}
