package store

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	cmap "github.com/orcaman/concurrent-map"

	"github.com/homanp/ohh/hand"
)

// MemoryHandStore keeps serialized hands in memory. Useful for tests and for
// running the server without external services.
type MemoryHandStore struct {
	hands cmap.ConcurrentMap
}

func NewMemoryHandStore() *MemoryHandStore {
	return &MemoryHandStore{
		hands: cmap.New(),
	}
}

func (m *MemoryHandStore) Save(h *hand.HandHistory) error {
	data, err := jsoniter.Marshal(h)
	if err != nil {
		return err
	}
	m.hands.Set(h.GameNumber, data)
	return nil
}

func (m *MemoryHandStore) Load(gameNumber string) (*hand.HandHistory, error) {
	v, ok := m.hands.Get(gameNumber)
	if !ok {
		return nil, fmt.Errorf("Hand history for game [%s] is not found", gameNumber)
	}
	loaded := &hand.HandHistory{}
	err := jsoniter.Unmarshal(v.([]byte), loaded)
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

func (m *MemoryHandStore) Remove(gameNumber string) error {
	m.hands.Remove(gameNumber)
	return nil
}
