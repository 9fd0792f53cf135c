package store

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"

	"github.com/homanp/ohh/hand"
)

// RedisHandStore keeps serialized hands in redis keyed by game number.
type RedisHandStore struct {
	rdclient *redis.Client
}

func NewRedisHandStore(redisURL string, redisPW string, redisDB int) *RedisHandStore {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisHandStore{
		rdclient: rdclient,
	}
}

func (r *RedisHandStore) Save(h *hand.HandHistory) error {
	data, err := jsoniter.Marshal(h)
	if err != nil {
		return err
	}
	return r.rdclient.Set(context.Background(), r.key(h.GameNumber), data, 0).Err()
}

func (r *RedisHandStore) Load(gameNumber string) (*hand.HandHistory, error) {
	data, err := r.rdclient.Get(context.Background(), r.key(gameNumber)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("Hand history for game [%s] is not found", gameNumber)
	} else if err != nil {
		return nil, err
	}
	loaded := &hand.HandHistory{}
	err = jsoniter.Unmarshal([]byte(data), loaded)
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

func (r *RedisHandStore) Remove(gameNumber string) error {
	return r.rdclient.Del(context.Background(), r.key(gameNumber)).Err()
}

func (r *RedisHandStore) key(gameNumber string) string {
	return fmt.Sprintf("ohh:%s", gameNumber)
}
