package redis

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ProgressStore is a Redis-backed implementation of the persistent key-value
// contract. Keys have no TTL: progress survives restarts the way a browser
// local store survives reloads. Absence of a key is the zero default, never
// an error; read/write failures are logged and treated as absence so a
// flaky Redis degrades to a fresh session instead of failing operations.
type ProgressStore struct {
	client *redis.Client
	prefix string
}

func NewProgressStore(client *redis.Client) *ProgressStore {
	return &ProgressStore{client: client, prefix: "ecoquest:"}
}

func (s *ProgressStore) Get(key string) (string, bool) {
	val, err := s.client.Get(context.Background(), s.prefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("progress store get %s: %v", key, err)
		return "", false
	}
	return val, true
}

func (s *ProgressStore) Set(key, value string) {
	if err := s.client.Set(context.Background(), s.prefix+key, value, 0).Err(); err != nil {
		log.Printf("progress store set %s: %v", key, err)
	}
}

func (s *ProgressStore) Delete(key string) {
	if err := s.client.Del(context.Background(), s.prefix+key).Err(); err != nil {
		log.Printf("progress store delete %s: %v", key, err)
	}
}
