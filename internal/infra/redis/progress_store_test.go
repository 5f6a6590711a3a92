package redis

import (
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestProgressStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)
	store := NewProgressStore(client)

	if _, ok := store.Get("points"); ok {
		t.Fatalf("expected absent key to read as missing")
	}

	store.Set("points", "40")
	if !mr.Exists("ecoquest:points") {
		t.Fatalf("expected namespaced redis key to be set")
	}
	if v, ok := store.Get("points"); !ok || v != "40" {
		t.Fatalf("expected 40, got %q ok=%v", v, ok)
	}

	store.Delete("points")
	if mr.Exists("ecoquest:points") {
		t.Fatalf("expected redis key to be removed")
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
