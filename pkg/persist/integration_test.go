//go:build integration

package persist

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRedisBackend(t *testing.T) {
	addr := os.Getenv("DESIGNER_TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	b, err := NewRedisBackend(ctx, RedisOptions{Addr: addr, TTL: time.Minute})
	if err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	defer b.Close()

	exerciseBackend(t, NewScopedBackend(b, "test:"+uuid.NewString()+":"))
}

func TestMongoBackend(t *testing.T) {
	uri := os.Getenv("DESIGNER_TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	b, err := NewMongoBackend(ctx, uri, "designer_test", "canvases_"+uuid.NewString()[:8])
	if err != nil {
		t.Skipf("mongodb unavailable: %v", err)
	}
	defer func() {
		_ = b.coll.Drop(context.Background())
		b.Close()
	}()

	exerciseBackend(t, b)
}
