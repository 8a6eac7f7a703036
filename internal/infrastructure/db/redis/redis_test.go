package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/gamestore/game-store-api/internal/pkg/config"
)

func TestConnect_PingsServer(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer client.Close()

	if err := client.Set(context.Background(), "connect-check", "1", 0).Err(); err != nil {
		t.Fatalf("client not usable after connect: %v", err)
	}
}

func TestConnect_UnreachableServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := Connect(context.Background(), config.RedisConfig{Addr: addr}); err == nil {
		t.Fatalf("expected error for unreachable server")
	}
}
