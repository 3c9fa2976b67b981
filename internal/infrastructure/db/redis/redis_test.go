package redis

import (
	"context"
	"testing"
	"time"
)

func TestConnect_UnreachableInstance(t *testing.T) {
	cfg := Config{
		Addr:     "127.0.0.1:1",
		Password: "unused",
		PoolSize: 2,
		Timeout:  200 * time.Millisecond,
	}

	client, err := Connect(context.Background(), cfg)
	if err == nil {
		_ = client.Close()
		t.Fatalf("expected connection error for unreachable instance")
	}
}
