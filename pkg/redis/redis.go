package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	const timeout = 500 * time.Millisecond

	var err error

	for range 10 {
		err = client.Ping(ctx).Err()
		if err == nil {
			return client, nil
		}

		time.Sleep(timeout)
	}

	_ = client.Close()

	return nil, fmt.Errorf("ping: %w", err)
}
