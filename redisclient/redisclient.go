package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"staffhub-backend/config"
)

var Client *redis.Client

func Connect(ctx context.Context) error {
	Client = redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return Client.Ping(pingCtx).Err()
}
