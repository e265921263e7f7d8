package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"staffhub-backend/redisclient"
)

func InitRedis(ctx context.Context) {
	if err := redisclient.Connect(ctx); err != nil {
		// token revocation degrades gracefully without redis
		log.WithError(err).Error("redis connection failed")
		return
	}
	log.Info("redis client ready")
}
