package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"staffhub-backend/config"
	s3client "staffhub-backend/s3"
)

func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("s3 client init failed")
		return
	}
	s3client.Client = minioClient

	if err = s3client.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("s3 bucket check failed")
		return
	}
	log.Info("s3 client ready")
}
