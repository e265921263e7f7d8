package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"staffhub-backend/config"
	"staffhub-backend/db"
	s3client "staffhub-backend/s3"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Upload(ctx context.Context, uploadedBy, fileName, contentType string, file []byte) (fileID string, err error)
	Get(ctx context.Context, fileID string) (meta dbmodels.StoredFile, content []byte, err error)
	Delete(ctx context.Context, fileID string) error
	Exists(fileID string) (bool, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		s3client: s3client.Client,
		db:       db.DB,
	}
}

type impl struct {
	s3client *minio.Client
	db       *gorm.DB
}

var ErrNotFound = errors.New("file not found")

func (i impl) Upload(ctx context.Context, uploadedBy, fileName, contentType string, file []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectKey := fmt.Sprintf("%s%s", uuid.NewString(), path.Ext(fileName))
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "object upload failed")
	}
	rec := dbmodels.StoredFile{
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(file)),
		UploadedBy:  uploadedBy,
		ObjectKey:   objectKey,
	}
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "file metadata write failed")
	}
	return rec.ID, nil
}

func (i impl) Get(ctx context.Context, fileID string) (dbmodels.StoredFile, []byte, error) {
	meta, err := i.getMeta(fileID)
	if err != nil {
		return dbmodels.StoredFile{}, nil, err
	}
	if meta == nil {
		return dbmodels.StoredFile{}, nil, ErrNotFound
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, meta.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return dbmodels.StoredFile{}, nil, errors.Wrap(err, "object read failed")
	}
	defer object.Close()
	content, err := io.ReadAll(object)
	if err != nil {
		return dbmodels.StoredFile{}, nil, errors.Wrap(err, "object read failed")
	}
	return *meta, content, nil
}

func (i impl) Delete(ctx context.Context, fileID string) error {
	meta, err := i.getMeta(fileID)
	if err != nil {
		return err
	}
	if meta == nil {
		return ErrNotFound
	}
	err = i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, meta.ObjectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "object delete failed")
	}
	return i.db.Delete(&dbmodels.StoredFile{}, "id = ?", fileID).Error
}

func (i impl) Exists(fileID string) (bool, error) {
	meta, err := i.getMeta(fileID)
	if err != nil {
		return false, err
	}
	return meta != nil, nil
}

func (i impl) getMeta(fileID string) (*dbmodels.StoredFile, error) {
	rec := dbmodels.StoredFile{}
	err := i.db.
		Model(&dbmodels.StoredFile{}).
		Where("id = ?", fileID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
