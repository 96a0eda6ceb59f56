package minio

import (
	"Boomer/internal/api/config"
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

const presignExpiry = 7 * 24 * time.Hour

// UploadFile 上传文件到MinIO
func UploadFile(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}

	uploadInfo, err := Client.PutObject(ctx, MainBucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// GetPublicURL 获取文件的公共访问URL
func GetPublicURL(cfg config.MinIOConfig, objectName string) string {
	return fmt.Sprintf("https://%s/%s/%s", cfg.ExternalEndpoint, cfg.MainBucket, objectName)
}

// Storage 海报对象存储
type Storage struct {
	cfg config.MinIOConfig
}

func NewStorage(cfg config.MinIOConfig) *Storage {
	return &Storage{cfg: cfg}
}

// Upload 上传后返回访问地址：公开桶直接拼接，私有桶返回预签名链接
func (s *Storage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	key, err := UploadFile(ctx, objectName, data, contentType)
	if err != nil {
		return "", err
	}
	if s.cfg.UsePublicLink {
		return GetPublicURL(s.cfg, key), nil
	}

	u, err := Client.PresignedGetObject(ctx, MainBucket, key, presignExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}
	return u.String(), nil
}
