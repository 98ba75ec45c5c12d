package providers

import (
	"context"
	"fmt"
	"io"

	"riseup/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Media stores an uploaded binary under a key and returns a retrievable URL.
type Media interface {
	Upload(ctx context.Context, key string, file io.Reader, size int64, contentType string) (string, error)
}

type CloudinaryMedia struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryMedia(cloudinaryURL string) (*CloudinaryMedia, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryMedia{cld: cld}, nil
}

func (m *CloudinaryMedia) Upload(ctx context.Context, key string, file io.Reader, size int64, contentType string) (string, error) {
	result, err := m.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: key,
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

type MinIOMedia struct {
	client *minio.Client
	cfg    config.MinIO
}

func NewMinIOMedia(cfg config.MinIO) (*MinIOMedia, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinIOMedia{client: client, cfg: cfg}, nil
}

func (m *MinIOMedia) Upload(ctx context.Context, key string, file io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.cfg.Bucket, key, file, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if m.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.cfg.Endpoint, m.cfg.Bucket, key), nil
}
