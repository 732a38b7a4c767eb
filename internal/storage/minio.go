package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/arzan03/ArtistryCamp/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore keeps class cover images in an S3-compatible bucket.
type ImageStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinio connects to the endpoint and makes sure the bucket exists. A
// failed bucket check is logged, not fatal.
func NewMinio(ctx context.Context, cfg config.MinioConfig) (*ImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	s := &ImageStore{client: client, bucket: cfg.Bucket, publicURL: strings.TrimRight(publicURL, "/")}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		slog.Warn("failed to check bucket existence", slog.String("bucket", cfg.Bucket), slog.String("error", err.Error()))
	} else if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			slog.Warn("failed to create bucket", slog.String("bucket", cfg.Bucket), slog.String("error", err.Error()))
		} else {
			slog.Info("created bucket", slog.String("bucket", cfg.Bucket))
		}
	}

	slog.Info("connected to MinIO", slog.String("endpoint", cfg.Endpoint))
	return s, nil
}

// Upload stores an image under a fresh key and returns its public URL.
func (s *ImageStore) Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	objectName := ObjectName("classes", filename, time.Now())
	_, err := s.client.PutObject(ctx, s.bucket, objectName, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectName, err)
	}
	return s.publicURL + "/" + path.Join(s.bucket, objectName), nil
}

// Ping checks that the bucket is reachable.
func (s *ImageStore) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// ObjectName builds "<folder>/<yyyymmdd>-<uuid>-<sanitized filename>".
func ObjectName(folder, filename string, at time.Time) string {
	safe := unsafeChars.ReplaceAllString(path.Base(filename), "_")
	return fmt.Sprintf("%s/%s-%s-%s", folder, at.Format("20060102"), uuid.New().String(), safe)
}
