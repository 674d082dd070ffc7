package services

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"venue-booking/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ImageKind names the folder an uploaded image is stored under.
type ImageKind string

const (
	VenueImage  ImageKind = "venues"
	ArtistImage ImageKind = "artists"
)

func ParseImageKind(value string) (ImageKind, error) {
	switch ImageKind(value) {
	case VenueImage, ArtistImage:
		return ImageKind(value), nil
	default:
		return "", &ValidationError{Fields: map[string]string{"kind": "oneof=venues artists"}}
	}
}

type PresignedUpload struct {
	UploadURL string    `json:"presigned_url"`
	PublicURL string    `json:"public_url"`
	ObjectKey string    `json:"object_key"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ImageService interface {
	PresignUpload(ctx context.Context, kind ImageKind, filename string) (*PresignedUpload, error)
}

type MinIOImageService struct {
	client    *minio.Client
	bucket    string
	region    string
	publicURL string
	expiry    time.Duration
	logger    *logrus.Logger
}

func NewMinIOImageService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOImageService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	return &MinIOImageService{
		client:    client,
		bucket:    cfg.BucketName,
		region:    cfg.Region,
		publicURL: cfg.PublicURL,
		expiry:    expiry,
		logger:    logger,
	}, nil
}

// EnsureBucket creates the image bucket when missing and makes its objects
// publicly readable, so image_link values can point straight at them.
func (s *MinIOImageService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

func (s *MinIOImageService) PresignUpload(ctx context.Context, kind ImageKind, filename string) (*PresignedUpload, error) {
	key, err := imageObjectKey(kind, filename)
	if err != nil {
		return nil, err
	}

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, key, s.expiry)
	if err != nil {
		s.logger.WithError(err).WithField("objectKey", key).Error("Failed to generate presigned URL")
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"kind":      kind,
		"filename":  filename,
		"objectKey": key,
		"expiry":    s.expiry,
	}).Info("Generated presigned URL")

	return &PresignedUpload{
		UploadURL: presignedURL.String(),
		PublicURL: publicObjectURL(s.publicURL, key),
		ObjectKey: key,
		ExpiresAt: time.Now().UTC().Add(s.expiry),
	}, nil
}

// imageObjectKey places the file under its kind folder and suffixes the base
// name with a short random id so uploads never overwrite each other.
func imageObjectKey(kind ImageKind, filename string) (string, error) {
	if _, err := ParseImageKind(string(kind)); err != nil {
		return "", err
	}

	base := filepath.Base(strings.TrimSpace(filename))
	if base == "" || base == "." || base == "/" {
		return "", &ValidationError{Fields: map[string]string{"filename": "required"}}
	}

	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		name = "image"
	}

	return path.Join(string(kind), fmt.Sprintf("%s_%s%s", name, uuid.New().String()[:8], strings.ToLower(ext))), nil
}

// publicObjectURL joins the configured public bucket URL and an object key.
func publicObjectURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + key
}
