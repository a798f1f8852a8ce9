// Package images stores uploaded photos in S3 and hands back public URLs.
package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/e"
)

const maxImageBytes = 10 << 20 // 10 MB per photo

type Image struct {
	Data        []byte
	ContentType string
}

type S3Store struct {
	client *s3.Client
	cfg    config.S3Config
	logger *slog.Logger
}

func NewS3Store(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3.Region))
	if err != nil {
		return nil, e.Wrap("storage.images.NewS3Store.LoadDefaultConfig", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		cfg:    cfg.S3,
		logger: logger,
	}, nil
}

// Upload puts one image under a fresh key and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, img Image) (string, error) {
	const op = "storage.images.Upload"

	key := fmt.Sprintf("%s/%s-%d%s",
		s.cfg.KeyPrefix, uuid.New().String(), time.Now().Unix(), extensionFor(img.ContentType))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(img.ContentType),
	})
	if err != nil {
		s.logger.Error("s3 put failed", slog.String("op", op), slog.Any("error", err))
		return "", e.Wrap(op, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key), nil
}

// DecodeBase64 accepts a raw base64 string or a data URI
// ("data:image/png;base64,...") and returns the decoded bytes with the
// declared content type, defaulting to image/jpeg.
func DecodeBase64(encoded string) (Image, error) {
	contentType := "image/jpeg"

	if idx := strings.Index(encoded, ","); idx >= 0 {
		header := encoded[:idx]
		encoded = encoded[idx+1:]
		if strings.HasPrefix(header, "data:") {
			if semi := strings.Index(header, ";"); semi > 5 {
				contentType = header[5:semi]
			}
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Image{}, fmt.Errorf("decode base64 image: %w", e.ErrInvalidInput)
	}
	if len(data) == 0 || len(data) > maxImageBytes {
		return Image{}, fmt.Errorf("image size out of bounds: %w", e.ErrInvalidInput)
	}

	return Image{Data: data, ContentType: contentType}, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
