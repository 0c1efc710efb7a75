// Package logos stores uploaded company logos in S3 and hands back the
// public URL the submission form puts into the draft's logo_url field.
package logos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/launchlist/launchlist/pkg/logging"
)

// S3API is the subset of the S3 client the store uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store uploads logo images to a bucket. If bucket is empty the store is
// disabled and uploads are rejected.
type Store struct {
	bucket    string
	publicURL string
	s3Client  S3API
	logger    *logging.Logger
}

// NewStore creates a logo store. publicURL is the base under which objects
// are reachable; when empty, a standard S3 URL is derived from the bucket.
func NewStore(s3Client S3API, bucket, publicURL string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	if publicURL == "" && bucket != "" {
		publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return &Store{
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		s3Client:  s3Client,
		logger:    logger,
	}
}

// Enabled reports whether uploads are configured.
func (s *Store) Enabled() bool {
	return s != nil && s.bucket != "" && s.s3Client != nil
}

// Upload stores one logo image and returns its public URL.
func (s *Store) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if !s.Enabled() {
		return "", errors.New("logos: uploads are not configured")
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".png"
	}
	key := fmt.Sprintf("logos/logo-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("logos: s3 put %s: %w", key, err)
	}

	url := s.publicURL + "/" + key
	s.logger.Info("logo uploaded", "key", key)
	return url, nil
}
