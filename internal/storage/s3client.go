package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader wraps the S3 client for the image bucket. A zero-configured
// uploader is valid and reports Enabled() == false; callers then fall back to
// local disk for development.
type Uploader struct {
	Client  *s3.Client
	Bucket  string
	CDNBase string
}

// NewUploader builds an uploader from the environment. SAVOUR_S3_BUCKET
// unset means uploads stay local.
func NewUploader(ctx context.Context) (*Uploader, error) {
	bucket := os.Getenv("SAVOUR_S3_BUCKET")
	if bucket == "" {
		bucket = "savour"
	}
	if os.Getenv("SAVOUR_S3_DISABLED") == "true" {
		return &Uploader{}, nil
	}
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = os.Getenv("AWS_DEFAULT_REGION")
	}
	if region == "" {
		region = "eu-central-1"
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &Uploader{
		Client:  s3.NewFromConfig(cfg),
		Bucket:  bucket,
		CDNBase: os.Getenv("ASSETS_CDN_BASE_URL"),
	}, nil
}

// Enabled reports whether S3 uploads are configured.
func (u *Uploader) Enabled() bool { return u != nil && u.Client != nil && u.Bucket != "" }

// Upload streams an object to the bucket and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if !u.Enabled() {
		return "", fmt.Errorf("s3 uploader not configured")
	}
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.Bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object to S3: %w", err)
	}
	return u.PublicURL(key), nil
}

// PublicURL builds the client-visible URL for an object key, preferring the
// CDN base when configured.
func (u *Uploader) PublicURL(key string) string {
	if u.CDNBase != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(u.CDNBase, "/"), key)
	}
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "eu-central-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.Bucket, region, key)
}
