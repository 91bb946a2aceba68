package s3

import (
	"buildunion/internal/config"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const (
	emptyAWSSessionToken = ""

	errFailedCreateAWSSessionFmt = "failed to create AWS session: %w"
	errFailedUploadObjectFmt     = "failed to upload object: %w"
	errFailedDeleteObjectFmt     = "failed to delete object: %w"
	errFailedSignURLFmt          = "failed to generate signed URL: %w"
)

// Client wraps S3 access for a single blueprint bucket.
type Client struct {
	svc    *s3.S3
	bucket string
	region string
}

func NewClient(cfg *config.AWSConfig, bucket string) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			emptyAWSSessionToken,
		),
	})

	if err != nil {
		return nil, fmt.Errorf(errFailedCreateAWSSessionFmt, err)
	}

	return &Client{
		svc:    s3.New(sess),
		bucket: bucket,
		region: cfg.Region,
	}, nil
}

// Upload streams the object body to the bucket at the given key.
func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   aws.ReadSeekCloser(body),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.svc.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf(errFailedUploadObjectFmt, err)
	}

	return nil
}

func (c *Client) Remove(ctx context.Context, key string) error {
	_, err := c.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return fmt.Errorf(errFailedDeleteObjectFmt, err)
	}

	return nil
}

// SignedURL returns a time-boxed GET URL for the stored object.
func (c *Client) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, _ := c.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	req.SetContext(ctx)

	url, err := req.Presign(ttl)
	if err != nil {
		return "", fmt.Errorf(errFailedSignURLFmt, err)
	}

	return url, nil
}

// PublicURL returns the unauthenticated virtual-hosted URL for the object.
// Whether it resolves depends on the bucket's own access policy.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}
