package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock github.com/savioruz/kickmatch/pkg/storage Interface

const (
	VenuesStoragePath = "venues"

	MinURLParts = 2
)

var (
	ErrInvalidFileURL     = errors.New("invalid file URL")
	ErrFailedToUploadFile = errors.New("failed to upload file")
	ErrFailedToDeleteFile = errors.New("failed to delete file")
)

type Interface interface {
	UploadFile(ctx context.Context, body io.Reader, filename string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
}

type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	PublicURL       string
	Region          string
	BucketName      string
}

type Client struct {
	s3Client   *s3.Client
	bucketName string
	publicURL  string
}

var _ Interface = (*Client)(nil)

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
		}

		o.UsePathStyle = true
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = strings.TrimSuffix(cfg.EndpointURL, "/") + "/" + cfg.BucketName
	}

	return &Client{
		s3Client:   client,
		bucketName: cfg.BucketName,
		publicURL:  strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (c *Client) UploadFile(ctx context.Context, body io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", VenuesStoragePath, uuid.New().String(), ext)

	if seeker, ok := body.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return "", fmt.Errorf("failed to reset file pointer: %w", err)
		}
	}

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(ContentTypeFor(ext)),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToUploadFile, err)
	}

	return c.PublicURL(key), nil
}

func (c *Client) DeleteFile(ctx context.Context, fileURL string) error {
	key := c.KeyFromURL(fileURL)
	if key == "" {
		return fmt.Errorf("%w: %s", ErrInvalidFileURL, fileURL)
	}

	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDeleteFile, err)
	}

	return nil
}

func (c *Client) PublicURL(key string) string {
	return c.publicURL + "/" + key
}

// KeyFromURL returns the object key of a URL produced by PublicURL, or "" when it does not belong to the bucket.
func (c *Client) KeyFromURL(fileURL string) string {
	if key, ok := strings.CutPrefix(fileURL, c.publicURL+"/"); ok && key != "" {
		return key
	}

	parts := strings.Split(fileURL, "/")
	if len(parts) < MinURLParts {
		return ""
	}

	for i, part := range parts {
		if part == c.bucketName && i < len(parts)-1 {
			return strings.Join(parts[i+1:], "/")
		}
	}

	return ""
}

func ContentTypeFor(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
