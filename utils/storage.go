package utils

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"itemBack/internal/config"
)

// S3Storage mirrors uploaded files to an S3-compatible object store.
// Credentials are injected from configuration at startup.
type S3Storage struct {
	client   *s3.S3
	bucket   string
	endpoint string
}

func NewS3Storage(cfg config.S3Config) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(cfg.Region),
		Endpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKey, cfg.SecretKey, "",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 session: %w", err)
	}

	return &S3Storage{
		client:   s3.New(sess),
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
	}, nil
}

// Upload stores the file under folder/fileName and returns its public URL.
func (s *S3Storage) Upload(file []byte, fileName, folder, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, filePath), nil
}
