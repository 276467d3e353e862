package output

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Uploader pushes rendered images to an S3-compatible object store
type Uploader struct {
	client *s3.S3
	bucket string
}

// NewUploaderFromEnv builds an uploader from S3_ACCESS_KEY, S3_SECRET_KEY,
// S3_ENDPOINT and S3_REGION. Endpoint may be empty for AWS proper.
func NewUploaderFromEnv(bucket string) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("upload bucket must not be empty")
	}

	config := &aws.Config{
		Region:           aws.String(os.Getenv("S3_REGION")),
		S3ForcePathStyle: aws.Bool(true),
	}
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		config.Endpoint = aws.String(endpoint)
	}
	if accessKey := os.Getenv("S3_ACCESS_KEY"); accessKey != "" {
		config.Credentials = credentials.NewStaticCredentials(accessKey, os.Getenv("S3_SECRET_KEY"), "")
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &Uploader{client: s3.New(sess), bucket: bucket}, nil
}

// UploadPNG encodes the image as PNG and uploads it under the given key
func (u *Uploader) UploadPNG(img image.Image, key string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode PNG for upload: %w", err)
	}

	_, err := u.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(int64(buf.Len())),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return nil
}
