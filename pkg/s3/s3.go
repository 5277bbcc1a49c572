package s3

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

// Storage uploads objects to one S3 bucket and signs read URLs for them.
type Storage struct {
	bucket   string
	uploader *s3manager.Uploader
	client   *awss3.S3
}

func New(region, bucket string) (*Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &Storage{
		bucket:   bucket,
		uploader: s3manager.NewUploader(sess),
		client:   awss3.New(sess),
	}, nil
}

// Upload writes the stream to the bucket and returns the storage key it was
// stored under. The key is the sanitized filename behind a random prefix, so
// two uploads of the same name never overwrite each other.
func (s *Storage) Upload(r io.Reader, desiredName, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s", uuid.New().String(), SanitizeFilename(desiredName))
	_, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// Presign returns a URL granting anonymous read access to one object for ttl.
func (s *Storage) Presign(key string, ttl time.Duration) (string, error) {
	req, _ := s.client.GetObjectRequest(&awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	url, err := req.Presign(ttl)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return url, nil
}

// SanitizeFilename strips path separators and anything outside a safe
// character set from a client-supplied filename.
func SanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	clean := strings.Trim(b.String(), "._")
	if clean == "" {
		return "file"
	}
	return clean
}
