// Package media stores uploaded files on an S3-compatible host. Uploads are
// proxied through the API: clients never talk to the bucket directly and
// never see credentials.
package media

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/Virag-Koradiya/ElevateU/internal/api/metrics"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

// Config captures the settings for the media bucket. Endpoint is optional;
// when set it points the client at an S3-compatible host (e.g. MinIO).
type Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// S3Uploader implements ports.MediaUploader on top of the AWS SDK.
type S3Uploader struct {
	client *s3.Client
	bucket string
	// publicBaseURL is prefixed to storage keys to form the URL stored on
	// user and company records.
	publicBaseURL string
}

func NewS3Uploader(ctx context.Context, cfg Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the file under a random key inside folder and returns its
// public URL. The original filename travels only in metadata; keys are
// random so uploads can never collide or be guessed.
func (u *S3Uploader) Upload(ctx context.Context, file ports.FileUpload, folder string) (string, error) {
	key := storageKey(folder, file.Filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Data),
		ContentType: aws.String(file.ContentType),
		Metadata:    map[string]string{"original-filename": file.Filename},
	})
	if err != nil {
		metrics.MediaUploadsTotal.WithLabelValues(folder, "error").Inc()
		return "", fmt.Errorf("put object: %w", err)
	}

	metrics.MediaUploadsTotal.WithLabelValues(folder, "ok").Inc()
	return u.publicBaseURL + "/" + key, nil
}

func storageKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s%s", folder, uuid.New(), ext)
}
