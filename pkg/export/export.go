// Package export uploads HTML snapshots of a live tree to S3.
//
// Example usage:
//
//	client := s3.New(s3.Options{Region: "us-east-1", Credentials: creds})
//	ex := export.New(client, "my-bucket", "snapshots/")
//	key, err := ex.Put(ctx, root.OuterHTML())
package export

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cespare/xxhash/v2"
	"github.com/vango-dev/vmini/internal/errors"
)

// ContentType is the content type snapshots are stored with.
const ContentType = "text/html; charset=utf-8"

// PutObjectAPI is the part of the S3 client the exporter uses.
// *s3.Client satisfies it.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Exporter writes snapshots to one bucket under a key prefix.
type Exporter struct {
	client PutObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

// New creates an exporter.
//
// Parameters:
//   - client: S3 client from aws-sdk-go-v2
//   - bucket: S3 bucket name
//   - prefix: Key prefix for snapshots (e.g., "snapshots/")
func New(client PutObjectAPI, bucket, prefix string) *Exporter {
	return &Exporter{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

// Key returns the object key for html. Keys are content addressed, so
// exporting the same markup twice overwrites one object.
func (e *Exporter) Key(html string) string {
	return e.prefix + strconv.FormatUint(xxhash.Sum64String(html), 16) + ".html"
}

// Put uploads html and returns its object key.
func (e *Exporter) Put(ctx context.Context, html string) (string, error) {
	if e.bucket == "" {
		return "", errors.New("E301").
			WithDetail("no bucket configured").
			WithSuggestion("Set export.bucket in vmini.json or pass --bucket")
	}

	key := e.Key(html)
	_, err := e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(html),
		ContentType: aws.String(ContentType),
		Metadata: map[string]string{
			"export-time": e.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", errors.New("E301").WithDetail("s3://" + e.bucket + "/" + key).Wrap(err)
	}
	return key, nil
}

// Bucket returns the destination bucket.
func (e *Exporter) Bucket() string {
	return e.bucket
}
