// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Scheme prefixes source URIs that live in S3.
const S3Scheme = "s3://"

// ObjectGetter is the part of *s3.Client used to fetch documents.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// ParseS3URI splits s3://bucket/key. ok is false when uri is not an S3 URI
// or is missing either part.
func ParseS3URI(uri string) (bucket string, key string, ok bool) {
	rest, found := strings.CutPrefix(uri, S3Scheme)
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// GetObject reads the whole object at bucket/key.
func GetObject(ctx context.Context, client ObjectGetter, bucket, key string) ([]byte, error) {
	log.Debugf("fetching s3://%s/%s", bucket, key)
	out, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}
	return b, nil
}

// Fetch loads config with opts and reads the object named by an s3:// URI.
func Fetch(ctx context.Context, uri string, opts ...Option) ([]byte, error) {
	bucket, key, ok := ParseS3URI(uri)
	if !ok {
		return nil, fmt.Errorf("invalid s3 uri: %s", uri)
	}
	cfg, err := LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return GetObject(ctx, NewS3(cfg), bucket, key)
}
