// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
	retryer func() awsv2.Retryer
}

// Option customizes how AWS config is loaded. With no options the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS) is inherited.
type Option func(*options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// loadOptions turns Options into the SDK's config.LoadOptions functions.
func loadOptions(opts ...Option) []func(*config.LoadOptions) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}
	return loadOpts
}

// LoadAWSConfig loads AWS SDK v2 config.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	return config.LoadDefaultConfig(ctx, loadOptions(opts...)...)
}

// NewS3 constructs a v2 S3 client from the provided config.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	return s3v2.NewFromConfig(cfg, optFns...)
}
