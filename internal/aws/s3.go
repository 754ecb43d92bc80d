// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/lingodiff/lingodiff/internal/log"
)

// options holds optional overrides for AWS config loading and client
// construction.
type options struct {
	profile   string
	region    string
	endpoint  string
	pathStyle bool
	retryer   func() awsv2.Retryer
}

// Option customizes how AWS config is loaded. With no options the shell
// environment and shared config chain apply (AWS_PROFILE, ~/.aws/config,
// ~/.aws/credentials, IMDS).
type Option func(*options)

// LoadAWSConfig loads AWS SDK v2 config honoring the profile, region and
// retryer options.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	o := apply(opts)
	log.Debugf("aws opts: profile=%s, region=%s", o.profile, o.region)

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

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("aws config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	return cfg, nil
}

// NewS3 constructs an S3 client from cfg. The endpoint and path style options
// target S3 compatible stores such as MinIO or LocalStack.
func NewS3(cfg awsv2.Config, opts ...Option) *s3v2.Client {
	o := apply(opts)
	client := s3v2.NewFromConfig(cfg, s3Options(o)...)
	log.Debugf("s3 client created: endpoint=%q pathStyle=%t", o.endpoint, o.pathStyle)
	return client
}

// NewS3Client loads config and builds an S3 client in one step.
func NewS3Client(ctx context.Context, opts ...Option) (*s3v2.Client, error) {
	cfg, err := LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return NewS3(cfg, opts...), nil
}

func s3Options(o options) []func(*s3v2.Options) {
	var fns []func(*s3v2.Options)
	if o.endpoint != "" {
		endpoint := o.endpoint
		fns = append(fns, func(so *s3v2.Options) { so.BaseEndpoint = awsv2.String(endpoint) })
	}
	if o.pathStyle {
		fns = append(fns, func(so *s3v2.Options) { so.UsePathStyle = true })
	}
	return fns
}

func apply(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

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

// WithEndpoint points the S3 client at a custom base endpoint.
func WithEndpoint(url string) Option {
	return func(o *options) { o.endpoint = url }
}

// WithPathStyle forces path style bucket addressing.
func WithPathStyle(enabled bool) Option {
	return func(o *options) { o.pathStyle = enabled }
}
