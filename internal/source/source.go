// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"strings"

	"github.com/lingodiff/lingodiff/internal/aws"
	"github.com/lingodiff/lingodiff/internal/config"
	"github.com/lingodiff/lingodiff/internal/log"
)

// ErrNotFound reports that a named resource does not exist.
var ErrNotFound = errors.New("not found")

// Source reads and writes the raw text of one named resource.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	String() string
}

type options struct {
	s3Client S3API
	awsOpts  []aws.Option
}

// Option customizes Open.
type Option func(*options)

// WithS3Client makes S3 resources use client instead of one built from the
// AWS environment.
func WithS3Client(client S3API) Option {
	return func(o *options) { o.s3Client = client }
}

// WithAWSOptions adds options used when building the S3 client.
func WithAWSOptions(opts ...aws.Option) Option {
	return func(o *options) { o.awsOpts = append(o.awsOpts, opts...) }
}

// Open returns the Source for name. Names starting with s3:// address S3
// objects, anything else is a local path.
func Open(ctx context.Context, name string, opts ...Option) (Source, error) {
	if !strings.HasPrefix(name, s3Scheme) {
		return Local{Path: name}, nil
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	bucket, key, err := ParseS3URI(name)
	if err != nil {
		return nil, err
	}

	client := o.s3Client
	if client == nil {
		c, err := aws.NewS3Client(ctx, append(awsOptionsFromConfig(), o.awsOpts...)...)
		if err != nil {
			return nil, err
		}
		client = c
	}

	log.Debugf("source: s3 bucket=%s key=%s", bucket, key)
	return &S3{Bucket: bucket, Key: key, Client: client}, nil
}

// awsOptionsFromConfig maps the s3.* config keys onto client options.
func awsOptionsFromConfig() []aws.Option {
	var opts []aws.Option
	if v, _ := config.GetString("s3.profile", ""); v != "" {
		opts = append(opts, aws.WithProfile(v))
	}
	if v, _ := config.GetString("s3.region", ""); v != "" {
		opts = append(opts, aws.WithRegion(v))
	}
	if v, _ := config.GetString("s3.endpoint", ""); v != "" {
		opts = append(opts, aws.WithEndpoint(v))
	}
	if v, _ := config.GetBool("s3.path_style", false); v {
		opts = append(opts, aws.WithPathStyle(true))
	}
	return opts
}
