// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/lingodiff/lingodiff/internal/cacheutil"
	"github.com/lingodiff/lingodiff/internal/document"
	"github.com/lingodiff/lingodiff/internal/log"
)

const s3Scheme = "s3://"

// S3API is the subset of the S3 client used here.
type S3API interface {
	HeadObject(ctx context.Context, in *s3v2.HeadObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error)
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// S3 is an object in a bucket. Reads are cached on disk keyed by the object's
// ETag, so an unchanged object is downloaded once.
type S3 struct {
	Bucket string
	Key    string
	Client S3API
}

// ParseS3URI splits s3://bucket/key into its parts.
func ParseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("%s: not an s3 uri", uri)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%s: expected s3://bucket/key", uri)
	}
	return bucket, key, nil
}

func (s *S3) Read(ctx context.Context) ([]byte, error) {
	head, err := s.Client.HeadObject(ctx, &s3v2.HeadObjectInput{
		Bucket: awsv2.String(s.Bucket),
		Key:    awsv2.String(s.Key),
	})
	if err != nil {
		return nil, s.wrap(err)
	}

	cacheKey := cacheutil.Key(s.Bucket, s.Key, awsv2.ToString(head.ETag))
	if entry, ok := cacheutil.Read(s.cacheDirs(), cacheKey); ok {
		return entry.Data, nil
	}

	out, err := s.Client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.Bucket),
		Key:    awsv2.String(s.Key),
	})
	if err != nil {
		return nil, s.wrap(err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}

	if head.ETag != nil {
		if err := cacheutil.Write(s.cacheDirs(), cacheKey, data); err != nil {
			log.WithError(err).Warnf("cache write failed for %s", s)
		}
	}
	return data, nil
}

func (s *S3) Write(ctx context.Context, data []byte) error {
	_, err := s.Client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(s.Bucket),
		Key:         awsv2.String(s.Key),
		Body:        bytes.NewReader(data),
		ContentType: awsv2.String(contentType(s.Key)),
	})
	if err != nil {
		return s.wrap(err)
	}
	log.Debugf("s3 put: %s (%d bytes)", s, len(data))
	return nil
}

func (s *S3) String() string { return s3Scheme + s.Bucket + "/" + s.Key }

func (s *S3) cacheDirs() []string { return []string{"s3", s.Bucket} }

func (s *S3) wrap(err error) error {
	var nsk *types.NoSuchKey
	var nf *types.NotFound
	var apiErr smithy.APIError
	switch {
	case errors.As(err, &nsk), errors.As(err, &nf):
		return fmt.Errorf("%s: %w", s, ErrNotFound)
	case errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NotFound" || apiErr.ErrorCode() == "NoSuchKey"):
		return fmt.Errorf("%s: %w", s, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", s, err)
}

func contentType(key string) string {
	switch document.FormatFor(key) {
	case document.FormatYAML:
		return "application/yaml"
	case document.FormatTOML:
		return "application/toml"
	case document.FormatHCL:
		return "text/plain"
	}
	return "application/json"
}
