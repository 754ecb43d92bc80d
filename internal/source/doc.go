// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source reads and writes documents by name. Plain names are local
// files and s3://bucket/key names are S3 objects.
package source
