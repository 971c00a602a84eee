// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package aws loads AWS SDK v2 configuration and fetches documents from S3
// for s3:// sources.
package aws
