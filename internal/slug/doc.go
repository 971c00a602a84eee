// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package slug implements Array, a dot-path addressable view over a nested
// map[string]any tree. Values are read, added, updated and removed by slug
// (e.g. "db.primary.host"), resolved lookups are cached, and the cache is
// validated against a content hash of the whole tree.
//
// An Array is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package slug
