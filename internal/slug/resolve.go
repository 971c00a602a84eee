// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package slug

import (
	"fmt"
	"strings"
)

// Separator joins the segments of a slug.
const Separator = "."

// trimCutset is stripped from both ends of a slug before it is split.
const trimCutset = " \t\n\r\x00\x0b" + Separator

// expand normalizes slug into its path segments, dropping a leading segment
// that repeats the Array's own name.
func (a *Array) expand(slug string) ([]string, error) {
	trimmed := strings.Trim(slug, trimCutset)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: %q is not a valid slug", ErrInvalidSlug, slug)
	}

	path := strings.Split(trimmed, Separator)
	if a.name != "" && path[0] == a.name {
		path = path[1:]
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: %q is not a valid slug", ErrInvalidSlug, slug)
	}
	for _, seg := range path {
		if seg == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidSlug, slug)
		}
	}
	return path, nil
}

// join is the inverse of split.
func join(path []string) string {
	return strings.Join(path, Separator)
}

func split(slug string) []string {
	return strings.Split(slug, Separator)
}

// related reports whether one path is a segment-wise prefix of the other
// (including equality). "a.b" and "a.b.c" are related, "a" and "ab" are not.
func related(x, y []string) bool {
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
