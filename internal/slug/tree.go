// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package slug

import (
	"fmt"
	"math"
	"strings"
)

// Tree is a node holding child nodes by key. Anything that is not a Tree is
// a Scalar.
type Tree = map[string]any

// IsTree reports whether v is a Tree node.
func IsTree(v any) bool {
	_, ok := v.(Tree)
	return ok
}

// IsScalar reports whether v is a leaf value this package can store: nil, a
// string, a bool, any integer or a finite float.
func IsScalar(v any) bool {
	switch v := v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return false
	}
}

// kind names a node for error messages.
func kind(v any) string {
	if IsTree(v) {
		return "TREE"
	}
	return "SCALAR"
}

// validateTree checks that every node below t is a Tree or a Scalar and
// that every key is addressable: not empty and free of the separator.
func validateTree(t Tree, prefix string) error {
	for k, v := range t {
		slug := k
		if prefix != "" {
			slug = prefix + Separator + k
		}
		if k == "" || strings.Contains(k, Separator) {
			return fmt.Errorf("%w: key %q below %q is empty or contains the separator (%s)",
				ErrInvalidArgument, k, prefix, Separator)
		}
		if sub, ok := v.(Tree); ok {
			if err := validateTree(sub, slug); err != nil {
				return err
			}
			continue
		}
		if !IsScalar(v) {
			return fmt.Errorf("%w: %s holds %T, expected SCALAR or TREE", ErrInvalidArgument, slug, v)
		}
	}
	return nil
}

// cloneTree returns a deep copy of t. Scalars are immutable so only Trees
// are copied. A nil Tree comes back empty, never nil, so it can be written
// to.
func cloneTree(t Tree) Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = cloneNode(v)
	}
	return out
}

func cloneNode(v any) any {
	if t, ok := v.(Tree); ok {
		return cloneTree(t)
	}
	return v
}

// walk resolves path below root. A missing final key yields def; a missing
// intermediate key or a Scalar where a Tree is needed is an error.
func walk(root Tree, path []string, def any) (any, error) {
	var node any = root
	for i, key := range path {
		t, ok := node.(Tree)
		if !ok {
			return nil, fmt.Errorf("%w: unable to access %s, %s resolved to SCALAR",
				ErrTypeMismatch, key, path[i-1])
		}
		child, found := t[key]
		switch {
		case found:
			node = child
		case i == len(path)-1:
			return def, nil
		default:
			return nil, fmt.Errorf("%w: %s not found", ErrPathNotFound, key)
		}
	}
	return node, nil
}

// reference returns the Tree that holds the last segment of path, along
// with that segment. Every intermediate node must exist and be a Tree. The
// returned Tree aliases root so writes through it land in place.
func reference(root Tree, path []string) (Tree, string, error) {
	parent := root
	for _, key := range path[:len(path)-1] {
		child, found := parent[key]
		if !found {
			return nil, "", fmt.Errorf("%w: %s not found", ErrPathNotFound, key)
		}
		t, ok := child.(Tree)
		if !ok {
			return nil, "", fmt.Errorf("%w: expected to find a TREE at %s, instead found SCALAR",
				ErrTypeMismatch, key)
		}
		parent = t
	}
	return parent, path[len(path)-1], nil
}
