// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package slug

import (
	"fmt"
	"sort"

	"github.com/apex/log"
)

// Flatten returns one entry per Scalar leaf, keyed by its full slug with
// the Array's name as the first segment. An unnamed Array produces keys
// without a prefix, which LoadFlattened cannot read back. Empty Trees have
// no leaves and are not represented.
func (a *Array) Flatten() map[string]any {
	return FlattenTree(a.root, a.name)
}

// FlattenTree flattens t the same way Flatten does, prefixing every key
// with prefix unless it is empty.
func FlattenTree(t Tree, prefix string) map[string]any {
	out := make(map[string]any)
	flatten(t, prefix, out)
	return out
}

func flatten(t Tree, prefix string, out map[string]any) {
	for k, v := range t {
		slug := k
		if prefix != "" {
			slug = prefix + Separator + k
		}
		if sub, ok := v.(Tree); ok {
			flatten(sub, slug, out)
			continue
		}
		out[slug] = v
	}
}

// Slugs returns the keys of Flatten in sorted order.
func (a *Array) Slugs() []string {
	return SortedKeys(a.Flatten())
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadFlattened replaces name, tree and cache from the output of Flatten.
// Entries are applied in sorted order; the first segment of the first entry
// becomes the name and every other entry must share it. Intermediate Trees
// are created as needed. An empty map clears the tree and keeps the current
// name. On error the Array is unchanged.
func (a *Array) LoadFlattened(flat map[string]any) error {
	if !a.writable {
		return fmt.Errorf("%w: %s is read-only", ErrLocked, a.name)
	}

	name := a.name
	root := Tree{}
	for i, slug := range SortedKeys(flat) {
		value := flat[slug]
		if !IsScalar(value) {
			return fmt.Errorf("%w: %s holds %T, expected SCALAR", ErrInvalidArgument, slug, value)
		}

		path := split(slug)
		if i == 0 {
			name = path[0]
			check := Array{}
			if err := check.SetName(name); err != nil {
				return err
			}
		} else if path[0] != name {
			return fmt.Errorf("%w: %s does not start with %s", ErrInvalidArgument, slug, name)
		}
		path = path[1:]
		if len(path) == 0 {
			return fmt.Errorf("%w: %q has no path below %s", ErrInvalidSlug, slug, name)
		}

		if err := insert(root, path, value); err != nil {
			return fmt.Errorf("invalid slug %s: %w", slug, err)
		}
	}

	a.name = name
	a.root = root
	a.hash = digest(a.root)
	a.resetCache()
	log.Debugf("%s: loaded %d flattened entries", a.name, len(flat))
	return nil
}

// insert places value at path, creating intermediate Trees.
func insert(root Tree, path []string, value any) error {
	node := root
	for _, key := range path[:len(path)-1] {
		if key == "" {
			return fmt.Errorf("%w: empty segment", ErrInvalidSlug)
		}
		child, found := node[key]
		if !found {
			sub := Tree{}
			node[key] = sub
			node = sub
			continue
		}
		sub, ok := child.(Tree)
		if !ok {
			return fmt.Errorf("%w: %s is a SCALAR", ErrTypeMismatch, key)
		}
		node = sub
	}
	last := path[len(path)-1]
	if last == "" {
		return fmt.Errorf("%w: empty segment", ErrInvalidSlug)
	}
	if existing, found := node[last]; found && IsTree(existing) {
		return fmt.Errorf("%w: %s is a TREE", ErrTypeMismatch, last)
	}
	node[last] = value
	return nil
}
