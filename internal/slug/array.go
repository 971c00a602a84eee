// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package slug

import (
	"fmt"
	"strings"

	"github.com/apex/log"
)

// Array is a named tree addressed by slug. The zero value is not usable;
// construct one with New.
type Array struct {
	name     string
	root     Tree
	hash     string
	cache    map[string]any
	token    string
	writable bool
}

// New constructs an Array. name may be empty. If data has a single key equal
// to name, the Tree under that key becomes the root. data is copied.
func New(name string, data Tree, writable bool) (*Array, error) {
	a := &Array{
		root:     Tree{},
		cache:    make(map[string]any),
		writable: true,
	}
	if name != "" {
		if err := a.SetName(name); err != nil {
			return nil, err
		}
	}
	if err := a.SetData(data); err != nil {
		return nil, err
	}
	a.writable = writable
	return a, nil
}

// SetData replaces the whole tree and drops the cache.
func (a *Array) SetData(data Tree) error {
	if !a.writable {
		return fmt.Errorf("%w: %s is read-only", ErrLocked, a.name)
	}
	if len(data) == 1 && a.name != "" {
		if inner, ok := data[a.name].(Tree); ok {
			data = inner
		}
	}
	if err := validateTree(data, ""); err != nil {
		return err
	}

	a.root = cloneTree(data)
	a.hash = digest(a.root)
	a.resetCache()
	log.Debugf("%s: loaded %d top-level keys", a.name, len(a.root))
	return nil
}

// Lock makes the Array read-only. There is no way back.
func (a *Array) Lock() *Array {
	a.writable = false
	return a
}

// Writable reports whether the Array still accepts mutations.
func (a *Array) Writable() bool {
	return a.writable
}

// Name returns the Array's name.
func (a *Array) Name() string {
	return a.name
}

// SetName changes the name used to strip a leading slug segment. The name
// may not contain the separator or surrounding whitespace.
func (a *Array) SetName(name string) error {
	clean := strings.ReplaceAll(strings.TrimSpace(name), Separator, "")
	if clean != name || name == "" {
		return fmt.Errorf("%w: name %q cannot be empty, contain whitespace chars or separators (%s)",
			ErrInvalidArgument, name, Separator)
	}
	if name != a.name {
		// Cached keys are already stripped of the old name, which may now be
		// a legitimate first segment.
		a.resetCache()
	}
	a.name = name
	return nil
}

// Data returns a copy of the whole tree.
func (a *Array) Data() Tree {
	return cloneTree(a.root)
}

// Get returns the node at slug. A missing final key yields def[0] (or nil);
// a missing intermediate key is ErrPathNotFound and walking through a Scalar
// is ErrTypeMismatch. Trees are returned as copies.
func (a *Array) Get(slug string, def ...any) (any, error) {
	path, err := a.expand(slug)
	if err != nil {
		return nil, err
	}
	key := join(path)

	if v, ok := a.lookup(key); ok {
		log.Debugf("%s: cache hit %s", a.name, key)
		return cloneNode(v), nil
	}

	var fallback any
	if len(def) > 0 {
		fallback = def[0]
	}

	const missing = sentinel("missing")
	v, err := walk(a.root, path, missing)
	if err != nil {
		return nil, fmt.Errorf("invalid slug %s: %w", slug, err)
	}
	if v == missing {
		log.Debugf("%s: %s not set, using default", a.name, key)
		return fallback, nil
	}

	log.Debugf("%s: cache miss %s", a.name, key)
	a.cache[key] = cloneNode(v)
	a.token = a.hash
	return cloneNode(v), nil
}

// sentinel marks an absent final key so defaults are never cached.
type sentinel string
