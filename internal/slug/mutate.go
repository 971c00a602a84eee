// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package slug

import (
	"fmt"

	"github.com/apex/log"
)

// target is a resolved write location: the parent Tree, the final key and
// the normalized path.
type target struct {
	parent Tree
	key    string
	path   []string
}

// prepare runs the checks shared by every mutation, in order: lock, slug,
// path to the parent.
func (a *Array) prepare(op, slug string) (target, error) {
	if !a.writable {
		return target{}, fmt.Errorf("%w: cannot %s %s on %s, object is locked", ErrLocked, op, slug, a.name)
	}
	path, err := a.expand(slug)
	if err != nil {
		return target{}, err
	}
	parent, key, err := reference(a.root, path)
	if err != nil {
		return target{}, fmt.Errorf("invalid slug %s: %w", slug, err)
	}
	return target{parent: parent, key: key, path: path}, nil
}

// commit finishes a successful write: drop affected cache entries, cache
// the new value (if any) and refresh the hash.
func (a *Array) commit(op string, t target, value any, cacheValue bool) {
	a.invalidate(t.path)
	a.rehash()
	if cacheValue {
		a.cache[join(t.path)] = cloneNode(value)
	}
	log.Debugf("%s: %s %s", a.name, op, join(t.path))
}

func (a *Array) checkScalar(op string, value any) error {
	if !a.writable {
		return nil // reported by prepare
	}
	if !IsScalar(value) {
		return fmt.Errorf("%w: %s only accepts bool, nil, string or numeric (SCALAR) values, saw %T",
			ErrInvalidArgument, op, value)
	}
	return nil
}

func (a *Array) checkTree(op string, value Tree) error {
	if !a.writable {
		return nil // reported by prepare
	}
	if value == nil {
		return fmt.Errorf("%w: %s only accepts TREE values, saw nil", ErrInvalidArgument, op)
	}
	return validateTree(value, "")
}

// AddScalar creates a Scalar at slug. The key must not exist yet, even
// with a nil value.
func (a *Array) AddScalar(slug string, value any) error {
	if err := a.checkScalar("add", value); err != nil {
		return err
	}
	t, err := a.prepare("add", slug)
	if err != nil {
		return err
	}
	if _, exists := t.parent[t.key]; exists {
		return fmt.Errorf("%w: %s already exists, update it instead", ErrInvalidOperation, slug)
	}
	t.parent[t.key] = value
	a.commit("added", t, value, true)
	return nil
}

// UpdateScalar replaces an existing Scalar at slug.
func (a *Array) UpdateScalar(slug string, value any) error {
	if err := a.checkScalar("update", value); err != nil {
		return err
	}
	t, err := a.prepare("update", slug)
	if err != nil {
		return err
	}
	current, exists := t.parent[t.key]
	if !exists {
		return fmt.Errorf("%w: %s does not exist, create it using the correct method",
			ErrInvalidOperation, slug)
	}
	if IsTree(current) {
		return fmt.Errorf("%w: %w: cannot replace TREE at %s with SCALAR",
			ErrInvalidOperation, ErrTypeConflict, slug)
	}
	t.parent[t.key] = value
	a.commit("updated", t, value, true)
	return nil
}

// RemoveScalar deletes an existing Scalar at slug.
func (a *Array) RemoveScalar(slug string) error {
	return a.remove(slug, false)
}

// AddTree creates a Tree at slug. The key must not exist yet.
func (a *Array) AddTree(slug string, value Tree) error {
	if err := a.checkTree("add", value); err != nil {
		return err
	}
	t, err := a.prepare("add", slug)
	if err != nil {
		return err
	}
	if _, exists := t.parent[t.key]; exists {
		return fmt.Errorf("%w: %s already exists, update it instead", ErrInvalidOperation, slug)
	}
	t.parent[t.key] = cloneTree(value)
	a.commit("added", t, nil, false)
	return nil
}

// UpdateTree merges value into the existing Tree at slug. Scalars are
// overwritten, Trees merged, nothing is deleted and no node may change
// between Scalar and Tree. On failure nothing is written.
func (a *Array) UpdateTree(slug string, value Tree) error {
	if err := a.checkTree("update", value); err != nil {
		return err
	}
	t, err := a.prepare("update", slug)
	if err != nil {
		return err
	}
	current, exists := t.parent[t.key]
	if !exists {
		return fmt.Errorf("%w: %s does not exist, create it using the correct method",
			ErrInvalidOperation, slug)
	}
	original, ok := current.(Tree)
	if !ok {
		return fmt.Errorf("%w: %w: cannot replace SCALAR at %s with TREE",
			ErrInvalidOperation, ErrTypeConflict, slug)
	}

	merged, err := Merge(original, value)
	if err != nil {
		return fmt.Errorf("invalid slug %s: %w", slug, err)
	}
	t.parent[t.key] = merged
	a.commit("merged", t, merged, true)
	return nil
}

// RemoveTree deletes an existing Tree, and everything below it, at slug.
func (a *Array) RemoveTree(slug string) error {
	return a.remove(slug, true)
}

func (a *Array) remove(slug string, tree bool) error {
	t, err := a.prepare("remove", slug)
	if err != nil {
		return err
	}
	want := "SCALAR"
	if tree {
		want = "TREE"
	}
	current, exists := t.parent[t.key]
	if !exists {
		return fmt.Errorf("%w: %s does not exist", ErrInvalidOperation, slug)
	}
	if IsTree(current) != tree {
		return fmt.Errorf("%w: %w: %s is a %s, expected %s",
			ErrInvalidOperation, ErrTypeMismatch, slug, kind(current), want)
	}
	delete(t.parent, t.key)
	a.commit("removed", t, nil, false)
	return nil
}
