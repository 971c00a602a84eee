// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package slug

import (
	"crypto/sha1" //nolint:gosec // cache validity token, not security.
	"encoding/hex"
	"encoding/json"

	"github.com/apex/log"
)

// digest hashes the JSON encoding of t. encoding/json sorts map keys, so
// equal trees always produce equal digests.
func digest(t Tree) string {
	b, err := json.Marshal(t)
	if err != nil {
		// Only reachable when root was modified outside the API with a value
		// JSON cannot encode. An empty digest never matches a real one.
		log.Debugf("digest: %v", err)
		return ""
	}
	sum := sha1.Sum(b) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// rehash recomputes the content hash and revalidates the cache against it.
// Callers must already have dropped any entries the mutation affected.
func (a *Array) rehash() {
	a.hash = digest(a.root)
	a.token = a.hash
}

// resetCache drops every cached entry.
func (a *Array) resetCache() {
	a.cache = make(map[string]any)
	a.token = a.hash
}

// lookup returns a cached value for key if the cache is still valid. A
// stale cache is discarded wholesale.
func (a *Array) lookup(key string) (any, bool) {
	if a.token != a.hash {
		log.Debugf("%s: cache token stale, dropping %d entries", a.name, len(a.cache))
		a.resetCache()
		return nil, false
	}
	v, ok := a.cache[key]
	return v, ok
}

// invalidate drops cached entries for path, its ancestors and its
// descendants. Ancestors hold copies of the subtree so they go too.
func (a *Array) invalidate(path []string) {
	dropped := 0
	for k := range a.cache {
		if related(split(k), path) {
			delete(a.cache, k)
			dropped++
		}
	}
	if dropped > 0 {
		log.Debugf("%s: invalidated %d cache entries under %s", a.name, dropped, join(path))
	}
}

// IsDirty reports whether the tree no longer matches its stored content
// hash, i.e. it was changed without going through the Array's methods.
func (a *Array) IsDirty() bool {
	return a.hash != digest(a.root)
}

// Hash returns the current content hash.
func (a *Array) Hash() string {
	return a.hash
}
