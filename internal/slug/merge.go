// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package slug

import "fmt"

// Merge returns original with incoming merged in, without touching either
// argument. Keys only in original are kept, new keys are added, Scalars are
// overwritten and Trees are merged recursively. Replacing a Tree with a
// Scalar, or a Scalar with a Tree, is ErrTypeConflict.
func Merge(original, incoming Tree) (Tree, error) {
	return merge(cloneTree(original), incoming, nil)
}

// merge writes into dst, which the caller owns.
func merge(dst, incoming Tree, path []string) (Tree, error) {
	if dst == nil {
		dst = Tree{}
	}
	for key, value := range incoming {
		at := join(append(path[:len(path):len(path)], key))
		current, exists := dst[key]
		newTree, newIsTree := value.(Tree)
		switch {
		case !exists:
			dst[key] = cloneNode(value)
		case !newIsTree:
			if IsTree(current) {
				return nil, fmt.Errorf("%w: trying to replace TREE at %s with SCALAR (%T)",
					ErrTypeConflict, at, value)
			}
			dst[key] = value
		default:
			sub, ok := current.(Tree)
			if !ok {
				return nil, fmt.Errorf("%w: trying to replace SCALAR (%T) at %s with TREE",
					ErrTypeConflict, current, at)
			}
			merged, err := merge(sub, newTree, append(path[:len(path):len(path)], key))
			if err != nil {
				return nil, err
			}
			dst[key] = merged
		}
	}
	return dst, nil
}
