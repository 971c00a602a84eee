// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/staranto/slugger/internal/slug"
)

// Stats summarizes the shape of an Array.
type Stats struct {
	Name   string `json:"name" yaml:"name"`
	Leaves int    `json:"leaves" yaml:"leaves"`
	Trees  int    `json:"trees" yaml:"trees"`
	Depth  int    `json:"depth" yaml:"depth"`
	Bytes  int    `json:"bytes" yaml:"bytes"`
	Hash   string `json:"hash" yaml:"hash"`
	Locked bool   `json:"locked" yaml:"locked"`
}

// ComputeStats walks a's tree. Bytes is the size of its JSON encoding.
func ComputeStats(a *slug.Array) Stats {
	data := a.Data()
	s := Stats{Name: a.Name(), Hash: a.Hash(), Locked: !a.Writable()}
	countTree(data, 1, &s)
	if b, err := json.Marshal(data); err == nil {
		s.Bytes = len(b)
	}
	return s
}

func countTree(t slug.Tree, depth int, s *Stats) {
	if len(t) > 0 && depth > s.Depth {
		s.Depth = depth
	}
	for _, v := range t {
		if sub, ok := v.(slug.Tree); ok {
			s.Trees++
			countTree(sub, depth+1, s)
			continue
		}
		s.Leaves++
	}
}

// WriteStats renders s. Text output is humanized, other formats go through
// Spit unchanged.
func WriteStats(w io.Writer, s Stats, opts Options) error {
	if opts.Format != "" && opts.Format != "text" {
		return Spit(w, s, opts)
	}
	state := "writable"
	if s.Locked {
		state = "locked"
	}
	_, err := fmt.Fprintf(w, "name:   %s (%s)\nleaves: %s\ntrees:  %s\ndepth:  %d\nsize:   %s\nhash:   %s\n",
		s.Name, state,
		humanize.Comma(int64(s.Leaves)),
		humanize.Comma(int64(s.Trees)),
		s.Depth,
		humanize.Bytes(uint64(s.Bytes)),
		s.Hash)
	return err
}
