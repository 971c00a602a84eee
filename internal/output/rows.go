// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"

	"github.com/staranto/slugger/internal/slug"
)

// Row is one flattened leaf.
type Row struct {
	Slug  string
	Value any
}

// Rows turns a flattened mapping into rows ordered by slug.
func Rows(flat map[string]any) []Row {
	rows := make([]Row, 0, len(flat))
	for _, k := range slug.SortedKeys(flat) {
		rows = append(rows, Row{Slug: k, Value: flat[k]})
	}
	return rows
}

// Flat is the inverse of Rows.
func Flat(rows []Row) map[string]any {
	out := make(map[string]any, len(rows))
	for _, r := range rows {
		out[r.Slug] = r.Value
	}
	return out
}

// SortRows orders rows in place. spec is "slug" or "value", optionally
// prefixed with "-" for descending. Unknown or empty specs keep the order.
func SortRows(rows []Row, spec string) {
	spec = strings.TrimSpace(spec)
	desc := strings.HasPrefix(spec, "-")
	key := strings.TrimPrefix(spec, "-")

	var less func(i, j int) bool
	switch key {
	case KeySlug:
		less = func(i, j int) bool { return rows[i].Slug < rows[j].Slug }
	case KeyValue:
		less = func(i, j int) bool {
			return InterfaceToString(rows[i].Value) < InterfaceToString(rows[j].Value)
		}
	default:
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(j, i)
		}
		return less(i, j)
	})
}
