// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders slug values, flattened rows, statistics and diffs
// as text tables, json, yaml or raw Go values.
package output
