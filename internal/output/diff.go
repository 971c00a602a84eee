// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/staranto/slugger/internal/slug"
)

// Diff writes the structural difference between left and right and reports
// whether they differ. json output is the gojsondiff delta format; anything
// else is the ascii formatter.
func Diff(w io.Writer, left, right slug.Tree, opts Options) (bool, error) {
	l, err := jsonish(left)
	if err != nil {
		return false, err
	}
	r, err := jsonish(right)
	if err != nil {
		return false, err
	}

	d := gojsondiff.New().CompareObjects(l, r)
	if !d.Modified() {
		return false, nil
	}

	var out string
	if opts.Format == "json" {
		out, err = formatter.NewDeltaFormatter().Format(d)
	} else {
		out, err = formatter.NewAsciiFormatter(l, formatter.AsciiFormatterConfig{
			ShowArrayIndex: true,
			Coloring:       opts.Color && isTerminal(w),
		}).Format(d)
	}
	if err != nil {
		return true, fmt.Errorf("failed to format diff: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return true, err
}

// jsonish re-decodes t so every number is a float64, which is what
// gojsondiff compares.
func jsonish(t slug.Tree) (map[string]interface{}, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
