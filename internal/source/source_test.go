// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package source

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Formats(t *testing.T) {
	files := []string{"app.yaml", "app.json", "app.hcl"}

	for _, f := range files {
		t.Run(f, func(t *testing.T) {
			a, err := Load(context.Background(), filepath.Join("testdata", f))
			require.NoError(t, err)
			assert.Equal(t, "app", a.Name())

			for slug, want := range map[string]string{
				"foo":       "bar",
				"app.foo":   "bar",
				"tree.with": "scalar values",
				"tags.0":    "web",
				"tags.1":    "api",
			} {
				got, err := a.Get(slug)
				require.NoError(t, err, slug)
				assert.Equal(t, want, got, slug)
			}

			debug, err := a.Get("debug")
			require.NoError(t, err)
			assert.Equal(t, false, debug)

			ratio, err := a.Get("tree.nested.ratio")
			require.NoError(t, err)
			assert.InDelta(t, 0.25, ratio, 1e-9)

			port, err := a.Get("port")
			require.NoError(t, err)
			assert.EqualValues(t, 8080, port)
		})
	}
}

func TestLoad_Options(t *testing.T) {
	a, err := Load(context.Background(), Stdin,
		WithStdin(strings.NewReader(`{"a": {"b": 1}}`)),
		WithFormat(FormatJSON),
		WithName("cfg"),
		WithWritable(false),
	)
	require.NoError(t, err)
	assert.Equal(t, "cfg", a.Name())
	assert.False(t, a.Writable())

	got, err := a.Get("cfg.a.b")
	require.NoError(t, err)
	assert.EqualValues(t, 1, got)
}

func TestLoad_StdinDefaultsToYAML(t *testing.T) {
	a, err := Load(context.Background(), Stdin, WithStdin(strings.NewReader("x: 1\n")))
	require.NoError(t, err)
	assert.Equal(t, "stdin", a.Name())
	got, err := a.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		opts    []Option
		wantErr string
	}{
		{name: "missing file", uri: "testdata/nope.yaml", wantErr: "failed to read"},
		{name: "no extension", uri: "testdata/noext", wantErr: "cannot detect format"},
		{name: "unknown extension", uri: "testdata/app.toml", wantErr: "unsupported format"},
		{name: "bad json", uri: "testdata/bad.json", wantErr: "invalid json"},
		{name: "hcl blocks", uri: "testdata/blocks.hcl", wantErr: "failed to parse"},
		{name: "yaml list", uri: Stdin, opts: []Option{WithStdin(strings.NewReader("- a\n- b\n"))}, wantErr: "failed to parse"},
		{name: "json list", uri: Stdin, opts: []Option{WithStdin(strings.NewReader("[1]")), WithFormat(FormatJSON)}, wantErr: "unsupported type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.uri, tt.opts...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":       "",
		"YAML":   FormatYAML,
		"yml":    FormatYAML,
		"json":   FormatJSON,
		"hcl":    FormatHCL,
		"tfvars": FormatHCL,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestNameFor(t *testing.T) {
	tests := map[string]string{
		"config.yaml":              "config",
		"/etc/app/settings.json":   "settings",
		"s3://bucket/dir/app.yaml": "app",
		"my.app.hcl":               "myapp",
		"with space.yaml":          "withspace",
		"-":                        "stdin",
		".yaml":                    "doc",
	}
	for uri, want := range tests {
		assert.Equal(t, want, NameFor(uri), uri)
	}
}
