// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/slugger/internal/meta"
	"github.com/staranto/slugger/internal/output"
	"github.com/staranto/slugger/internal/slug"
)

// run executes slugger with args and returns what was written to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	m := meta.Meta{
		Args:    append([]string{"slugger"}, args...),
		Context: context.Background(),
		Stdout:  &out,
	}
	if stdin != "" {
		m.Stdin = strings.NewReader(stdin)
	}

	err := NewApp(m).Run(context.Background(), m.Args)
	return out.String(), err
}

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "fully qualified",
			args: []string{"get", "-o", "raw", "testdata/app.yaml", "app.db.host"},
			want: "localhost\n",
		},
		{
			name: "name stripped",
			args: []string{"get", "-o", "raw", "testdata/app.yaml", "db.port"},
			want: "5432\n",
		},
		{
			name: "false is printed",
			args: []string{"get", "testdata/app.json", "app.debug"},
			want: "false\n",
		},
		{
			name: "default for missing key",
			args: []string{"get", "-o", "raw", "--default", "30", "testdata/app.yaml", "db.timeout"},
			want: "30\n",
		},
		{
			name: "explicit name",
			args: []string{"get", "-o", "raw", "-n", "cfg", "testdata/changed.yaml", "cfg.db.port"},
			want: "6543\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGet_Tree(t *testing.T) {
	got, err := run(t, "", "get", "-o", "json", "testdata/app.yaml", "app.db")
	require.NoError(t, err)
	assert.JSONEq(t, `{"host": "localhost", "port": 5432}`, got)

	got, err = run(t, "", "get", "testdata/app.yaml", "app.db")
	require.NoError(t, err)
	assert.Contains(t, got, "app.db.host")
	assert.Contains(t, got, "localhost")
	assert.NotContains(t, got, "debug")
}

func TestGet_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"through scalar", []string{"get", "testdata/app.yaml", "db.host.x"}, slug.ErrTypeMismatch},
		{"missing intermediate", []string{"get", "testdata/app.yaml", "nope.x"}, slug.ErrPathNotFound},
		{"empty slug", []string{"get", "testdata/app.yaml", ""}, slug.ErrInvalidSlug},
		{"missing argument", []string{"get", "testdata/app.yaml"}, slug.ErrInvalidArgument},
		{"tree default", []string{"get", "--default", "{a: 1}", "testdata/app.yaml", "db.x"}, slug.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestGet_MissingSource(t *testing.T) {
	_, err := run(t, "", "get", "testdata/nope.yaml", "a")
	assert.Error(t, err)
}

func TestFlatten(t *testing.T) {
	got, err := run(t, "", "flatten", "-o", "json", "testdata/app.yaml")
	require.NoError(t, err)
	assert.JSONEq(t, `{"app.db.host": "localhost", "app.db.port": 5432, "app.debug": false}`, got)

	got, err = run(t, "", "flatten", "-o", "raw", "-f", "slug^app.db", "--sort=-slug", "testdata/app.yaml")
	require.NoError(t, err)
	assert.Equal(t, "app.db.port=5432\napp.db.host=localhost\n", got)

	got, err = run(t, "", "flatten", "-t", "testdata/app.yaml")
	require.NoError(t, err)
	assert.Contains(t, got, "SLUG")
	assert.Contains(t, got, "app.debug")
}

func TestFlatten_Stdin(t *testing.T) {
	got, err := run(t, "db:\n  host: x\n", "flatten", "-o", "raw", "-")
	require.NoError(t, err)
	assert.Equal(t, "stdin.db.host=x\n", got)

	got, err = run(t, `{"a": {"b": 1}}`, "flatten", "-o", "raw", "--format", "json", "-n", "doc", "-")
	require.NoError(t, err)
	assert.Equal(t, "doc.a.b=1\n", got)
}

func TestSetAdd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "set parses yaml scalar",
			args: []string{"set", "-o", "json", "testdata/app.yaml", "db.port", "6543"},
			want: `{"db": {"host": "localhost", "port": 6543}, "debug": false}`,
		},
		{
			name: "set keeps string",
			args: []string{"set", "-o", "json", "--string", "testdata/app.yaml", "db.port", "007"},
			want: `{"db": {"host": "localhost", "port": "007"}, "debug": false}`,
		},
		{
			name: "set null",
			args: []string{"set", "-o", "json", "testdata/app.yaml", "app.debug", "null"},
			want: `{"db": {"host": "localhost", "port": 5432}, "debug": null}`,
		},
		{
			name: "add new key",
			args: []string{"add", "-o", "json", "testdata/app.yaml", "db.user", "admin"},
			want: `{"db": {"host": "localhost", "port": 5432, "user": "admin"}, "debug": false}`,
		},
		{
			name: "add empty string",
			args: []string{"add", "-o", "json", "testdata/app.yaml", "db.pass", ""},
			want: `{"db": {"host": "localhost", "port": 5432, "pass": ""}, "debug": false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, got)
		})
	}
}

func TestSetAdd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  []error
	}{
		{"set tree", []string{"set", "testdata/app.yaml", "db", "1"}, []error{slug.ErrInvalidOperation, slug.ErrTypeConflict}},
		{"set missing", []string{"set", "testdata/app.yaml", "db.user", "x"}, []error{slug.ErrInvalidOperation}},
		{"set locked", []string{"set", "--locked", "testdata/app.yaml", "db.port", "1"}, []error{slug.ErrLocked}},
		{"set mapping", []string{"set", "testdata/app.yaml", "db.port", "{a: 1}"}, []error{slug.ErrInvalidArgument}},
		{"add existing", []string{"add", "testdata/app.yaml", "db.port", "1"}, []error{slug.ErrInvalidOperation}},
		{"add without parent", []string{"add", "testdata/app.yaml", "cache.ttl", "1"}, []error{slug.ErrPathNotFound}},
		{"add below scalar", []string{"add", "testdata/app.yaml", "db.host.x", "1"}, []error{slug.ErrTypeMismatch}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			for _, e := range tt.err {
				assert.ErrorIs(t, err, e)
			}
			assert.Empty(t, got)
		})
	}
}

func TestRm(t *testing.T) {
	got, err := run(t, "", "rm", "-o", "json", "testdata/app.yaml", "db.port")
	require.NoError(t, err)
	assert.JSONEq(t, `{"db": {"host": "localhost"}, "debug": false}`, got)

	got, err = run(t, "", "rm", "-o", "json", "--tree", "testdata/app.yaml", "app.db")
	require.NoError(t, err)
	assert.JSONEq(t, `{"debug": false}`, got)

	_, err = run(t, "", "rm", "testdata/app.yaml", "db")
	assert.ErrorIs(t, err, slug.ErrTypeMismatch)

	_, err = run(t, "", "rm", "--tree", "testdata/app.yaml", "debug")
	assert.ErrorIs(t, err, slug.ErrTypeMismatch)

	_, err = run(t, "", "rm", "testdata/app.yaml", "db.user")
	assert.ErrorIs(t, err, slug.ErrInvalidOperation)
}

func TestMerge(t *testing.T) {
	got, err := run(t, "", "merge", "-o", "json", "testdata/app.yaml", "db", "testdata/patch.yaml")
	require.NoError(t, err)
	assert.JSONEq(t, `{"db": {"host": "localhost", "port": 6000, "pool": {"size": 5}}, "debug": false}`, got)

	got, err = run(t, `{"host": "db.internal"}`, "merge", "-o", "json", "--patch-format", "json", "testdata/app.yaml", "db", "-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"db": {"host": "db.internal", "port": 5432}, "debug": false}`, got)

	got, err = run(t, "", "merge", "-o", "json", "--create", "testdata/app.yaml", "cache", "testdata/patch.yaml")
	require.NoError(t, err)
	assert.JSONEq(t, `{"db": {"host": "localhost", "port": 5432}, "debug": false, "cache": {"port": 6000, "pool": {"size": 5}}}`, got)
}

func TestMerge_Errors(t *testing.T) {
	_, err := run(t, "", "merge", "testdata/app.yaml", "cache", "testdata/patch.yaml")
	assert.ErrorIs(t, err, slug.ErrInvalidOperation)

	_, err = run(t, "", "merge", "testdata/app.yaml", "debug", "testdata/patch.yaml")
	assert.ErrorIs(t, err, slug.ErrTypeConflict)

	_, err = run(t, "port: {a: 1}\n", "merge", "--patch-format", "yaml", "testdata/app.yaml", "db", "-")
	assert.ErrorIs(t, err, slug.ErrTypeConflict)
}

func TestDiff(t *testing.T) {
	got, err := run(t, "", "diff", "testdata/app.yaml", "testdata/app.json")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = run(t, "", "diff", "testdata/app.yaml", "testdata/changed.yaml")
	require.NoError(t, err)
	assert.Contains(t, got, "5432")
	assert.Contains(t, got, "6543")
}

func TestStat(t *testing.T) {
	got, err := run(t, "", "stat", "-o", "json", "testdata/app.yaml")
	require.NoError(t, err)

	var s output.Stats
	require.NoError(t, json.Unmarshal([]byte(got), &s))
	assert.Equal(t, "app", s.Name)
	assert.Equal(t, 3, s.Leaves)
	assert.Equal(t, 1, s.Trees)
	assert.Equal(t, 2, s.Depth)
	assert.False(t, s.Locked)
	assert.Len(t, s.Hash, 40)

	got, err = run(t, "", "stat", "--locked", "testdata/app.yaml")
	require.NoError(t, err)
	assert.Contains(t, got, "(locked)")
}

func TestExamplesAndCompletion(t *testing.T) {
	got, err := run(t, "", "examples")
	require.NoError(t, err)
	assert.Contains(t, got, "slugger get")

	got, err = run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, got, "complete -F _slugger slugger")

	got, err = run(t, "", "completion", "zsh")
	require.NoError(t, err)
	assert.Contains(t, got, "compdef _slugger slugger")
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
		err  bool
	}{
		{in: "", want: ""},
		{in: "1", want: 1},
		{in: "1.5", want: 1.5},
		{in: "true", want: true},
		{in: "null", want: nil},
		{in: "~", want: nil},
		{in: "hello world", want: "hello world"},
		{in: `"007"`, want: "007"},
		{in: "{a: 1}", err: true},
		{in: "[1, 2]", err: true},
		{in: "a: [", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, slug.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidators(t *testing.T) {
	assert.NoError(t, FlagValidators("json", JammedFlagValidator, OutputValidator))
	assert.Error(t, FlagValidators("xml", OutputValidator))
	assert.Error(t, FlagValidators("--json", JammedFlagValidator, OutputValidator))

	assert.NoError(t, FormatValidator(""))
	assert.NoError(t, FormatValidator("tfvars"))
	assert.Error(t, FormatValidator("toml"))

	assert.NoError(t, SortValidator("-value"))
	assert.Error(t, SortValidator("name"))
}

func TestLoad_UnaddressableKey(t *testing.T) {
	_, err := run(t, "", "flatten", "testdata/labels.yaml")
	assert.ErrorIs(t, err, slug.ErrInvalidArgument)
	assert.ErrorContains(t, err, "app.kubernetes.io/name")
}
