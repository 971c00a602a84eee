// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	a := newTest(t, true)

	assert.Equal(t, map[string]any{
		"test.foo":       "bar",
		"test.scalar":    2,
		"test.tree.with": "scalar values",
	}, a.Flatten())
	assert.Equal(t, []string{"test.foo", "test.scalar", "test.tree.with"}, a.Slugs())
}

func TestFlatten_Unnamed(t *testing.T) {
	a, err := New("", Tree{"a": Tree{"b": 1}, "c": nil, "empty": Tree{}}, true)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a.b": 1, "c": nil}, a.Flatten())
}

func TestLoadFlattened_RoundTrip(t *testing.T) {
	src, err := New("app", Tree{
		"name": "svc",
		"db": Tree{
			"host": "localhost",
			"port": 5432,
			"opts": Tree{"ssl": true, "timeout": 1.5, "none": nil},
		},
	}, true)
	require.NoError(t, err)

	dst, err := New("", nil, true)
	require.NoError(t, err)
	mustGet(t, dst, "anything")

	require.NoError(t, dst.LoadFlattened(src.Flatten()))

	assert.Equal(t, "app", dst.Name())
	assert.Equal(t, src.Hash(), dst.Hash())
	assert.Equal(t, src.Data(), dst.Data())
	assert.Empty(t, dst.cache)
	for _, slug := range src.Slugs() {
		assert.Equal(t, mustGet(t, src, slug), mustGet(t, dst, slug), slug)
	}
	assert.False(t, dst.IsDirty())
}

func TestLoadFlattened_Errors(t *testing.T) {
	tests := []struct {
		name string
		flat map[string]any
		want error
	}{
		{name: "prefix disagrees", flat: map[string]any{"a.x": 1, "b.y": 2}, want: ErrInvalidArgument},
		{name: "no path below name", flat: map[string]any{"a": 1}, want: ErrInvalidSlug},
		{name: "non scalar", flat: map[string]any{"a.x": Tree{}}, want: ErrInvalidArgument},
		{name: "scalar then tree", flat: map[string]any{"a.x": 1, "a.x.y": 2}, want: ErrTypeMismatch},
		{name: "empty segment", flat: map[string]any{"a.x..y": 1}, want: ErrInvalidSlug},
		{name: "bad name", flat: map[string]any{" a.x": 1}, want: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTest(t, true)
			hash := a.Hash()

			assert.ErrorIs(t, a.LoadFlattened(tt.flat), tt.want)
			assert.Equal(t, "test", a.Name())
			assertUnchanged(t, a, hash, 0)
		})
	}
}

func TestResolve(t *testing.T) {
	a := newTest(t, true)

	tests := []struct {
		slug    string
		want    []string
		wantErr bool
	}{
		{slug: "a", want: []string{"a"}},
		{slug: "a.b.c", want: []string{"a", "b", "c"}},
		{slug: "test.a", want: []string{"a"}},
		{slug: "a.test", want: []string{"a", "test"}},
		{slug: "\t.a.b.\n", want: []string{"a", "b"}},
		{slug: "testing.a", want: []string{"testing", "a"}},
		{slug: "", wantErr: true},
		{slug: "test", wantErr: true},
		{slug: "a..b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			got, err := a.expand(tt.slug)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSlug)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelated(t *testing.T) {
	assert.True(t, related(split("a"), split("a.b")))
	assert.True(t, related(split("a.b.c"), split("a.b")))
	assert.True(t, related(split("a.b"), split("a.b")))
	assert.False(t, related(split("ab"), split("a")))
	assert.False(t, related(split("a.c"), split("a.b")))
}

func TestLoadFlattened_Empty(t *testing.T) {
	a := newTest(t, true)
	mustGet(t, a, "foo")

	require.NoError(t, a.LoadFlattened(map[string]any{}))

	assert.Equal(t, "test", a.Name())
	assert.Equal(t, Tree{}, a.Data())
	assert.Empty(t, a.cache)
	assert.Empty(t, a.Flatten())
	assert.False(t, a.IsDirty())
}

func TestFlatten_RoundTripKeysStayAddressable(t *testing.T) {
	src, err := New("app", Tree{
		"labels": Tree{"io/name": "web", "tier": Tree{"level": 2}},
		"blank":  Tree(nil),
	}, true)
	require.NoError(t, err)

	for slug, v := range src.Flatten() {
		assert.Equal(t, v, mustGet(t, src, slug), slug)
	}

	dst, err := New("", nil, true)
	require.NoError(t, err)
	require.NoError(t, dst.LoadFlattened(src.Flatten()))
	assert.Equal(t, Tree{"labels": Tree{"io/name": "web", "tier": Tree{"level": 2}}}, dst.Data())
}
