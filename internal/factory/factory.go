// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package factory wraps externally sourced mappings (decoded YAML, JSON or
// HCL, or plain Go maps) into a *slug.Array.
package factory

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/zclconf/go-cty/cty"

	"github.com/staranto/slugger/internal/slug"
)

// Writable is the default used by New when no writable flag is passed.
var Writable = true

// New wraps v into a *slug.Array named name. v must be a mapping: a Go map,
// a gjson.Result object or a cty.Value object or map. Anything else is
// slug.ErrUnsupportedType.
func New(name string, v any, writable ...bool) (*slug.Array, error) {
	w := Writable
	if len(writable) > 0 {
		w = writable[0]
	}

	if !isMapping(v) {
		return nil, fmt.Errorf("%w: non-mapping types are not supported yet, saw %T", slug.ErrUnsupportedType, v)
	}

	n, err := Normalize(v)
	if err != nil {
		return nil, err
	}
	tree, ok := n.(slug.Tree)
	if !ok {
		return nil, fmt.Errorf("%w: %T did not decode to a mapping", slug.ErrUnsupportedType, v)
	}

	log.Debugf("factory: wrapping %T as %q (writable=%v)", v, name, w)
	return slug.New(name, tree, w)
}

func isMapping(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case gjson.Result:
		return v.IsObject()
	case cty.Value:
		return !v.IsNull() && v.IsKnown() && (v.Type().IsObjectType() || v.Type().IsMapType())
	default:
		return reflect.TypeOf(v).Kind() == reflect.Map
	}
}

// Normalize converts v into nested slug.Tree and Scalar values. Maps with
// non-string keys are keyed by their printed form, and lists become Trees
// keyed by decimal index.
func Normalize(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case slug.Tree:
		return normalizeMap(reflect.ValueOf(v))
	case gjson.Result:
		return Normalize(v.Value())
	case cty.Value:
		return fromCty(v)
	}

	if slug.IsScalar(v) {
		return v, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return normalizeMap(rv)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
		out := make(slug.Tree, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			n, err := Normalize(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[strconv.Itoa(i)] = n
		}
		return out, nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return Normalize(rv.Elem().Interface())
	default:
		return nil, fmt.Errorf("%w: %T cannot be stored as SCALAR or TREE", slug.ErrUnsupportedType, v)
	}
}

func normalizeMap(rv reflect.Value) (any, error) {
	out := make(slug.Tree, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := fmt.Sprint(iter.Key().Interface())
		n, err := Normalize(iter.Value().Interface())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[key] = n
	}
	return out, nil
}

// fromCty converts a cty value the same way HCL attribute values are read
// elsewhere: numbers become int64 when integral, float64 otherwise.
func fromCty(val cty.Value) (any, error) {
	if !val.IsKnown() || val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		return fromBigFloat(val.AsBigFloat()), nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(slug.Tree)
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			n, err := fromCty(v)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = n
		}
		return out, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make(slug.Tree)
		i := 0
		for it := val.ElementIterator(); it.Next(); i++ {
			_, v := it.Element()
			n, err := fromCty(v)
			if err != nil {
				return nil, err
			}
			out[strconv.Itoa(i)] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: cty type %s", slug.ErrUnsupportedType, ty.FriendlyName())
	}
}

func fromBigFloat(f *big.Float) any {
	if f.IsInt() {
		if i, acc := f.Int64(); acc == big.Exact {
			return i
		}
	}
	v, _ := f.Float64()
	return v
}
