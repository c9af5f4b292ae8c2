// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package merge implements deep merging of nested configuration trees.
//
// A tree is a map[string]any whose values are scalars, slices or further
// maps. Merging is associative: nested maps are merged key by key, while
// scalar and slice leaves from the source replace the destination leaf.
// Nil source values are skipped so that a partial tree never erases keys
// it does not mention.
package merge

import (
	"reflect"

	"github.com/tiendc/go-deepcopy"
)

// Deep returns a new tree holding dst with every tree in srcs merged onto
// it in order. None of the arguments are modified.
func Deep(dst map[string]any, srcs ...map[string]any) map[string]any {
	out := Clone(dst)
	if out == nil {
		out = make(map[string]any)
	}
	for _, src := range srcs {
		Into(out, src)
	}
	return out
}

// Into merges src onto dst in place. Values taken from src are cloned so
// later writes to src do not leak into dst.
func Into(dst, src map[string]any) {
	for k, sv := range src {
		if sv == nil {
			continue
		}
		sm, srcIsMap := asMap(sv)
		if !srcIsMap {
			dst[k] = Value(sv)
			continue
		}
		dm, dstIsMap := asMap(dst[k])
		if !dstIsMap {
			dst[k] = Clone(sm)
			continue
		}
		// dm may alias a map shared with the caller's src of an earlier
		// merge; clone before writing.
		merged := Clone(dm)
		Into(merged, sm)
		dst[k] = merged
	}
}

// Clone returns a deep copy of m. Function values are kept by reference.
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Value(v)
	}
	return out
}

// Value returns a deep copy of a single tree value.
func Value(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return Clone(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Value(e)
		}
		return out
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v
	}
	dst := reflect.New(rv.Type())
	if err := deepcopy.Copy(dst.Interface(), v); err != nil {
		return v
	}
	return dst.Elem().Interface()
}

// asMap reports whether v is a tree node. Maps with string keys of any
// named type are accepted and converted.
func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
