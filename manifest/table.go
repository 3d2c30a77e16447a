// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"fmt"
	"sort"
	"strings"
)

// table is a decoded mapping that remembers the order of its keys.
// Values are either *table or a scalar/array from the decoder.
type table struct {
	keys   []string
	values map[string]any
}

func newTable() *table {
	return &table{values: make(map[string]any)}
}

func (t *table) set(key string, value any) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

func (t *table) get(key string) (any, bool) {
	v, ok := t.values[key]
	return v, ok
}

// hasTables reports whether any value of t is itself a table.
func (t *table) hasTables() bool {
	for _, k := range t.keys {
		if _, ok := t.values[k].(*table); ok {
			return true
		}
	}
	return false
}

// lookup walks a dotted path of nested tables.
func (t *table) lookup(path string) (*table, error) {
	cur := t
	var walked []string
	for _, part := range strings.Split(path, ".") {
		walked = append(walked, part)
		v, ok := cur.get(part)
		if !ok {
			return nil, &FormatError{Key: strings.Join(walked, "."), Reason: "section not found"}
		}
		next, ok := v.(*table)
		if !ok {
			return nil, &FormatError{Key: strings.Join(walked, "."), Reason: fmt.Sprintf("expected a table, got %s", kindOf(v))}
		}
		cur = next
	}
	return cur, nil
}

// orderedKeys returns the keys of m, first those listed in order (in
// that order) and then any others sorted.
func orderedKeys(m map[string]any, order []string) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range order {
		if _, ok := m[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func kindOf(v any) string {
	switch v.(type) {
	case *table:
		return "table"
	case string:
		return "string"
	case []any, []map[string]any:
		return "array"
	case bool:
		return "boolean"
	case int, int64, float64:
		return "number"
	case nil:
		return "nothing"
	default:
		return fmt.Sprintf("%T", v)
	}
}
