// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"strings"

	"github.com/BurntSushi/toml"
)

// decodeTOML decodes data into an ordered table. The decoder returns
// plain maps, so document order is recovered from the metadata keys.
func decodeTOML(data []byte) (*table, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, &FormatError{Reason: "invalid TOML", Err: err}
	}

	order := make(map[string][]string)
	for _, key := range md.Keys() {
		if len(key) == 0 {
			continue
		}
		parent := pathID(key[:len(key)-1])
		order[parent] = append(order[parent], key[len(key)-1])
	}
	return tomlTable(raw, nil, order), nil
}

func tomlTable(m map[string]any, path []string, order map[string][]string) *table {
	t := newTable()
	for _, k := range orderedKeys(m, order[pathID(path)]) {
		v := m[k]
		if sub, ok := v.(map[string]any); ok {
			v = tomlTable(sub, append(path[:len(path):len(path)], k), order)
		}
		t.set(k, v)
	}
	return t
}

// pathID joins key parts with a separator that cannot appear in a key
// read from a TOML document.
func pathID(parts []string) string {
	return strings.Join(parts, "\x00")
}
