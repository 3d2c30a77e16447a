// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeYAML decodes data into an ordered table, keeping the order of
// mapping keys as written.
func decodeYAML(data []byte) (*table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Reason: "invalid YAML", Err: err}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return newTable(), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &FormatError{Reason: fmt.Sprintf("document root must be a mapping (line %d)", root.Line)}
	}
	v, err := yamlValue(root)
	if err != nil {
		return nil, err
	}
	return v.(*table), nil
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.MappingNode:
		t := newTable()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			if _, dup := t.get(k.Value); dup {
				return nil, &FormatError{Key: k.Value, Reason: fmt.Sprintf("duplicate key (line %d)", k.Line)}
			}
			v, err := yamlValue(vn)
			if err != nil {
				return nil, err
			}
			t.set(k.Value, v)
		}
		return t, nil
	default:
		return nil, &FormatError{Reason: fmt.Sprintf("unsupported YAML node at line %d", n.Line)}
	}
}
