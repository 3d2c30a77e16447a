// Copyright 2024 The capcheck Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifest reads the capability section of a project manifest.
//
// Each entry of the section is either a direct capability:
//
//	foo = { version = ">=1.70", nightly_version = ">=1.68", cfg = "has_foo" }
//
// or a platform group keyed by a cfg predicate whose members are direct
// capabilities:
//
//	[package.metadata.compiler_support.'cfg(unix)']
//	bar = { version = ">=1.74" }
//
// The kind of an entry is decided by its shape. Groups do not nest.
package manifest

import (
	"fmt"
	"strings"

	"github.com/goplus/capcheck/compat"
)

// Entry is one top-level entry of the capability section. Exactly one of
// Direct or Group is set.
type Entry struct {
	Direct *compat.Check
	Group  *Group
}

// Key returns the key the entry was declared under.
func (e Entry) Key() string {
	if e.Group != nil {
		return e.Group.Predicate
	}
	return e.Direct.Name
}

// Group is a set of capabilities that only apply to targets matching a
// cfg predicate.
type Group struct {
	Predicate string
	Members   []compat.Check
}

// Manifest is the ordered list of entries of a capability section.
type Manifest struct {
	Entries []Entry
}

// Checks returns every capability declared in m, including group
// members, in declaration order and without evaluating any predicate.
func (m *Manifest) Checks() []compat.Check {
	var ret []compat.Check
	for _, e := range m.Entries {
		if e.Group != nil {
			ret = append(ret, e.Group.Members...)
		} else {
			ret = append(ret, *e.Direct)
		}
	}
	return ret
}

// Declared returns the flag names m can ever emit, deduplicated and in
// declaration order.
func (m *Manifest) Declared(prefix string) []string {
	var ret []string
	seen := make(map[string]bool)
	for _, c := range m.Checks() {
		flag := c.FlagName(prefix)
		if !seen[flag] {
			seen[flag] = true
			ret = append(ret, flag)
		}
	}
	return ret
}

// fromTable classifies the entries of a decoded capability section.
func fromTable(section *table, sectionKey string) (*Manifest, error) {
	m := &Manifest{}
	for _, key := range section.keys {
		path := joinKey(sectionKey, key)
		val, ok := section.values[key].(*table)
		if !ok {
			return nil, &FormatError{Key: path, Reason: fmt.Sprintf("expected a table, got %s", kindOf(section.values[key]))}
		}
		if isGroup(key, val) {
			g, err := groupFrom(key, val, path)
			if err != nil {
				return nil, err
			}
			m.Entries = append(m.Entries, Entry{Group: g})
			continue
		}
		c, err := checkFrom(key, val, path)
		if err != nil {
			return nil, err
		}
		m.Entries = append(m.Entries, Entry{Direct: c})
	}
	return m, nil
}

// isGroup reports whether val has the shape of a platform group. A table
// of tables is a group. An empty table is a group only when its key
// looks like a cfg predicate, otherwise it is a capability with no
// requirements.
func isGroup(key string, val *table) bool {
	if len(val.keys) == 0 {
		return strings.HasPrefix(strings.TrimSpace(key), "cfg(")
	}
	return val.hasTables()
}

func groupFrom(pred string, val *table, path string) (*Group, error) {
	g := &Group{Predicate: pred}
	for _, name := range val.keys {
		mpath := joinKey(path, name)
		mval, ok := val.values[name].(*table)
		if !ok {
			return nil, &FormatError{Key: mpath, Reason: fmt.Sprintf("platform group member must be a table, got %s", kindOf(val.values[name]))}
		}
		if mval.hasTables() {
			return nil, &FormatError{Key: mpath, Reason: "platform groups cannot be nested"}
		}
		c, err := checkFrom(name, mval, mpath)
		if err != nil {
			return nil, err
		}
		g.Members = append(g.Members, *c)
	}
	return g, nil
}

func checkFrom(name string, val *table, path string) (*compat.Check, error) {
	c := &compat.Check{Name: name}
	for _, field := range val.keys {
		s, ok := val.values[field].(string)
		if !ok {
			return nil, &FormatError{Key: joinKey(path, field), Reason: fmt.Sprintf("expected a string, got %s", kindOf(val.values[field]))}
		}
		switch field {
		case "version", "nightly_version":
			r, err := compat.ParseRequirement(s)
			if err != nil {
				return nil, fmt.Errorf("capability %q: %s: %w", name, field, err)
			}
			if field == "version" {
				c.Version = r
			} else {
				c.NightlyVersion = r
			}
		case "cfg":
			c.Flag = s
		default:
			return nil, &FormatError{Key: joinKey(path, field), Reason: "unknown field"}
		}
	}
	return c, nil
}

func joinKey(parent, key string) string {
	if strings.ContainsAny(key, ". ()\"'=") {
		key = fmt.Sprintf("%q", key)
	}
	if parent == "" {
		return key
	}
	return parent + "." + key
}
