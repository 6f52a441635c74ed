package intl

import (
	"strconv"
	"strings"
)

// Node is one piece of formatted rich-text output. Rendering collaborators
// walk nodes; String flattens a node and its children to plain text.
type Node interface {
	String() string
}

// Text is a literal run of message text. Text carries no key; only
// rendered regions need reconciliation identity.
type Text string

func (t Text) String() string { return string(t) }

// Element is the output of a tag renderer. Key is assigned during the
// formatting pass and is distinct within that pass.
type Element struct {
	Key      string
	Tag      string
	Children []Node
}

func (e *Element) String() string { return flattenParts(e.Children) }

func (e *Element) setKey(key string) { e.Key = key }

// Fragment groups nodes under a single key.
type Fragment struct {
	Key      string
	Children []Node
}

func (f *Fragment) String() string { return flattenParts(f.Children) }

func (f *Fragment) setKey(key string) { f.Key = key }

// TagRenderer produces the replacement node for one tag region, given the
// rendered children of that region.
type TagRenderer func(children []Node) Node

// keyed marks nodes that accept a pass-assigned key.
type keyed interface {
	setKey(key string)
}

// keyAssigner hands out identity keys for one formatting pass. Every pass
// counts from zero, so keys are deterministic across repeated calls and
// distinct within a call.
type keyAssigner struct {
	next int
}

func (k *keyAssigner) assign() string {
	key := strconv.Itoa(k.next)
	k.next++
	return key
}

// stamp gives n its pass-scoped identity. Nodes that cannot hold a key are
// wrapped in a keyed fragment.
func (k *keyAssigner) stamp(n Node) Node {
	if n == nil {
		return nil
	}
	if kn, ok := n.(keyed); ok {
		kn.setKey(k.assign())
		return n
	}
	return &Fragment{Key: k.assign(), Children: []Node{n}}
}

// withKeys wraps the renderer so every invocation stamps its output with
// the next key from ka.
func (r TagRenderer) withKeys(ka *keyAssigner) TagRenderer {
	return func(children []Node) Node {
		return ka.stamp(r(children))
	}
}

// asTagRenderer recognizes renderer values whether stored as the named
// type or as a bare function literal.
func asTagRenderer(v any) (TagRenderer, bool) {
	switch r := v.(type) {
	case TagRenderer:
		if r != nil {
			return r, true
		}
	case func(children []Node) Node:
		if r != nil {
			return TagRenderer(r), true
		}
	}
	return nil, false
}

// richTextValues returns a copy of values with every renderer entry
// wrapped via withKeys. The input map is never mutated.
func richTextValues(values map[string]any, ka *keyAssigner) map[string]any {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]any, len(values))
	for name, v := range values {
		if r, ok := asTagRenderer(v); ok {
			out[name] = r.withKeys(ka)
			continue
		}
		out[name] = v
	}
	return out
}

// copyRenderers returns a shallow copy of a renderer map. Shapes hold a
// private copy so later mutation by the caller cannot reach a built shape.
func copyRenderers(m map[string]TagRenderer) map[string]TagRenderer {
	if m == nil {
		return nil
	}
	out := make(map[string]TagRenderer, len(m))
	for name, r := range m {
		out[name] = r
	}
	return out
}

// flattenParts joins a part sequence into plain text.
func flattenParts(parts []Node) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		if parts[0] == nil {
			return ""
		}
		return parts[0].String()
	}
	var b strings.Builder
	for _, p := range parts {
		if p == nil {
			continue
		}
		b.WriteString(p.String())
	}
	return b.String()
}
