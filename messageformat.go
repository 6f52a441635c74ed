package intl

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// placeholderPattern matches {name} substitution tokens in a message
// pattern.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// messageEngine is the default MessageFormatter: {name} interpolation
// plus <tag>...</tag> regions with nesting. It is not an ICU grammar;
// plural/select/argument-format syntax belongs to richer engines plugged
// in through the interface.
type messageEngine struct{}

var defaultEngine MessageFormatter = messageEngine{}

func (messageEngine) FormatParts(shape *Intl, desc MessageDescriptor, values map[string]any) ([]Node, error) {
	pattern := resolvePattern(shape, desc)
	nodes, ok := parsePattern(pattern)
	if !ok {
		shape.report(&Error{
			Code:    ErrCodeFormatError,
			Message: fmt.Sprintf("message %q has unbalanced tags", desc.ID),
		})
		return []Node{Text(pattern)}, nil
	}
	return evalNodes(shape, desc, nodes, values), nil
}

// resolvePattern walks the fallback chain: catalog entry, then the
// descriptor's default message, then the id itself. A catalog miss is
// reported either way; formatting continues with the fallback.
func resolvePattern(shape *Intl, desc MessageDescriptor) string {
	if pattern, ok := shape.Messages[desc.ID]; ok && pattern != "" {
		return pattern
	}
	if desc.DefaultMessage != "" {
		shape.report(&Error{
			Code:    ErrCodeMissingTranslation,
			Message: fmt.Sprintf("missing translation for %q in locale %q, using default message", desc.ID, shape.Locale),
			Err:     ErrMissingTranslation,
		})
		return desc.DefaultMessage
	}
	shape.report(&Error{
		Code:    ErrCodeMissingTranslation,
		Message: fmt.Sprintf("missing translation for %q in locale %q, using message id", desc.ID, shape.Locale),
		Err:     ErrMissingTranslation,
	})
	return desc.ID
}

// Parsed pattern nodes. Text runs are pre-split on placeholders.
type msgNode any

type msgText string

type msgArg string

type msgTag struct {
	name     string
	children []msgNode
}

func parsePattern(pattern string) ([]msgNode, bool) {
	nodes, _, ok := parseSequence(pattern, "")
	return nodes, ok
}

// parseSequence consumes nodes until the closing tag named by closing,
// or end of input when closing is empty. A stray '<' that does not open
// a well-formed tag is literal text; self-closing tags are not
// recognized.
func parseSequence(s, closing string) (nodes []msgNode, rest string, ok bool) {
	for s != "" {
		lt := strings.IndexByte(s, '<')
		if lt < 0 {
			nodes = appendPatternText(nodes, s)
			s = ""
			break
		}
		if lt > 0 {
			nodes = appendPatternText(nodes, s[:lt])
			s = s[lt:]
		}
		if closing != "" && strings.HasPrefix(s, "</"+closing+">") {
			return nodes, s[len(closing)+3:], true
		}
		if name, after, tagOK := parseTagOpen(s); tagOK {
			children, remainder, closed := parseSequence(after, name)
			if !closed {
				return nil, "", false
			}
			nodes = append(nodes, msgTag{name: name, children: children})
			s = remainder
			continue
		}
		nodes = appendPatternText(nodes, "<")
		s = s[1:]
	}
	if closing != "" {
		return nil, "", false
	}
	return nodes, "", true
}

func parseTagOpen(s string) (name, rest string, ok bool) {
	if len(s) < 3 || s[0] != '<' || !isTagStart(s[1]) {
		return "", "", false
	}
	j := 2
	for j < len(s) && isTagChar(s[j]) {
		j++
	}
	if j >= len(s) || s[j] != '>' {
		return "", "", false
	}
	return s[1:j], s[j+1:], true
}

func isTagStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isTagChar(c byte) bool {
	return isTagStart(c) || c >= '0' && c <= '9' || c == '_'
}

func appendPatternText(nodes []msgNode, s string) []msgNode {
	for s != "" {
		loc := placeholderPattern.FindStringSubmatchIndex(s)
		if loc == nil {
			nodes = append(nodes, msgText(s))
			break
		}
		if loc[0] > 0 {
			nodes = append(nodes, msgText(s[:loc[0]]))
		}
		nodes = append(nodes, msgArg(s[loc[2]:loc[3]]))
		s = s[loc[1]:]
	}
	return nodes
}

func evalNodes(shape *Intl, desc MessageDescriptor, nodes []msgNode, values map[string]any) []Node {
	var parts []Node
	for _, n := range nodes {
		switch n := n.(type) {
		case msgText:
			parts = appendPart(parts, Text(n))
		case msgArg:
			parts = appendPart(parts, evalArg(shape, desc, string(n), values))
		case msgTag:
			children := evalNodes(shape, desc, n.children, values)
			renderer, ok := asTagRenderer(values[n.name])
			if !ok {
				shape.report(&Error{
					Code:    ErrCodeFormatError,
					Message: fmt.Sprintf("message %q has no renderer for tag %q", desc.ID, n.name),
				})
				parts = appendPart(parts, Text("<"+n.name+">"))
				for _, child := range children {
					parts = appendPart(parts, child)
				}
				parts = appendPart(parts, Text("</"+n.name+">"))
				continue
			}
			parts = appendPart(parts, renderer(children))
		}
	}
	return parts
}

func evalArg(shape *Intl, desc MessageDescriptor, name string, values map[string]any) Node {
	v, ok := values[name]
	if !ok {
		shape.report(&Error{
			Code:    ErrCodeFormatError,
			Message: fmt.Sprintf("message %q references unknown value %q", desc.ID, name),
		})
		return Text("{" + name + "}")
	}
	if r, ok := asTagRenderer(v); ok {
		return r(nil)
	}
	switch v := v.(type) {
	case nil:
		return Text("")
	case string:
		return Text(v)
	case Node:
		return v
	case time.Time:
		return Text(shape.FormatDate(v))
	}
	if n, ok := numericValue(v); ok {
		return Text(shape.FormatNumber(n))
	}
	return Text(fmt.Sprintf("%v", v))
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// appendPart coalesces adjacent text so an all-text evaluation collapses
// to one part, which is what lets FormatMessageParts return a lone plain
// string unwrapped.
func appendPart(parts []Node, n Node) []Node {
	if n == nil {
		return parts
	}
	if t, ok := n.(Text); ok {
		if t == "" {
			return parts
		}
		if len(parts) > 0 {
			if prev, ok := parts[len(parts)-1].(Text); ok {
				parts[len(parts)-1] = prev + t
				return parts
			}
		}
	}
	return append(parts, n)
}
