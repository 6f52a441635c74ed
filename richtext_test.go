package intl

import "testing"

func strongRenderer(children []Node) Node {
	return &Element{Tag: "strong", Children: children}
}

func emRenderer(children []Node) Node {
	return &Element{Tag: "em", Children: children}
}

func TestFormatMessagePartsTagKeys(t *testing.T) {
	in := NewIntl(Config{
		Locale:   "en",
		Messages: map[string]string{"offer": "press <b>pay</b> to finish"},
	}, nil)
	values := map[string]any{"b": TagRenderer(strongRenderer)}

	parts := in.FormatMessageParts(MessageDescriptor{ID: "offer"}, values)
	if len(parts) != 3 {
		t.Fatalf("parts = %d, want 3", len(parts))
	}
	if text, ok := parts[0].(Text); !ok || text != "press " {
		t.Fatalf("parts[0] = %#v", parts[0])
	}
	el, ok := parts[1].(*Element)
	if !ok {
		t.Fatalf("parts[1] = %#v, want *Element", parts[1])
	}
	if el.Key != "0" || el.Tag != "strong" || el.String() != "pay" {
		t.Fatalf("element = %+v", el)
	}
	if text, ok := parts[2].(Text); !ok || text != " to finish" {
		t.Fatalf("parts[2] = %#v", parts[2])
	}

	// keys restart at zero on every call
	again := in.FormatMessageParts(MessageDescriptor{ID: "offer"}, values)
	if len(again) != 3 || again[1].(*Element).Key != "0" {
		t.Fatal("repeat call did not reproduce the key")
	}
}

func TestFormatMessagePartsKeyOrder(t *testing.T) {
	in := NewIntl(Config{
		Locale:   "en",
		Messages: map[string]string{"styled": "a <b>x</b> m <i>y</i> z"},
	}, nil)

	parts := in.FormatMessageParts(MessageDescriptor{ID: "styled"}, map[string]any{
		"b": TagRenderer(strongRenderer),
		"i": TagRenderer(emRenderer),
	})
	if len(parts) != 5 {
		t.Fatalf("parts = %d, want 5", len(parts))
	}
	if key := parts[1].(*Element).Key; key != "0" {
		t.Fatalf("first element key = %q, want 0", key)
	}
	if key := parts[3].(*Element).Key; key != "1" {
		t.Fatalf("second element key = %q, want 1", key)
	}
}

func TestFormatMessagePartsRepeatedTag(t *testing.T) {
	in := NewIntl(Config{
		Locale:   "en",
		Messages: map[string]string{"row": "<b>x</b><b>y</b><b>z</b>"},
	}, nil)
	values := map[string]any{"b": TagRenderer(strongRenderer)}

	render := func() []string {
		parts := in.FormatMessageParts(MessageDescriptor{ID: "row"}, values)
		if len(parts) != 3 {
			t.Fatalf("parts = %d, want 3", len(parts))
		}
		keys := make([]string, len(parts))
		for i, part := range parts {
			keys[i] = part.(*Element).Key
		}
		return keys
	}

	// one renderer expanded three times gets three distinct keys,
	// reproduced exactly on the next call
	first := render()
	if first[0] != "0" || first[1] != "1" || first[2] != "2" {
		t.Fatalf("keys = %v", first)
	}
	second := render()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("keys drifted between calls: %v vs %v", first, second)
		}
	}
}

func TestFormatMessagePartsNestedKeys(t *testing.T) {
	in := NewIntl(Config{
		Locale:   "en",
		Messages: map[string]string{"nested": "<outer>a <inner>x</inner> b</outer>"},
	}, nil)

	parts := in.FormatMessageParts(MessageDescriptor{ID: "nested"}, map[string]any{
		"outer": TagRenderer(strongRenderer),
		"inner": TagRenderer(emRenderer),
	})
	if len(parts) != 1 {
		t.Fatalf("parts = %d, want 1", len(parts))
	}
	outer := parts[0].(*Element)
	// children render before the enclosing tag, so the inner key comes first
	if outer.Key != "1" {
		t.Fatalf("outer key = %q, want 1", outer.Key)
	}
	if len(outer.Children) != 3 {
		t.Fatalf("outer children = %d, want 3", len(outer.Children))
	}
	inner := outer.Children[1].(*Element)
	if inner.Key != "0" || inner.Tag != "em" {
		t.Fatalf("inner = %+v", inner)
	}
	if outer.String() != "a x b" {
		t.Fatalf("outer text = %q", outer.String())
	}
}

func TestFormatMessagePartsBareFuncRenderer(t *testing.T) {
	in := NewIntl(Config{
		Locale:   "en",
		Messages: map[string]string{"offer": "press <b>pay</b> now"},
	}, nil)

	parts := in.FormatMessageParts(MessageDescriptor{ID: "offer"}, map[string]any{
		"b": func(children []Node) Node { return &Element{Tag: "strong", Children: children} },
	})
	if len(parts) != 3 {
		t.Fatalf("parts = %d, want 3", len(parts))
	}
	if el := parts[1].(*Element); el.Tag != "strong" || el.Key != "0" {
		t.Fatalf("element = %+v", el)
	}
}

func TestFormatMessagePartsRendererValue(t *testing.T) {
	in := NewIntl(Config{
		Locale:   "en",
		Messages: map[string]string{"icon": "click {icon} now"},
	}, nil)

	parts := in.FormatMessageParts(MessageDescriptor{ID: "icon"}, map[string]any{
		"icon": TagRenderer(func(children []Node) Node { return &Element{Tag: "img"} }),
	})
	if len(parts) != 3 {
		t.Fatalf("parts = %d, want 3", len(parts))
	}
	if el := parts[1].(*Element); el.Tag != "img" || el.Key != "0" {
		t.Fatalf("element = %+v", el)
	}
}

func TestFragmentWrapping(t *testing.T) {
	in := NewIntl(Config{
		Locale:                       "en",
		Messages:                     map[string]string{"offer": "press <b>pay</b> now"},
		WrapRichTextChunksInFragment: true,
	}, nil)

	parts := in.FormatMessageParts(MessageDescriptor{ID: "offer"}, map[string]any{
		"b": TagRenderer(strongRenderer),
	})
	if len(parts) != 1 {
		t.Fatalf("parts = %d, want a single fragment", len(parts))
	}
	frag, ok := parts[0].(*Fragment)
	if !ok {
		t.Fatalf("parts[0] = %#v, want *Fragment", parts[0])
	}
	if frag.Key != "1" {
		t.Fatalf("fragment key = %q, want 1", frag.Key)
	}
	if len(frag.Children) != 3 {
		t.Fatalf("fragment children = %d, want 3", len(frag.Children))
	}
	if el := frag.Children[1].(*Element); el.Key != "0" {
		t.Fatalf("element key = %q, want 0", el.Key)
	}
	if frag.String() != "press pay now" {
		t.Fatalf("fragment text = %q", frag.String())
	}
}

func TestFragmentWrappingSkipsSinglePart(t *testing.T) {
	in := NewIntl(Config{
		Locale:                       "en",
		Messages:                     map[string]string{"plain": "hello {name}", "only": "<b>pay</b>"},
		WrapRichTextChunksInFragment: true,
	}, nil)

	// coalesced plain text stays a bare part
	parts := in.FormatMessageParts(MessageDescriptor{ID: "plain"}, map[string]any{"name": "Ada"})
	if len(parts) != 1 {
		t.Fatalf("parts = %d, want 1", len(parts))
	}
	if text, ok := parts[0].(Text); !ok || text != "hello Ada" {
		t.Fatalf("parts[0] = %#v", parts[0])
	}

	// a lone element is returned as is, not wrapped
	parts = in.FormatMessageParts(MessageDescriptor{ID: "only"}, map[string]any{
		"b": TagRenderer(strongRenderer),
	})
	if len(parts) != 1 {
		t.Fatalf("parts = %d, want 1", len(parts))
	}
	if el, ok := parts[0].(*Element); !ok || el.Key != "0" {
		t.Fatalf("parts[0] = %#v", parts[0])
	}
}

func TestTextComponentWrapsTextRuns(t *testing.T) {
	in := NewIntl(Config{
		Locale:        "en",
		Messages:      map[string]string{"offer": "press <b>pay</b> now", "plain": "hello"},
		TextComponent: func(children []Node) Node { return &Element{Tag: "span", Children: children} },
	}, nil)

	parts := in.FormatMessageParts(MessageDescriptor{ID: "offer"}, map[string]any{
		"b": TagRenderer(strongRenderer),
	})
	if len(parts) != 3 {
		t.Fatalf("parts = %d, want 3", len(parts))
	}
	lead := parts[0].(*Element)
	if lead.Tag != "span" || lead.Key != "1" || lead.String() != "press " {
		t.Fatalf("lead = %+v", lead)
	}
	if el := parts[1].(*Element); el.Tag != "strong" || el.Key != "0" {
		t.Fatalf("middle = %+v", el)
	}
	tail := parts[2].(*Element)
	if tail.Tag != "span" || tail.Key != "2" || tail.String() != " now" {
		t.Fatalf("tail = %+v", tail)
	}

	// an all-text result is left alone
	parts = in.FormatMessageParts(MessageDescriptor{ID: "plain"})
	if len(parts) != 1 {
		t.Fatalf("plain parts = %d, want 1", len(parts))
	}
	if _, ok := parts[0].(Text); !ok {
		t.Fatalf("plain parts[0] = %#v, want Text", parts[0])
	}
}

func TestDefaultRichTextElements(t *testing.T) {
	elements := map[string]TagRenderer{"b": strongRenderer}
	in := NewIntl(Config{
		Locale:                  "en",
		Messages:                map[string]string{"offer": "press <b>pay</b>"},
		DefaultRichTextElements: elements,
	}, nil)

	parts := in.FormatMessageParts(MessageDescriptor{ID: "offer"})
	if len(parts) != 2 {
		t.Fatalf("parts = %d, want 2", len(parts))
	}
	if el := parts[1].(*Element); el.Tag != "strong" || el.Key != "0" {
		t.Fatalf("element = %+v", el)
	}

	// caller values shadow the configured defaults
	parts = in.FormatMessageParts(MessageDescriptor{ID: "offer"}, map[string]any{
		"b": TagRenderer(emRenderer),
	})
	if el := parts[1].(*Element); el.Tag != "em" {
		t.Fatalf("override element = %+v", el)
	}

	// the shape holds its own copy of the renderer map
	delete(elements, "b")
	parts = in.FormatMessageParts(MessageDescriptor{ID: "offer"})
	if el, ok := parts[1].(*Element); !ok || el.Tag != "strong" {
		t.Fatalf("after caller mutation parts[1] = %#v", parts[1])
	}
}

func TestNodeFlattening(t *testing.T) {
	el := &Element{Tag: "b", Children: []Node{Text("a"), Text("b")}}
	if el.String() != "ab" {
		t.Fatalf("Element.String = %q", el.String())
	}
	frag := &Fragment{Children: []Node{Text("x"), el}}
	if frag.String() != "xab" {
		t.Fatalf("Fragment.String = %q", frag.String())
	}
	if flattenParts(nil) != "" {
		t.Fatal("flattenParts(nil) != empty")
	}
}
