package codec

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/ropshape/pkg/rop"
)

const (
	TagOK    = "!ok"
	TagError = "!error"
)

var ErrNotSequence = errors.New("codec: document is not a sequence")

// Decode parses a single YAML document.
func Decode(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return decodeNode(&doc)
}

// DecodeList parses a YAML document that must be a sequence.
func DecodeList(data []byte) ([]any, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return []any{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, ErrNotSequence
	}
	return list, nil
}

func decodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return decodeNode(n.Content[0])
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	}

	switch n.Tag {
	case TagOK:
		return decodeTagged(rop.OK, n)
	case TagError:
		return decodeTagged(rop.Err, n)
	}
	return decodeUntagged(n)
}

func decodeTagged(m rop.Marker, n *yaml.Node) (any, error) {
	if n.Kind == yaml.SequenceNode && len(n.Content) > 0 {
		t := rop.Tuple{m}
		for _, c := range n.Content {
			v, err := decodeNode(c)
			if err != nil {
				return nil, err
			}
			t = append(t, v)
		}
		return t, nil
	}

	untagged := *n
	untagged.Tag = ""
	untagged.Style &^= yaml.TaggedStyle
	v, err := decodeUntagged(&untagged)
	if err != nil {
		return nil, err
	}
	return rop.Tuple{m, v}, nil
}

func decodeUntagged(n *yaml.Node) (any, error) {
	if len(n.Tag) > 0 && n.Tag[0] == '!' && !isStandardTag(n.Tag) {
		return nil, fmt.Errorf("codec: line %d: unknown tag %q", n.Line, n.Tag)
	}

	switch n.Kind {
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := decodeNode(c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := decodeNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("codec: line %d: %w", n.Line, err)
		}
		return v, nil
	}
}

func isStandardTag(tag string) bool {
	return strings.HasPrefix(tag, "!!") || strings.HasPrefix(tag, "tag:yaml.org,2002:")
}

// Encode renders v as YAML.
func Encode(v any) ([]byte, error) {
	n, err := encodeNode(v)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return out, nil
}

func encodeNode(x any) (*yaml.Node, error) {
	v := rop.Classify(x)
	switch v.Shape() {
	case rop.ShapeAbsent:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case rop.ShapeSuccess:
		return encodeTagged(TagOK, v.Slots())
	case rop.ShapeFailure:
		return encodeTagged(TagError, v.Slots())
	}

	switch t := v.Payload().(type) {
	case []any:
		return encodeSeq(t)
	case rop.Tuple:
		return encodeSeq(t)
	case map[string]any:
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range slices.Sorted(maps.Keys(t)) {
			vn, err := encodeNode(t[k])
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, vn)
		}
		return m, nil
	}

	n := &yaml.Node{}
	if err := n.Encode(v.Payload()); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return n, nil
}

// encodeTagged puts the tag on the payload node itself when that round-trips,
// otherwise on a sequence of the slots.
func encodeTagged(tag string, slots []any) (*yaml.Node, error) {
	if len(slots) == 1 {
		switch slots[0].(type) {
		case []any, rop.Tuple:
		default:
			n, err := encodeNode(slots[0])
			if err != nil {
				return nil, err
			}
			if st := n.ShortTag(); st != TagOK && st != TagError && st != "!!null" {
				if st == "!!str" {
					// the custom tag hides !!str, so "5" must stay quoted
					n.Style = yaml.DoubleQuotedStyle
				}
				n.Tag = tag
				return n, nil
			}
		}
	}

	seq, err := encodeSeq(slots)
	if err != nil {
		return nil, err
	}
	seq.Tag = tag
	seq.Style = yaml.FlowStyle
	return seq, nil
}

func encodeSeq(items []any) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, item := range items {
		n, err := encodeNode(item)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, n)
	}
	return seq, nil
}
