package render

import (
	"bytes"
	"sort"

	"gopkg.in/yaml.v3"
)

// marshalYAML returns canonical YAML for an ordered list of key/value pairs:
// keys keep their given order, nested maps are sorted.
func marshalYAML(pairs []kv) ([]byte, error) {
	top := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range pairs {
		top.Content = append(top.Content, scalarNode(p.key), canonicalNode(p.value))
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

type kv struct {
	key   string
	value any
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func canonicalNode(v any) *yaml.Node {
	switch x := v.(type) {
	case nil:
		return nullNode()
	case *string:
		if x == nil {
			return nullNode()
		}
		return scalarNode(*x)
	case string:
		return scalarNode(x)
	case map[string]*string:
		n := &yaml.Node{Kind: yaml.MappingNode}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n.Content = append(n.Content, scalarNode(k), canonicalNode(x[k]))
		}
		return n
	default:
		n := &yaml.Node{}
		_ = n.Encode(x)
		return n
	}
}
