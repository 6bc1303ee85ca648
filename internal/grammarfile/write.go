package grammarfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flarebyte/switchline/internal/cmdline"
)

// Marshal returns a YAML grammar file for gs that Load reads back to the
// same grammars. Field order is fixed and empty fields are left out.
func Marshal(gs []cmdline.Grammar) ([]byte, error) {
	cmds := &yaml.Node{Kind: yaml.SequenceNode}
	for _, g := range gs {
		cmds.Content = append(cmds.Content, commandNode(g))
	}
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content, scalarNode("commands"), cmds)

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

// Write writes the YAML grammar file for gs to path, creating parent
// directories.
func Write(path string, gs []cmdline.Grammar) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := Marshal(gs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func commandNode(g cmdline.Grammar) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	addField(n, "keyword", g.Keyword)
	addField(n, "summary", g.Summary)
	if g.Arg != cmdline.None {
		addField(n, "argument", g.Arg.String())
	}
	addField(n, "argName", g.ArgName)
	addField(n, "emptyArgMessage", g.EmptyArgMessage)
	if len(g.Switches) > 0 {
		sws := &yaml.Node{Kind: yaml.SequenceNode}
		for _, sw := range g.Switches {
			s := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
			addField(s, "name", sw.Name)
			if sw.Level != cmdline.None {
				addField(s, "level", sw.Level.String())
			}
			addField(s, "alias", sw.Alias)
			addField(s, "summary", sw.Summary)
			sws.Content = append(sws.Content, s)
		}
		n.Content = append(n.Content, scalarNode("switches"), sws)
	}
	if g.Script != "" {
		v := scalarNode(g.Script)
		if strings.Contains(g.Script, "\n") {
			v.Style = yaml.LiteralStyle
		}
		n.Content = append(n.Content, scalarNode("run"), v)
	}
	return n
}

func addField(n *yaml.Node, key, value string) {
	if value == "" {
		return
	}
	n.Content = append(n.Content, scalarNode(key), scalarNode(value))
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
