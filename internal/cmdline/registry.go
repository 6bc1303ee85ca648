package cmdline

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps command keywords to their grammars. It is read-only once
// built and may be shared by concurrent parses.
type Registry struct {
	grammars map[string]*Grammar
}

// NewRegistry validates and indexes the given grammars.
func NewRegistry(grammars ...Grammar) (*Registry, error) {
	r := &Registry{grammars: make(map[string]*Grammar, len(grammars))}
	var errs []string
	for i := range grammars {
		g := grammars[i]
		g.Switches = append([]SwitchDefinition(nil), g.Switches...)
		errs = append(errs, checkGrammar(&g)...)
		if _, dup := r.grammars[g.Keyword]; dup {
			errs = append(errs, fmt.Sprintf("command '%s': declared more than once", g.Keyword))
			continue
		}
		g.index()
		r.grammars[g.Keyword] = &g
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on invalid grammars. It is
// meant for static tables.
func MustRegistry(grammars ...Grammar) *Registry {
	r, err := NewRegistry(grammars...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the grammar registered for keyword.
func (r *Registry) Lookup(keyword string) (*Grammar, bool) {
	g, ok := r.grammars[keyword]
	return g, ok
}

// Keywords returns all registered keywords in sorted order.
func (r *Registry) Keywords() []string {
	out := make([]string, 0, len(r.grammars))
	for k := range r.grammars {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.grammars) }

const nameDelimiters = "-\" \n\t\r"

func checkGrammar(g *Grammar) []string {
	var errs []string
	if g.Keyword == "" {
		return []string{"command with empty keyword"}
	}
	if strings.ContainsAny(g.Keyword, " \n\t\r") {
		errs = append(errs, fmt.Sprintf("command '%s': keyword must not contain whitespace", g.Keyword))
	}
	if _, ok := levelNames[g.Arg]; !ok {
		errs = append(errs, fmt.Sprintf("command '%s': invalid argument level %d", g.Keyword, int(g.Arg)))
	}
	seen := map[string]string{}
	for _, sw := range g.Switches {
		if sw.Name == "" {
			errs = append(errs, fmt.Sprintf("command '%s': switch with empty name", g.Keyword))
			continue
		}
		if _, ok := levelNames[sw.Level]; !ok {
			errs = append(errs, fmt.Sprintf("command '%s', switch '%s': invalid value level %d", g.Keyword, sw.Name, int(sw.Level)))
		}
		for _, n := range []string{sw.Name, sw.Alias} {
			if n == "" {
				continue
			}
			if strings.ContainsAny(n, nameDelimiters) {
				errs = append(errs, fmt.Sprintf("command '%s', switch '%s': '%s' contains a delimiter character", g.Keyword, sw.Name, n))
			}
			if owner, dup := seen[n]; dup {
				errs = append(errs, fmt.Sprintf("command '%s', switch '%s': '%s' already used by switch '%s'", g.Keyword, sw.Name, n, owner))
				continue
			}
			seen[n] = sw.Name
		}
	}
	return errs
}
