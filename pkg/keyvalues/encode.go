package keyvalues

import (
	"strings"
)

type node struct {
	name     string
	value    *string
	children []*node
	index    map[string]*node
}

func (n *node) child(name string) *node {
	if n.index == nil {
		n.index = map[string]*node{}
	}
	if c, ok := n.index[name]; ok {
		return c
	}
	c := &node{name: name}
	n.index[name] = c
	n.children = append(n.children, c)
	return c
}

// Encode writes a Tree back out in nested form, one section per shared key
// prefix, tab indented the way Steam writes its own files.
func Encode(t *Tree) string {
	root := &node{}
	for _, key := range t.keys {
		n := root
		for _, segment := range strings.Split(key, Separator) {
			n = n.child(segment)
		}
		value := t.values[key]
		n.value = &value
	}

	var b strings.Builder
	for _, c := range root.children {
		writeNode(&b, c, 0)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *node, depth int) {
	indent := strings.Repeat("\t", depth)
	if n.value != nil {
		b.WriteString(indent + quote(n.name) + "\t\t" + quote(*n.value) + "\n")
	}
	if len(n.children) == 0 {
		return
	}
	b.WriteString(indent + quote(n.name) + "\n")
	b.WriteString(indent + "{\n")
	for _, c := range n.children {
		writeNode(b, c, depth+1)
	}
	b.WriteString(indent + "}\n")
}

func quote(s string) string {
	return `"` + s + `"`
}
