// Package keyvalues reads the brace delimited, quoted key/value text format
// Steam uses for libraryfolders.vdf and appmanifest_*.acf files.
//
// Parse never fails. Malformed or truncated input yields whatever pairs could
// be read before the damage, since these files are occasionally hand edited.
package keyvalues

import (
	"os"
	"unicode"

	"github.com/pkg/errors"
)

type cursor struct {
	text string
	pos  int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.text)
}

func (c *cursor) peek() byte {
	return c.text[c.pos]
}

func (c *cursor) hasPrefix(s string) bool {
	return len(c.text)-c.pos >= len(s) && c.text[c.pos:c.pos+len(s)] == s
}

func (c *cursor) skipSpace() {
	for !c.done() && unicode.IsSpace(rune(c.peek())) {
		c.pos++
	}
}

func (c *cursor) skipLine() {
	for !c.done() && c.peek() != '\n' {
		c.pos++
	}
}

// quoted reads a token starting at an opening quote. No escape sequences are
// interpreted: the token ends at the next quote or at end of input.
func (c *cursor) quoted() string {
	c.pos++ // opening quote
	start := c.pos
	for !c.done() && c.peek() != '"' {
		c.pos++
	}
	token := c.text[start:c.pos]
	if !c.done() {
		c.pos++ // closing quote
	}
	return token
}

// Parse flattens text into a Tree. Nested sections prefix their keys with the
// section name, so
//
//	"libraryfolders" { "0" { "path" "/mnt/games" } }
//
// produces the single key "libraryfolders.0.path".
func Parse(text string) *Tree {
	tree := newTree()
	c := &cursor{text: text}
	for !c.done() {
		parseSection(c, "", tree)
	}
	return tree
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*Tree, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return Parse(string(content)), nil
}

// parseSection consumes entries until the closing brace of the current
// section (or end of input) and records leaves under prefix.
func parseSection(c *cursor, prefix string, tree *Tree) {
	for {
		c.skipSpace()
		if c.done() {
			return
		}

		switch {
		case c.hasPrefix("//"):
			c.skipLine()

		case c.peek() == '}':
			c.pos++
			return

		case c.peek() == '{':
			// a section without a key: skip the brace and keep reading
			c.pos++

		case c.peek() == '"':
			key := qualify(prefix, c.quoted())

			c.skipSpace()
			if c.done() {
				return
			}

			switch c.peek() {
			case '"':
				tree.set(key, c.quoted())
			case '{':
				c.pos++
				parseSection(c, key, tree)
			}

		default:
			c.pos++
		}
	}
}

func qualify(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return Join(prefix, key)
}
