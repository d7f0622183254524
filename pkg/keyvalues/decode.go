package keyvalues

import (
	"bytes"
	"io"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// ErrMalformed is returned by the strict readers when the input is not well
// formed. Parse itself never reports it.
var ErrMalformed = errors.New("malformed key/value document")

// Validate parses r strictly and reports the first syntax error.
func Validate(r io.Reader) error {
	_, err := strict(r)
	return err
}

// Decode parses r strictly and maps the nested document onto v using
// mapstructure tags, e.g.
//
//	type AppManifest struct {
//		AppState struct {
//			InstallDir string `mapstructure:"installdir"`
//		} `mapstructure:"AppState"`
//	}
func Decode(r io.Reader, v interface{}) error {
	doc, err := strict(r)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(doc)
}

func strict(r io.Reader) (map[string]interface{}, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read document")
	}

	if err := check(string(content)); err != nil {
		return nil, err
	}

	doc, err := vdf.NewParser(bytes.NewReader(content)).Parse()
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	return doc, nil
}

// check walks text with the same tokenizer Parse uses and rejects anything
// Parse would have had to skip or guess at. The document root must consist
// of sections.
func check(text string) error {
	c := &cursor{text: text}
	depth := 0
	entries := 0

	malformed := func(format string, args ...interface{}) error {
		line := strings.Count(text[:c.pos], "\n") + 1
		return errors.Wrapf(ErrMalformed, "line %d: "+format, append([]interface{}{line}, args...)...)
	}

	for {
		c.skipSpace()
		if c.done() {
			break
		}

		switch {
		case c.hasPrefix("//"):
			c.skipLine()

		case c.peek() == '}':
			if depth == 0 {
				return malformed("unexpected closing brace")
			}
			depth--
			c.pos++

		case c.peek() == '{':
			return malformed("section without a name")

		case c.peek() == '"':
			key, err := checkedQuoted(c)
			if err != nil {
				return malformed("%s", err.Error())
			}

			c.skipSpace()
			for c.hasPrefix("//") {
				c.skipLine()
				c.skipSpace()
			}
			if c.done() {
				return malformed("key %q has no value", key)
			}

			switch c.peek() {
			case '"':
				if depth == 0 {
					return malformed("value %q outside of a section", key)
				}
				if _, err := checkedQuoted(c); err != nil {
					return malformed("%s", err.Error())
				}
			case '{':
				depth++
				c.pos++
			default:
				return malformed("key %q has no value", key)
			}
			entries++

		default:
			return malformed("unexpected character %q", c.peek())
		}
	}

	if depth > 0 {
		return malformed("%d unclosed section(s)", depth)
	}
	if entries == 0 {
		return errors.Wrap(ErrMalformed, "empty document")
	}
	return nil
}

func checkedQuoted(c *cursor) (string, error) {
	start := c.pos
	token := c.quoted()
	if c.text[c.pos-1] != '"' || c.pos-start < 2 {
		return "", errors.Errorf("unterminated string %q", token)
	}
	return token, nil
}
