// Package wine edits Wine registry hive files (user.reg, system.reg) as
// text, leaving everything it does not touch byte for byte intact.
package wine

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var ErrRegistryNotFound = errors.New("registry file not found")

// Patcher adds entries to registry files. Now stamps newly created
// sections and defaults to time.Now.
type Patcher struct {
	Now func() time.Time
}

func NewPatcher() *Patcher {
	return &Patcher{Now: time.Now}
}

// DllOverride is the line that sets the load order of dll, e.g.
// "xinput1_4"="native,builtin".
func DllOverride(dll, mode string) string {
	return strconv.Quote(dll) + "=" + strconv.Quote(mode)
}

// PatchDllOverride makes sure section (a header such as
// [Software\\Wine\\DllOverrides]) sets an override for dll in the
// registry file at path. It reports whether the file was changed.
//
// A missing section is appended at the end of the file. A section without
// the override gets it after its last entry. An existing override for dll,
// whatever its mode, is left alone.
func (p *Patcher) PatchDllOverride(path, section, dll, mode string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, errors.Wrap(ErrRegistryNotFound, path)
		}
		return false, errors.Wrapf(err, "failed to open registry file %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to open registry file %s", path)
	}

	patched, changed := p.patch(string(content), section, DllOverride(dll, mode), strconv.Quote(dll)+"=")
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(patched), info.Mode().Perm()); err != nil {
		return false, errors.Wrapf(err, "failed to write registry file %s", path)
	}

	return true, nil
}

func (p *Patcher) patch(content, section, entry, keyPrefix string) (string, bool) {
	lines := strings.SplitAfter(content, "\n")

	header := -1
	for i, line := range lines {
		if isHeader(line, section) {
			header = i
			break
		}
	}

	if header < 0 {
		return content + p.newSection(content, section, entry), true
	}

	// the section runs until the next header or the end of the file
	end := len(lines)
	for i := header + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "[") {
			end = i
			break
		}
	}

	last := header
	for i := header + 1; i < end; i++ {
		if strings.HasPrefix(lines[i], keyPrefix) {
			return content, false
		}
		if strings.TrimSpace(lines[i]) != "" {
			last = i
		}
	}

	// insert after the last non blank line so the blank line separating
	// sections stays where it is
	eol := lineEnding(lines[last], content)

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		if i == last {
			if !strings.HasSuffix(line, "\n") {
				b.WriteString(eol)
			}
			b.WriteString(entry + eol)
		}
	}

	return b.String(), true
}

func (p *Patcher) newSection(content, section, entry string) string {
	now := p.Now().Unix()

	eol := lineEnding("", content)

	var b strings.Builder
	if content != "" {
		if !strings.HasSuffix(content, "\n") {
			b.WriteString(eol)
		}
		b.WriteString(eol)
	}
	b.WriteString(fmt.Sprintf("%s %d%s", section, now, eol))
	b.WriteString(fmt.Sprintf("#time=%x%s", now, eol))
	b.WriteString(entry + eol)

	return b.String()
}

// lineEnding returns the terminator of line, falling back to the first one
// used in content when line has none.
func lineEnding(line, content string) string {
	if strings.HasSuffix(line, "\n") {
		if strings.HasSuffix(line, "\r\n") {
			return "\r\n"
		}
		return "\n"
	}
	if i := strings.Index(content, "\n"); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

func isHeader(line, section string) bool {
	line = strings.TrimRight(line, "\r\n")
	return line == section || strings.HasPrefix(line, section+" ")
}
