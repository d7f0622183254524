package main

import (
	"fmt"
	"io"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/pkg/keyvalues"
)

// report prints the outcome of each validated manifest: its flattened keys
// on success, one error line otherwise.
type report struct {
	out    io.Writer
	errOut io.Writer
	failed int
}

func (r *report) pass(path string, tree *keyvalues.Tree) {
	fmt.Fprintf(r.out, "%s: pass validate\n", path)

	values := tree.Map()
	for _, key := range tree.Keys() {
		fmt.Fprintf(r.out, "\t%s = %q\n", key, values[key])
	}
}

func (r *report) fail(err error) {
	r.failed++
	fmt.Fprintf(r.errOut, "ERROR: %s\n", err.Error())
}

func (r *report) ok() bool {
	return r.failed == 0
}
