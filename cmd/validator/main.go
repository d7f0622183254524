package main

import (
	"fmt"
	"os"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/cmd/validator/pkg"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <libraryfolders.vdf | appmanifest_<appid>.acf>...\n", os.Args[0])
		os.Exit(1)
	}

	r := &report{out: os.Stdout, errOut: os.Stderr}
	for _, path := range os.Args[1:] {
		tree, err := pkg.ValidateManifest(path)
		if err != nil {
			r.fail(err)
			continue
		}
		r.pass(path, tree)
	}

	if !r.ok() {
		os.Exit(1)
	}
}
