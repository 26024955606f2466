// Command boxtree renders box trees from markup files.
//
//	boxtree render page.html
//	boxtree query page.html '.item:active'
//	boxtree dot --groups Box,Paint page.html | dot -Tsvg -o page.svg
//
// Configuration is read from ./boxtree.yaml (keys scale, origin.x, origin.y
// and trace) and from environment variables prefixed with BOXTREE_.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
