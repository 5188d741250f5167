// Command lodtool builds LoD prediction structures from point-cloud files
// and inspects attribute parameter sets and coefficient contexts.
//
//	lodtool build --cloud points.xyz --params aps.yaml [-v]
//	lodtool reuse --params first.yaml --params second.yaml
//	lodtool classify 0 3 17 300
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
