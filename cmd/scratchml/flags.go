// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"io"
)

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// seedFlag registers the shared -seed flag.
func seedFlag(fs *flag.FlagSet) *int64 {
	return fs.Int64("seed", 0, "random seed (0 means the fixed default)")
}
