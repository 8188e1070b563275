package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arenstad/milsearch/v1/milvus"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd := newRootCommand(version, commit, date)
	if err := cmd.Execute(); err != nil {
		// Print the failure kind so scripts can dispatch on it without
		// parsing server messages.
		if kind := milvus.Kind(err); kind != "" && !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", kind, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
