package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshahbaz/terminalist/internal/cli"
	"github.com/dshahbaz/terminalist/internal/script"
)

func main() {
	// Detect whether we were invoked under our own name or through an
	// interception symlink (e.g. as 'find').
	progName := filepath.Base(os.Args[0])
	if progName != script.Name {
		os.Exit(cli.Intercept(progName, os.Args[1:]))
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
