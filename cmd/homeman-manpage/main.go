package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/homeman/cmd/homeman"
	"github.com/arthur-debert/homeman/internal/version"
)

func main() {
	rootCmd := homeman.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "HOMEMAN",
		Section: "1",
		Source:  "homeman " + version.Version,
		Manual:  "homeman manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
