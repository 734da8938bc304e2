package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/homeman/cmd/homeman"
	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/style"
)

func main() {
	rootCmd := homeman.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Operations print their own messages before failing
		if !homeman.IsReported(err) {
			fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))

			if errors.IsErrorCode(err, errors.ErrInvalidInput) {
				fmt.Fprintln(os.Stderr)
				_ = rootCmd.Usage()
			}
		}
		os.Exit(1)
	}
}
