// Command tgstate inspects and resets the session files a client keeps
// between runs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	a := &app{fs: afero.NewOsFs()}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
