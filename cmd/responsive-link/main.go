// Command responsive-link inserts the responsive stylesheet link into the
// HTML fragments in the parts_of_const directory next to the binary.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rshade/responsive-link/internal/cli"
	"github.com/rshade/responsive-link/pkg/version"
)

func main() {
	os.Exit(run(os.Stderr))
}

// run executes the root command and returns the process exit code.
func run(errOut io.Writer) int {
	root := cli.NewRootCmd(version.GetVersion())
	return exitCode(root.Execute(), errOut)
}

// exitCode reports err on errOut and maps it to an exit status.
func exitCode(err error, errOut io.Writer) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(errOut, "Error: %v\n", err)
	return 1
}
