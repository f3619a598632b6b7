// Command hpicker is a horizontal picker for the terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rshade/hpicker/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // Set by the linker.

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	root := cli.NewRootCmd(version)
	root.SetArgs(args)
	return exitCode(root.Execute(), stderr)
}

// exitCode maps a command error to a process exit code, reporting it on stderr.
// A cancelled pick exits with 130 and no message.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var cancelled *cli.CancelledError
	if errors.As(err, &cancelled) {
		return cli.ExitCodeCancelled
	}

	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
