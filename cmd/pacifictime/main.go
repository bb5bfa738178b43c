// Command pacifictime reports whether U.S. Pacific Time observes standard or
// daylight time at an instant, and when it switches.
//
// Usage:
//
//	pacifictime [instant]
//	pacifictime offset [instant]
//	pacifictime next [instant]
//	pacifictime transitions [--year N]
//	pacifictime rules [--posix]
//
// Instants are RFC 3339 timestamps, UTC date-times such as
// "2024-03-10 10:00", UTC dates, or @<unix seconds>. Without an instant the
// current time is used.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ngrash/go-pacifictime/pacific"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCommand(pacific.SystemClock{}, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}
