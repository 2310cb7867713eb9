// Command staffroll is a local employee register over a SQLite file.
package main

import (
	"os"

	"github.com/roach88/staffroll/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
