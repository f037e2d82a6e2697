// Command imgfscmd is the one-shot CLI front-end to an imgFS container:
// create/list/read/insert/delete, plus help.
package main

import (
	"context"
	"os"

	"imgfs/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args))
}
