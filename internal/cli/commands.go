package cli

import "io"

// commands returns imgfscmd's full subcommand table, in help-listing order.
// in is accepted for symmetry with Run's signature; no current subcommand
// reads from stdin.
func commands(in io.Reader) []*Command {
	return []*Command{
		newHelpCommand(),
		newListCommand(),
		newCreateCommand(),
		newReadCommand(),
		newInsertCommand(),
		newDeleteCommand(),
	}
}
