package cli

import (
	"context"
	"io"
)

// Run is imgfscmd's entry point. args follows os.Args conventions: args[0]
// is the program name, args[1] is the subcommand. Returns the process exit
// code.
func Run(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string) int {
	o := NewIO(out, errOut)
	commands := commands(in)

	if len(args) < 2 {
		o.ErrPrintln("ERROR: not enough arguments")
		o.ErrPrintln()
		printUsage(o, commands)
		return 1
	}

	name := args[1]
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(ctx, o, args[2:])
		}
	}

	o.ErrPrintln("ERROR: invalid command:", name)
	o.ErrPrintln()
	printUsage(o, commands)
	return 1
}

func printUsage(o *IO, commands []*Command) {
	o.Println("imgfscmd [COMMAND] [ARGUMENTS]")
	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}
}
