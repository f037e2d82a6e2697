// Package cli implements imgfscmd's subcommand dispatch and per-command
// flag parsing: create/list/read/insert/delete/help (spec §6.3).
package cli

import (
	"context"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command defines one imgfscmd subcommand with unified help generation.
type Command struct {
	// Flags defines command-specific flags, or nil if the command takes
	// only positional arguments.
	Flags *flag.FlagSet

	// Usage is the freeform usage string shown after "imgfscmd" in help,
	// e.g. "create <imgFS_filename> [options]".
	Usage string

	// Short is a one-line description for the top-level help listing.
	Short string

	// Long is the full description shown in per-command help. Falls back
	// to Short if empty.
	Long string

	// Exec runs the command with the arguments that follow the command
	// name; Run does not parse Flags before calling it.
	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name returns the command name (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine returns the short help line shown in the top-level listing.
func (c *Command) HelpLine() string {
	return "  " + padRight(c.Usage, 22) + " " + c.Short
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// PrintHelp prints "imgfscmd <cmd> --help" output.
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: imgfscmd", c.Usage)
	o.Println()

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}
	o.Println(desc)

	if c.Flags != nil && c.Flags.HasFlags() {
		o.Println()
		o.Println("Flags:")

		var buf strings.Builder
		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()
		o.Printf("%s", buf.String())
	}
}

// Run executes the command, returning a process exit code. "--help"/"-h"
// anywhere in args short-circuits to the per-command help screen instead of
// reaching Exec — every imgfscmd subcommand's arguments are positional
// (imgFS filenames, image IDs, and create's hand-scanned -max_files/
// -thumb_res/-small_res), so routing them through pflag.Parse would
// misparse a dash-leading positional value as an unknown flag; checking
// for help explicitly here, once, is simpler than teaching every Exec to
// recognize it. Errors are printed as "ERROR: <message>" followed by the
// command's help text, matching spec §7's user-visible CLI failure format.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	for _, a := range args {
		if a == "--help" || a == "-h" {
			c.PrintHelp(o)
			return 0
		}
	}

	if err := c.Exec(ctx, o, args); err != nil {
		o.ErrPrintln("ERROR:", err)
		o.ErrPrintln()
		c.PrintHelp(o)
		return 1
	}

	return 0
}
