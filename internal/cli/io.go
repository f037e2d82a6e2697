package cli

import (
	"fmt"
	"io"
)

// IO bundles the two streams an imgfscmd command writes to. Trimmed from
// the source layout's LLM-warning-aware IO: imgfscmd is a one-shot tool
// operated by a human or a script, not an agent, so there is no warning
// channel to surface — errors are reported once, on stderr, per spec §7.
type IO struct {
	out    io.Writer
	errOut io.Writer
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}
