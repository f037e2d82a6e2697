package cli

import "io"

// Writer exposes the stdout stream for callers that need to hand it to a
// helper expecting a plain io.Writer (imgfs.PrintHeader/PrintSlot).
func (o *IO) Writer() io.Writer {
	return o.out
}
