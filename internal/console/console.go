// Package console holds the print helpers used for user-facing output.
//
// Every argument is written with its default format followed by a single
// space, so Println("a", 1, true) writes "a 1 true \n".
package console

import (
	"fmt"
	"io"
	"os"
)

// Printer writes space-separated values to an output and an error stream.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

func NewPrinter(out, err io.Writer) *Printer {
	return &Printer{Out: out, Err: err}
}

// Default returns a Printer bound to os.Stdout and os.Stderr.
func Default() *Printer {
	return NewPrinter(os.Stdout, os.Stderr)
}

func (p *Printer) Print(args ...any)    { write(p.Out, args, false) }
func (p *Printer) Println(args ...any)  { write(p.Out, args, true) }
func (p *Printer) Eprint(args ...any)   { write(p.Err, args, false) }
func (p *Printer) Eprintln(args ...any) { write(p.Err, args, true) }

func write(w io.Writer, args []any, newline bool) {
	for _, a := range args {
		fmt.Fprintf(w, "%v ", a)
	}
	if newline {
		fmt.Fprintln(w)
	}
}

func Print(args ...any)    { Default().Print(args...) }
func Println(args ...any)  { Default().Println(args...) }
func Eprint(args ...any)   { Default().Eprint(args...) }
func Eprintln(args ...any) { Default().Eprintln(args...) }
