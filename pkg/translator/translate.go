// Package translator turns a character stream of a tiny imperative toy
// language into accumulator-style pseudo-assembly, one line at a time.
//
// The translation is a single recursive-descent pass: each grammar
// production consumes characters straight off the input and emits its
// instructions as a side effect. No token stream and no syntax tree are
// ever built, so output lines appear in exactly the order the productions
// run, and a failure leaves everything emitted so far on the sink.
package translator

import (
	"bufio"
	"io"
	"strings"
)

// Translator is one translation session: the single rune of lookahead,
// the input cursor behind it, the label counter, and the output sink.
// A session is created by New, drives exactly one translation, and is
// then discarded; it is not safe for reuse or concurrent use.
type Translator struct {
	in     *bufio.Reader
	out    io.Writer
	look   rune // next unconsumed input rune, or the eof sentinel
	atEOF  bool
	lcount int // next label number
}

// New builds a session over in, primes the lookahead, and skips any
// leading whitespace. Output lines are written to out as they are
// produced.
func New(in io.Reader, out io.Writer) (*Translator, error) {
	t := &Translator{in: bufio.NewReader(in), out: out}
	if err := t.advance(); err != nil {
		return nil, err
	}
	if err := t.skipWhite(); err != nil {
		return nil, err
	}
	return t, nil
}

// Look exposes the current lookahead so a driver can inspect what the
// translation left unconsumed (the CLI checks for the trailing newline).
func (t *Translator) Look() rune {
	return t.look
}

// Program translates a whole program: a statement block terminated by
// 'e', then the END line.
func (t *Translator) Program() error {
	if err := t.block("e", noBreak); err != nil {
		return err
	}
	if t.look != 'e' {
		return Expected("End")
	}
	t.emitLn("END")
	return nil
}

// Assignment translates a single top-level assignment statement.
func (t *Translator) Assignment() error {
	name, err := t.getName()
	if err != nil {
		return err
	}
	return t.assign(name)
}

// Expression translates a single arithmetic expression, leaving its
// result in the accumulator of the emitted code.
func (t *Translator) Expression() error {
	return t.expression()
}

// Program is the one-shot form of (*Translator).Program. The returned
// text holds every line emitted before the error, if any.
func Program(src string) (string, error) {
	return translateString(src, (*Translator).Program)
}

// Assignment is the one-shot form of (*Translator).Assignment.
func Assignment(src string) (string, error) {
	return translateString(src, (*Translator).Assignment)
}

// Expression is the one-shot form of (*Translator).Expression.
func Expression(src string) (string, error) {
	return translateString(src, (*Translator).Expression)
}

func translateString(src string, drive func(*Translator) error) (string, error) {
	var out strings.Builder
	t, err := New(strings.NewReader(src), &out)
	if err != nil {
		return out.String(), err
	}
	err = drive(t)
	return out.String(), err
}
