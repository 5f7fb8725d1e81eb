package translator

import "fmt"

// emit writes an instruction fragment: one leading tab, no line break.
func (t *Translator) emit(format string, args ...any) {
	fmt.Fprintf(t.out, "\t"+format, args...)
}

// emitLn writes one complete instruction line.
func (t *Translator) emitLn(format string, args ...any) {
	t.emit(format, args...)
	fmt.Fprintln(t.out)
}

// postLabel writes a label definition line, unindented. Each label is
// defined exactly once; branches may reference it before or after this
// line, and resolving those references is the output consumer's job.
func (t *Translator) postLabel(label string) {
	fmt.Fprintf(t.out, "%s:\n", label)
}

// newLabel returns a fresh branch-target name. The counter only ever
// grows, so names never repeat within a session.
func (t *Translator) newLabel() string {
	label := fmt.Sprintf("L%d", t.lcount)
	t.lcount++
	return label
}
