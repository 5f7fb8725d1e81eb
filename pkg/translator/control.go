package translator

import "strings"

// noBreak marks a block with no enclosing loop; break is fatal there.
// Only the innermost loop is ever addressable, so a single value is
// threaded through nested blocks rather than a stack.
const noBreak = ""

// block translates statements until the lookahead is one of term's
// characters. Each caller supplies the terminators that close its own
// block: 'e' for loop bodies and the program, 'e' or 'l' for the
// then-branch of an if, 'u' for a repeat body. breakLabel is the exit
// label of the innermost enclosing loop, noBreak when there is none.
func (t *Translator) block(term string, breakLabel string) error {
	for t.look != eof && !strings.ContainsRune(term, t.look) {
		var err error
		switch t.look {
		case 'i':
			err = t.doIf(breakLabel)
		case 'w':
			err = t.doWhile()
		case 'p':
			err = t.doLoop()
		case 'r':
			err = t.doRepeat()
		case 'f':
			err = t.doFor()
		case 'd':
			err = t.doDo()
		case 'b':
			err = t.doBreak(breakLabel)
		default:
			err = t.statement()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// statement handles anything that opens with a plain identifier: an
// assignment when '=' follows the name, otherwise the bare name becomes
// its own output line.
func (t *Translator) statement() error {
	name, err := t.getName()
	if err != nil {
		return err
	}
	if t.look == '=' {
		return t.assign(name)
	}
	t.emitLn("%s", name)
	return nil
}

// assign translates the '=' and expression of an assignment whose name
// has already been read, then stores the accumulator at the name's
// memory location.
func (t *Translator) assign(name string) error {
	if err := t.matchChar('='); err != nil {
		return err
	}
	if err := t.expression(); err != nil {
		return err
	}
	t.emitLn("LEA %s(PC),A0", name)
	t.emitLn("MOVE D0,(A0)")
	return nil
}

// condition is a placeholder: it emits a fixed marker line instead of a
// real relational expression, so the branch that follows it tests
// nothing meaningful yet. TODO: replace with a relational grammar
// (= <> < <= > >=) producing a genuine conditional branch.
func (t *Translator) condition() error {
	t.emitLn("<condition>")
	return nil
}

// doIf translates `i condition block [l block] e`. The false branch
// goes to exit; with an else present the then-branch jumps over it to a
// second label, which then becomes the construct's end.
func (t *Translator) doIf(breakLabel string) error {
	if err := t.matchChar('i'); err != nil {
		return err
	}
	exit := t.newLabel()
	end := exit
	if err := t.condition(); err != nil {
		return err
	}
	t.emitLn("BEQ %s", exit)
	if err := t.block("el", breakLabel); err != nil {
		return err
	}
	if t.look == 'l' {
		if err := t.matchChar('l'); err != nil {
			return err
		}
		end = t.newLabel()
		t.emitLn("BRA %s", end)
		t.postLabel(exit)
		if err := t.block("e", breakLabel); err != nil {
			return err
		}
	}
	if err := t.matchChar('e'); err != nil {
		return err
	}
	t.postLabel(end)
	return nil
}

// doWhile translates `w condition block e`, test at the top.
func (t *Translator) doWhile() error {
	if err := t.matchChar('w'); err != nil {
		return err
	}
	top := t.newLabel()
	exit := t.newLabel()
	t.postLabel(top)
	if err := t.condition(); err != nil {
		return err
	}
	t.emitLn("BEQ %s", exit)
	if err := t.block("e", exit); err != nil {
		return err
	}
	if err := t.matchChar('e'); err != nil {
		return err
	}
	t.emitLn("BRA %s", top)
	t.postLabel(exit)
	return nil
}

// doLoop translates `p block e`: an infinite loop, no condition ever
// tested, left only through break.
func (t *Translator) doLoop() error {
	if err := t.matchChar('p'); err != nil {
		return err
	}
	top := t.newLabel()
	exit := t.newLabel()
	t.postLabel(top)
	if err := t.block("e", exit); err != nil {
		return err
	}
	if err := t.matchChar('e'); err != nil {
		return err
	}
	t.emitLn("BRA %s", top)
	t.postLabel(exit)
	return nil
}

// doRepeat translates `r block u condition`, test at the bottom.
func (t *Translator) doRepeat() error {
	if err := t.matchChar('r'); err != nil {
		return err
	}
	top := t.newLabel()
	exit := t.newLabel()
	t.postLabel(top)
	if err := t.block("u", exit); err != nil {
		return err
	}
	if err := t.matchChar('u'); err != nil {
		return err
	}
	if err := t.condition(); err != nil {
		return err
	}
	t.emitLn("BEQ %s", top)
	t.postLabel(exit)
	return nil
}

// doFor translates `f name = initial limit block e`, fixed step of 1.
// The initial value is predecremented so the first iteration's
// increment lands on it, and the limit sits on the stack for the
// duration of the loop.
func (t *Translator) doFor() error {
	if err := t.matchChar('f'); err != nil {
		return err
	}
	top := t.newLabel()
	exit := t.newLabel()
	name, err := t.getName()
	if err != nil {
		return err
	}
	if err := t.matchChar('='); err != nil {
		return err
	}
	if err := t.expression(); err != nil {
		return err
	}
	t.emitLn("SUBQ #1,D0")
	t.emitLn("LEA %s(PC),A0", name)
	t.emitLn("MOVE D0,(A0)")
	if err := t.expression(); err != nil {
		return err
	}
	t.emitLn("MOVE D0,-(SP)")
	t.postLabel(top)
	t.emitLn("LEA %s(PC),A0", name)
	t.emitLn("MOVE (A0),D0")
	t.emitLn("ADDQ #1,D0")
	t.emitLn("MOVE D0,(A0)")
	t.emitLn("CMP (SP),D0")
	t.emitLn("BGT %s", exit)
	if err := t.block("e", exit); err != nil {
		return err
	}
	if err := t.matchChar('e'); err != nil {
		return err
	}
	t.emitLn("BRA %s", top)
	t.postLabel(exit)
	t.emitLn("ADDQ #2,SP")
	return nil
}

// doDo translates `d expr block e`: a count-controlled loop running the
// trip-count expression's value times. The count is decremented once up
// front for the zero-based DBRA countdown and saved across the body on
// the stack.
func (t *Translator) doDo() error {
	if err := t.matchChar('d'); err != nil {
		return err
	}
	top := t.newLabel()
	exit := t.newLabel()
	if err := t.expression(); err != nil {
		return err
	}
	t.emitLn("SUBQ #1,D0")
	t.postLabel(top)
	t.emitLn("MOVE D0,-(SP)")
	if err := t.block("e", exit); err != nil {
		return err
	}
	if err := t.matchChar('e'); err != nil {
		return err
	}
	t.emitLn("MOVE (SP)+,D0")
	t.emitLn("DBRA D0,%s", top)
	t.emitLn("SUBQ #2,SP")
	t.postLabel(exit)
	t.emitLn("ADDQ #2,SP")
	return nil
}

// doBreak jumps to the innermost loop's exit label.
func (t *Translator) doBreak(breakLabel string) error {
	if err := t.matchChar('b'); err != nil {
		return err
	}
	if breakLabel == noBreak {
		return ErrNoLoop
	}
	t.emitLn("BRA %s", breakLabel)
	return nil
}
