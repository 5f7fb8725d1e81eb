package translator

import "unicode"

// Arithmetic lives on an accumulator (D0) plus an operand stack: the
// left side of every binary operator is pushed, the right side is
// translated into the accumulator, and the combine step pops. The
// non-commutative combines fix up operand order — subtraction negates
// after combining, division pops the pushed dividend into D1 first.
//
//	expression := [ addop ] term { addop term }
//	term       := factor { mulop factor }
//	factor     := '(' expression ')' | identifier [ '(' ')' ] | number
func (t *Translator) expression() error {
	if t.isAddop() {
		// Unary leading sign: fake a zero first term, so -x becomes 0-x.
		t.emitLn("CLR D0")
	} else if err := t.term(); err != nil {
		return err
	}
	for t.isAddop() {
		t.emitLn("MOVE D0,-(SP)")
		var err error
		switch t.look {
		case '+':
			err = t.add()
		case '-':
			err = t.subtract()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *Translator) term() error {
	if err := t.factor(); err != nil {
		return err
	}
	for t.isMulop() {
		t.emitLn("MOVE D0,-(SP)")
		var err error
		switch t.look {
		case '*':
			err = t.multiply()
		case '/':
			err = t.divide()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *Translator) factor() error {
	switch {
	case t.look == '(':
		if err := t.matchChar('('); err != nil {
			return err
		}
		if err := t.expression(); err != nil {
			return err
		}
		return t.matchChar(')')
	case unicode.IsLetter(t.look):
		return t.ident()
	default:
		num, err := t.getNum()
		if err != nil {
			return err
		}
		t.emitLn("MOVE #%s,D0", num)
		return nil
	}
}

// ident translates an identifier factor: an empty pair of parens after
// the name makes it a subroutine call, otherwise it is a load from the
// name's memory location.
func (t *Translator) ident() error {
	name, err := t.getName()
	if err != nil {
		return err
	}
	if t.look == '(' {
		if err := t.matchChar('('); err != nil {
			return err
		}
		if err := t.matchChar(')'); err != nil {
			return err
		}
		t.emitLn("BSR %s", name)
		return nil
	}
	t.emitLn("MOVE %s(PC),D0", name)
	return nil
}

func (t *Translator) add() error {
	if err := t.matchChar('+'); err != nil {
		return err
	}
	if err := t.term(); err != nil {
		return err
	}
	t.emitLn("ADD (SP)+,D0")
	return nil
}

func (t *Translator) subtract() error {
	if err := t.matchChar('-'); err != nil {
		return err
	}
	if err := t.term(); err != nil {
		return err
	}
	t.emitLn("SUB (SP)+,D0")
	t.emitLn("NEG D0")
	return nil
}

func (t *Translator) multiply() error {
	if err := t.matchChar('*'); err != nil {
		return err
	}
	if err := t.factor(); err != nil {
		return err
	}
	t.emitLn("MULS (SP)+,D0")
	return nil
}

func (t *Translator) divide() error {
	if err := t.matchChar('/'); err != nil {
		return err
	}
	if err := t.factor(); err != nil {
		return err
	}
	t.emitLn("MOVE (SP)+,D1")
	t.emitLn("DIVS D1,D0")
	return nil
}
