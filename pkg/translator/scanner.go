package translator

import (
	"io"
	"strings"
	"unicode"
)

const (
	tab   = '\t'
	space = ' '

	// eof is the lookahead sentinel once the reader is exhausted. It is
	// never a member of any character class, so maximal-munch loops and
	// skipWhite stop on it naturally.
	eof = rune(0)
)

// advance replaces the lookahead with the next input rune. Reaching the
// end of the reader parks the eof sentinel in the lookahead; advancing
// past the sentinel means some production demanded a character that
// never arrived.
func (t *Translator) advance() error {
	if t.atEOF {
		return ErrInputExhausted
	}
	r, _, err := t.in.ReadRune()
	if err == io.EOF {
		t.atEOF = true
		t.look = eof
		return nil
	}
	if err != nil {
		return err
	}
	t.look = r
	return nil
}

func (t *Translator) isWhite() bool {
	return t.look == tab || t.look == space
}

func (t *Translator) isAddop() bool {
	return t.look == '+' || t.look == '-'
}

func (t *Translator) isMulop() bool {
	return t.look == '*' || t.look == '/'
}

// skipWhite advances over horizontal whitespace. A no-op when the
// lookahead is already on something else.
func (t *Translator) skipWhite() error {
	for t.isWhite() {
		if err := t.advance(); err != nil {
			return err
		}
	}
	return nil
}

// matchChar consumes the lookahead if it equals x, then skips trailing
// whitespace. Anything else is a fatal mismatch.
func (t *Translator) matchChar(x rune) error {
	if t.look != x {
		return Expected(string(x))
	}
	if err := t.advance(); err != nil {
		return err
	}
	return t.skipWhite()
}

// getName consumes a maximal run of letters and digits starting with a
// letter and returns it upper-cased, with trailing whitespace skipped.
func (t *Translator) getName() (string, error) {
	if !unicode.IsLetter(t.look) {
		return "", Expected("Name")
	}
	var name strings.Builder
	for unicode.IsLetter(t.look) || unicode.IsDigit(t.look) {
		name.WriteRune(unicode.ToUpper(t.look))
		if err := t.advance(); err != nil {
			return "", err
		}
	}
	if err := t.skipWhite(); err != nil {
		return "", err
	}
	return name.String(), nil
}

// getNum consumes a maximal run of decimal digits and returns it as
// text, with trailing whitespace skipped. The literal is never parsed
// into a number; it goes into the output verbatim.
func (t *Translator) getNum() (string, error) {
	if !unicode.IsDigit(t.look) {
		return "", Expected("Integer")
	}
	var value strings.Builder
	for unicode.IsDigit(t.look) {
		value.WriteRune(t.look)
		if err := t.advance(); err != nil {
			return "", err
		}
	}
	if err := t.skipWhite(); err != nil {
		return "", err
	}
	return value.String(), nil
}
