package translator

import "errors"

// ErrNoLoop is returned when a break statement appears outside any loop.
var ErrNoLoop = errors.New("No loop to break from")

// ErrInputExhausted is returned when a production needs another input
// character and the reader has already run dry.
var ErrInputExhausted = errors.New("premature end of input")

// expectedErr reports that the input did not supply what a recognizer
// required: a specific character, a name, an integer, or (in the CLI
// driver) the trailing newline.
type expectedErr struct {
	what string
}

func (e *expectedErr) Error() string {
	return e.what + " Expected"
}

// Expected builds the uniform "<what> Expected" failure used by every
// recognizer. It is exported so drivers can report expectations of their
// own (e.g. the trailing newline) in the same taxonomy.
func Expected(what string) error {
	return &expectedErr{what: what}
}
