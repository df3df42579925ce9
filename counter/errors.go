package counter

import "errors"

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownLocale = errors.New("unknown locale")
)

// RaisedError is the error a counter terminates with when the user raises one.
// Its text is the user's message, verbatim.
type RaisedError struct {
	Message string
}

func (e *RaisedError) Error() string {
	return e.Message
}
