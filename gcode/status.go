package gcode

// Status is the result code shared by every layer of the interpreter.
// The interpreter itself only produces the lexical and semantic codes; a
// canonical machine may return any of the machine codes (or its own),
// which the interpreter passes through untouched.
type Status uint8

const (
	StatusOK Status = iota

	// StatusQuit signals an explicit end of G-code mode. It is a control
	// sentinel, not a failure; callers must not report it as an error.
	StatusQuit

	// StatusNoop means a dispatcher had nothing to do. It is reserved for
	// the surrounding line loop and is never returned by the interpreter.
	StatusNoop

	StatusExpectedCommandLetter
	StatusBadNumberFormat
	StatusUnsupportedStatement

	// codes below are returned by canonical machines, never by the interpreter
	StatusInvalidDwell
	StatusInvalidFeedRate
	StatusInvalidArc
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusQuit:
		return "quit"
	case StatusNoop:
		return "noop"
	case StatusExpectedCommandLetter:
		return "expected command letter"
	case StatusBadNumberFormat:
		return "bad number format"
	case StatusUnsupportedStatement:
		return "unsupported statement"
	case StatusInvalidDwell:
		return "invalid dwell time"
	case StatusInvalidFeedRate:
		return "invalid feed rate"
	case StatusInvalidArc:
		return "invalid arc specification"
	}
	return "unknown status"
}

// OK reports whether s allows the current block to continue.
func (s Status) OK() bool { return s == StatusOK }
