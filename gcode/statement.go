package gcode

import (
	"math"
	"strconv"
)

// statement is one letter-plus-number word of a command string. frac
// carries the fractional part of value, which distinguishes codes like
// G59 from G59.1.
type statement struct {
	letter byte
	value  float64
	frac   float64
}

// statementReader walks a normalized command string one statement at a
// time, leaving the cursor on the first character after each consumed
// numeral.
type statementReader struct {
	buf string
	pos int
}

// next returns the statement at the cursor. ok is false with StatusOK
// when the string is exhausted, and false with an error status when the
// text at the cursor is not a valid statement.
func (r *statementReader) next() (st statement, ok bool, stat Status) {
	if r.pos >= len(r.buf) {
		return st, false, StatusOK
	}
	c := r.buf[r.pos]
	if c < 'A' || c > 'Z' {
		return st, false, StatusExpectedCommandLetter
	}
	st.letter = c
	r.pos++

	n := scanFloat(r.buf[r.pos:])
	if n == 0 {
		return st, false, StatusBadNumberFormat
	}
	v, err := strconv.ParseFloat(r.buf[r.pos:r.pos+n], 64)
	if err != nil {
		return st, false, StatusBadNumberFormat
	}
	r.pos += n

	st.value = v
	st.frac = v - math.Trunc(v)
	return st, true, StatusOK
}

// scanFloat returns the length of the longest valid floating-point
// literal prefix of s, mirroring strtod: an optional sign, digits with
// an optional decimal point, and an optional exponent that is ignored
// if incomplete.
func scanFloat(s string) int {
	i := 0
	digits := func() (n int) {
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			n++
		}
		return n
	}

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	n := digits()
	if i < len(s) && s[i] == '.' {
		i++
		n += digits()
	}
	if n == 0 {
		return 0
	}
	if mark := i; i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if digits() == 0 {
			i = mark
		}
	}
	return i
}
