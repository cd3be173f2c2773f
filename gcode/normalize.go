package gcode

import "strings"

// Punctuation RS274NGC_3 Appendix E declares illegal in a block. These
// characters are dropped rather than failing the whole line.
const invalidChars = "!$%,;:?@^_~`'\""

// normalize rewrites one raw line into a command-only uppercase string
// and splits out the inline comment message, if any.
//
// Letters and digits pass through uppercased. Whitespace and control
// characters are dropped, as is DEL and the invalid punctuation set.
// Everything else (+ - . / * < = > | # [ ] { }) is command syntax and
// passes through. An opening paren starts a comment and ends command
// capture; embedded comments are not supported. A comment whose first
// three letters are MSG (any case) yields an operator message, trimmed
// of the surrounding whitespace and closing paren. Other comment content
// is discarded.
//
// A leading block-delete slash discards the entire line.
func normalize(line string) (cmd, msg string, hasMsg bool) {
	if strings.HasPrefix(line, "/") {
		return "", "", false
	}

	var b strings.Builder
	b.Grow(len(line))
	comment := -1
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			b.WriteByte(c)
			continue
		}
		if c == '(' {
			comment = i + 1
			break
		}
		if c <= ' ' || c == 0x7F {
			continue
		}
		if strings.IndexByte(invalidChars, c) >= 0 {
			continue
		}
		b.WriteByte(c)
	}

	if comment >= 0 {
		// message check is case-insensitive, message text is not folded
		rest := line[comment:]
		if len(rest) >= 3 && strings.EqualFold(rest[:3], "MSG") {
			msg = rest[3:]
			if end := strings.IndexByte(msg, ')'); end >= 0 {
				msg = msg[:end]
			}
			return b.String(), strings.TrimSpace(msg), true
		}
	}

	return b.String(), "", false
}
