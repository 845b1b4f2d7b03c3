package zoneparser

import (
	"bufio"
	"io"
	"strings"
)

// logicalLine is one record or directive after continuation-joining and
// comment-stripping: an ordered token sequence plus the context the
// field resolver needs.
type logicalLine struct {
	tokens     []string
	blankOwner bool // the line's first physical line began with whitespace
	num        int  // physical line number the record began on
}

// lexer splits zone text into logical lines in a single forward pass.
// A semicolon outside quotes starts a comment running to end of the
// physical line. A double-quoted string is one token and may contain
// semicolons, parentheses and newlines. An unescaped open parenthesis
// suspends end-of-record detection until its matching close; newlines
// inside the span separate tokens instead of ending the record.
type lexer struct {
	r    *bufio.Reader
	file string
	line int
	done bool
}

func newLexer(r io.Reader, file string) *lexer {
	return &lexer{r: bufio.NewReader(r), file: file, line: 1}
}

// next returns the next logical line, or nil once the input is
// exhausted. Unbalanced parentheses or an unterminated quoted string at
// end of input are structural errors, not silently recovered.
func (lx *lexer) next() (*logicalLine, error) {
	if lx.done {
		return nil, nil
	}

	var (
		tok     strings.Builder
		ll      = logicalLine{num: lx.line}
		quote   bool
		escape  bool
		comment bool
		depth   int
		started bool // first token of the record has begun
		lineWS  bool // current physical line began with whitespace
		lineAny bool // current physical line has any non-blank rune
	)

	flush := func() {
		if tok.Len() > 0 {
			ll.tokens = append(ll.tokens, tok.String())
			tok.Reset()
		}
	}
	begin := func() {
		// Absence of leading whitespace on the first token's line is
		// the explicit-owner signal.
		if !started {
			started = true
			ll.blankOwner = lineWS
			ll.num = lx.line
		}
	}

	for {
		c, _, err := lx.r.ReadRune()
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			lx.done = true
			if quote {
				return nil, parseErrorf(lx.file, ll.num, ErrLex, "unterminated quoted string at end of input")
			}
			if depth > 0 {
				return nil, parseErrorf(lx.file, ll.num, ErrLex, "unbalanced parentheses at end of input")
			}
			flush()
			if len(ll.tokens) == 0 {
				return nil, nil
			}
			return &ll, nil
		}

		switch c {
		case ' ', '\t':
			switch {
			case escape:
				tok.WriteRune(c)
				escape = false
			case quote:
				tok.WriteRune(c)
			case comment:
			default:
				if !lineAny {
					lineWS = true
				}
				flush()
			}
		case '\r':
			if quote {
				tok.WriteRune(c)
			}
		case '\n':
			lx.line++
			escape = false
			if quote {
				// Legal inside a quoted string.
				tok.WriteRune(c)
				break
			}
			comment = false
			lineWS = false
			lineAny = false
			flush()
			if depth == 0 && len(ll.tokens) > 0 {
				return &ll, nil
			}
			// Inside parentheses, or a blank/comment-only line: the
			// newline is just a separator.
		case ';':
			switch {
			case escape:
				begin()
				tok.WriteRune(c)
				escape = false
			case quote:
				tok.WriteRune(c)
			case comment:
			default:
				lineAny = true
				flush()
				comment = true
			}
		case '"':
			switch {
			case comment:
			case escape:
				tok.WriteRune(c)
				escape = false
			default:
				lineAny = true
				begin()
				tok.WriteRune(c)
				quote = !quote
			}
		case '(', ')':
			switch {
			case comment:
			case escape:
				begin()
				tok.WriteRune(c)
				escape = false
			case quote:
				tok.WriteRune(c)
			default:
				lineAny = true
				flush()
				if c == '(' {
					depth++
				} else {
					depth--
					if depth < 0 {
						return nil, parseErrorf(lx.file, lx.line, ErrLex, "closing parenthesis without matching open")
					}
				}
			}
		case '\\':
			if comment {
				break
			}
			lineAny = true
			begin()
			tok.WriteRune(c)
			if escape {
				escape = false
			} else {
				escape = true
			}
		default:
			if comment {
				break
			}
			lineAny = true
			begin()
			tok.WriteRune(c)
			escape = false
		}
	}
}
