package reader

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
	"github.com/chaploud/clj-runtime/pkg/regex"
)

// ErrEOF is returned by Read when the input is exhausted with no further
// form to read.
var ErrEOF = errors.New("reader: end of input")

// Reader is a single-pass recursive-descent form reader.
type Reader struct {
	input        []rune
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

// New creates a Reader over src, primed to read the first rune.
func New(src string) *Reader {
	r := &Reader{input: []rune(src), line: 1}
	r.readChar()

	return r
}

func (r *Reader) readChar() {
	if r.readPosition >= len(r.input) {
		r.ch = 0
	} else {
		r.ch = r.input[r.readPosition]
	}
	r.position = r.readPosition
	r.readPosition++
	if r.ch == '\n' {
		r.line++
		r.column = 0
	} else {
		r.column++
	}
}

func (r *Reader) peekChar() rune {
	if r.readPosition >= len(r.input) {
		return 0
	}

	return r.input[r.readPosition]
}

func (r *Reader) skipIgnorable() {
	for {
		for unicode.IsSpace(r.ch) || r.ch == ',' {
			r.readChar()
		}
		if r.ch == ';' {
			for r.ch != '\n' && r.ch != 0 {
				r.readChar()
			}

			continue
		}

		break
	}
}

// ReadAll reads every top-level form in the input.
func (r *Reader) ReadAll() ([]value.Value, error) {
	var forms []value.Value
	for {
		v, err := r.Read()
		if errors.Is(err, ErrEOF) {
			return forms, nil
		}
		if err != nil {
			return nil, err
		}
		forms = append(forms, v)
	}
}

// Read reads and returns the next top-level form, or ErrEOF when input is
// exhausted.
func (r *Reader) Read() (value.Value, error) {
	r.skipIgnorable()
	if r.ch == 0 {
		return nil, ErrEOF
	}

	return r.readForm()
}

func (r *Reader) syntaxErr(format string, args ...any) error {
	return corerr.Wrap(corerr.Eval, "read", nil, format, args...)
}

func (r *Reader) readForm() (value.Value, error) {
	r.skipIgnorable()

	switch {
	case r.ch == 0:
		return nil, r.syntaxErr("unexpected end of input at line %d", r.line)
	case r.ch == '(':
		return r.readList()
	case r.ch == '[':
		return r.readVector()
	case r.ch == '{':
		return r.readMap()
	case r.ch == '#' && r.peekChar() == '{':
		r.readChar()

		return r.readSet()
	case r.ch == '#' && r.peekChar() == '_':
		r.readChar()
		r.readChar()
		if _, err := r.readForm(); err != nil {
			return nil, err
		}

		return r.readFormSkippingDiscard()
	case r.ch == '#' && r.peekChar() == '"':
		r.readChar()

		return r.readRegex()
	case r.ch == ')' || r.ch == ']' || r.ch == '}':
		return nil, r.syntaxErr("unexpected %q at line %d", r.ch, r.line)
	case r.ch == '\'':
		r.readChar()

		return r.readWrapped("quote")
	case r.ch == '`':
		r.readChar()

		return r.readWrapped("quasiquote")
	case r.ch == '~' && r.peekChar() == '@':
		r.readChar()
		r.readChar()

		return r.readWrapped("unquote-splicing")
	case r.ch == '~':
		r.readChar()

		return r.readWrapped("unquote")
	case r.ch == '"':
		return r.readString()
	case r.ch == '\\':
		return r.readChar_()
	case r.ch == ':':
		return r.readKeyword()
	case isDigitRune(r.ch) || (r.ch == '-' && isDigitRune(r.peekChar())) || (r.ch == '+' && isDigitRune(r.peekChar())):
		return r.readNumber()
	default:
		return r.readSymbolOrLiteral()
	}
}

// readFormSkippingDiscard re-enters the form loop after a #_ discard, since
// the caller already consumed one (discarded) form.
func (r *Reader) readFormSkippingDiscard() (value.Value, error) {
	return r.readForm()
}

func (r *Reader) readWrapped(name string) (value.Value, error) {
	inner, err := r.readForm()
	if err != nil {
		return nil, err
	}

	return value.NewList(value.NewSymbol("", name), inner), nil
}

func (r *Reader) readList() (value.Value, error) {
	elems, err := r.readDelimited('(', ')')
	if err != nil {
		return nil, err
	}

	return value.NewList(elems...), nil
}

func (r *Reader) readVector() (value.Value, error) {
	elems, err := r.readDelimited('[', ']')
	if err != nil {
		return nil, err
	}

	return value.NewVector(elems...), nil
}

func (r *Reader) readMap() (value.Value, error) {
	elems, err := r.readDelimited('{', '}')
	if err != nil {
		return nil, err
	}
	if len(elems)%2 != 0 {
		return nil, r.syntaxErr("map literal at line %d has an odd number of forms", r.line)
	}

	return value.NewMap(elems...), nil
}

func (r *Reader) readSet() (value.Value, error) {
	elems, err := r.readDelimited('{', '}')
	if err != nil {
		return nil, err
	}

	return value.NewSet(elems...), nil
}

func (r *Reader) readDelimited(open, close rune) ([]value.Value, error) {
	if r.ch != open {
		return nil, r.syntaxErr("expected %q at line %d", open, r.line)
	}
	r.readChar()

	var elems []value.Value
	for {
		r.skipIgnorable()
		if r.ch == close {
			r.readChar()

			return elems, nil
		}
		if r.ch == 0 {
			return nil, r.syntaxErr("unterminated %q starting form, hit end of input", open)
		}
		v, err := r.readForm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
}

func (r *Reader) readString() (value.Value, error) {
	r.readChar() // opening quote
	var sb strings.Builder
	for {
		if r.ch == 0 {
			return nil, r.syntaxErr("unterminated string literal starting at line %d", r.line)
		}
		if r.ch == '"' {
			r.readChar()

			return value.Str(sb.String()), nil
		}
		if r.ch == '\\' {
			r.readChar()
			switch r.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case '0':
				sb.WriteByte(0)
			default:
				sb.WriteRune(r.ch)
			}
			r.readChar()

			continue
		}
		sb.WriteRune(r.ch)
		r.readChar()
	}
}

func (r *Reader) readRegex() (value.Value, error) {
	r.readChar() // opening quote
	var sb strings.Builder
	for r.ch != '"' {
		if r.ch == 0 {
			return nil, r.syntaxErr("unterminated regex literal starting at line %d", r.line)
		}
		if r.ch == '\\' && r.peekChar() != 0 {
			sb.WriteRune(r.ch) // keep the backslash: escapes belong to the regex
			r.readChar()
		}
		sb.WriteRune(r.ch)
		r.readChar()
	}
	r.readChar() // closing quote
	pattern, err := regex.Compile(sb.String())
	if err != nil {
		return nil, err
	}

	return pattern, nil
}

func (r *Reader) readChar_() (value.Value, error) {
	r.readChar() // backslash
	if r.ch == 0 {
		return nil, r.syntaxErr("unterminated character literal at line %d", r.line)
	}
	start := r.position
	r.readChar()
	for isIdentRune(r.ch) {
		r.readChar()
	}
	lit := string(r.input[start:r.position])
	if len([]rune(lit)) == 1 {
		return value.Char([]rune(lit)[0]), nil
	}
	named := map[string]rune{
		"newline":   '\n',
		"space":     ' ',
		"tab":       '\t',
		"backspace": '\b',
		"formfeed":  '\f',
		"return":    '\r',
	}
	if c, ok := named[lit]; ok {
		return value.Char(c), nil
	}

	return nil, r.syntaxErr("unknown character literal \\%s at line %d", lit, r.line)
}

func (r *Reader) readKeyword() (value.Value, error) {
	r.readChar() // leading ':'
	start := r.position
	for isIdentRune(r.ch) || r.ch == '/' {
		r.readChar()
	}
	lit := string(r.input[start:r.position])
	if lit == "" {
		return nil, r.syntaxErr("empty keyword at line %d", r.line)
	}
	if ns, name, ok := strings.Cut(lit, "/"); ok && ns != "" {
		return value.NewKeyword(ns, name), nil
	}

	return value.NewKeyword("", lit), nil
}

func (r *Reader) readNumber() (value.Value, error) {
	start := r.position
	if r.ch == '-' || r.ch == '+' {
		r.readChar()
	}
	isFloat := false
	for isDigitRune(r.ch) {
		r.readChar()
	}
	if r.ch == '.' && isDigitRune(r.peekChar()) {
		isFloat = true
		r.readChar()
		for isDigitRune(r.ch) {
			r.readChar()
		}
	}
	if r.ch == 'e' || r.ch == 'E' {
		isFloat = true
		r.readChar()
		if r.ch == '+' || r.ch == '-' {
			r.readChar()
		}
		for isDigitRune(r.ch) {
			r.readChar()
		}
	}
	lit := string(r.input[start:r.position])
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, r.syntaxErr("invalid float literal %q at line %d", lit, r.line)
		}

		return value.Float(f), nil
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, r.syntaxErr("invalid integer literal %q at line %d", lit, r.line)
	}

	return value.Int(n), nil
}

func (r *Reader) readSymbolOrLiteral() (value.Value, error) {
	start := r.position
	for isIdentRune(r.ch) || r.ch == '/' {
		r.readChar()
	}
	lit := string(r.input[start:r.position])
	if lit == "" {
		return nil, r.syntaxErr("unexpected character %q at line %d", r.ch, r.line)
	}
	switch lit {
	case "nil":
		return value.Nil{}, nil
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	}
	if ns, name, ok := strings.Cut(lit, "/"); ok && ns != "" && name != "" {
		return value.NewSymbol(ns, name), nil
	}

	return value.NewSymbol("", lit), nil
}

func isDigitRune(ch rune) bool { return ch >= '0' && ch <= '9' }

func isIdentRune(ch rune) bool {
	if ch == 0 || unicode.IsSpace(ch) {
		return false
	}
	switch ch {
	case '(', ')', '[', ']', '{', '}', '"', ';', '\'', '`', '~', ',', '\\':
		return false
	}

	return true
}
