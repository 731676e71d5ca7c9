package token

import "github.com/bradenaw/juniper/iterator"

// Lexer is a restartable-from-the-beginning-only byte scanner over a
// string. It satisfies iterator.Iterator[Token] so callers can compose
// it with juniper's iterator helpers (Map, Filter, Collect, ...) instead
// of hand-rolling a loop.
type Lexer struct {
	input string
	pos   int
}

var _ iterator.Iterator[Token] = (*Lexer)(nil)

// NewLexer creates a Lexer over input. The lexer borrows input for its
// entire lifetime; tokens it produces slice directly into it.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next scans and returns the next token. It returns (Token{}, false)
// once the input is exhausted; the lexer never fails, since every byte
// classifies into one of the Kind values.
func (l *Lexer) Next() (Token, bool) {
	if l.pos >= len(l.input) {
		return Token{}, false
	}

	start := l.pos
	b := l.input[l.pos]

	switch {
	case isWSPByte(b):
		l.pos++
		for l.pos < len(l.input) && isWSPByte(l.input[l.pos]) {
			l.pos++
		}

		return l.token(WSP, start), true

	case IsAtext(b):
		l.pos++
		for l.pos < len(l.input) && IsAtext(l.input[l.pos]) {
			l.pos++
		}

		return l.token(Other, start), true

	case b == '\r':
		l.pos++
		return l.token(CR, start), true

	case b == '\n':
		l.pos++
		return l.token(LF, start), true

	case isNoWSCtl(b):
		l.pos++
		return l.token(NoWSCtl, start), true
	}

	l.pos++

	switch b {
	case '(':
		return l.token(LParen, start), true
	case ')':
		return l.token(RParen, start), true
	case '<':
		return l.token(LAngle, start), true
	case '>':
		return l.token(RAngle, start), true
	case '[':
		return l.token(LBracket, start), true
	case ']':
		return l.token(RBracket, start), true
	case ':':
		return l.token(Colon, start), true
	case ';':
		return l.token(Semicolon, start), true
	case '@':
		return l.token(At, start), true
	case '\\':
		return l.token(Backslash, start), true
	case ',':
		return l.token(Comma, start), true
	case '.':
		return l.token(Dot, start), true
	case '"':
		return l.token(DQuote, start), true
	}

	// The only byte that reaches this point is NUL (0x00): it is neither
	// NO-WS-CTL, WSP, CR/LF, a special, nor atext. It is emitted as a
	// single-byte Other token, so the lexer stays total.
	return l.token(Other, start), true
}

func (l *Lexer) token(kind Kind, start int) Token {
	return Token{
		Kind:  kind,
		Text:  l.input[start:l.pos],
		Start: start,
		End:   l.pos,
	}
}

// Offset returns the current scan position, in bytes.
func (l *Lexer) Offset() int {
	return l.pos
}

// Seek repositions the lexer to resume scanning at the given byte offset.
// The lexer is otherwise restartable from the beginning only (spec
// §4.1); Seek exists so a parser built on top of it can save/restore a
// scan position for backtracking productions. The offset is not
// validated; callers pass positions from Offset or a token boundary
// inside the current token (the quoted-pair split of a WSP run).
func (l *Lexer) Seek(pos int) {
	l.pos = pos
}

// Len returns the length of the input being scanned.
func (l *Lexer) Len() int {
	return len(l.input)
}

// Tokens lexes input in full and returns every token. Mostly useful for
// tests and for spec-property checks (e.g. lexer totality) that want to
// reassemble the byte stream from the token sequence.
func Tokens(input string) []Token {
	l := NewLexer(input)

	var out []Token

	for {
		tok, ok := l.Next()
		if !ok {
			break
		}

		out = append(out, tok)
	}

	return out
}
