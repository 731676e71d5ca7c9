package grammar

import (
	"github.com/juga0/useridaddr/token"
	"github.com/sirupsen/logrus"
)

// cursor drives a token.Lexer one token of lookahead at a time. Unlike a
// scanner reading from an io.Reader, a string-backed lexer can never fail
// to advance, so cursor's Matches/Consume family only ever fails on a
// syntactic mismatch (*ParseError), never on I/O.
type cursor struct {
	input string
	lex   *token.Lexer
	prev  token.Token
	cur   token.Token

	opts options

	commentDepth int
}

func newCursor(input string, opts options) *cursor {
	c := &cursor{input: input, lex: token.NewLexer(input), opts: opts}
	c.advance()

	return c
}

// cursorState is an opaque snapshot for backtracking productions
// (parseLocalPart tries dot-atom before quoted-string, parseWord tries
// quoted-string before atom, parseAddrSpecOrOther falls back to raw
// recovery, parseDomain peeks past leading CFWS).
type cursorState struct {
	pos  int
	prev token.Token
	cur  token.Token
}

func (c *cursor) save() cursorState {
	return cursorState{pos: c.lex.Offset(), prev: c.prev, cur: c.cur}
}

func (c *cursor) restore(s cursorState) {
	c.lex.Seek(s.pos)
	c.prev = s.prev
	c.cur = s.cur
}

func (c *cursor) advance() {
	c.prev = c.cur

	if tok, ok := c.lex.Next(); ok {
		c.cur = tok
	} else {
		eof := c.lex.Len()
		c.cur = token.Token{Kind: token.EOF, Start: eof, End: eof}
	}
}

func (c *cursor) check(k token.Kind) bool {
	return c.cur.Kind == k
}

func (c *cursor) checkWith(pred func(token.Kind) bool) bool {
	return pred(c.cur.Kind)
}

// matches advances and returns true if the current token has kind k.
func (c *cursor) matches(k token.Kind) bool {
	if !c.check(k) {
		return false
	}

	c.advance()

	return true
}

func (c *cursor) matchesWith(pred func(token.Kind) bool) bool {
	if !c.checkWith(pred) {
		return false
	}

	c.advance()

	return true
}

// consume advances past the current token if it has kind k, else returns
// a *ParseError describing the mismatch.
func (c *cursor) consume(k token.Kind, msg string) error {
	return c.consumeWith(func(got token.Kind) bool { return got == k }, msg, k)
}

func (c *cursor) consumeWith(pred func(token.Kind) bool, msg string, expected ...token.Kind) error {
	if pred(c.cur.Kind) {
		c.trace("consume", msg)
		c.advance()

		return nil
	}

	return c.errorf(msg, expected...)
}

func (c *cursor) errorf(msg string, expected ...token.Kind) error {
	err := &ParseError{
		Offset:   c.cur.Start,
		Expected: expected,
		Got:      c.cur.Kind,
		Message:  msg,
	}

	if c.opts.logger != nil {
		c.opts.logger.WithFields(logrus.Fields{
			"offset": err.Offset,
			"got":    err.Got,
		}).Debug(msg)
	}

	return err
}

func (c *cursor) trace(production, msg string) {
	if c.opts.logger == nil || !c.opts.traceProductions {
		return
	}

	c.opts.logger.WithFields(logrus.Fields{
		"offset":     c.cur.Start,
		"production": production,
	}).Trace(msg)
}

// sliceRaw returns the raw input bytes between two byte offsets, used by
// the error-recovery production to lift un-tokenized text back out.
func (c *cursor) sliceRaw(start, end int) []byte {
	if start < 0 {
		start = 0
	}

	if end > len(c.input) {
		end = len(c.input)
	}

	if start > end {
		return nil
	}

	return []byte(c.input[start:end])
}
