package grammar

// Section 3.2.2 (RFC 2822): folding white space and comments.

import (
	"strings"

	"github.com/juga0/useridaddr/component"
	"github.com/juga0/useridaddr/token"
)

func isWSPOrCR(k token.Kind) bool {
	return k == token.WSP || k == token.CR
}

func isCFWSStart(k token.Kind) bool {
	return isWSPOrCR(k) || k == token.LParen
}

// tryConsumeFWS consumes at most one FWS occurrence (raw whitespace and
// CRLF-folds, spec grammar "[*WSP CRLF] 1*WSP" plus the repeated
// obs-FWS fold) and reports whether it consumed anything. It performs no
// component construction; callers fold FWS presence into a single ' '
// (inside comments/quoted-strings) or a WS component (CFWS callers).
func (p *cursor) tryConsumeFWS() (bool, error) {
	if !p.checkWith(isWSPOrCR) {
		return false, nil
	}

	return true, p.consumeFWS()
}

func (p *cursor) consumeFWS() error {
	for p.matches(token.WSP) {
	}

	if !p.check(token.CR) {
		return nil
	}

	for p.check(token.CR) {
		if err := p.consumeNewline(); err != nil {
			return err
		}

		if err := p.consumeWith(func(k token.Kind) bool { return k == token.WSP }, "expected WSP after CRLF"); err != nil {
			return err
		}

		for p.matches(token.WSP) {
		}
	}

	return nil
}

func (p *cursor) consumeNewline() error {
	if err := p.consume(token.CR, "expected CR"); err != nil {
		return err
	}

	return p.consume(token.LF, "expected LF after CR")
}

// parseCFWSFolded parses one CFWS run (spec grammar
// "(1*([FWS] comment) [FWS]) / FWS") and returns its canonical component
// folding (§4.3.1): [WS] if it was pure whitespace, or
// WS, Comment, WS, Comment, ..., WS if it contained one or more
// comments. Call only when isCFWSStart(current) holds.
func (p *cursor) parseCFWSFolded() ([]component.Component, error) {
	if _, err := p.tryConsumeFWS(); err != nil {
		return nil, err
	}

	if !p.check(token.LParen) {
		return []component.Component{component.NewWS()}, nil
	}

	out := []component.Component{component.NewWS()}

	for {
		c, err := p.parseComment()
		if err != nil {
			return nil, err
		}

		out = append(out, c)

		if _, err := p.tryConsumeFWS(); err != nil {
			return nil, err
		}

		if !p.check(token.LParen) {
			break
		}

		out = append(out, component.NewWS())
	}

	out = append(out, component.NewWS())

	return out, nil
}

// tryParseCFWSFolded is parseCFWSFolded's optional form: nil, nil if no
// CFWS is present at all.
func (p *cursor) tryParseCFWSFolded() ([]component.Component, error) {
	if !p.checkWith(isCFWSStart) {
		return nil, nil
	}

	return p.parseCFWSFolded()
}

// tryParseCFWSCommentsOnly parses an optional CFWS run and keeps only its
// Comment components, dropping the WS separators generic folding would
// emit. This is the "left"/"right" attachment helper (§4.3.1): CFWS
// directly adjacent to the significant atom in local-part/domain
// assembly contributes its comments to the output but not a WS, since
// that whitespace is mandatory RFC padding around the parens, not
// meaningful separating space in the assembled address.
func (p *cursor) tryParseCFWSCommentsOnly() ([]component.Component, error) {
	folded, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	var out []component.Component

	for _, c := range folded {
		if c.Kind() == component.Comment {
			out = append(out, c)
		}
	}

	return out, nil
}

// parseAttachedComments implements the shape shared by
// dot_atom_left/right, quoted_string_left, and domain_literal_right
// (§4.3.1): parse optional leading CFWS (comments only), the significant
// body, then optional trailing CFWS (comments only), and return the
// gathered comments alongside the body's text. domain_literal_right
// calls it; parseDotAtomLeft and parseQuotedStringLeft spell out the
// same three steps inline. Whether the caller treats the body as "the
// last local-part component" or "the first domain component" is purely
// a matter of which side of '@' it assembles into (address.go); the
// parse shape here is identical either way.
func (p *cursor) parseAttachedComments(body func(*cursor) (component.Component, error)) ([]component.Component, string, error) {
	leading, err := p.tryParseCFWSCommentsOnly()
	if err != nil {
		return nil, "", err
	}

	text, err := body(p)
	if err != nil {
		return nil, "", err
	}

	trailing, err := p.tryParseCFWSCommentsOnly()
	if err != nil {
		return nil, "", err
	}

	return append(leading, trailing...), text.TextValue(), nil
}

func isCText(k token.Kind) bool {
	// ctext excludes "(", ")", "\" (spec §4.3.2); WSP/CR/LF/EOF are
	// excluded defensively even though the comment loop always tries FWS
	// first, so a stray unfolded whitespace token never gets treated as
	// content.
	switch k {
	case token.LParen, token.RParen, token.Backslash, token.EOF, token.WSP, token.CR, token.LF:
		return false
	default:
		return true
	}
}

// parseComment parses "(" *([FWS] ccontent) [FWS] ")" and returns the
// flattened comment text: inner FWS folds to one space, nested comments
// are rendered back in-line as "(...)" (spec §3, §9).
func (p *cursor) parseComment() (component.Component, error) {
	if p.opts.maxCommentDepth > 0 && p.commentDepth >= p.opts.maxCommentDepth {
		return component.Component{}, &ErrCommentTooDeep{Offset: p.cur.Start, Max: p.opts.maxCommentDepth}
	}

	p.commentDepth++
	defer func() { p.commentDepth-- }()

	if err := p.consume(token.LParen, "expected '(' for comment start"); err != nil {
		return component.Component{}, err
	}

	var text strings.Builder

	for {
		if folded, err := p.tryConsumeFWS(); err != nil {
			return component.Component{}, err
		} else if folded {
			text.WriteByte(' ')
		}

		switch {
		case p.checkWith(isCText):
			text.WriteString(p.cur.Text)
			p.advance()

			continue

		case p.check(token.Backslash):
			v, err := p.parseQuotedPairText()
			if err != nil {
				return component.Component{}, err
			}

			text.WriteString(v)

			continue

		case p.check(token.LParen):
			nested, err := p.parseComment()
			if err != nil {
				return component.Component{}, err
			}

			text.WriteByte('(')
			text.WriteString(nested.TextValue())
			text.WriteByte(')')

			continue
		}

		break
	}

	if err := p.consume(token.RParen, "expected ')' for comment end"); err != nil {
		return component.Component{}, err
	}

	return component.NewComment(text.String()), nil
}

// parseQuotedPairText parses "\" text and returns the escaped value.
// RFC's quoted-pair escapes exactly one character, but the lexer
// coalesces runs of atext or of WSP into a single multi-byte token
// (spec §2, §9), so the byte right after the backslash may not be the
// whole current token. For an atext run this makes no difference, since
// none of those bytes need escaping either way; for a WSP run it does,
// so only the first byte is consumed and the lexer is rewound to
// resume scanning the rest as ordinary content.
func (p *cursor) parseQuotedPairText() (string, error) {
	if err := p.consume(token.Backslash, `expected '\' for quoted-pair start`); err != nil {
		return "", err
	}

	if p.check(token.EOF) {
		return "", p.errorf("expected a character after '\\'")
	}

	tok := p.cur

	if tok.Kind == token.WSP && len(tok.Text) > 1 {
		p.lex.Seek(tok.Start + 1)
		p.prev = tok
		p.advance()

		return tok.Text[:1], nil
	}

	v := tok.Text
	p.advance()

	return v, nil
}
