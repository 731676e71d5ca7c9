// Package grammar implements the RFC 2822 name-addr / addr-spec
// recognizer as a hand-written recursive-descent parser with one token
// of lookahead and save/restore backtracking at the handful of points
// the grammar is genuinely ambiguous without it (spec §4, §9: "an
// LR(1) table was not pursued; the productions below substitute for
// one"). Each exported function is a start symbol from spec §4.3's
// production table, taking the input string plus any Option and
// returning the component sequence spec §3 defines as this grammar's
// semantic output.
package grammar

import (
	"strings"

	"github.com/juga0/useridaddr/component"
	"github.com/juga0/useridaddr/token"
)

// entry wraps a start-symbol production with input-length bounds
// checking, cursor construction, and (for strict entry points) an
// end-of-input check, so every exported function below only needs to
// name its production.
func entry(input string, opts []Option, strict bool, production func(*cursor) ([]component.Component, error)) ([]component.Component, error) {
	o := buildOptions(opts)

	if o.maxInputLength > 0 && len(input) > o.maxInputLength {
		return nil, &ErrInputTooLong{Length: len(input), Max: o.maxInputLength}
	}

	c := newCursor(input, o)

	out, err := production(c)
	if err != nil {
		return nil, err
	}

	if strict && !c.check(token.EOF) {
		return nil, c.errorf("unexpected trailing input")
	}

	return out, nil
}

// Text parses a bare run of text with no grammar-level meaning:
// whatever the lexer tokenizes as Other, concatenated, with no CFWS
// handling. It exists as the trivial start symbol spec §4.3's table
// lists alongside the real productions.
func Text(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, func(p *cursor) ([]component.Component, error) {
		var sb []component.Component

		for p.checkWith(isAtomToken) {
			sb = append(sb, component.NewText(p.cur.Text))
			p.advance()
		}

		return component.Merge(sb), nil
	})
}

// CText parses a run of ctext/quoted-pair content with no surrounding
// parentheses — the bare content alphabet a comment's body is built
// from (spec §4.3's table lists it as its own start symbol, distinct
// from the full Comment production).
func CText(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, func(p *cursor) ([]component.Component, error) {
		return parseContentRun(p, isCText)
	})
}

// QContent parses a run of qtext/quoted-pair content with no
// surrounding quotes.
func QContent(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, func(p *cursor) ([]component.Component, error) {
		return parseContentRun(p, isQText)
	})
}

// DContent parses a run of dtext/quoted-pair content with no
// surrounding brackets.
func DContent(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, func(p *cursor) ([]component.Component, error) {
		return parseContentRun(p, isDText)
	})
}

// parseContentRun is the shared body behind CText/QContent/DContent:
// a maximal run of content bytes, with FWS folded to a single space and
// backslash-escapes resolved, matching how parseComment/
// parseQuotedStringPrime/parseDomainLiteralBody each accumulate their
// own content.
func parseContentRun(p *cursor, isContent func(token.Kind) bool) ([]component.Component, error) {
	var sb strings.Builder

	for {
		if folded, err := p.tryConsumeFWS(); err != nil {
			return nil, err
		} else if folded {
			sb.WriteByte(' ')
		}

		switch {
		case p.checkWith(isContent):
			sb.WriteString(p.cur.Text)
			p.advance()

			continue

		case p.check(token.Backslash):
			v, err := p.parseQuotedPairText()
			if err != nil {
				return nil, err
			}

			sb.WriteString(v)

			continue
		}

		break
	}

	return component.One(component.NewText(sb.String())), nil
}

// FWS parses one folding-white-space run.
func FWS(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, func(p *cursor) ([]component.Component, error) {
		if err := p.consumeFWS(); err != nil {
			return nil, err
		}

		return component.One(component.NewWS()), nil
	})
}

// Comment parses one parenthesized comment, spec §3/§9.
func Comment(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, func(p *cursor) ([]component.Component, error) {
		c, err := p.parseComment()
		if err != nil {
			return nil, err
		}

		return component.One(c), nil
	})
}

// Cfws parses one CFWS run and returns its canonical folding.
func Cfws(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, func(p *cursor) ([]component.Component, error) {
		if !p.checkWith(isCFWSStart) {
			return nil, p.errorf("expected CFWS", token.WSP, token.CR, token.LParen)
		}

		return p.parseCFWSFolded()
	})
}

// Atom parses "[CFWS] 1*atext [CFWS]".
func Atom(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parseAtom)
}

// DotAtom parses "[CFWS] dot-atom-text [CFWS]".
func DotAtom(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parseDotAtom)
}

// QuotedString parses "[CFWS] quoted-string-prime [CFWS]".
func QuotedString(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parseQuotedString)
}

// Word parses "atom / quoted-string".
func Word(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parseWord)
}

// Phrase parses "CFWS? atom_or_quoted_string" — the display-name
// disambiguation grammar described in spec §4.3.1.
func Phrase(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parsePhrase)
}

// AddrSpec parses "local-part @ domain" and assembles the single
// Address component, with any CFWS-borne comments emitted first (spec
// §8 scenario 4).
func AddrSpec(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parseAddrSpec)
}

// LocalPart parses the local-part alone: dot-atom, falling back to
// quoted-string.
func LocalPart(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, func(p *cursor) ([]component.Component, error) {
		comments, text, err := p.parseLocalPart()
		if err != nil {
			return nil, err
		}

		return component.Concat(comments, component.One(component.NewText(text))), nil
	})
}

// Domain parses the domain alone: dot-atom or domain-literal.
func Domain(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, func(p *cursor) ([]component.Component, error) {
		comments, text, err := p.parseDomain()
		if err != nil {
			return nil, err
		}

		return component.Concat(comments, component.One(component.NewText(text))), nil
	})
}

// DomainLiteral parses "[CFWS] domain-literal-body [CFWS]".
func DomainLiteral(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parseDomainLiteral)
}

// AngleAddr parses "[CFWS] '<' addr-spec '>' [CFWS]".
func AngleAddr(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parseAngleAddr)
}

// NameAddr parses "[display-name] angle-addr", generalized for leading
// whitespace per spec §4.3.1.
func NameAddr(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parseNameAddr)
}

// DisplayName parses "phrase".
func DisplayName(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parseDisplayName)
}

// AddrSpecOrOther parses AddrSpec, or, on failure, treats the whole
// input as opaque content and returns a single InvalidAddress
// component. It never returns an error of its own except
// ErrInputTooLong, since recovery is unconditional.
func AddrSpecOrOther(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, func(p *cursor) ([]component.Component, error) {
		addr, err := p.parseAddrSpec()
		if err == nil && p.check(token.EOF) {
			return addr, nil
		}

		if err == nil {
			err = p.errorf("unexpected trailing input")
		}

		p.lex.Seek(len(p.input))
		p.advance()

		return component.One(component.NewInvalidAddress(err, p.sliceRaw(0, len(p.input)))), nil
	})
}

// AngleAddrOrOther parses AngleAddr, recovering to InvalidAddress for
// whatever sits between "<" and ">" if it isn't a valid addr-spec. The
// recovery is local to the bracket contents; trailing input after the
// closing "[CFWS]" still has to reach EOF, same as the strict entry
// points.
func AngleAddrOrOther(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parseAngleAddrOrOther)
}

// NameAddrOrOther parses NameAddr with the same angle-bracket recovery
// as AngleAddrOrOther.
func NameAddrOrOther(input string, opts ...Option) ([]component.Component, error) {
	return entry(input, opts, true, (*cursor).parseNameAddrOrOther)
}
