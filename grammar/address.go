package grammar

// 3.4 (RFC 2822): addr-spec, angle-addr, and name-addr, plus the
// *-or-other recovery productions from spec §4.3.1/§7.

import (
	"strings"

	"github.com/juga0/useridaddr/component"
	"github.com/juga0/useridaddr/token"
)

// parseLocalPart tries dot_atom_left first, falling back to
// quoted_string_left on failure. Both alternatives begin with optional
// CFWS, so the choice can't be made by a single token of lookahead; the
// cursor backtracks exactly as parseMailbox does in the teacher's
// rfc5322 parser when trying name-addr before addr-spec.
func (p *cursor) parseLocalPart() (comments []component.Component, text string, err error) {
	save := p.save()

	if comments, text, err := p.parseDotAtomLeft(); err == nil {
		return comments, text, nil
	}

	p.restore(save)

	return p.parseQuotedStringLeft()
}

// parseAddrSpec assembles local-part "@" domain into the sequence
// documented by spec §8 scenario 4: every comment gathered from the
// local-part's surrounding CFWS, then every comment from the domain's,
// then a single Address component — regardless of which side of '@'
// those comments textually sat on in the source. The address text
// itself is always exactly "local@domain", with no surrounding noise;
// a local-part that isn't valid as a bare dot-atom (spec §8 property 4:
// no Address text carries unescaped whitespace or parens) is re-quoted
// so its value, not RFC punctuation, is what a space inside it means.
func (p *cursor) parseAddrSpec() ([]component.Component, error) {
	localComments, localText, err := p.parseLocalPart()
	if err != nil {
		return nil, err
	}

	if err := p.consume(token.At, "expected '@' in addr-spec"); err != nil {
		return nil, err
	}

	domainComments, domainText, err := p.parseDomain()
	if err != nil {
		return nil, err
	}

	addr := component.NewAddress(formatLocalPart(localText) + "@" + domainText)

	return component.Concat(localComments, domainComments, component.One(addr)), nil
}

// formatLocalPart returns text unchanged if it's already a valid bare
// dot-atom-text (the common case: alice, a.b.c), and otherwise re-quotes
// it as a quoted-string, backslash-escaping '"' and '\' the same way
// EscapedDisplayName's quoted form does. This keeps the assembled
// Address's local-part round-trippable through LocalPart/AddrSpec and
// keeps any whitespace it carries unambiguous: it only ever appears
// inside the quotes that made it part of the value instead of RFC
// folding noise.
func formatLocalPart(text string) string {
	if isDotAtomText(text) {
		return text
	}

	var body strings.Builder

	body.WriteByte('"')

	for i := 0; i < len(text); i++ {
		b := text[i]
		if b == '"' || b == '\\' {
			body.WriteByte('\\')
		}

		body.WriteByte(b)
	}

	body.WriteByte('"')

	return body.String()
}

// isDotAtomText reports whether s is exactly "atext *( '.' atext )"
// (RFC 2822 dot-atom-text), with the same trailing-'.' relaxation
// parseDotAtomText accepts (atom.go), i.e. whether s can stand as a
// local-part with no quoting at all.
func isDotAtomText(s string) bool {
	if s == "" {
		return false
	}

	segments := strings.Split(s, ".")

	for i, segment := range segments {
		if segment == "" {
			if i == len(segments)-1 {
				continue // trailing '.' extension
			}

			return false
		}

		for j := 0; j < len(segment); j++ {
			if !token.IsAtext(segment[j]) {
				return false
			}
		}
	}

	return true
}

// parseAddrSpecOrOther tries a strict addr-spec; on failure it
// backtracks and instead treats everything up to (not including) the
// closing '>' as opaque content, producing a single InvalidAddress
// component carrying the parse error and the raw bytes. This is the
// spec's single error-recovery site: text inside angle brackets that
// isn't a valid addr-spec (an arbitrary URI, an obsolete route, etc).
func (p *cursor) parseAddrSpecOrOther() ([]component.Component, error) {
	save := p.save()

	addr, err := p.parseAddrSpec()
	if err == nil {
		return addr, nil
	}

	p.restore(save)

	start := p.cur.Start
	for !p.check(token.RAngle) && !p.check(token.EOF) {
		p.advance()
	}

	raw := p.sliceRaw(start, p.cur.Start)

	return component.One(component.NewInvalidAddress(err, raw)), nil
}

// parseAngleAddrPrime parses "<" inner ">" [CFWS] with no leading CFWS
// of its own — the shared tail shape behind AngleAddr and NameAddr,
// parameterized over which addr-spec variant (strict or recovering)
// fills the inner content.
func (p *cursor) parseAngleAddrPrime(inner func(*cursor) ([]component.Component, error)) ([]component.Component, error) {
	if err := p.consume(token.LAngle, "expected '<' for angle-addr start"); err != nil {
		return nil, err
	}

	body, err := inner(p)
	if err != nil {
		return nil, err
	}

	if err := p.consume(token.RAngle, "expected '>' for angle-addr end"); err != nil {
		return nil, err
	}

	trailing, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	return component.Concat(body, trailing), nil
}

func (p *cursor) parseAngleAddrGeneric(inner func(*cursor) ([]component.Component, error)) ([]component.Component, error) {
	leading, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	body, err := p.parseAngleAddrPrime(inner)
	if err != nil {
		return nil, err
	}

	return component.Concat(leading, body), nil
}

func (p *cursor) parseAngleAddr() ([]component.Component, error) {
	return p.parseAngleAddrGeneric(func(p *cursor) ([]component.Component, error) { return p.parseAddrSpec() })
}

func (p *cursor) parseAngleAddrOrOther() ([]component.Component, error) {
	return p.parseAngleAddrGeneric(func(p *cursor) ([]component.Component, error) { return p.parseAddrSpecOrOther() })
}

// parseNameAddrGeneric implements name-addr generalized with the
// leading-whitespace handling from spec §4.3.1: leading CFWS is parsed
// exactly once, then credited either to the display-name's own optional
// "CFWS? atom_or_quoted_string" prefix (if a word follows) or to the
// bare "[CFWS] angle-addr-prime" alternative used when there is no
// display-name at all (a lone leading space before "<...>").
func (p *cursor) parseNameAddrGeneric(inner func(*cursor) ([]component.Component, error)) ([]component.Component, error) {
	leading, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	if p.checkWith(isAtomToken) || p.check(token.DQuote) {
		body, err := p.parseAtomOrQuotedString()
		if err != nil {
			return nil, err
		}

		displayName := component.Concat(leading, body)

		addr, err := p.parseAngleAddrPrime(inner)
		if err != nil {
			return nil, err
		}

		return component.Concat(displayName, addr), nil
	}

	addr, err := p.parseAngleAddrPrime(inner)
	if err != nil {
		return nil, err
	}

	return component.Concat(leading, addr), nil
}

func (p *cursor) parseNameAddr() ([]component.Component, error) {
	return p.parseNameAddrGeneric(func(p *cursor) ([]component.Component, error) { return p.parseAddrSpec() })
}

func (p *cursor) parseNameAddrOrOther() ([]component.Component, error) {
	return p.parseNameAddrGeneric(func(p *cursor) ([]component.Component, error) { return p.parseAddrSpecOrOther() })
}

// parseDisplayName is display-name = phrase, exposed under its own name
// for the DisplayName start symbol.
func (p *cursor) parseDisplayName() ([]component.Component, error) {
	return p.parsePhrase()
}
