package grammar

// 3.4.1 (RFC 2822): domain / domain-literal, and the "domain_literal_right"
// disambiguation production from spec §4.3.1.

import (
	"strings"

	"github.com/juga0/useridaddr/component"
	"github.com/juga0/useridaddr/token"
)

func isDText(k token.Kind) bool {
	// dtext excludes "[", "]", "\" (spec §4.3.2); WSP/CR/LF/EOF excluded
	// defensively, matching isCText/isQText.
	switch k {
	case token.LBracket, token.RBracket, token.Backslash, token.EOF, token.WSP, token.CR, token.LF:
		return false
	default:
		return true
	}
}

// parseDomainLiteralBody parses "[" *([FWS] dtext/quoted-pair) [FWS] "]"
// and returns the bracketed text verbatim, including the brackets
// themselves, since a domain-literal's brackets are part of its value
// (spec §3.4.1: "[127.0.0.1]" is the domain, not "127.0.0.1").
func (p *cursor) parseDomainLiteralBody() (component.Component, error) {
	if err := p.consume(token.LBracket, "expected '[' for domain-literal start"); err != nil {
		return component.Component{}, err
	}

	var sb strings.Builder

	sb.WriteByte('[')

	for {
		if folded, err := p.tryConsumeFWS(); err != nil {
			return component.Component{}, err
		} else if folded {
			sb.WriteByte(' ')
		}

		switch {
		case p.checkWith(isDText):
			sb.WriteString(p.cur.Text)
			p.advance()

			continue

		case p.check(token.Backslash):
			v, err := p.parseQuotedPairText()
			if err != nil {
				return component.Component{}, err
			}

			sb.WriteString(v)

			continue
		}

		break
	}

	if err := p.consume(token.RBracket, "expected ']' for domain-literal end"); err != nil {
		return component.Component{}, err
	}

	sb.WriteByte(']')

	return component.NewText(sb.String()), nil
}

// parseDomainLiteral parses "[CFWS] domain-literal-body [CFWS]" as a
// standalone start symbol.
func (p *cursor) parseDomainLiteral() ([]component.Component, error) {
	leading, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	body, err := p.parseDomainLiteralBody()
	if err != nil {
		return nil, err
	}

	trailing, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	return component.Concat(leading, component.One(body), trailing), nil
}

// parseDomainLiteralRight is domain_literal_right (§4.3.1): the
// comments-only CFWS collapsing parseAttachedComments provides,
// specialized to a bracketed domain-literal body.
func (p *cursor) parseDomainLiteralRight() (comments []component.Component, text string, err error) {
	return p.parseAttachedComments(func(p *cursor) (component.Component, error) {
		return p.parseDomainLiteralBody()
	})
}

// parseDomain implements the domain production (spec §3.4.1's
// "domain := dot-atom / domain-literal / obs-domain", obs-domain folded
// into dot-atom per the Non-goals list): a leading "[" selects the
// domain-literal alternative, anything else the dot-atom alternative.
// Both alternatives share identical leading/trailing CFWS handling via
// dot_atom_right/domain_literal_right. The two are distinguished by the
// first token after any leading CFWS: when CFWS comes first, it is
// parsed once to peek at the next token and the cursor is then restored.
func (p *cursor) parseDomain() (comments []component.Component, text string, err error) {
	if p.checkWith(isCFWSStart) {
		save := p.save()

		if _, err := p.tryParseCFWSFolded(); err != nil {
			return nil, "", err
		}

		isLiteral := p.check(token.LBracket)
		p.restore(save)

		if isLiteral {
			return p.parseDomainLiteralRight()
		}

		return p.parseDotAtomRight()
	}

	if p.check(token.LBracket) {
		return p.parseDomainLiteralRight()
	}

	return p.parseDotAtomRight()
}
