package grammar

// 3.2.5 (RFC 2822): quoted strings.

import (
	"strings"

	"github.com/juga0/useridaddr/component"
	"github.com/juga0/useridaddr/token"
)

func isQText(k token.Kind) bool {
	// qtext excludes '\' and '"' (spec §4.3.2); WSP/CR/LF/EOF excluded
	// defensively for the same reason as isCText.
	switch k {
	case token.DQuote, token.Backslash, token.EOF, token.WSP, token.CR, token.LF:
		return false
	default:
		return true
	}
}

// parseQuotedStringPrime parses DQUOTE *(qcontent/quoted-pair) DQUOTE
// with no surrounding CFWS — the "_prime" variant, and the one used
// repeatedly by phrase's "quoted_string_prime+" alternative for adjacent
// quoted strings ("a""b").
func (p *cursor) parseQuotedStringPrime() (component.Component, error) {
	if err := p.consume(token.DQuote, `expected '"' for quoted string start`); err != nil {
		return component.Component{}, err
	}

	var sb strings.Builder

	for {
		if folded, err := p.tryConsumeFWS(); err != nil {
			return component.Component{}, err
		} else if folded {
			sb.WriteByte(' ')
		}

		switch {
		case p.checkWith(isQText):
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

	if err := p.consume(token.DQuote, `expected '"' for quoted string end`); err != nil {
		return component.Component{}, err
	}

	// §9 open question: a quoted empty string is fixed to produce
	// Text(""), not nothing, to preserve round-tripping.
	return component.NewText(sb.String()), nil
}

// parseQuotedString parses "[CFWS] quoted-string-prime [CFWS]".
func (p *cursor) parseQuotedString() ([]component.Component, error) {
	leading, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	qs, err := p.parseQuotedStringPrime()
	if err != nil {
		return nil, err
	}

	trailing, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	return component.Concat(leading, component.One(qs), trailing), nil
}

// parseQuotedStringLeft is quoted_string_left (§4.3.1): local-part's
// quoted-string alternative, with surrounding CFWS collapsed to
// comments-only the same way parseDotAtomLeft does for the dot-atom
// alternative.
func (p *cursor) parseQuotedStringLeft() (comments []component.Component, text string, err error) {
	leading, err := p.tryParseCFWSCommentsOnly()
	if err != nil {
		return nil, "", err
	}

	qs, err := p.parseQuotedStringPrime()
	if err != nil {
		return nil, "", err
	}

	trailing, err := p.tryParseCFWSCommentsOnly()
	if err != nil {
		return nil, "", err
	}

	return append(leading, trailing...), qs.TextValue(), nil
}
