package grammar

// 3.2.4 (atom / dot-atom) and the local-part/domain left/right
// disambiguation productions from spec §4.3.1.

import (
	"strings"

	"github.com/juga0/useridaddr/component"
	"github.com/juga0/useridaddr/token"
)

// isAtomToken reports whether the current token is a (coalesced) atext
// run. Because token.Lexer already merges maximal atext runs into one
// Other token (spec §2, §9 "lexer-parser coupling"), an atom or
// dot-atom-text segment is always exactly one token, not a loop over
// individual atext bytes.
func isAtomToken(k token.Kind) bool {
	return k == token.Other
}

// parseAtomPrime consumes 1*atext with no surrounding CFWS — the
// "_prime" variant phrase's disambiguation grammar calls for (§4.3.1).
func (p *cursor) parseAtomPrime() (component.Component, error) {
	if !p.checkWith(isAtomToken) {
		return component.Component{}, p.errorf("expected atext for atom", token.Other)
	}

	c := component.NewText(p.cur.Text)
	p.advance()

	return c, nil
}

// parseAtom parses the full "atom = [CFWS] 1*atext [CFWS]" production.
func (p *cursor) parseAtom() ([]component.Component, error) {
	leading, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	atom, err := p.parseAtomPrime()
	if err != nil {
		return nil, err
	}

	trailing, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	return component.Concat(leading, component.One(atom), trailing), nil
}

// parseDotAtomText parses "1*atext *('.' 1*atext)", extended to permit a
// trailing '.' (matching the teacher's relaxation of the same rule) and
// returns the whole thing as one flattened Text component.
func (p *cursor) parseDotAtomText() (component.Component, error) {
	if !p.checkWith(isAtomToken) {
		return component.Component{}, p.errorf("expected atext for dot-atom-text", token.Other)
	}

	var sb strings.Builder

	sb.WriteString(p.cur.Text)
	p.advance()

	for p.check(token.Dot) {
		p.advance()

		if p.check(token.Dot) {
			return component.Component{}, p.errorf("consecutive '.' not allowed in dot-atom-text")
		}

		sb.WriteByte('.')

		if !p.checkWith(isAtomToken) {
			break // trailing '.' extension
		}

		sb.WriteString(p.cur.Text)
		p.advance()
	}

	return component.NewText(sb.String()), nil
}

// parseDotAtom parses "[CFWS] dot-atom-text [CFWS]" as a standalone start
// symbol (generic use, not the address left/right attachment).
func (p *cursor) parseDotAtom() ([]component.Component, error) {
	leading, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	text, err := p.parseDotAtomText()
	if err != nil {
		return nil, err
	}

	trailing, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	return component.Concat(leading, component.One(text), trailing), nil
}

// parseDotAtomLeft implements the "dot_atom_left" disambiguation
// production: both the leading and trailing CFWS surrounding the
// dot-atom-text collapse to comment-only components (no WS), gathered
// together, with the atom text kept separate so the caller (local-part
// assembly) can use it as "the final significant component" when joining
// against '@' (spec §4.3.1).
func (p *cursor) parseDotAtomLeft() (comments []component.Component, text string, err error) {
	leading, err := p.tryParseCFWSCommentsOnly()
	if err != nil {
		return nil, "", err
	}

	atom, err := p.parseDotAtomText()
	if err != nil {
		return nil, "", err
	}

	trailing, err := p.tryParseCFWSCommentsOnly()
	if err != nil {
		return nil, "", err
	}

	return append(leading, trailing...), atom.TextValue(), nil
}

// parseDotAtomRight is dot_atom_left's mirror for domain: the same
// comment-only collapsing of surrounding CFWS, returning the gathered
// comments and the atom text separately. parseAddrSpec emits these
// domain comments after the local-part's comments and before the
// Address component.
func (p *cursor) parseDotAtomRight() (comments []component.Component, text string, err error) {
	return p.parseDotAtomLeft()
}
