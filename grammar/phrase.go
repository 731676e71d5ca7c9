package grammar

// 3.2.6 (RFC 2822): word / phrase, and the atom-vs-quoted-string
// disambiguation grammar from spec §4.3.1 — "the intellectual core" of
// the recognizer.
//
//	phrase                := CFWS? atom_or_quoted_string
//	atom_or_quoted_string := atom_prime cfws_or_quoted_string?
//	                       | quoted_string_prime+ cfws_or_atom?
//	cfws_or_quoted_string := CFWS (atom_or_quoted_string)?
//	                       | quoted_string_prime+ (cfws_or_atom)?
//	cfws_or_atom          := CFWS (atom_or_quoted_string)?
//	                       | atom_prime (cfws_or_quoted_string)?
//
// Dispatch between the two alternatives of each production is a plain
// lookahead switch on the current token kind: DQUOTE starts a
// quoted-string, an Other token starts an atom, and anything else ends
// the run. No backtracking is needed anywhere in this family.

import (
	"github.com/juga0/useridaddr/component"
	"github.com/juga0/useridaddr/token"
)

func (p *cursor) parsePhrase() ([]component.Component, error) {
	leading, err := p.tryParseCFWSFolded()
	if err != nil {
		return nil, err
	}

	body, err := p.parseAtomOrQuotedString()
	if err != nil {
		return nil, err
	}

	return component.Concat(leading, body), nil
}

func (p *cursor) parseAtomOrQuotedString() ([]component.Component, error) {
	if p.check(token.DQuote) {
		qs, err := p.parseQuotedStringPrimePlus()
		if err != nil {
			return nil, err
		}

		rest, err := p.tryParseCFWSOrAtom()
		if err != nil {
			return nil, err
		}

		return component.Concat(qs, rest), nil
	}

	atom, err := p.parseAtomPrime()
	if err != nil {
		return nil, err
	}

	rest, err := p.tryParseCFWSOrQuotedString()
	if err != nil {
		return nil, err
	}

	return component.Concat(component.One(atom), rest), nil
}

// parseQuotedStringPrimePlus parses one or more directly adjacent
// quoted strings ("a""b"), as phrase's grammar calls for.
func (p *cursor) parseQuotedStringPrimePlus() ([]component.Component, error) {
	var out []component.Component

	for {
		qs, err := p.parseQuotedStringPrime()
		if err != nil {
			return nil, err
		}

		out = append(out, qs)

		if !p.check(token.DQuote) {
			return out, nil
		}
	}
}

// tryParseCFWSOrQuotedString is cfws_or_quoted_string's optional form:
// nil, nil if the phrase ends here.
func (p *cursor) tryParseCFWSOrQuotedString() ([]component.Component, error) {
	if p.check(token.DQuote) {
		qs, err := p.parseQuotedStringPrimePlus()
		if err != nil {
			return nil, err
		}

		rest, err := p.tryParseCFWSOrAtom()
		if err != nil {
			return nil, err
		}

		return component.Concat(qs, rest), nil
	}

	if !p.checkWith(isCFWSStart) {
		return nil, nil
	}

	folded, err := p.parseCFWSFolded()
	if err != nil {
		return nil, err
	}

	if !p.checkWith(isAtomToken) && !p.check(token.DQuote) {
		return folded, nil
	}

	rest, err := p.parseAtomOrQuotedString()
	if err != nil {
		return nil, err
	}

	return component.Concat(folded, rest), nil
}

// tryParseCFWSOrAtom is cfws_or_atom's optional form: nil, nil if the
// phrase ends here.
func (p *cursor) tryParseCFWSOrAtom() ([]component.Component, error) {
	if p.checkWith(isAtomToken) {
		atom, err := p.parseAtomPrime()
		if err != nil {
			return nil, err
		}

		rest, err := p.tryParseCFWSOrQuotedString()
		if err != nil {
			return nil, err
		}

		return component.Concat(component.One(atom), rest), nil
	}

	if !p.checkWith(isCFWSStart) {
		return nil, nil
	}

	folded, err := p.parseCFWSFolded()
	if err != nil {
		return nil, err
	}

	if !p.checkWith(isAtomToken) && !p.check(token.DQuote) {
		return folded, nil
	}

	rest, err := p.parseAtomOrQuotedString()
	if err != nil {
		return nil, err
	}

	return component.Concat(folded, rest), nil
}

// parseWord parses a single "word := atom / quoted-string" as a
// standalone start symbol (spec §4.3's Word entry point). It is not used
// by phrase itself, which runs the mutually-recursive grammar above
// directly to get the cfws_or_atom/cfws_or_quoted_string lookahead
// right. Because CFWS can precede either alternative, Word backtracks
// rather than trying to look past an arbitrary-length comment run.
func (p *cursor) parseWord() ([]component.Component, error) {
	save := p.save()

	if qs, err := p.parseQuotedString(); err == nil {
		return qs, nil
	}

	p.restore(save)

	return p.parseAtom()
}
