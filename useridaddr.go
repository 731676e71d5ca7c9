// Package useridaddr parses OpenPGP User ID strings of the form
// "name-addr" / "addr-spec" (RFC 2822 §3.4, as constrained by spec §1-§9)
// into their display-name, comment, and address constituents. It is the
// post-processor over package grammar's component sequences: where
// grammar returns the grammar's own semantic alphabet verbatim,
// useridaddr groups that alphabet into the fields a User ID consumer
// actually wants (spec §4.4).
package useridaddr

import (
	"errors"
	"strings"

	"github.com/juga0/useridaddr/component"
	"github.com/juga0/useridaddr/grammar"
)

// Option re-exports grammar.Option so callers never need to import
// package grammar directly for the common case.
type Option = grammar.Option

var (
	WithLogger           = grammar.WithLogger
	WithTraceProductions = grammar.WithTraceProductions
	WithMaxCommentDepth  = grammar.WithMaxCommentDepth
	WithMaxInputLength   = grammar.WithMaxInputLength
	WithNFCNormalization = grammar.WithNFCNormalization
)

// UserID is a parsed OpenPGP User ID: a display-name phrase, zero or
// more comments gathered from CFWS, and either a valid email address or
// the raw content that failed to parse as one (spec §4.4).
type UserID struct {
	name     string
	comments []string
	address  string
	invalid  *InvalidAddressError
}

// InvalidAddressError wraps the raw "<...>" content and underlying
// parse error for a User ID whose address could not be recognized as an
// addr-spec.
type InvalidAddressError struct {
	Raw []byte
	Err error
}

func (e *InvalidAddressError) Error() string {
	return "invalid address " + strings.TrimSpace(string(e.Raw)) + ": " + e.Err.Error()
}

func (e *InvalidAddressError) Unwrap() error { return e.Err }

// Name returns the parsed display-name text, or "" if the User ID had
// none (a bare addr-spec or angle-addr with no leading phrase).
func (u *UserID) Name() string { return u.name }

// Comments returns every comment gathered from CFWS, in source order.
func (u *UserID) Comments() []string { return append([]string(nil), u.comments...) }

// Address returns the "local@domain" email address, or "" if the User
// ID's address did not parse (see Invalid).
func (u *UserID) Address() string { return u.address }

// Invalid returns the recovery error for a User ID whose address
// content failed to parse, or nil if Address is valid.
func (u *UserID) Invalid() *InvalidAddressError { return u.invalid }

// Parse recognizes input as a name-addr or addr-spec User ID (spec
// §4.4): name-addr is tried first ("Real Name <user@example.org>"), and
// if that doesn't account for the whole input, addr-spec is tried
// ("user@example.org" with no angle brackets). Recovery is enabled, so
// a syntactically valid angle-addr whose contents aren't a real email
// address still parses, with Invalid() reporting why.
func Parse(input string, opts ...Option) (*UserID, error) {
	if comps, err := grammar.NameAddrOrOther(input, opts...); err == nil {
		return fromComponents(comps), nil
	}

	comps, err := grammar.AddrSpecOrOther(input, opts...)
	if err != nil {
		return nil, err
	}

	return fromComponents(comps), nil
}

func fromComponents(comps []component.Component) *UserID {
	u := &UserID{}

	var name strings.Builder

	sawAddress := false

	for _, c := range comps {
		switch c.Kind() {
		case component.Text:
			if !sawAddress {
				name.WriteString(c.TextValue())
			}
		case component.WS:
			if !sawAddress && name.Len() > 0 {
				name.WriteByte(' ')
			}
		case component.Comment:
			u.comments = append(u.comments, c.TextValue())
		case component.Address:
			u.address = c.TextValue()
			sawAddress = true
		case component.InvalidAddress:
			u.invalid = &InvalidAddressError{Raw: c.Raw(), Err: c.Err()}
			sawAddress = true
		}
	}

	u.name = strings.TrimRight(name.String(), " ")

	return u
}

// EqualEmail reports whether two addr-spec strings denote the same
// email address: the local-part is compared case-sensitively (RFC
// 2822's own rule — the local-part's case is significant to the
// receiving system) and the domain case-insensitively (DNS names are
// not case-sensitive). This is the operation spec §1 motivates directly
// ("deciding which OpenPGP certificate matches a given email address").
// Both inputs are parsed as a bare AddrSpec; a malformed input makes
// EqualEmail report false rather than erroring, since "not an address"
// trivially cannot equal anything.
func EqualEmail(a, b string) bool {
	la, da, ok := splitAddrSpec(a)
	if !ok {
		return false
	}

	lb, db, ok := splitAddrSpec(b)
	if !ok {
		return false
	}

	return la == lb && strings.EqualFold(da, db)
}

func splitAddrSpec(s string) (local, domain string, ok bool) {
	comps, err := grammar.AddrSpec(s)
	if err != nil {
		return "", "", false
	}

	for _, c := range comps {
		if c.Kind() != component.Address {
			continue
		}

		at := strings.LastIndexByte(c.TextValue(), '@')
		if at < 0 {
			return "", "", false
		}

		return c.TextValue()[:at], c.TextValue()[at+1:], true
	}

	return "", "", false
}

// EscapedDisplayName re-exports grammar.EscapedDisplayName (spec §4.5).
func EscapedDisplayName(s string, opts ...Option) (string, error) {
	return grammar.EscapedDisplayName(s, opts...)
}

// IsParseError reports whether err is (or wraps) a *grammar.ParseError.
func IsParseError(err error) bool {
	var pe *grammar.ParseError
	return errors.As(err, &pe)
}

// AsParseError extracts the *grammar.ParseError from err, if any.
func AsParseError(err error) (*grammar.ParseError, bool) {
	var pe *grammar.ParseError
	ok := errors.As(err, &pe)

	return pe, ok
}
