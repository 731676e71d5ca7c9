// Package component defines the semantic output alphabet of the grammar
// (spec §3, §4.2) and the two pure merge operations over sequences of it.
package component

import (
	"fmt"
	"strings"
)

// Kind discriminates the Component sum type. Component is a closed tagged
// union (spec §9): exactly one of Kind's five variants, matched by Kind
// rather than by type assertion.
type Kind int

const (
	// Text is a literal text fragment from atoms, quoted strings, or a
	// domain-literal body.
	Text Kind = iota
	// WS is one logical space, folded from any run of FWS/CFWS whitespace.
	WS
	// Comment is the flattened text inside one parenthesized comment.
	Comment
	// Address is a complete local-part@domain, emitted once per addr-spec.
	Address
	// InvalidAddress is the <...> content when it failed to parse as an
	// addr-spec; Raw is the exact input bytes between the angle brackets.
	InvalidAddress
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case WS:
		return "WS"
	case Comment:
		return "Comment"
	case Address:
		return "Address"
	case InvalidAddress:
		return "InvalidAddress"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Component is one element of a parse result (spec §3). The zero value
// is a Text component with an empty string (Kind 0 is Text); callers
// should use the constructors below rather than struct literals.
type Component struct {
	kind Kind
	text string // Text / Comment / Address payload
	err  error  // InvalidAddress payload
	raw  []byte // InvalidAddress payload
}

func NewText(s string) Component { return Component{kind: Text, text: s} }

func NewWS() Component { return Component{kind: WS} }

func NewComment(s string) Component { return Component{kind: Comment, text: s} }

func NewAddress(s string) Component { return Component{kind: Address, text: s} }

func NewInvalidAddress(err error, raw []byte) Component {
	return Component{kind: InvalidAddress, err: err, raw: raw}
}

func (c Component) Kind() Kind { return c.kind }

// TextValue returns the payload for Text, Comment, and Address
// components; it is empty for WS and InvalidAddress.
func (c Component) TextValue() string { return c.text }

// Err returns the recorded parse error for an InvalidAddress component.
func (c Component) Err() error { return c.err }

// Raw returns the exact input bytes for an InvalidAddress component.
func (c Component) Raw() []byte { return c.raw }

func (c Component) String() string {
	switch c.kind {
	case Text:
		return fmt.Sprintf("Text(%q)", c.text)
	case WS:
		return "WS"
	case Comment:
		return fmt.Sprintf("Comment(%q)", c.text)
	case Address:
		return fmt.Sprintf("Address(%q)", c.text)
	case InvalidAddress:
		return fmt.Sprintf("InvalidAddress(%v, %q)", c.err, string(c.raw))
	default:
		return "<invalid component>"
	}
}

// String renders a component sequence for diagnostics and test failure
// messages. This is not a serialization format (spec §6: "Serialization
// of components back to string form is not part of this spec except for
// the escaped-display-name emitter"); it is purely for logs.
func String(seq []Component) string {
	parts := make([]string, len(seq))
	for i, c := range seq {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}

// Equal reports whether two component sequences are identical, including
// payloads and, for InvalidAddress, error message text (not error
// identity, since parse errors are rebuilt per call).
func Equal(a, b []Component) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].kind != b[i].kind || a[i].text != b[i].text || string(a[i].raw) != string(b[i].raw) {
			return false
		}

		switch {
		case a[i].err == nil && b[i].err == nil:
		case a[i].err == nil || b[i].err == nil:
			return false
		case a[i].err.Error() != b[i].err.Error():
			return false
		}
	}

	return true
}
