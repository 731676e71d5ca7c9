package grammar

// 4.5: EscapedDisplayName, the one serialization operation the spec
// defines (component sequences are otherwise diagnostic-only, per
// component.String's doc comment).

import (
	"strings"

	"github.com/juga0/useridaddr/token"
	"golang.org/x/text/unicode/norm"
)

// EscapedDisplayName renders a raw display-name string (not a parsed
// phrase — the caller is producing a User ID, not consuming one) as a
// quoted-or-bare RFC 2822 phrase fragment: plain text if it needs no
// escaping, else a single quoted-string with the minimal set of bytes
// backslash-escaped.
//
// Escaping rules (spec §4.5):
//   - NO-WS-CTL bytes, '"' and '\' are backslash-escaped and force
//     quoting.
//   - '(' ')' '<' '>' '[' ']' ':' ';' '@' ',' '.' are copied
//     literally but force quoting (they're unsafe unquoted, safe inside
//     a quoted-string).
//   - two adjacent WSP, or trailing WSP, force quoting (ambiguous with
//     folding otherwise).
//   - CR or LF are rejected outright: a display name cannot embed a raw
//     newline, escaped or not.
//
// If WithNFCNormalization was supplied, the input is NFC-normalized
// before the escaping pass runs.
func EscapedDisplayName(s string, opts ...Option) (string, error) {
	o := buildOptions(opts)

	if o.normalizeNFC {
		s = norm.NFC.String(s)
	}

	var body strings.Builder

	forceQuote := false
	prevWasWSP := false

	for i := 0; i < len(s); i++ {
		b := s[i]

		switch {
		case b == '\r' || b == '\n':
			got := token.CR
			if b == '\n' {
				got = token.LF
			}

			return "", &ParseError{Offset: i, Message: "display name cannot contain a raw CR or LF", Got: got}

		case isNoWSCtlByte(b):
			body.WriteByte('\\')
			body.WriteByte(b)
			forceQuote = true
			prevWasWSP = false

		case b == '"' || b == '\\':
			body.WriteByte('\\')
			body.WriteByte(b)
			forceQuote = true
			prevWasWSP = false

		case isUnsafeUnquotedByte(b):
			body.WriteByte(b)
			forceQuote = true
			prevWasWSP = false

		case b == ' ' || b == '\t':
			body.WriteByte(b)

			if prevWasWSP {
				forceQuote = true
			}

			prevWasWSP = true

		default:
			body.WriteByte(b)
			prevWasWSP = false
		}
	}

	if prevWasWSP && len(s) > 0 {
		forceQuote = true
	}

	if !forceQuote {
		return body.String(), nil
	}

	return `"` + body.String() + `"`, nil
}

func isNoWSCtlByte(b byte) bool {
	switch {
	case b >= 1 && b <= 8:
		return true
	case b == 11 || b == 12:
		return true
	case b >= 14 && b <= 31:
		return true
	case b == 127:
		return true
	default:
		return false
	}
}

// isUnsafeUnquotedByte is the specials set that is legal inside a
// quoted-string but not inside a bare atom (spec §4.5): forcing a quote
// whenever any of these appear unescaped keeps the result round-trippable
// through this grammar's own QuotedString production.
func isUnsafeUnquotedByte(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', ':', ';', '@', ',', '.':
		return true
	default:
		return false
	}
}
