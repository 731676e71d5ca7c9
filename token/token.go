// Package token implements the byte-level lexical analyzer for RFC 2822
// name-addr / addr-spec text. It never fails: every byte in the input
// classifies into one of the token kinds below, so the only error type
// it carries exists to satisfy callers that expect a scanner to be able
// to fail (see ErrLexical).
package token

import "fmt"

// Kind identifies the terminal alphabet produced by the Lexer.
type Kind int

const (
	// EOF is synthesized by callers once the lexer is exhausted; the
	// Lexer itself never emits it through Next.
	EOF Kind = iota
	WSP
	NoWSCtl
	CR
	LF
	LParen
	RParen
	LAngle
	RAngle
	LBracket
	RBracket
	Colon
	Semicolon
	At
	Backslash
	Comma
	Dot
	DQuote
	Other
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case WSP:
		return "WSP"
	case NoWSCtl:
		return "NO-WS-CTL"
	case CR:
		return "CR"
	case LF:
		return "LF"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LAngle:
		return "<"
	case RAngle:
		return ">"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case At:
		return "@"
	case Backslash:
		return `\`
	case Comma:
		return ","
	case Dot:
		return "."
	case DQuote:
		return `"`
	case Other:
		return "OTHER"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one terminal. Text is the exact input slice the token spans;
// Start/End are byte offsets into the original input, exposed so the
// grammar's error-recovery production can re-slice raw, un-tokenized
// bytes out of the source.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

// IsAtext reports whether byte b is an atext byte (or any byte >= 0x80).
// OTHER tokens are, by construction, maximal runs of such bytes; the
// grammar also uses it byte by byte to check whether assembled text is
// valid dot-atom-text.
func IsAtext(b byte) bool {
	return isAlpha(b) || isDigit(b) || isAtomSpecial(b) || b >= 0x80
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// atomSpecials is the RFC 2822 atext special-character set:
// "!#$%&'*+-/=?^_`{|}~"
func isAtomSpecial(b byte) bool {
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~':
		return true
	default:
		return false
	}
}

func isWSPByte(b byte) bool {
	return b == ' ' || b == '\t'
}

// isNoWSCtl reports RFC 2822 NO-WS-CTL: %d1-8 / %d11 / %d12 / %d14-31 / %d127.
func isNoWSCtl(b byte) bool {
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

// ErrLexical exists only to give scanning machinery an error type to
// return; the lexer's byte classification is total (every byte
// classifies as WSP/NO-WS-CTL/CR/LF/a special/OTHER), so no input can
// ever actually produce it. See spec §7.1.
type ErrLexical struct {
	Offset int
}

func (e *ErrLexical) Error() string {
	return fmt.Sprintf("lexical error at offset %d (unreachable)", e.Offset)
}
