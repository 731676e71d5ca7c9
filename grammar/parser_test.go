package grammar

import (
	"strings"
	"testing"

	"github.com/juga0/useridaddr/component"
	"github.com/stretchr/testify/require"
)

func TestTextEntryPoint(t *testing.T) {
	got, err := Text("hello")
	require.NoError(t, err)
	require.Equal(t, "hello", got[0].TextValue())
}

func TestFWSEntryPoint(t *testing.T) {
	got, err := FWS("  \r\n ")
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{component.NewWS()}))
}

func TestCTextQContentDContentEntryPoints(t *testing.T) {
	c, err := CText(`hello \) world`)
	require.NoError(t, err)
	require.Equal(t, "hello ) world", c[0].TextValue())

	q, err := QContent(`hello \" world`)
	require.NoError(t, err)
	require.Equal(t, `hello " world`, q[0].TextValue())

	d, err := DContent(`127.0.0.1`)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", d[0].TextValue())
}

func TestStrictEntryPointsRejectTrailingInput(t *testing.T) {
	_, err := Atom("hello world")
	require.Error(t, err)
}

func TestInputTooLong(t *testing.T) {
	_, err := AddrSpec("alice@example.org", WithMaxInputLength(5))
	require.Error(t, err)
	var tooLong *ErrInputTooLong
	require.ErrorAs(t, err, &tooLong)
}

// TestAddressPurity is spec §8's address-purity property: no Address
// component's text ever carries whitespace or parens left over from
// CFWS folding, regardless of how much CFWS surrounds the addr-spec. A
// quoted local-part is allowed to carry a literal space or paren, since
// those bytes are part of its value, not folding noise — they're
// "escaped" by virtue of sitting inside the quotes that made it into
// the address in the first place, so the check strips quoted spans
// before looking for stray whitespace/parens.
func TestAddressPurity(t *testing.T) {
	inputs := []string{
		`alice@example.org`,
		`  alice@example.org  `,
		`alice (hi) @ example.org`,
		`(a)(b) alice @ (c) example.org (d)`,
		`alice@[127.0.0.1]`,
		`"a b"@example.org`,
		`"a (b)" @ (c) example.org`,
	}

	for _, in := range inputs {
		comps, err := AddrSpec(in)
		require.NoError(t, err, in)

		for _, c := range comps {
			if c.Kind() != component.Address {
				continue
			}

			v := unquotedSpans(c.TextValue())
			require.NotContains(t, v, " ", in)
			require.NotContains(t, v, "(", in)
			require.NotContains(t, v, ")", in)
		}
	}
}

// unquotedSpans strips out any text sitting between a matched pair of
// unescaped double quotes, leaving only the bytes that sit outside any
// quoted-string local-part.
func unquotedSpans(s string) string {
	var out strings.Builder

	inQuotes := false

	for i := 0; i < len(s); i++ {
		b := s[i]

		if b == '\\' && i+1 < len(s) {
			i++
			continue
		}

		if b == '"' {
			inQuotes = !inQuotes
			continue
		}

		if !inQuotes {
			out.WriteByte(b)
		}
	}

	return out.String()
}
