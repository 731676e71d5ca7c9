package grammar

import (
	"testing"

	"github.com/juga0/useridaddr/component"
	"github.com/stretchr/testify/require"
)

func TestAddrSpecSimple(t *testing.T) {
	got, err := AddrSpec(`alice@example.org`)
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{component.NewAddress("alice@example.org")}))
}

func TestAddrSpecQuotedLocalPart(t *testing.T) {
	// The local-part's internal space is part of its value, not CFWS
	// folding noise, so it stays quoted in the assembled Address text
	// (spec §8 property 4: no unescaped whitespace in Address).
	got, err := AddrSpec(`"a b"@example.org`)
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{component.NewAddress(`"a b"@example.org`)}))
}

func TestAddrSpecQuotedLocalPartNeedingNoRequote(t *testing.T) {
	// A quoted local-part whose content happens to already be a valid
	// bare dot-atom doesn't need its quotes preserved.
	got, err := AddrSpec(`"alice"@example.org`)
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{component.NewAddress(`alice@example.org`)}))
}

func TestAddrSpecQuotedLocalPartEscapesQuoteAndBackslash(t *testing.T) {
	got, err := AddrSpec(`"a\"b"@example.org`)
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{component.NewAddress(`"a\"b"@example.org`)}))
}

func TestAddrSpecDomainLiteral(t *testing.T) {
	got, err := AddrSpec(`alice@[127.0.0.1]`)
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{component.NewAddress("alice@[127.0.0.1]")}))
}

// TestAddrSpecCommentsGatherBeforeAddress exercises the §4.3.1
// disambiguation productions: CFWS directly adjacent to the '@'
// boundary collapses to comments-only (no WS), and every comment
// gathered from the local-part comes before every comment gathered from
// the domain, regardless of which side of '@' it textually sat on.
func TestAddrSpecCommentsGatherBeforeAddress(t *testing.T) {
	got, err := AddrSpec(`a.b (x) @ (y) example.org`)
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{
		component.NewComment("x"),
		component.NewComment("y"),
		component.NewAddress("a.b@example.org"),
	}))
}

func TestNameAddrBasic(t *testing.T) {
	got, err := NameAddr(`Alice <alice@example.org>`)
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{
		component.NewText("Alice"),
		component.NewWS(),
		component.NewAddress("alice@example.org"),
	}))
}

func TestNameAddrQuotedDisplayName(t *testing.T) {
	got, err := NameAddr(`"Doe, John" <john@example.org>`)
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{
		component.NewText("Doe, John"),
		component.NewWS(),
		component.NewAddress("john@example.org"),
	}))
}

func TestNameAddrLeadingWhitespaceNoDisplayName(t *testing.T) {
	got, err := NameAddr(` <alice@example.org>`)
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{
		component.NewWS(),
		component.NewAddress("alice@example.org"),
	}))
}

func TestNameAddrNoWhitespaceNoDisplayName(t *testing.T) {
	got, err := NameAddr(`<alice@example.org>`)
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{component.NewAddress("alice@example.org")}))
}

func TestNameAddrOrOtherRecoversNonEmailURI(t *testing.T) {
	got, err := NameAddrOrOther(`Alice <not-an-email>`)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, component.Text, got[0].Kind())
	require.Equal(t, component.WS, got[1].Kind())
	require.Equal(t, component.InvalidAddress, got[2].Kind())
	require.Equal(t, []byte("not-an-email"), got[2].Raw())
	require.Error(t, got[2].Err())
}

func TestNameAddrStrictRejectsNonEmailURI(t *testing.T) {
	_, err := NameAddr(`Alice <not-an-email>`)
	require.Error(t, err)
}

func TestAngleAddrOrOtherEmptyBrackets(t *testing.T) {
	got, err := AngleAddrOrOther(`<>`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, component.InvalidAddress, got[0].Kind())
	require.Empty(t, got[0].Raw())
}

func TestAngleAddrStrictRejectsEmptyBrackets(t *testing.T) {
	_, err := AngleAddr(`<>`)
	require.Error(t, err)
}

func TestLocalPartFallsBackToQuotedString(t *testing.T) {
	comments, text, err := newCursor(`"has space"`, defaultOptions()).parseLocalPart()
	require.NoError(t, err)
	require.Empty(t, comments)
	require.Equal(t, "has space", text)
}
