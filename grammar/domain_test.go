package grammar

import (
	"testing"

	"github.com/juga0/useridaddr/component"
	"github.com/stretchr/testify/require"
)

func TestDomainDotAtom(t *testing.T) {
	comments, text, err := newCursor(`example.org`, defaultOptions()).parseDomain()
	require.NoError(t, err)
	require.Empty(t, comments)
	require.Equal(t, "example.org", text)
}

func TestDomainLiteral(t *testing.T) {
	comments, text, err := newCursor(`[127.0.0.1]`, defaultOptions()).parseDomain()
	require.NoError(t, err)
	require.Empty(t, comments)
	require.Equal(t, "[127.0.0.1]", text)
}

func TestDomainLiteralWithCFWS(t *testing.T) {
	comments, text, err := newCursor(`(note) [127.0.0.1]`, defaultOptions()).parseDomain()
	require.NoError(t, err)
	require.True(t, component.Equal(comments, []component.Component{component.NewComment("note")}))
	require.Equal(t, "[127.0.0.1]", text)
}

func TestDomainLiteralBodyEscapesBackslash(t *testing.T) {
	comments, text, err := newCursor(`[a\]b]`, defaultOptions()).parseDomain()
	require.NoError(t, err)
	require.Empty(t, comments)
	require.Equal(t, "[a]b]", text)
}
