package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapedDisplayNamePlainPassesThrough(t *testing.T) {
	got, err := EscapedDisplayName("Alice Smith")
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", got)
}

func TestEscapedDisplayNameQuotesSpecials(t *testing.T) {
	got, err := EscapedDisplayName("Doe, John")
	require.NoError(t, err)
	require.Equal(t, `"Doe, John"`, got)
}

func TestEscapedDisplayNameEscapesQuote(t *testing.T) {
	got, err := EscapedDisplayName(`Say "hi"`)
	require.NoError(t, err)
	require.Equal(t, `"Say \"hi\""`, got)
}

func TestEscapedDisplayNameForcesQuoteOnDoubleSpace(t *testing.T) {
	got, err := EscapedDisplayName("a  b")
	require.NoError(t, err)
	require.Equal(t, `"a  b"`, got)
}

func TestEscapedDisplayNameForcesQuoteOnTrailingSpace(t *testing.T) {
	got, err := EscapedDisplayName("a ")
	require.NoError(t, err)
	require.Equal(t, `"a "`, got)
}

func TestEscapedDisplayNameRejectsRawNewline(t *testing.T) {
	_, err := EscapedDisplayName("a\nb")
	require.Error(t, err)
}

func TestEscapedDisplayNameEscapesBackslash(t *testing.T) {
	got, err := EscapedDisplayName(`C:\temp`)
	require.NoError(t, err)
	require.Equal(t, `"C:\\temp"`, got)

	comps, err := QuotedString(got)
	require.NoError(t, err)
	require.Equal(t, `C:\temp`, comps[0].TextValue())
}

func TestEscapedDisplayNameRoundTripsThroughQuotedString(t *testing.T) {
	escaped, err := EscapedDisplayName(`Doe, "John" (Jr.)`)
	require.NoError(t, err)

	comps, err := QuotedString(escaped)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Equal(t, `Doe, "John" (Jr.)`, comps[0].TextValue())
}
