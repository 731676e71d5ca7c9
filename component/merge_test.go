package component

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeCollapsesAdjacentText(t *testing.T) {
	in := []Component{NewText("Alice"), NewText(" "), NewText("Smith")}
	out := Merge(in)
	require.Equal(t, []Component{NewText("Alice Smith")}, out)
}

func TestMergeDropsDuplicateWS(t *testing.T) {
	in := []Component{NewWS(), NewWS(), NewText("x"), NewWS(), NewWS()}
	out := Merge(in)
	require.Equal(t, []Component{NewWS(), NewText("x"), NewWS()}, out)
}

func TestMergeIsIdempotent(t *testing.T) {
	// spec §8 property 2.
	cases := [][]Component{
		nil,
		{NewText("a")},
		{NewText("a"), NewText("b"), NewWS(), NewWS(), NewComment("c")},
		{NewWS(), NewAddress("a@b"), NewInvalidAddress(errors.New("bad"), []byte("ssh://x"))},
	}

	for _, c := range cases {
		once := Merge(c)
		twice := Merge(once)
		require.True(t, Equal(once, twice))
	}
}

func TestConcatFlattensAndMerges(t *testing.T) {
	out := Concat(One(NewText("a")), nil, []Component{NewText("b"), NewWS()}, One(NewWS()))
	require.Equal(t, []Component{NewText("ab"), NewWS()}, out)
}

func TestInvalidAddressPayload(t *testing.T) {
	err := errors.New("boom")
	c := NewInvalidAddress(err, []byte("ssh://host"))
	require.Equal(t, InvalidAddress, c.Kind())
	require.Equal(t, err, c.Err())
	require.Equal(t, []byte("ssh://host"), c.Raw())
}
