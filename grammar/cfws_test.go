package grammar

import (
	"testing"

	"github.com/juga0/useridaddr/component"
	"github.com/stretchr/testify/require"
)

func TestCfwsPureWhitespaceFoldsToWS(t *testing.T) {
	got, err := Cfws(" \t ")
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{component.NewWS()}))
}

func TestCfwsCommentFoldsWithBracketingWS(t *testing.T) {
	got, err := Cfws("(hi)")
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{
		component.NewWS(),
		component.NewComment("hi"),
		component.NewWS(),
	}))
}

func TestCfwsMultipleCommentsSeparatedByWS(t *testing.T) {
	got, err := Cfws("(a) (b)")
	require.NoError(t, err)
	require.True(t, component.Equal(got, []component.Component{
		component.NewWS(),
		component.NewComment("a"),
		component.NewWS(),
		component.NewComment("b"),
		component.NewWS(),
	}))
}

func TestCommentFlattensNestedComment(t *testing.T) {
	got, err := Comment("(outer (inner) tail)")
	require.NoError(t, err)
	require.Equal(t, component.NewComment("outer (inner) tail"), got[0])
}

func TestCommentFoldsInternalFWS(t *testing.T) {
	got, err := Comment("(a\r\n b)")
	require.NoError(t, err)
	require.Equal(t, "a b", got[0].TextValue())
}

func TestCommentQuotedPairEscapesOnlyOneWSPByte(t *testing.T) {
	// The backslash escapes exactly the first space; the other two are
	// ordinary FWS and fold to a single space, so "a" and "b" end up
	// separated by two space characters, not four.
	got, err := Comment("(a\\   b)")
	require.NoError(t, err)
	require.Equal(t, "a  b", got[0].TextValue())
}

func TestCommentRespectsMaxDepth(t *testing.T) {
	_, err := Comment("(((deep)))", WithMaxCommentDepth(2))
	require.Error(t, err)
	var tooDeep *ErrCommentTooDeep
	require.ErrorAs(t, err, &tooDeep)
}

func TestCommentNestingWithinDefaultDepth(t *testing.T) {
	_, err := Comment("(((((deep)))))")
	require.NoError(t, err)
}
