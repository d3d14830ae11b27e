package algebra

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestCanonicalTreesAreStructurallyIdentical uses go-cmp for a full
// tree diff instead of comparing rendered strings, catching any
// divergence in the Expression tree shape that Render might paper over.
func TestCanonicalTreesAreStructurallyIdentical(t *testing.T) {
	require := require.New(t)
	r1, err := NewRule("A+B=6")
	require.NoError(err)
	r2, err := NewRule("B+A=6")
	require.NoError(err)

	if diff := cmp.Diff(r1.Expr, r2.Expr); diff != "" {
		t.Errorf("canonical trees differ despite equal input order (-r1 +r2):\n%s", diff)
	}
}

func TestSubstituteProducesExpectedTreeShape(t *testing.T) {
	require := require.New(t)
	rule, err := NewRule("A+B=C")
	require.NoError(err)
	expressed, err := Express(rule, "A")
	require.NoError(err)

	other, err := NewRule("A+D=10")
	require.NoError(err)
	substituted, err := Substitute(other, "A", expressed.Expr.RHS)
	require.NoError(err)

	want, err := NewRule("D-B=10-C")
	require.NoError(err)

	if diff := cmp.Diff(want.Expr, substituted.Expr); diff != "" {
		t.Errorf("substituted rule has unexpected shape (-want +got):\n%s", diff)
	}
}
