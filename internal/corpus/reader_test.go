package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadSingleEntry(t *testing.T) {
	require := require.New(t)
	input := "3 2\nA+B=C\nA>B\n"
	specs, err := Read(strings.NewReader(input))
	require.NoError(err)
	require.Len(specs, 1)
	require.Equal(3, specs[0].N)
	require.Equal([]string{"A+B=C", "A>B"}, specs[0].Rules)
}

func TestReadMultipleEntriesWithBlankLinesTolerated(t *testing.T) {
	require := require.New(t)
	input := "\n3 1\nA>B\n\n2 0\n\n4 2\nA=B\nC>D\n"
	specs, err := Read(strings.NewReader(input))
	require.NoError(err)
	require.Len(specs, 3)
	require.Equal(3, specs[0].N)
	require.Equal([]string{"A>B"}, specs[0].Rules)
	require.Equal(2, specs[1].N)
	require.Empty(specs[1].Rules)
	require.Equal(4, specs[2].N)
	require.Equal([]string{"A=B", "C>D"}, specs[2].Rules)
}

func TestReadRejectsMalformedHeader(t *testing.T) {
	require := require.New(t)
	_, err := Read(strings.NewReader("three two\nA>B\n"))
	require.Error(err)
	require.True(ErrMalformed.Is(err))
}

func TestReadRejectsTruncatedEntry(t *testing.T) {
	require := require.New(t)
	_, err := Read(strings.NewReader("3 2\nA>B\n"))
	require.Error(err)
	require.True(ErrMalformed.Is(err))
}
