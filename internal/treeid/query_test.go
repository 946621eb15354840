package treeid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
	"github.com/mrz1836/roadmap/internal/treeid"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()
	t.Run("valid", func(t *testing.T) {
		for _, in := range []string{"P1", "*", "P1.M*", "P*.M*.E*", "P1.M1.E1.T*"} {
			q, err := treeid.ParseQuery(in)
			require.NoError(t, err, in)
			assert.Equal(t, in, q.String())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, in := range []string{"", "P1.", "P1.M**", "P1.*M", "P*1", "P1.M1.E1.T1.X"} {
			_, err := treeid.ParseQuery(in)
			require.ErrorIs(t, err, roadmaperrors.ErrInvalidFormat, "input %q", in)
		}
	})
}

func TestQuery_Matches(t *testing.T) {
	t.Parallel()
	tests := []struct {
		query     string
		candidate string
		want      bool
	}{
		// Wildcard prefix matches any numeric suffix.
		{"P1.M*", "P1.M1", true},
		{"P1.M*", "P1.M12", true},
		// A query matches its entire subtree.
		{"P1.M*", "P1.M1.E1.T001", true},
		{"P1.M*", "P2.M1", false},
		// Exact segments.
		{"P1", "P1", true},
		{"P1", "P1.M1.E1", true},
		{"P1", "P10", false},
		// Bare star.
		{"*", "P7.M3", true},
		{"*.M1", "P2.M1", true},
		{"*.M1", "P2.M2", false},
		// Candidate shallower than query never matches.
		{"P1.M1.E1", "P1.M1", false},
		{"P1.M1.E1.T00*", "P1.M1.E1.T001", true},
		{"P1.M1.E1.T00*", "P1.M1.E1.T010", false},
	}

	for _, tc := range tests {
		t.Run(tc.query+"~"+tc.candidate, func(t *testing.T) {
			q, err := treeid.ParseQuery(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, q.MatchesString(tc.candidate))
		})
	}
}

func TestQuery_MatchesString_Unparseable(t *testing.T) {
	t.Parallel()
	q, err := treeid.ParseQuery("P1.M*")
	require.NoError(t, err)
	assert.False(t, q.MatchesString(""))
	assert.False(t, q.MatchesString("P1..M1"))
}
