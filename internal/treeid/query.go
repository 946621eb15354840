package treeid

import (
	"strings"

	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

// Query is a wildcard path pattern used to scope operations to a subtree
// of the backlog (e.g. "P1.M*" selects every milestone of phase 1 and
// everything beneath them).
type Query struct {
	segments []string
}

// ParseQuery parses a wildcard path query. Like ParsePath it requires 1-4
// non-empty segments, but each segment may additionally end in exactly one
// trailing "*". A "*" anywhere else in a segment, or more than one per
// segment, is rejected with ErrInvalidFormat.
func ParseQuery(s string) (Query, error) {
	if s == "" {
		return Query{}, roadmaperrors.Wrap(roadmaperrors.ErrInvalidFormat, "empty query")
	}
	segments := strings.Split(s, ".")
	if len(segments) > MaxDepth {
		return Query{}, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidFormat, "query %q has %d segments, maximum is %d", s, len(segments), MaxDepth)
	}
	for _, seg := range segments {
		if seg == "" {
			return Query{}, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidFormat, "query %q has an empty segment", s)
		}
		if n := strings.Count(seg, "*"); n > 1 {
			return Query{}, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidFormat, "query segment %q has multiple wildcards", seg)
		} else if n == 1 && !strings.HasSuffix(seg, "*") {
			return Query{}, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidFormat, "wildcard in %q must be trailing", seg)
		}
	}
	return Query{segments: segments}, nil
}

// String returns the query in its original dotted form.
func (q Query) String() string {
	return strings.Join(q.segments, ".")
}

// Depth returns the number of query segments.
func (q Query) Depth() int {
	return len(q.segments)
}

// Matches reports whether the candidate identifier is selected by the
// query. The candidate must be at least as deep as the query; each query
// segment must equal the candidate segment, be a bare "*", or be a prefix
// followed by "*". Candidate segments beyond the query depth always match,
// so a query selects its entire subtree.
func (q Query) Matches(candidate Identifier) bool {
	if candidate.Depth() < len(q.segments) {
		return false
	}
	for i, seg := range q.segments {
		if !segmentMatches(seg, candidate.Segment(i)) {
			return false
		}
	}
	return true
}

// MatchesString is Matches for a raw identifier string. Unparseable
// candidates never match.
func (q Query) MatchesString(candidate string) bool {
	id, err := ParsePath(candidate)
	if err != nil {
		return false
	}
	return q.Matches(id)
}

func segmentMatches(pattern, segment string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(segment, prefix)
	}
	return pattern == segment
}
