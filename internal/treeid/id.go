// Package treeid implements the hierarchical identifier and path-query
// scheme used to address backlog entities.
//
// Identifiers are dotted paths of one to four segments. Depth alone
// determines the entity kind: one segment is a phase, two a milestone,
// three an epic, four a task (e.g. "P1", "P1.M2", "P1.M2.E1",
// "P1.M2.E1.T003"). Bugs and ideas live outside the hierarchy and use
// flat "B###"/"I###" identifiers.
//
// This package performs no I/O and has no knowledge of the tree contents;
// it only parses, constructs and compares identifiers.
package treeid

import (
	"regexp"
	"strconv"
	"strings"

	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

// Kind identifies the entity level an identifier addresses.
type Kind string

// Kind constants, one per hierarchy level.
const (
	KindPhase     Kind = "phase"
	KindMilestone Kind = "milestone"
	KindEpic      Kind = "epic"
	KindTask      Kind = "task"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// Depth returns the number of segments an identifier of this kind has.
// Returns 0 for an unknown kind.
func (k Kind) Depth() int {
	switch k {
	case KindPhase:
		return 1
	case KindMilestone:
		return 2
	case KindEpic:
		return 3
	case KindTask:
		return 4
	default:
		return 0
	}
}

// KindAtDepth returns the Kind for a segment count of 1-4, or "" otherwise.
func KindAtDepth(depth int) Kind {
	switch depth {
	case 1:
		return KindPhase
	case 2:
		return KindMilestone
	case 3:
		return KindEpic
	case 4:
		return KindTask
	default:
		return ""
	}
}

// MaxDepth is the deepest identifier level (task).
const MaxDepth = 4

// Level grammar patterns. These validate the exact on-disk identifier
// forms; ParsePath deliberately does NOT apply them, because depth, not
// segment content, decides the kind. The consistency checker uses them to
// flag malformed ids.
var (
	phasePattern     = regexp.MustCompile(`^P\d+$`)
	milestonePattern = regexp.MustCompile(`^P\d+\.M\d+$`)
	epicPattern      = regexp.MustCompile(`^P\d+\.M\d+\.E\d+$`)
	taskPattern      = regexp.MustCompile(`^P\d+\.M\d+\.E\d+\.T\d+$`)
	bugPattern       = regexp.MustCompile(`^B\d+$`)
	ideaPattern      = regexp.MustCompile(`^I\d+$`)
	segmentNumber    = regexp.MustCompile(`^[A-Z]+(\d+)$`)
)

// Identifier is an ordered dotted path of 1-4 segments addressing a
// phase, milestone, epic or task. The zero value is invalid.
type Identifier struct {
	segments []string
}

// ParsePath parses a dotted identifier string. It requires 1-4 non-empty
// segments and preserves their order. Returns ErrInvalidFormat otherwise.
func ParsePath(s string) (Identifier, error) {
	if s == "" {
		return Identifier{}, roadmaperrors.Wrap(roadmaperrors.ErrInvalidFormat, "empty identifier")
	}
	segments := strings.Split(s, ".")
	if len(segments) > MaxDepth {
		return Identifier{}, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidFormat, "identifier %q has %d segments, maximum is %d", s, len(segments), MaxDepth)
	}
	for _, seg := range segments {
		if seg == "" {
			return Identifier{}, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidFormat, "identifier %q has an empty segment", s)
		}
	}
	return Identifier{segments: segments}, nil
}

// MustParsePath is ParsePath for identifiers known to be valid, typically
// in tests and constants. It panics on error.
func MustParsePath(s string) Identifier {
	id, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the dotted form of the identifier.
func (id Identifier) String() string {
	return strings.Join(id.segments, ".")
}

// IsZero reports whether the identifier is the invalid zero value.
func (id Identifier) IsZero() bool {
	return len(id.segments) == 0
}

// Depth returns the number of segments.
func (id Identifier) Depth() int {
	return len(id.segments)
}

// Kind returns the entity kind implied by the identifier's depth.
func (id Identifier) Kind() Kind {
	return KindAtDepth(len(id.segments))
}

// Segment returns the segment at the given zero-based index.
func (id Identifier) Segment(i int) string {
	return id.segments[i]
}

// Leaf returns the last segment.
func (id Identifier) Leaf() string {
	return id.segments[len(id.segments)-1]
}

// Parent returns the identifier with the last segment dropped, and true.
// A depth-1 identifier has no parent; ok is false.
func (id Identifier) Parent() (Identifier, bool) {
	if len(id.segments) <= 1 {
		return Identifier{}, false
	}
	parent := make([]string, len(id.segments)-1)
	copy(parent, id.segments[:len(id.segments)-1])
	return Identifier{segments: parent}, true
}

// WithChild appends a segment for the given kind. The identifier's depth
// must be exactly one less than the kind's depth; otherwise
// ErrInvalidHierarchy is returned.
func (id Identifier) WithChild(kind Kind, segment string) (Identifier, error) {
	if segment == "" {
		return Identifier{}, roadmaperrors.Wrap(roadmaperrors.ErrInvalidFormat, "empty child segment")
	}
	if kind.Depth() == 0 {
		return Identifier{}, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidHierarchy, "unknown kind %q", kind)
	}
	if len(id.segments) != kind.Depth()-1 {
		return Identifier{}, roadmaperrors.Wrapf(roadmaperrors.ErrInvalidHierarchy,
			"cannot add %s segment to depth-%d identifier %q", kind, len(id.segments), id)
	}
	child := make([]string, len(id.segments)+1)
	copy(child, id.segments)
	child[len(id.segments)] = segment
	return Identifier{segments: child}, nil
}

// Equal reports whether two identifiers have identical segments.
func (id Identifier) Equal(other Identifier) bool {
	if len(id.segments) != len(other.segments) {
		return false
	}
	for i := range id.segments {
		if id.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// HasAncestor reports whether ancestor is a strict prefix of id.
func (id Identifier) HasAncestor(ancestor Identifier) bool {
	if len(ancestor.segments) >= len(id.segments) {
		return false
	}
	for i := range ancestor.segments {
		if id.segments[i] != ancestor.segments[i] {
			return false
		}
	}
	return true
}

// ValidPhaseID reports whether s matches the exact phase grammar P<n>.
func ValidPhaseID(s string) bool { return phasePattern.MatchString(s) }

// ValidMilestoneID reports whether s matches the exact milestone grammar
// P<n>.M<n>.
func ValidMilestoneID(s string) bool { return milestonePattern.MatchString(s) }

// ValidEpicID reports whether s matches the exact epic grammar
// P<n>.M<n>.E<n>.
func ValidEpicID(s string) bool { return epicPattern.MatchString(s) }

// ValidTaskID reports whether s matches the exact task grammar
// P<n>.M<n>.E<n>.T<n>.
func ValidTaskID(s string) bool { return taskPattern.MatchString(s) }

// IsBugID reports whether s is a flat bug identifier (B###).
func IsBugID(s string) bool { return bugPattern.MatchString(s) }

// IsIdeaID reports whether s is a flat idea identifier (I###).
func IsIdeaID(s string) bool { return ideaPattern.MatchString(s) }

// BareSegment reports whether s is a lone segment of the given kind
// ("M1" for milestones, "E2" for epics, "T004" for tasks). Dependency
// lists may use these abbreviated forms; they are resolved against the
// owner's scope before lookup.
func BareSegment(kind Kind, s string) bool {
	p, ok := barePatterns[kind]
	if !ok {
		return false
	}
	return p.MatchString(s)
}

var barePatterns = map[Kind]*regexp.Regexp{
	KindPhase:     regexp.MustCompile(`^P\d+$`),
	KindMilestone: regexp.MustCompile(`^M\d+$`),
	KindEpic:      regexp.MustCompile(`^E\d+$`),
	KindTask:      regexp.MustCompile(`^T\d+$`),
}

// SegmentNumber extracts the numeric suffix of a segment such as "T003"
// or "E12". Returns the number and true, or 0 and false when the segment
// has no numeric suffix.
func SegmentNumber(segment string) (int, bool) {
	m := segmentNumber.FindStringSubmatch(segment)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatSegment renders the canonical segment for a kind and number:
// phases P<n>, milestones M<n>, epics E<n>, tasks T<n> zero-padded to
// three digits.
func FormatSegment(kind Kind, n int) string {
	switch kind {
	case KindPhase:
		return "P" + strconv.Itoa(n)
	case KindMilestone:
		return "M" + strconv.Itoa(n)
	case KindEpic:
		return "E" + strconv.Itoa(n)
	case KindTask:
		return "T" + pad3(n)
	default:
		return strconv.Itoa(n)
	}
}

func pad3(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
