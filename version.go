package updatecheck

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseVersion converts a dotted version string into its (major, minor, patch) triple.
//
// The string is split on "." and each of the first three segments must be a
// non-negative integer. Segments beyond the third are ignored: "1.2.3.4" is 1.2.3.
// Pre-release or build suffixes are not supported and make the segment invalid.
// A single leading "v" is tolerated.
//
// The triple is returned as a *semver.Version without pre-release nor metadata,
// so comparing two parsed versions is a plain lexicographic comparison of the triple.
func ParseVersion(version string) (*semver.Version, error) {
	segments := strings.Split(strings.TrimPrefix(version, "v"), ".")
	if len(segments) < 3 {
		return nil, fmt.Errorf("%w %q: expected 3 segments, found %d", ErrInvalidVersion, version, len(segments))
	}
	var numbers [3]uint64
	for i := range numbers {
		value, err := strconv.ParseUint(segments[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: segment %q is not a number", ErrInvalidVersion, version, segments[i])
		}
		numbers[i] = value
	}
	return semver.New(numbers[0], numbers[1], numbers[2], "", ""), nil
}

// Compare returns +1 when a is greater than b, -1 when b is greater than a and 0 when both are equal.
// Only major, minor and patch are taken into account: pre-release and metadata are dropped.
func Compare(a, b *semver.Version) int {
	return triple(a).Compare(triple(b))
}

// CompareVersions parses both version strings and compares them (see Compare).
// An error wrapping ErrInvalidVersion is returned if either one cannot be parsed.
func CompareVersions(a, b string) (int, error) {
	left, err := ParseVersion(a)
	if err != nil {
		return 0, err
	}
	right, err := ParseVersion(b)
	if err != nil {
		return 0, err
	}
	return Compare(left, right), nil
}

func triple(version *semver.Version) *semver.Version {
	return semver.New(version.Major(), version.Minor(), version.Patch(), "", "")
}
