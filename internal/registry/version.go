package registry

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// versionPattern is the only accepted API version shape: "major.minor".
var versionPattern = regexp.MustCompile(`^([0-9]+)\.([0-9]+)$`)

// Version is an API version of the form "major.minor". The zero value is
// invalid; invalid versions must never participate in ordering.
type Version struct {
	sem   *semver.Version
	valid bool
}

// ParseVersion parses a "major.minor" version string.
func ParseVersion(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("invalid version %q: want major.minor", s)
	}
	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("parsing version %q: %w", s, err)
	}
	return Version{sem: sv, valid: true}, nil
}

// MustVersion is ParseVersion for literals in defaults and tests.
func MustVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Valid reports whether the version was parsed successfully.
func (v Version) Valid() bool { return v.valid }

// Major returns the major component of a valid version.
func (v Version) Major() int {
	if !v.valid {
		return 0
	}
	return int(v.sem.Major())
}

// Minor returns the minor component of a valid version.
func (v Version) Minor() int {
	if !v.valid {
		return 0
	}
	return int(v.sem.Minor())
}

// Compare returns -1, 0, or 1 as v is older than, equal to, or newer
// than o. Both versions must be valid.
func (v Version) Compare(o Version) int {
	return v.sem.Compare(o.sem)
}

// String returns "major.minor", or "<invalid>" for the zero value.
func (v Version) String() string {
	if !v.valid {
		return "<invalid>"
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}
