package system

import (
	"strings"

	"github.com/blang/semver/v4"
	"github.com/pkg/errors"
)

// MacOSVersion

// A MacOSVersion is a named macOS release from the fixed registry of releases known to this tool.
// Versions are ordered by release recency, so they can be compared against each other.
type MacOSVersion struct {
	// Name is the release's condition name, e.g. "sonoma".
	Name string
	// Version is the numeric version of the release's earliest build, used for ordering releases.
	Version semver.Version
}

// macOSVersions is the registry of known macOS releases, ordered from oldest to newest.
var macOSVersions = []MacOSVersion{
	{Name: "el_capitan", Version: semver.Version{Major: 10, Minor: 11}},
	{Name: "sierra", Version: semver.Version{Major: 10, Minor: 12}},
	{Name: "high_sierra", Version: semver.Version{Major: 10, Minor: 13}},
	{Name: "mojave", Version: semver.Version{Major: 10, Minor: 14}},
	{Name: "catalina", Version: semver.Version{Major: 10, Minor: 15}},
	{Name: "big_sur", Version: semver.Version{Major: 11}},
	{Name: "monterey", Version: semver.Version{Major: 12}},
	{Name: "ventura", Version: semver.Version{Major: 13}},
	{Name: "sonoma", Version: semver.Version{Major: 14}},
	{Name: "sequoia", Version: semver.Version{Major: 15}},
	{Name: "tahoe", Version: semver.Version{Major: 26}},
}

// MacOSVersions lists every macOS release in the registry, ordered from oldest to newest.
func MacOSVersions() []MacOSVersion {
	versions := make([]MacOSVersion, len(macOSVersions))
	copy(versions, macOSVersions)
	return versions
}

// MacOSVersionNamed looks up a macOS release in the registry by its condition name.
func MacOSVersionNamed(name string) (MacOSVersion, bool) {
	for _, version := range macOSVersions {
		if version.Name == name {
			return version, true
		}
	}
	return MacOSVersion{}, false
}

// MacOSVersionForRelease looks up the macOS release which a numeric release string, such as the
// output of `sw_vers -productVersion`, belongs to.
func MacOSVersionForRelease(release string) (MacOSVersion, error) {
	parsed, err := semver.ParseTolerant(release)
	if err != nil {
		return MacOSVersion{}, errors.Wrapf(
			err, "couldn't parse macOS release %s as a version", release,
		)
	}
	for _, version := range macOSVersions {
		if version.Version.Major != parsed.Major {
			continue
		}
		// Pre-Big Sur releases are distinguished by minor version rather than major version.
		if parsed.Major == 10 && version.Version.Minor != parsed.Minor {
			continue
		}
		return version, nil
	}
	return MacOSVersion{}, errors.Errorf("macOS release %s is not a known release", release)
}

// Compare compares the version against another version, returning -1 when the version is older,
// 0 when the versions are the same release, and +1 when the version is newer.
func (v MacOSVersion) Compare(other MacOSVersion) int {
	return v.Version.Compare(other.Version)
}

func (v MacOSVersion) String() string {
	return v.Name
}

// Qualifier

// A Qualifier loosens a macOS version condition into a relative comparison against the declared
// release.
type Qualifier string

const (
	// QualifierNone requires the current release to be exactly the declared release.
	QualifierNone Qualifier = ""
	// QualifierOrNewer requires the current release to be the declared release or a newer one.
	QualifierOrNewer Qualifier = "or_newer"
	// QualifierOrOlder requires the current release to be the declared release or an older one.
	QualifierOrOlder Qualifier = "or_older"
)

// ParseMacOSSpec splits a macOS version spec string, such as "ventura" or "sonoma_or_newer", into
// the release name and the qualifier suffixed to it (if any). The release name is not checked
// against the registry; condition evaluation checks it.
func ParseMacOSSpec(spec string) (name string, qualifier Qualifier) {
	for _, qualifier := range []Qualifier{QualifierOrNewer, QualifierOrOlder} {
		if name, found := strings.CutSuffix(spec, "_"+string(qualifier)); found {
			return name, qualifier
		}
	}
	return spec, QualifierNone
}
