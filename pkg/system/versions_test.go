package system

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMacOSVersionsOrdering(t *testing.T) {
	t.Parallel()
	versions := MacOSVersions()
	for i := 1; i < len(versions); i++ {
		older, newer := versions[i-1], versions[i]
		if older.Compare(newer) >= 0 {
			t.Errorf("%s should be ordered before %s", older.Name, newer.Name)
		}
		if newer.Compare(older) <= 0 {
			t.Errorf("%s should be ordered after %s", newer.Name, older.Name)
		}
	}
	for _, version := range versions {
		if version.Compare(version) != 0 {
			t.Errorf("%s should compare equal to itself", version.Name)
		}
	}
}

func TestMacOSVersionNamed(t *testing.T) {
	t.Parallel()
	for _, version := range MacOSVersions() {
		named, ok := MacOSVersionNamed(version.Name)
		if !ok {
			t.Errorf("registry version %s should be found by name", version.Name)
		}
		if !cmp.Equal(named, version) {
			t.Errorf("diff (-want +got):\n%+v", cmp.Diff(version, named))
		}
	}
	if _, ok := MacOSVersionNamed("snow_leopard"); ok {
		t.Error("unregistered version name shouldn't be found")
	}
}

var checkMacOSVersionForReleaseTests = map[string]struct {
	release string
	result  string
	fails   bool
}{
	"sonoma point release":  {release: "14.5", result: "sonoma"},
	"sonoma base release":   {release: "14.0", result: "sonoma"},
	"sequoia release":       {release: "15.1", result: "sequoia"},
	"tahoe release":         {release: "26.0", result: "tahoe"},
	"catalina release":      {release: "10.15.7", result: "catalina"},
	"el capitan release":    {release: "10.11.6", result: "el_capitan"},
	"unknown 10.x release":  {release: "10.6.8", fails: true},
	"unknown major release": {release: "99.0", fails: true},
	"unparseable release":   {release: "next", fails: true},
}

func TestMacOSVersionForRelease(t *testing.T) {
	t.Parallel()
	for name, test := range checkMacOSVersionForReleaseTests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			version, err := MacOSVersionForRelease(test.release)
			if test.fails {
				if err == nil {
					t.Errorf("expected error, got %s", version.Name)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if version.Name != test.result {
				t.Errorf("got %s, want %s", version.Name, test.result)
			}
		})
	}
}

var checkParseMacOSSpecTests = map[string]struct {
	spec      string
	result    string
	qualifier Qualifier
}{
	"bare version":     {spec: "sonoma", result: "sonoma", qualifier: QualifierNone},
	"or newer":         {spec: "ventura_or_newer", result: "ventura", qualifier: QualifierOrNewer},
	"or older":         {spec: "sequoia_or_older", result: "sequoia", qualifier: QualifierOrOlder},
	"underscored name": {spec: "big_sur_or_newer", result: "big_sur", qualifier: QualifierOrNewer},
	"unknown name":     {spec: "snow_leopard", result: "snow_leopard", qualifier: QualifierNone},
}

func TestParseMacOSSpec(t *testing.T) {
	t.Parallel()
	for name, test := range checkParseMacOSSpecTests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			gotName, gotQualifier := ParseMacOSSpec(test.spec)
			if gotName != test.result || gotQualifier != test.qualifier {
				t.Errorf(
					"got (%s, %s), want (%s, %s)", gotName, gotQualifier, test.result, test.qualifier,
				)
			}
			// Splitting must be lossless.
			rejoined := gotName
			if gotQualifier != QualifierNone {
				rejoined = fmt.Sprintf("%s_%s", gotName, gotQualifier)
			}
			if rejoined != test.spec {
				t.Errorf("rejoined spec %s doesn't reproduce %s", rejoined, test.spec)
			}
		})
	}
}

func TestParseArchitecture(t *testing.T) {
	t.Parallel()
	for _, arch := range Architectures() {
		parsed, err := ParseArchitecture(string(arch))
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if parsed != arch {
			t.Errorf("got %s, want %s", parsed, arch)
		}
	}
	if _, err := ParseArchitecture("sparc"); !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("expected ErrInvalidCondition, got %v", err)
	}
}

func TestParseBaseOS(t *testing.T) {
	t.Parallel()
	for _, base := range BaseOSes() {
		parsed, err := ParseBaseOS(string(base))
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if parsed != base {
			t.Errorf("got %s, want %s", parsed, base)
		}
	}
	if _, err := ParseBaseOS("windows"); !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("expected ErrInvalidCondition, got %v", err)
	}
}
