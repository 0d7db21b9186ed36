package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cellar-works/cellar/pkg/manifests"
	"github.com/cellar-works/cellar/pkg/system"
)

func testManifest() *manifests.FSManifest {
	return &manifests.FSManifest{Manifest: manifests.Manifest{Decl: manifests.ManifestDecl{
		Package: manifests.PkgSpec{
			Name:        "example",
			Version:     "1.2.3",
			Description: "An example package",
			Homepage:    "https://example.org",
			License:     "MIT",
		},
		Artifact: manifests.ArtifactSpec{
			URL:    "https://example.org/example-1.2.3.tar.gz",
			SHA256: "aaaa",
			Binary: "example",
		},
		OnSystem: []manifests.VariationDecl{
			{
				When: "on_arm",
				Artifact: manifests.ArtifactSpec{
					URL: "https://example.org/example-1.2.3-arm.tar.gz",
				},
			},
			{
				When:      "on_ventura",
				Qualifier: "or_newer",
				Artifact:  manifests.ArtifactSpec{Binary: "example-mac"},
			},
		},
	}}}
}

func sonomaArmContext(t *testing.T) system.Context {
	t.Helper()
	version, ok := system.MacOSVersionNamed("sonoma")
	if !ok {
		t.Fatal("sonoma isn't in the macOS version registry")
	}
	return system.SimulateContext(system.ArchArm, system.MacOS, version, false)
}

func TestFprintPkgInfo(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}
	if err := FprintPkgInfo(0, out, testManifest(), sonomaArmContext(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `Package: example
  Version: 1.2.3
  Description:
    An example package
  Homepage: https://example.org
  License: MIT

Artifact:
  URL: https://example.org/example-1.2.3-arm.tar.gz
  SHA-256: aaaa
  Binary: example-mac

Applied variations:
  - on_arm
  - on_ventura
`
	if got := out.String(); got != want {
		t.Errorf("diff (-want +got):\n%+v", cmp.Diff(want, got))
	}
}

func TestFprintPkgInfoWithoutVariations(t *testing.T) {
	t.Parallel()
	manifest := testManifest()
	manifest.Decl.OnSystem = nil
	out := &bytes.Buffer{}
	if err := FprintPkgInfo(0, out, manifest, sonomaArmContext(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `Package: example
  Version: 1.2.3
  Description:
    An example package
  Homepage: https://example.org
  License: MIT

Artifact:
  URL: https://example.org/example-1.2.3.tar.gz
  SHA-256: aaaa
  Binary: example
`
	if got := out.String(); got != want {
		t.Errorf("diff (-want +got):\n%+v", cmp.Diff(want, got))
	}
}

func TestFprintPkgVariations(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}
	if err := FprintPkgVariations(0, out, testManifest(), sonomaArmContext(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `Variations:
  - on_arm (applies)
  - on_ventura (applies)
`
	if got := out.String(); got != want {
		t.Errorf("diff (-want +got):\n%+v", cmp.Diff(want, got))
	}
}

func TestFprintSystemInfo(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}
	FprintSystemInfo(0, out, sonomaArmContext(t))

	want := `System:
  Architecture: arm
  Base OS: macos
  macOS version: sonoma
`
	if got := out.String(); got != want {
		t.Errorf("diff (-want +got):\n%+v", cmp.Diff(want, got))
	}
}
