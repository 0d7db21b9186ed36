package cellar

import (
	"os"
	"path/filepath"
	"testing"

	cfs "github.com/cellar-works/cellar/pkg/fs"
	"github.com/cellar-works/cellar/pkg/system"
)

const testManifestDecl = `package:
  name: example
  version: 1.2.3
artifact:
  url: https://example.org/example-1.2.3.tar.gz
`

const testSimulationDecl = `arch: arm
os: linux
simulate-macos: true
`

func writeTestWorkspace(t *testing.T, simulate bool) string {
	t.Helper()
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, PackagesDirName, "example")
	if err := cfs.EnsureExists(pkgDir); err != nil {
		t.Fatalf("couldn't make package dir: %v", err)
	}
	declPath := filepath.Join(pkgDir, "cellar-package.yml")
	if err := os.WriteFile(declPath, []byte(testManifestDecl), 0o644); err != nil {
		t.Fatalf("couldn't write package declaration: %v", err)
	}
	if simulate {
		simPath := filepath.Join(dir, system.SimulationDeclFile)
		if err := os.WriteFile(simPath, []byte(testSimulationDecl), 0o644); err != nil {
			t.Fatalf("couldn't write simulation declaration: %v", err)
		}
	}
	return dir
}

func TestOpenWorkspace(t *testing.T) {
	t.Parallel()
	if _, err := OpenWorkspace(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for a missing workspace directory")
	}

	workspace, err := OpenWorkspace(writeTestWorkspace(t, false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := workspace.LoadManifests()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := len(loaded), 1; got != want {
		t.Fatalf("got %d manifests, want %d", got, want)
	}
	if got, want := loaded[0].Path(), "example"; got != want {
		t.Errorf("got package name %s, want %s", got, want)
	}

	manifest, err := workspace.LoadManifest("example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := manifest.Decl.Package.Version, "1.2.3"; got != want {
		t.Errorf("got package version %s, want %s", got, want)
	}
}

func TestWorkspaceSystemContextSimulated(t *testing.T) {
	t.Parallel()
	workspace, err := OpenWorkspace(writeTestWorkspace(t, true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, err := workspace.SystemContext()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := ctx.Architecture(), system.ArchArm; got != want {
		t.Errorf("got architecture %s, want %s", got, want)
	}
	if got, want := ctx.BaseOS(), system.Linux; got != want {
		t.Errorf("got base OS %s, want %s", got, want)
	}
	if !ctx.SimulatingMacOSOnLinux() {
		t.Error("context should be simulating macOS on Linux")
	}
	if !ctx.SimulatingOrRunningOn(system.MacOS) {
		t.Error("context should be simulating or running on macOS")
	}
	if ctx.SimulatingOrRunningOn(system.Linux) {
		t.Error("context shouldn't count as Linux while simulating macOS")
	}
}
