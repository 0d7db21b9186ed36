// Package cellar provides the application logic of the cellar CLI over package manifests in a
// workspace.
package cellar

import (
	"github.com/pkg/errors"

	cfs "github.com/cellar-works/cellar/pkg/fs"
	"github.com/cellar-works/cellar/pkg/manifests"
	"github.com/cellar-works/cellar/pkg/system"
)

// PackagesDirName is the subdirectory of a workspace which contains package manifests.
const PackagesDirName = "packages"

// A Workspace is a directory of package manifests, optionally with a simulated-system
// declaration.
type Workspace struct {
	// FS is a filesystem which contains the workspace's contents.
	FS cfs.PathedFS
}

// OpenWorkspace opens the workspace at the specified directory path.
func OpenWorkspace(dirPath string) (*Workspace, error) {
	if !cfs.DirExists(dirPath) {
		return nil, errors.Errorf("workspace directory %s doesn't exist", dirPath)
	}
	return &Workspace{FS: cfs.DirFS(dirPath)}, nil
}

// SystemContext builds the system context which manifest conditions should be evaluated against:
// the detected host system, overridden by the workspace's simulated-system declaration if one
// exists.
func (w *Workspace) SystemContext() (system.Context, error) {
	host, err := system.DetectHostContext()
	if err != nil {
		return nil, errors.Wrap(err, "couldn't detect the host system")
	}
	if !cfs.FileExists(w.FS, system.SimulationDeclFile) {
		return host, nil
	}

	decl, err := system.LoadSimulationDecl(w.FS, system.SimulationDeclFile)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't load the workspace's simulation declaration")
	}
	if errs := decl.Check(); len(errs) > 0 {
		return nil, errors.Errorf(
			"simulation declaration at %s/%s is invalid: %+v",
			w.FS.Path(), system.SimulationDeclFile, errs,
		)
	}
	simulated, err := decl.Apply(host)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't apply the workspace's simulation declaration")
	}
	return simulated, nil
}

// LoadManifest loads the manifest of the specified package from the workspace's packages
// directory.
func (w *Workspace) LoadManifest(pkgName string) (*manifests.FSManifest, error) {
	pkgsFS, err := w.FS.Sub(PackagesDirName)
	if err != nil {
		return nil, errors.Wrapf(
			err, "couldn't enter directory %s from fs at %s", PackagesDirName, w.FS.Path(),
		)
	}
	return manifests.LoadFSManifest(pkgsFS, pkgName)
}

// LoadManifests loads all package manifests from the workspace's packages directory.
func (w *Workspace) LoadManifests() ([]*manifests.FSManifest, error) {
	pkgsFS, err := w.FS.Sub(PackagesDirName)
	if err != nil {
		return nil, errors.Wrapf(
			err, "couldn't enter directory %s from fs at %s", PackagesDirName, w.FS.Path(),
		)
	}
	return manifests.LoadFSManifests(pkgsFS, "**")
}
