package manifests

import (
	"io/fs"
	"path"

	"github.com/blang/semver/v4"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	cfs "github.com/cellar-works/cellar/pkg/fs"
	"github.com/cellar-works/cellar/pkg/system"
)

// FSManifest

// LoadFSManifest loads a FSManifest from the specified directory path in the provided base
// filesystem.
func LoadFSManifest(fsys cfs.PathedFS, subdirPath string) (m *FSManifest, err error) {
	m = &FSManifest{}
	if m.FS, err = fsys.Sub(subdirPath); err != nil {
		return nil, errors.Wrapf(
			err, "couldn't enter directory %s from fs at %s", subdirPath, fsys.Path(),
		)
	}
	if m.Manifest.Decl, err = LoadManifestDecl(m.FS, ManifestDeclFile); err != nil {
		return nil, errors.Wrap(err, "couldn't load package declaration")
	}
	return m, nil
}

// LoadFSManifests loads all FSManifests from the provided base filesystem matching the specified
// search pattern. The search pattern should be a [doublestar] pattern, such as `**`, matching
// package directories to search for.
func LoadFSManifests(fsys cfs.PathedFS, searchPattern string) ([]*FSManifest, error) {
	searchPattern = path.Join(searchPattern, ManifestDeclFile)
	declFiles, err := doublestar.Glob(fsys, searchPattern)
	if err != nil {
		return nil, errors.Wrapf(
			err, "couldn't search for package declarations matching %s/%s",
			fsys.Path(), searchPattern,
		)
	}

	loaded := make([]*FSManifest, 0, len(declFiles))
	for _, declFilePath := range declFiles {
		if path.Base(declFilePath) != ManifestDeclFile {
			continue
		}

		manifest, err := LoadFSManifest(fsys, path.Dir(declFilePath))
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't load package from %s", declFilePath)
		}
		loaded = append(loaded, manifest)
	}
	return loaded, nil
}

// Path returns the name of the package declared by the manifest.
func (m *FSManifest) Path() string {
	return m.Decl.Package.Name
}

// ManifestDecl

// LoadManifestDecl loads a ManifestDecl from a specified file path in the provided base
// filesystem.
func LoadManifestDecl(fsys cfs.PathedFS, filePath string) (ManifestDecl, error) {
	bytes, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return ManifestDecl{}, errors.Wrapf(
			err, "couldn't read package declaration file %s/%s", fsys.Path(), filePath,
		)
	}
	decl := ManifestDecl{}
	if err = yaml.Unmarshal(bytes, &decl); err != nil {
		return ManifestDecl{}, errors.Wrap(err, "couldn't parse package declaration")
	}
	return decl, nil
}

// Check looks for errors in the construction of the package declaration.
func (d ManifestDecl) Check() (errs []error) {
	if d.Package.Name == "" {
		errs = append(errs, errors.New("package name is required"))
	}
	if d.Package.Version != "" {
		if _, err := semver.ParseTolerant(d.Package.Version); err != nil {
			errs = append(errs, errors.Wrapf(
				err, "couldn't parse package version %s as a semantic version", d.Package.Version,
			))
		}
	}
	for i, variation := range d.OnSystem {
		errs = append(errs, system.ErrsWrapf(
			variation.Check(), "variation block %d is invalid", i,
		)...)
	}
	return errs
}

// VariationDecl

// Check looks for errors in the construction of the variation block declaration.
func (d VariationDecl) Check() (errs []error) {
	name, err := system.ConditionName(d.When)
	if err != nil {
		return append(errs, err)
	}
	condition, ok := system.Conditions()[name]
	if !ok {
		return append(errs, errors.Wrapf(
			system.ErrInvalidCondition, "unknown condition %s", name,
		))
	}

	switch condition.Kind {
	case system.ConditionCombined:
		if d.Primary == "" || d.MacOS == "" {
			errs = append(errs, errors.Wrapf(
				system.ErrInvalidCondition,
				"composite condition %s requires both a primary OS and a macOS version spec", d.When,
			))
		}
		if d.Qualifier != "" {
			errs = append(errs, errors.Wrapf(
				system.ErrInvalidCondition,
				"composite condition %s carries its qualifier in the macOS version spec", d.When,
			))
		}
	case system.ConditionMacOSVersion:
		switch system.Qualifier(d.Qualifier) {
		case system.QualifierNone, system.QualifierOrNewer, system.QualifierOrOlder:
			break
		default:
			errs = append(errs, errors.Wrapf(
				system.ErrInvalidCondition, "unknown qualifier %s", d.Qualifier,
			))
		}
	default:
		if d.Qualifier != "" {
			errs = append(errs, errors.Wrapf(
				system.ErrInvalidCondition, "condition %s can't have qualifier %s",
				name, d.Qualifier,
			))
		}
	}
	if condition.Kind != system.ConditionCombined && (d.Primary != "" || d.MacOS != "") {
		errs = append(errs, errors.Wrapf(
			system.ErrInvalidCondition,
			"condition %s can't have a primary OS or macOS version spec", name,
		))
	}
	return errs
}

// Met checks whether the variation block's condition holds under the provided context.
func (d VariationDecl) Met(ctx system.Context) (bool, error) {
	name, err := system.ConditionName(d.When)
	if err != nil {
		return false, err
	}
	condition, ok := system.Conditions()[name]
	if !ok {
		return false, errors.Wrapf(system.ErrInvalidCondition, "unknown condition %s", name)
	}
	if condition.Kind == system.ConditionCombined {
		return system.CombinedConditionMet(ctx, system.BaseOS(d.Primary), d.MacOS)
	}
	return condition.Met(ctx, system.Qualifier(d.Qualifier))
}

// Resolution

// Resolve applies the manifest's system-conditional variation blocks which hold under the
// provided context, merging their artifact overrides in declaration order. The load context is
// updated as blocks are applied; any condition-evaluation error indicates a malformed manifest
// and should be treated as fatal by the caller.
func (m Manifest) Resolve(ctx system.Context, loadCtx *LoadContext) (Resolved, error) {
	resolved := Resolved{
		Artifact: m.Decl.Artifact,
	}
	loadCtx.OnSystemBlocksExist = len(m.Decl.OnSystem) > 0
	for i, variation := range m.Decl.OnSystem {
		met, err := variation.Met(ctx)
		if err != nil {
			return Resolved{}, errors.Wrapf(
				err, "couldn't evaluate condition of variation block %d of package %s",
				i, m.Decl.Package.Name,
			)
		}
		if !met {
			continue
		}

		loadCtx.InOnSystemBlock = true
		resolved.Artifact = resolved.Artifact.Override(variation.Artifact)
		resolved.Applied = append(resolved.Applied, variation.When)
		loadCtx.InOnSystemBlock = false
	}
	return resolved, nil
}

// Override returns the artifact with every non-empty field of the provided overrides replacing
// the corresponding field.
func (a ArtifactSpec) Override(overrides ArtifactSpec) ArtifactSpec {
	if overrides.URL != "" {
		a.URL = overrides.URL
	}
	if overrides.SHA256 != "" {
		a.SHA256 = overrides.SHA256
	}
	if overrides.Binary != "" {
		a.Binary = overrides.Binary
	}
	return a
}
