// Package manifests handles package manifests, including the resolution of their system-
// conditional variation blocks against a current or simulated system.
package manifests

import (
	cfs "github.com/cellar-works/cellar/pkg/fs"
)

// A FSManifest is a package manifest stored at the root of a [fs.FS] filesystem.
type FSManifest struct {
	// Manifest is the package manifest at the root of the filesystem.
	Manifest
	// FS is a filesystem which contains the manifest's contents.
	FS cfs.PathedFS
}

// A Manifest describes a package which can be installed by the tool.
type Manifest struct {
	// Decl is the manifest's declaration.
	Decl ManifestDecl
}

// ManifestDeclFile is the name of the file declaring each package.
const ManifestDeclFile = "cellar-package.yml"

// A ManifestDecl declares a package.
type ManifestDecl struct {
	// Package declares the basic metadata for the package.
	Package PkgSpec `yaml:"package"`
	// Artifact declares the default artifact to install for the package, before any system-
	// conditional variations are applied.
	Artifact ArtifactSpec `yaml:"artifact,omitempty"`
	// OnSystem declares system-conditional variation blocks, applied in declaration order when
	// their conditions hold.
	OnSystem []VariationDecl `yaml:"on-system,omitempty"`
}

// PkgSpec declares the basic metadata for a package.
type PkgSpec struct {
	// Name is the name of the package.
	Name string `yaml:"name"`
	// Version is the version of the software provided by the package, as a semantic version.
	Version string `yaml:"version"`
	// Description is a short description of the package to be shown to users.
	Description string `yaml:"description,omitempty"`
	// Homepage is the URL of the website of the software provided by the package.
	Homepage string `yaml:"homepage,omitempty"`
	// License is an SPDX license expression specifying the licensing terms of the software
	// provided by the package.
	License string `yaml:"license,omitempty"`
}

// An ArtifactSpec declares the artifact to install for a package. In a variation block, any
// non-empty field overrides the corresponding field of the artifact declared so far.
type ArtifactSpec struct {
	// URL is the URL to download the artifact from.
	URL string `yaml:"url,omitempty"`
	// SHA256 is the hex-encoded SHA-256 digest of the artifact.
	SHA256 string `yaml:"sha256,omitempty"`
	// Binary is the name of the executable provided by the artifact.
	Binary string `yaml:"binary,omitempty"`
}

// A VariationDecl declares a system-conditional variation block: artifact overrides gated behind
// a named system condition.
type VariationDecl struct {
	// When is the conditional-block declaration name gating the variation, e.g. "on_arm",
	// "on_macos", "on_sonoma", or "on_system" for the composite Linux-or-macOS-version condition.
	When string `yaml:"when"`
	// Qualifier optionally loosens a macOS version condition into a relative comparison, as
	// "or_newer" or "or_older".
	Qualifier string `yaml:"qualifier,omitempty"`
	// Primary is the non-macOS branch of the composite condition; only "linux" is supported.
	Primary string `yaml:"primary,omitempty"`
	// MacOS is the macOS version spec of the composite condition, e.g. "sonoma_or_newer".
	MacOS string `yaml:"macos,omitempty"`
	// Artifact declares the artifact overrides applied when the condition holds.
	Artifact ArtifactSpec `yaml:"artifact,omitempty"`
}

// A LoadContext tracks the state of a manifest while its variation blocks are being resolved. It
// belongs to whatever is loading the manifest, not to the manifest itself.
type LoadContext struct {
	// OnSystemBlocksExist records whether the manifest declares any system-conditional variation
	// blocks.
	OnSystemBlocksExist bool
	// InOnSystemBlock records whether a system-conditional variation block is currently being
	// applied.
	InOnSystemBlock bool
}

// A Resolved is a manifest's artifact after all applicable system-conditional variations have
// been applied for a particular system.
type Resolved struct {
	// Artifact is the resolved artifact.
	Artifact ArtifactSpec
	// Applied lists the declaration names of the variation blocks which were applied, in
	// declaration order.
	Applied []string
}
