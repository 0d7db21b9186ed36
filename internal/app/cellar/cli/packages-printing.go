package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/cellar-works/cellar/pkg/manifests"
	"github.com/cellar-works/cellar/pkg/system"
)

// FprintPkgInfo prints the package's metadata and its artifact as resolved for the provided
// system context, noting which variation blocks were applied.
func FprintPkgInfo(
	indent int, out io.Writer, manifest *manifests.FSManifest, ctx system.Context,
) error {
	loadCtx := manifests.LoadContext{}
	resolved, err := manifest.Resolve(ctx, &loadCtx)
	if err != nil {
		return errors.Wrapf(err, "couldn't resolve package %s", manifest.Decl.Package.Name)
	}

	FprintPkgSpec(indent, out, manifest.Decl.Package)
	_, _ = fmt.Fprintln(out)
	fprintArtifact(indent, out, resolved.Artifact)

	if !loadCtx.OnSystemBlocksExist {
		return nil
	}
	_, _ = fmt.Fprintln(out)
	IndentedFprint(indent, out, "Applied variations:")
	if len(resolved.Applied) == 0 {
		_, _ = fmt.Fprint(out, " (none)")
	}
	_, _ = fmt.Fprintln(out)
	for _, declName := range resolved.Applied {
		BulletedFprintln(indent+1, out, declName)
	}
	return nil
}

// FprintPkgSpec prints the basic metadata of a package.
func FprintPkgSpec(indent int, out io.Writer, spec manifests.PkgSpec) {
	IndentedFprintf(indent, out, "Package: %s\n", spec.Name)
	indent++

	IndentedFprintf(indent, out, "Version: %s\n", spec.Version)
	if spec.Description != "" {
		IndentedFprint(indent, out, "Description:\n")
		IndentedFprintWrapped(indent+1, out, spec.Description)
	}
	if spec.Homepage != "" {
		IndentedFprintf(indent, out, "Homepage: %s\n", spec.Homepage)
	}
	if spec.License != "" {
		IndentedFprintf(indent, out, "License: %s\n", spec.License)
	} else {
		IndentedFprint(indent, out, "License: (custom license)\n")
	}
}

func fprintArtifact(indent int, out io.Writer, artifact manifests.ArtifactSpec) {
	IndentedFprint(indent, out, "Artifact:\n")
	indent++

	IndentedFprintf(indent, out, "URL: %s\n", artifact.URL)
	IndentedFprintf(indent, out, "SHA-256: %s\n", artifact.SHA256)
	IndentedFprintf(indent, out, "Binary: %s\n", artifact.Binary)
}

// FprintPkgVariations prints the package's declared variation blocks, noting for each one whether
// its condition holds under the provided system context.
func FprintPkgVariations(
	indent int, out io.Writer, manifest *manifests.FSManifest, ctx system.Context,
) error {
	IndentedFprint(indent, out, "Variations:")
	if len(manifest.Decl.OnSystem) == 0 {
		_, _ = fmt.Fprint(out, " (none)")
	}
	_, _ = fmt.Fprintln(out)
	for i, variation := range manifest.Decl.OnSystem {
		met, err := variation.Met(ctx)
		if err != nil {
			return errors.Wrapf(
				err, "couldn't evaluate condition of variation block %d of package %s",
				i, manifest.Decl.Package.Name,
			)
		}
		if met {
			BulletedFprintf(indent+1, out, "%s (applies)\n", variation.When)
		} else {
			BulletedFprintln(indent+1, out, variation.When)
		}
	}
	return nil
}
