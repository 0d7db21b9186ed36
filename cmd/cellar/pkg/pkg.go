package pkg

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cellar-works/cellar/internal/app/cellar"
	fcli "github.com/cellar-works/cellar/internal/app/cellar/cli"
)

// info

func infoAction(c *cli.Context) error {
	pkgName := c.Args().First()
	if pkgName == "" {
		return errors.New("a package name is required")
	}

	workspace, err := cellar.OpenWorkspace(c.String("workspace"))
	if err != nil {
		return err
	}
	ctx, err := workspace.SystemContext()
	if err != nil {
		return err
	}
	manifest, err := workspace.LoadManifest(pkgName)
	if err != nil {
		return errors.Wrapf(err, "couldn't load package %s", pkgName)
	}
	if errs := manifest.Decl.Check(); len(errs) > 0 {
		return errors.Errorf("package %s has invalid declarations: %+v", pkgName, errs)
	}

	if err = fcli.FprintPkgInfo(0, os.Stdout, manifest, ctx); err != nil {
		return err
	}
	if !c.Bool("variations") {
		return nil
	}
	fmt.Println()
	return fcli.FprintPkgVariations(0, os.Stdout, manifest, ctx)
}

// decl

func declAction(c *cli.Context) error {
	pkgName := c.Args().First()
	if pkgName == "" {
		return errors.New("a package name is required")
	}

	workspace, err := cellar.OpenWorkspace(c.String("workspace"))
	if err != nil {
		return err
	}
	manifest, err := workspace.LoadManifest(pkgName)
	if err != nil {
		return errors.Wrapf(err, "couldn't load package %s", pkgName)
	}
	return fcli.IndentedFprintYaml(0, os.Stdout, manifest.Decl)
}

// ls

func lsAction(c *cli.Context) error {
	workspace, err := cellar.OpenWorkspace(c.String("workspace"))
	if err != nil {
		return err
	}
	loaded, err := workspace.LoadManifests()
	if err != nil {
		return errors.Wrap(err, "couldn't load package manifests")
	}
	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].Path() < loaded[j].Path()
	})
	for _, manifest := range loaded {
		fmt.Printf("%s\n", manifest.Path())
	}
	return nil
}

// check

func checkAction(c *cli.Context) error {
	workspace, err := cellar.OpenWorkspace(c.String("workspace"))
	if err != nil {
		return err
	}
	loaded, err := workspace.LoadManifests()
	if err != nil {
		return errors.Wrap(err, "couldn't load package manifests")
	}

	failed := false
	for _, manifest := range loaded {
		errs := manifest.Decl.Check()
		if len(errs) == 0 {
			continue
		}
		failed = true
		fcli.IndentedFprintf(0, os.Stdout, "Package %s:\n", manifest.Path())
		for _, err := range errs {
			fcli.BulletedFprintln(1, os.Stdout, err.Error())
		}
	}
	if failed {
		return errors.New("some package manifests have invalid declarations")
	}
	return nil
}
