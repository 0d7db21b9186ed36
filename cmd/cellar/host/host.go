package host

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cellar-works/cellar/internal/app/cellar"
	fcli "github.com/cellar-works/cellar/internal/app/cellar/cli"
	"github.com/cellar-works/cellar/pkg/system"
)

// show

func showAction(c *cli.Context) error {
	workspace, err := cellar.OpenWorkspace(c.String("workspace"))
	if err != nil {
		return err
	}
	ctx, err := workspace.SystemContext()
	if err != nil {
		return err
	}
	fcli.FprintSystemInfo(0, os.Stdout, ctx)
	return nil
}

// ls-cond

func lsCondAction(c *cli.Context) error {
	workspace, err := cellar.OpenWorkspace(c.String("workspace"))
	if err != nil {
		return err
	}
	ctx, err := workspace.SystemContext()
	if err != nil {
		return err
	}

	table := system.Conditions()
	for _, name := range system.ConditionNames() {
		condition := table[name]
		if condition.Kind == system.ConditionCombined {
			// The composite condition needs a macOS version spec from a manifest to be evaluated.
			fmt.Printf("%s%s (composite)\n", system.ConditionDeclPrefix, name)
			continue
		}
		met, err := condition.Met(ctx, system.QualifierNone)
		if err != nil {
			return err
		}
		if met {
			fmt.Printf("%s%s (holds)\n", system.ConditionDeclPrefix, name)
		} else {
			fmt.Printf("%s%s\n", system.ConditionDeclPrefix, name)
		}
	}
	return nil
}
