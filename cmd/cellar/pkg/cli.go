// Package pkg provides subcommands for querying package manifests in the workspace
package pkg

import (
	"github.com/urfave/cli/v2"
)

var Cmd = &cli.Command{
	Name:  "pkg",
	Usage: "Queries package manifests in the workspace",
	Subcommands: []*cli.Command{
		{
			Name:      "info",
			Aliases:   []string{"show-package"},
			Category:  "Query the workspace",
			Usage:     "Describes a package as resolved for the current or simulated system",
			ArgsUsage: "package_name",
			Action:    infoAction,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "variations",
					Usage: "Also list every variation block and whether it applies",
				},
			},
		},
		{
			Name:      "decl",
			Aliases:   []string{"show-declaration"},
			Category:  "Query the workspace",
			Usage:     "Prints a package's raw manifest declaration",
			ArgsUsage: "package_name",
			Action:    declAction,
		},
		{
			Name:     "ls",
			Aliases:  []string{"list-packages"},
			Category: "Query the workspace",
			Usage:    "Lists the packages in the workspace",
			Action:   lsAction,
		},
		{
			Name:     "check",
			Aliases:  []string{"check-packages"},
			Category: "Query the workspace",
			Usage:    "Checks every package manifest in the workspace for declaration errors",
			Action:   checkAction,
		},
	},
}
