// Package host provides subcommands for the system which manifest conditions are evaluated
// against
package host

import (
	"github.com/urfave/cli/v2"
)

var Cmd = &cli.Command{
	Name:  "host",
	Usage: "Queries the current or simulated system",
	Subcommands: []*cli.Command{
		{
			Name:     "show",
			Category: "Query the system",
			Usage:    "Describes the system which manifest conditions are evaluated against",
			Action:   showAction,
		},
		{
			Name:     "ls-cond",
			Aliases:  []string{"list-conditions"},
			Category: "Query the system",
			Usage:    "Lists every condition manifests can declare, and whether it holds",
			Action:   lsCondAction,
		},
	},
}
