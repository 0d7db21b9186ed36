package cli

import (
	"io"

	"github.com/cellar-works/cellar/pkg/system"
)

// FprintSystemInfo prints the system context which manifest conditions are evaluated against.
func FprintSystemInfo(indent int, out io.Writer, ctx system.Context) {
	IndentedFprint(indent, out, "System:\n")
	indent++

	IndentedFprintf(indent, out, "Architecture: %s\n", ctx.Architecture())
	IndentedFprintf(indent, out, "Base OS: %s\n", ctx.BaseOS())
	if ctx.SimulatingOrRunningOn(system.MacOS) && ctx.MacOSVersion().Name != "" {
		IndentedFprintf(indent, out, "macOS version: %s\n", ctx.MacOSVersion())
	}
	if ctx.SimulatingMacOSOnLinux() {
		IndentedFprint(indent, out, "Simulating macOS on Linux\n")
	}
}
