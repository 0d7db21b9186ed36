package system

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidCondition is reported when a declared condition is malformed, e.g. because it names an
// unknown architecture or macOS version. It always indicates a malformed declaration rather than
// an environmental fault, so it should be surfaced as a fatal error for whatever is loading the
// declaration.
var ErrInvalidCondition = errors.New("invalid system condition")

// ConditionDeclPrefix is the prefix of every conditional-block declaration name, e.g. "on_arm".
const ConditionDeclPrefix = "on_"

// ConditionName recovers the bare condition name from a conditional-block declaration name,
// e.g. "arm" from "on_arm".
func ConditionName(declName string) (string, error) {
	name, found := strings.CutPrefix(declName, ConditionDeclPrefix)
	if !found || name == "" {
		return "", errors.Wrapf(
			ErrInvalidCondition, "declaration name %s doesn't have the %s prefix",
			declName, ConditionDeclPrefix,
		)
	}
	return name, nil
}

// ArchConditionMet checks whether the current architecture is the specified architecture.
func ArchConditionMet(ctx Context, arch Architecture) (bool, error) {
	switch arch {
	case ArchIntel, ArchArm:
		return ctx.Architecture() == arch, nil
	}
	return false, errors.Wrapf(ErrInvalidCondition, "unknown architecture %s", arch)
}

// BaseOSConditionMet checks whether the system is running the specified base OS, or is simulating
// it. Base OS conditions carry no version comparison.
func BaseOSConditionMet(ctx Context, base BaseOS) (bool, error) {
	switch base {
	case MacOS, Linux:
		return ctx.SimulatingOrRunningOn(base), nil
	}
	return false, errors.Wrapf(ErrInvalidCondition, "unknown base OS %s", base)
}

// OSConditionMet checks whether the current OS matches the specified OS name, which may be a base
// OS name ("macos" or "linux") or a macOS release name from the registry. A qualifier may only be
// specified with a macOS release name, and loosens the condition into a relative comparison
// against the current release.
func OSConditionMet(ctx Context, name string, qualifier Qualifier) (bool, error) {
	if ctx.SimulatingMacOSOnLinux() {
		// Simulating macOS overrides the Linux condition and satisfies every macOS condition,
		// regardless of which release is requested.
		if name == string(Linux) {
			return false, nil
		}
		if _, ok := MacOSVersionNamed(name); ok || name == string(MacOS) {
			return true, nil
		}
	}
	if name == string(MacOS) || name == string(Linux) {
		return BaseOSConditionMet(ctx, BaseOS(name))
	}

	requested, ok := MacOSVersionNamed(name)
	if !ok {
		return false, errors.Wrapf(ErrInvalidCondition, "unknown OS %s", name)
	}
	switch qualifier {
	case QualifierNone, QualifierOrNewer, QualifierOrOlder:
		break
	default:
		return false, errors.Wrapf(ErrInvalidCondition, "unknown qualifier %s", qualifier)
	}
	if ctx.SimulatingOrRunningOn(Linux) {
		// Linux has no macOS version axis.
		return false, nil
	}

	switch qualifier {
	case QualifierOrNewer:
		return ctx.MacOSVersion().Compare(requested) >= 0, nil
	case QualifierOrOlder:
		return ctx.MacOSVersion().Compare(requested) <= 0, nil
	default:
		return ctx.MacOSVersion().Compare(requested) == 0, nil
	}
}

// CombinedConditionMet checks the composite condition declared by manifests which must branch on
// Linux and a macOS version at once: it holds when the current OS satisfies the macOS version
// spec, or when the system is running (or simulating) Linux at all. Only Linux may be declared as
// the non-macOS branch of the composite condition.
func CombinedConditionMet(ctx Context, primaryOS BaseOS, macOSSpec string) (bool, error) {
	if primaryOS != Linux {
		return false, errors.Wrapf(
			ErrInvalidCondition, "unsupported primary OS %s (only %s is supported)", primaryOS, Linux,
		)
	}
	name, qualifier := ParseMacOSSpec(macOSSpec)
	versionMet, err := OSConditionMet(ctx, name, qualifier)
	if err != nil {
		return false, errors.Wrapf(err, "couldn't evaluate macOS version spec %s", macOSSpec)
	}
	linuxMet, err := BaseOSConditionMet(ctx, Linux)
	if err != nil {
		return false, err
	}
	return versionMet || linuxMet, nil
}
