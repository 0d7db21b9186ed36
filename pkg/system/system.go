// Package system determines whether declared system conditions (architecture, base OS, or macOS
// version) hold on the current or simulated system, for gating conditional blocks of package
// manifests.
package system

import (
	"github.com/pkg/errors"
)

// Architecture

// An Architecture is a CPU architecture family which a package manifest can condition on.
type Architecture string

const (
	ArchIntel Architecture = "intel"
	ArchArm   Architecture = "arm"
)

// Architectures lists every recognized architecture.
func Architectures() []Architecture {
	return []Architecture{ArchIntel, ArchArm}
}

// ParseArchitecture parses an architecture name, e.g. from a manifest or a simulation
// declaration.
func ParseArchitecture(name string) (Architecture, error) {
	switch arch := Architecture(name); arch {
	case ArchIntel, ArchArm:
		return arch, nil
	}
	return "", errors.Wrapf(ErrInvalidCondition, "unknown architecture %s", name)
}

// BaseOS

// A BaseOS is a coarse OS family axis, independent of any specific OS version.
type BaseOS string

const (
	MacOS BaseOS = "macos"
	Linux BaseOS = "linux"
)

// BaseOSes lists every recognized base OS.
func BaseOSes() []BaseOS {
	return []BaseOS{MacOS, Linux}
}

// ParseBaseOS parses a base OS name, e.g. from a manifest or a simulation declaration.
func ParseBaseOS(name string) (BaseOS, error) {
	switch base := BaseOS(name); base {
	case MacOS, Linux:
		return base, nil
	}
	return "", errors.Wrapf(ErrInvalidCondition, "unknown base OS %s", name)
}

// Context

// A Context is the ambient system state which conditions are evaluated against. A Context may
// describe the real host or a simulated system; either way it must not be mutated while condition
// evaluation is in progress.
type Context interface {
	// Architecture returns the current architecture.
	Architecture() Architecture
	// BaseOS returns the current base OS.
	BaseOS() BaseOS
	// MacOSVersion returns the current macOS version. Its result is only meaningful when the
	// current base OS is macOS.
	MacOSVersion() MacOSVersion
	// SimulatingOrRunningOn checks whether the system is running the specified base OS, or is
	// simulating it.
	SimulatingOrRunningOn(base BaseOS) bool
	// SimulatingMacOSOnLinux checks whether a Linux system is being treated as macOS for condition
	// evaluation.
	SimulatingMacOSOnLinux() bool
}
