package system

import (
	"sort"

	"github.com/pkg/errors"
)

// ConditionKind tags a dispatch-table entry with the axis its condition is evaluated on.
type ConditionKind int

const (
	// ConditionArch is an architecture equality condition.
	ConditionArch ConditionKind = iota
	// ConditionBaseOS is a base OS condition, with no version comparison.
	ConditionBaseOS
	// ConditionMacOSVersion is a macOS version condition, optionally qualified into a relative
	// comparison.
	ConditionMacOSVersion
	// ConditionCombined is the composite Linux-or-macOS-version condition; it carries its own
	// payload, so it's evaluated with [CombinedConditionMet] rather than [Condition.Met].
	ConditionCombined
)

// CombinedConditionName is the dispatch-table name of the composite Linux-or-macOS-version
// condition.
const CombinedConditionName = "system"

// A Condition is a dispatch-table entry for a named condition, tagged with the payload needed to
// evaluate it. Tagging the payload at table-construction time keeps string parsing out of
// condition evaluation.
type Condition struct {
	// Name is the bare condition name, e.g. "arm" for the "on_arm" declaration.
	Name string
	// Kind is the axis the condition is evaluated on.
	Kind ConditionKind
	// Arch is the architecture to check, when Kind is [ConditionArch].
	Arch Architecture
	// Base is the base OS to check, when Kind is [ConditionBaseOS].
	Base BaseOS
	// Version is the macOS release name to check, when Kind is [ConditionMacOSVersion].
	Version string
}

// Conditions builds the dispatch table of every named condition a manifest can declare a
// conditional block on: one entry per architecture, one per base OS, one per macOS release, and
// one for the composite Linux-or-macOS-version condition.
func Conditions() map[string]Condition {
	table := make(map[string]Condition)
	for _, arch := range Architectures() {
		table[string(arch)] = Condition{Name: string(arch), Kind: ConditionArch, Arch: arch}
	}
	for _, base := range BaseOSes() {
		table[string(base)] = Condition{Name: string(base), Kind: ConditionBaseOS, Base: base}
	}
	for _, version := range MacOSVersions() {
		table[version.Name] = Condition{
			Name:    version.Name,
			Kind:    ConditionMacOSVersion,
			Version: version.Name,
		}
	}
	table[CombinedConditionName] = Condition{Name: CombinedConditionName, Kind: ConditionCombined}
	return table
}

// ConditionNames lists the names of every condition in the dispatch table, sorted alphabetically.
func ConditionNames() []string {
	table := Conditions()
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Met checks whether the condition holds under the provided context. The qualifier may only be
// specified for macOS version conditions.
func (c Condition) Met(ctx Context, qualifier Qualifier) (bool, error) {
	switch c.Kind {
	case ConditionArch:
		if qualifier != QualifierNone {
			return false, errors.Wrapf(
				ErrInvalidCondition, "architecture condition %s can't have qualifier %s",
				c.Name, qualifier,
			)
		}
		return ArchConditionMet(ctx, c.Arch)
	case ConditionBaseOS:
		if qualifier != QualifierNone {
			return false, errors.Wrapf(
				ErrInvalidCondition, "base OS condition %s can't have qualifier %s", c.Name, qualifier,
			)
		}
		return BaseOSConditionMet(ctx, c.Base)
	case ConditionMacOSVersion:
		return OSConditionMet(ctx, c.Version, qualifier)
	case ConditionCombined:
		return false, errors.Wrapf(
			ErrInvalidCondition,
			"composite condition %s must be evaluated with its macOS version spec", c.Name,
		)
	}
	return false, errors.Wrapf(ErrInvalidCondition, "unknown condition kind %d", c.Kind)
}
