package system

import (
	"io/fs"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	cfs "github.com/cellar-works/cellar/pkg/fs"
)

// SimulatedContext

// A SimulatedContext is a Context with some aspects of a base context overridden, for evaluating
// conditions against a system other than the real one. Overrides are applied during construction;
// afterwards the context is safe for concurrent reads.
type SimulatedContext struct {
	arch          Architecture
	base          BaseOS
	version       MacOSVersion
	simulateMacOS bool
}

// SimulatedContext: Context

func (s *SimulatedContext) Architecture() Architecture {
	return s.arch
}

func (s *SimulatedContext) BaseOS() BaseOS {
	return s.base
}

func (s *SimulatedContext) MacOSVersion() MacOSVersion {
	return s.version
}

func (s *SimulatedContext) SimulatingOrRunningOn(base BaseOS) bool {
	switch base {
	case MacOS:
		return s.base == MacOS || s.simulateMacOS
	case Linux:
		return s.base == Linux && !s.simulateMacOS
	}
	return false
}

func (s *SimulatedContext) SimulatingMacOSOnLinux() bool {
	return s.base == Linux && s.simulateMacOS
}

// SimulationDecl

// SimulationDeclFile is the name of the file declaring a simulated system for a workspace.
const SimulationDeclFile = "cellar-system.yml"

// A SimulationDecl declares overrides of the real system for condition evaluation, so manifests
// can be checked against systems other than the one the tool is running on.
type SimulationDecl struct {
	// Arch is the architecture to simulate, if non-empty.
	Arch string `yaml:"arch,omitempty"`
	// OS is the base OS to simulate, if non-empty.
	OS string `yaml:"os,omitempty"`
	// MacOSVersion is the name of the macOS release to simulate, if non-empty.
	MacOSVersion string `yaml:"macos-version,omitempty"`
	// SimulateMacOS treats a Linux system as macOS for condition evaluation.
	SimulateMacOS bool `yaml:"simulate-macos,omitempty"`
}

// LoadSimulationDecl loads a SimulationDecl from a specified file path in the provided base
// filesystem.
func LoadSimulationDecl(fsys cfs.PathedFS, filePath string) (SimulationDecl, error) {
	bytes, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return SimulationDecl{}, errors.Wrapf(
			err, "couldn't read simulation declaration file %s/%s", fsys.Path(), filePath,
		)
	}
	decl := SimulationDecl{}
	if err = yaml.Unmarshal(bytes, &decl); err != nil {
		return SimulationDecl{}, errors.Wrap(err, "couldn't parse simulation declaration")
	}
	return decl, nil
}

// Check looks for errors in the construction of the simulation declaration.
func (d SimulationDecl) Check() (errs []error) {
	if d.Arch != "" {
		if _, err := ParseArchitecture(d.Arch); err != nil {
			errs = append(errs, err)
		}
	}
	if d.OS != "" {
		if _, err := ParseBaseOS(d.OS); err != nil {
			errs = append(errs, err)
		}
	}
	if d.MacOSVersion != "" {
		if _, ok := MacOSVersionNamed(d.MacOSVersion); !ok {
			errs = append(errs, errors.Wrapf(
				ErrInvalidCondition, "unknown macOS version %s", d.MacOSVersion,
			))
		}
	}
	if d.SimulateMacOS && d.OS == string(MacOS) {
		errs = append(errs, errors.New("simulate-macos only applies when simulating linux"))
	}
	return errs
}

// Apply builds a SimulatedContext overriding the provided base context with the declared
// simulation.
func (d SimulationDecl) Apply(base Context) (*SimulatedContext, error) {
	simulated := &SimulatedContext{
		arch:          base.Architecture(),
		base:          base.BaseOS(),
		version:       base.MacOSVersion(),
		simulateMacOS: base.SimulatingMacOSOnLinux(),
	}
	var err error
	if d.Arch != "" {
		if simulated.arch, err = ParseArchitecture(d.Arch); err != nil {
			return nil, err
		}
	}
	if d.OS != "" {
		if simulated.base, err = ParseBaseOS(d.OS); err != nil {
			return nil, err
		}
	}
	if d.MacOSVersion != "" {
		version, ok := MacOSVersionNamed(d.MacOSVersion)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidCondition, "unknown macOS version %s", d.MacOSVersion)
		}
		simulated.version = version
	}
	if d.SimulateMacOS {
		simulated.simulateMacOS = true
	}
	return simulated, nil
}

// SimulateContext builds a SimulatedContext directly from its aspects, e.g. for tests.
func SimulateContext(
	arch Architecture, base BaseOS, version MacOSVersion, simulateMacOS bool,
) *SimulatedContext {
	return &SimulatedContext{
		arch:          arch,
		base:          base,
		version:       version,
		simulateMacOS: simulateMacOS,
	}
}
