package system

import (
	"os/exec"
	"strings"

	"github.com/containerd/platforms"
	"github.com/pkg/errors"
)

// A HostContext is a Context describing the real system the tool is running on. It simulates
// nothing.
type HostContext struct {
	arch    Architecture
	base    BaseOS
	version MacOSVersion
}

// DetectHostContext detects the architecture, base OS, and (on macOS) OS version of the system
// the tool is running on.
func DetectHostContext() (*HostContext, error) {
	platform := platforms.Normalize(platforms.DefaultSpec())

	host := &HostContext{}
	switch platform.Architecture {
	case "amd64":
		host.arch = ArchIntel
	case "arm64":
		host.arch = ArchArm
	default:
		return nil, errors.Errorf("unsupported architecture %s", platform.Architecture)
	}
	switch platform.OS {
	case "darwin":
		host.base = MacOS
	case "linux":
		host.base = Linux
	default:
		return nil, errors.Errorf("unsupported OS %s", platform.OS)
	}

	if host.base == MacOS {
		release, err := detectMacOSRelease()
		if err != nil {
			return nil, errors.Wrap(err, "couldn't detect macOS release")
		}
		if host.version, err = MacOSVersionForRelease(release); err != nil {
			return nil, err
		}
	}
	return host, nil
}

func detectMacOSRelease() (string, error) {
	out, err := exec.Command("/usr/bin/sw_vers", "-productVersion").Output()
	if err != nil {
		return "", errors.Wrap(err, "couldn't run sw_vers")
	}
	return strings.TrimSpace(string(out)), nil
}

// HostContext: Context

func (h *HostContext) Architecture() Architecture {
	return h.arch
}

func (h *HostContext) BaseOS() BaseOS {
	return h.base
}

func (h *HostContext) MacOSVersion() MacOSVersion {
	return h.version
}

func (h *HostContext) SimulatingOrRunningOn(base BaseOS) bool {
	return h.base == base
}

func (h *HostContext) SimulatingMacOSOnLinux() bool {
	return false
}
