// Package platform identifies the host operating system family.
//
// A Platform is detected once at process start and passed explicitly to every
// component that branches on the OS.
package platform

import (
	"fmt"
	"runtime"
	"slices"
)

// Platform represents the detected host operating system family.
type Platform string

const (
	// Windows is any Windows host.
	Windows Platform = "windows"

	// MacOS is any Darwin host.
	MacOS Platform = "macos"

	// Linux is any Linux host.
	Linux Platform = "linux"

	// Other covers every remaining GOOS. No install commands or config paths are defined for it.
	Other Platform = "other"
)

// Detect maps a Go OS identifier (as found in runtime.GOOS) to a Platform.
func Detect(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Other
	}
}

// Current returns the Platform of the running process.
func Current() Platform {
	return Detect(runtime.GOOS)
}

// All returns every known Platform in a stable order.
func All() []Platform {
	return []Platform{MacOS, Linux, Windows, Other}
}

// Parse converts a user supplied name into a Platform.
func Parse(name string) (Platform, error) {
	p := Platform(name)
	if !slices.Contains(All(), p) {
		return "", fmt.Errorf("unknown platform '%s'", name)
	}

	return p, nil
}

// LookupCommand returns the executable used to resolve a bare command name on the search path.
func (p Platform) LookupCommand() string {
	if p == Windows {
		return "where"
	}

	return "which"
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	return string(p)
}
