package platform

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// Describe returns a one-line description of the host, such as
// "linux (ubuntu 24.04, x86_64)". It never fails; missing details are
// replaced by the Go runtime's view of the system.
func Describe(p Platform) string {
	info, err := host.Info()
	if err != nil || info == nil {
		return fmt.Sprintf("%s (%s)", p, runtime.GOARCH)
	}

	name := info.Platform
	if name == "" {
		name = info.OS
	}
	arch := info.KernelArch
	if arch == "" {
		arch = runtime.GOARCH
	}
	if info.PlatformVersion == "" {
		return fmt.Sprintf("%s (%s, %s)", p, name, arch)
	}
	return fmt.Sprintf("%s (%s %s, %s)", p, name, info.PlatformVersion, arch)
}
