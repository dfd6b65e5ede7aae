package platform

import (
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

// pseudoFilesystems are mount types that never hold user data worth
// cleaning or measuring.
var pseudoFilesystems = map[string]bool{
	"proc":       true,
	"sysfs":      true,
	"devtmpfs":   true,
	"devpts":     true,
	"tmpfs":      true,
	"cgroup":     true,
	"cgroup2":    true,
	"overlay":    true,
	"squashfs":   true,
	"autofs":     true,
	"debugfs":    true,
	"tracefs":    true,
	"securityfs": true,
	"devfs":      true,
	"nullfs":     true,
}

// partitionVolumes lists the mount points of physical partitions reported
// by gopsutil, dropping pseudo filesystems. Errors yield an empty list.
func partitionVolumes() []string {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool, len(parts))
	var volumes []string
	for _, p := range parts {
		if pseudoFilesystems[strings.ToLower(p.Fstype)] {
			continue
		}
		if p.Mountpoint == "" || seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true
		volumes = append(volumes, p.Mountpoint)
	}
	sort.Strings(volumes)
	return volumes
}
