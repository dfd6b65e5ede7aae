//go:build windows

package platform

import (
	"os"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

// win32LogicalDisk mirrors the subset of Win32_LogicalDisk we query.
type win32LogicalDisk struct {
	DeviceID  string
	DriveType uint32
}

// driveTypeLocalDisk is Win32_LogicalDisk.DriveType for fixed local disks.
const driveTypeLocalDisk = 3

// Volumes returns the roots of all fixed local drives (e.g. `C:\`).
// WMI is asked first; gopsutil and finally an A-Z probe are fallbacks.
func Volumes() []string {
	var disks []win32LogicalDisk
	q := "SELECT DeviceID, DriveType FROM Win32_LogicalDisk WHERE DriveType = 3"
	if err := wmi.Query(q, &disks); err == nil && len(disks) > 0 {
		var roots []string
		for _, d := range disks {
			if d.DriveType != driveTypeLocalDisk || d.DeviceID == "" {
				continue
			}
			roots = append(roots, strings.ToUpper(d.DeviceID)+`\`)
		}
		if len(roots) > 0 {
			return roots
		}
	}

	if roots := partitionVolumes(); len(roots) > 0 {
		return roots
	}
	return probeDriveLetters()
}

// probeDriveLetters checks A: through Z: for an accessible root directory.
func probeDriveLetters() []string {
	var roots []string
	for c := 'A'; c <= 'Z'; c++ {
		root := string(c) + `:\`
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}
		roots = append(roots, root)
	}
	return roots
}
