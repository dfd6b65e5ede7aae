//go:build !windows

package platform

// Volumes returns the mounted volume roots of the machine.
func Volumes() []string {
	return partitionVolumes()
}
