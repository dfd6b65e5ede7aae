// Package status reports disk usage for the volumes the cleaner works on
// and the space currently held by the trash.
package status

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/Darnix-a/cleanmypc/internal/core"
	"github.com/Darnix-a/cleanmypc/internal/discovery"
)

// DiskUsage is the usage of the filesystem holding Path.
type DiskUsage struct {
	Path        string  `json:"path"`
	Fstype      string  `json:"fstype"`
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"usedPercent"`
}

// Snapshot is one reading.
type Snapshot struct {
	Host       string      `json:"host"`
	Disks      []DiskUsage `json:"disks"`
	TrashBytes int64       `json:"trashBytes"`
	Collected  time.Time   `json:"collected"`
}

// Free returns the free bytes of the disk holding path, if it was measured.
func (s *Snapshot) Free(path string) (uint64, bool) {
	for _, d := range s.Disks {
		if d.Path == path {
			return d.Free, true
		}
	}
	return 0, false
}

// Collector measures a fixed set of paths.
type Collector struct {
	Host       string
	Paths      []string
	TrashRoots []string
}

// Collect measures every path. Paths that cannot be measured are left out.
func (c *Collector) Collect(ctx context.Context) *Snapshot {
	snap := &Snapshot{
		Host:      c.Host,
		Disks:     []DiskUsage{},
		Collected: time.Now(),
	}

	seen := make(map[string]bool)
	for _, p := range c.Paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true

		u, err := DiskUsageOf(ctx, p)
		if err != nil {
			continue
		}
		snap.Disks = append(snap.Disks, u)
	}

	snap.TrashBytes = trashSize(c.TrashRoots)
	return snap
}

// DiskUsageOf measures the filesystem holding path.
func DiskUsageOf(ctx context.Context, path string) (DiskUsage, error) {
	u, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return DiskUsage{}, err
	}
	return DiskUsage{
		Path:        path,
		Fstype:      u.Fstype,
		Total:       u.Total,
		Used:        u.Used,
		Free:        u.Free,
		UsedPercent: u.UsedPercent,
	}, nil
}

// treeTrashSize sums the trash roots on disk; roots may be globs.
func treeTrashSize(roots []string) int64 {
	var total int64
	finder := discovery.NewFinder(nil, nil)
	for _, r := range roots {
		for _, dir := range finder.FindDirectories([]string{r}, nil) {
			total += core.TreeSize(dir)
		}
	}
	return total
}
