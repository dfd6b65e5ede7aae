package clean

import (
	"time"

	"github.com/Darnix-a/cleanmypc/internal/analyze"
)

// TaskID names a cleanup task.
type TaskID string

const (
	TaskTemp       TaskID = "temp"
	TaskCache      TaskID = "cache"
	TaskBrowsers   TaskID = "browsers"
	TaskTrash      TaskID = "trash"
	TaskDownloads  TaskID = "downloads"
	TaskLargeFiles TaskID = "large-files"
)

// AllTasks is the fixed execution order.
var AllTasks = []TaskID{TaskTemp, TaskCache, TaskBrowsers, TaskTrash, TaskDownloads, TaskLargeFiles}

// Title is the task's display name.
func (id TaskID) Title() string {
	switch id {
	case TaskTemp:
		return "Temporary files"
	case TaskCache:
		return "Application caches"
	case TaskBrowsers:
		return "Browser caches"
	case TaskTrash:
		return "Trash"
	case TaskDownloads:
		return "Downloads"
	case TaskLargeFiles:
		return "Large files"
	default:
		return string(id)
	}
}

// Result is the outcome of one task invocation. It is not modified after
// the task returns.
type Result struct {
	Task           TaskID              `json:"task"`
	FilesDeleted   int                 `json:"filesDeleted"`
	SpaceSaved     int64               `json:"spaceSaved"`
	FilesOrganized int                 `json:"filesOrganized,omitempty"`
	LargeFiles     []analyze.LargeFile `json:"largeFiles,omitempty"`
	Errors         []string            `json:"errors"`
	Duration       time.Duration       `json:"-"`
}

// Summary totals a run. It is derived from the results, never stored.
type Summary struct {
	TotalFiles     int   `json:"totalFiles"`
	TotalSpace     int64 `json:"totalSpace"`
	TotalOrganized int   `json:"totalOrganized"`
	TotalErrors    int   `json:"totalErrors"`
}

// Summarize adds up results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.TotalFiles += r.FilesDeleted
		s.TotalSpace += r.SpaceSaved
		s.TotalOrganized += r.FilesOrganized
		s.TotalErrors += len(r.Errors)
	}
	return s
}
