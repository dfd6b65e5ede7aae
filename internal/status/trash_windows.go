package status

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modShell32          = windows.NewLazySystemDLL("shell32.dll")
	procQueryRecycleBin = modShell32.NewProc("SHQueryRecycleBinW")
)

// shQueryRBInfo mirrors SHQUERYRBINFO. Go's natural alignment pads after
// cbSize on amd64, matching the C layout.
type shQueryRBInfo struct {
	cbSize      uint32
	i64Size     int64
	i64NumItems int64
}

// trashSize asks the shell for the recycle bin size across all drives and
// falls back to walking the roots when the call fails.
func trashSize(roots []string) int64 {
	if err := procQueryRecycleBin.Find(); err != nil {
		return treeTrashSize(roots)
	}

	var info shQueryRBInfo
	info.cbSize = uint32(unsafe.Sizeof(info))
	ret, _, _ := procQueryRecycleBin.Call(0, uintptr(unsafe.Pointer(&info)))
	if ret != 0 {
		return treeTrashSize(roots)
	}
	return info.i64Size
}
