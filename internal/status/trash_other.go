//go:build !windows

package status

func trashSize(roots []string) int64 {
	return treeTrashSize(roots)
}
