package trash

import (
	"context"
	"path/filepath"
)

// xdgTrash empties an XDG trash directory: discarded content lives under
// files/ and one .trashinfo sidecar per item under info/. Sidecars are
// matched by pattern and deleted on their own; they are not paired with
// their content, so a failure on one side can leave an orphan behind.
type xdgTrash struct {
	tools Tools
}

func (t *xdgTrash) EmptyTrash(ctx context.Context, roots []string) Result {
	var res Result
	for _, root := range expandRoots(t.tools, roots) {
		if ctx.Err() != nil {
			break
		}

		files := filepath.Join(root, "files")
		for _, dir := range t.tools.FindDirectories([]string{files}, nil) {
			purgeTree(ctx, t.tools, dir, &res)
		}

		sidecars := t.tools.FindFiles([]string{filepath.Join(root, "info", "*.trashinfo")}, nil)
		for _, s := range sidecars {
			if ctx.Err() != nil {
				break
			}
			res.add(t.tools.DeleteFile(s))
		}
	}
	return res
}
