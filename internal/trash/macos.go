package trash

import "context"

// flatTrash empties `~/.Trash` and per-volume `.Trashes` folders, which
// hold discarded items directly.
type flatTrash struct {
	tools Tools
}

func (t *flatTrash) EmptyTrash(ctx context.Context, roots []string) Result {
	var res Result
	for _, root := range expandRoots(t.tools, roots) {
		if ctx.Err() != nil {
			break
		}
		purgeTree(ctx, t.tools, root, &res)
	}
	return res
}
