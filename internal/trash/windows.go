package trash

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/Darnix-a/cleanmypc/internal/log"
)

// recycleBin empties `<drive>\$Recycle.Bin` roots. Each per-user folder
// (named after the user's SID) is an opaque container: its contents are
// purged but the folder itself stays, since windows owns and re-ACLs it.
type recycleBin struct {
	tools Tools
}

func (b *recycleBin) EmptyTrash(ctx context.Context, roots []string) Result {
	logger := log.WithComponent("trash").With(slog.String("layout", "recycle-bin"))

	var res Result
	for _, root := range expandRoots(b.tools, roots) {
		if ctx.Err() != nil {
			break
		}
		// Listed through the finder so exclusions apply to direct children too.
		entries := []string{filepath.Join(root, "*")}
		containers := b.tools.FindDirectories(entries, nil)
		loose := b.tools.FindFiles(entries, nil)
		logger.Debug("emptying", "root", root, "containers", len(containers))

		for _, c := range containers {
			purgeTree(ctx, b.tools, c, &res)
		}
		for _, f := range loose {
			res.add(b.tools.DeleteFile(f))
		}
	}
	return res
}
