package downloads

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darnix-a/cleanmypc/internal/config"
	"github.com/Darnix-a/cleanmypc/internal/core"
	"github.com/Darnix-a/cleanmypc/internal/discovery"
)

var twoCategories = config.Categories{
	{Name: "Images", Extensions: []string{".jpg"}},
	{Name: "Documents", Extensions: []string{".pdf"}},
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, filepath.FromSlash(n))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(n), 0o644))
	}
}

func names(t *testing.T, dir string) []string {
	t.Helper()
	des, err := os.ReadDir(dir)
	require.NoError(t, err)
	out := make([]string, 0, len(des))
	for _, de := range des {
		out = append(out, de.Name())
	}
	return out
}

func TestOrganizeMovesByCategory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, dir, "photo.jpg", "report.pdf", "note")

	errs := &core.Errors{}
	res := New(twoCategories, false, nil, errs).Organize(context.Background(), dir)

	assert.Equal(t, 2, res.Organized())
	assert.Zero(t, errs.Len())
	assert.FileExists(t, filepath.Join(dir, "Images", "photo.jpg"))
	assert.FileExists(t, filepath.Join(dir, "Documents", "report.pdf"))
	assert.FileExists(t, filepath.Join(dir, "note"))
	assert.NoFileExists(t, filepath.Join(dir, "photo.jpg"))
}

func TestOrganizeSkipsHiddenUnknownAndFolders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, dir, ".hidden.jpg", "song.mp3", "trailing.", "album/inner.jpg")

	res := New(twoCategories, false, nil, nil).Organize(context.Background(), dir)

	assert.Zero(t, res.Organized())
	assert.ElementsMatch(t, []string{".hidden.jpg", "song.mp3", "trailing.", "album"}, names(t, dir))
	assert.FileExists(t, filepath.Join(dir, "album", "inner.jpg"))
}

func TestOrganizeMatchesExtensionCaseInsensitively(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, dir, "SCAN.PDF")

	res := New(twoCategories, false, nil, nil).Organize(context.Background(), dir)

	require.Equal(t, 1, res.Organized())
	assert.Equal(t, "Documents", res.Moves[0].Category)
	assert.FileExists(t, filepath.Join(dir, "Documents", "SCAN.PDF"))
}

func TestOrganizeFirstMatchWins(t *testing.T) {
	t.Parallel()

	cats := config.Categories{
		{Name: "Code", Extensions: []string{".json"}},
		{Name: "Documents", Extensions: []string{".json", ".pdf"}},
	}
	dir := t.TempDir()
	touch(t, dir, "data.json")

	res := New(cats, false, nil, nil).Organize(context.Background(), dir)

	require.Equal(t, 1, res.Organized())
	assert.Equal(t, "Code", res.Moves[0].Category)
}

func TestOrganizeResolvesCollisions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, dir, "photo.jpg", "Images/photo.jpg", "Images/photo (1).jpg")

	res := New(twoCategories, false, nil, nil).Organize(context.Background(), dir)

	require.Equal(t, 1, res.Organized())
	assert.Equal(t, filepath.Join(dir, "Images", "photo (2).jpg"), res.Moves[0].To)
	assert.ElementsMatch(t, []string{"photo.jpg", "photo (1).jpg", "photo (2).jpg"}, names(t, filepath.Join(dir, "Images")))
}

func TestOrganizeDryRunChangesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, dir, "photo.jpg", "report.pdf", "Images/photo.jpg")

	res := New(twoCategories, true, nil, nil).Organize(context.Background(), dir)

	assert.Equal(t, 2, res.Organized())
	assert.Equal(t, filepath.Join(dir, "Images", "photo (1).jpg"), res.Moves[0].To)
	assert.ElementsMatch(t, []string{"photo.jpg", "report.pdf", "Images"}, names(t, dir))
	assert.NoDirExists(t, filepath.Join(dir, "Documents"))
}

func TestOrganizeIsDeterministic(t *testing.T) {
	t.Parallel()

	run := func() []string {
		dir := t.TempDir()
		touch(t, dir, "b.jpg", "a.pdf", "c.jpg", "Images/c.jpg", "x.bin")
		res := New(twoCategories, false, nil, nil).Organize(context.Background(), dir)

		var out []string
		for _, m := range res.Moves {
			r, err := filepath.Rel(dir, m.To)
			require.NoError(t, err)
			out = append(out, filepath.ToSlash(r))
		}
		return out
	}

	first := run()
	assert.Equal(t, []string{"Documents/a.pdf", "Images/b.jpg", "Images/c (1).jpg"}, first)
	assert.Equal(t, first, run())
}

func TestOrganizeHonorsExclusions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, dir, "keep-me.jpg", "move.jpg")

	filter := discovery.NewFinder([]string{"keep-me"}, nil)
	res := New(twoCategories, false, filter, nil).Organize(context.Background(), dir)

	assert.Equal(t, 1, res.Organized())
	assert.FileExists(t, filepath.Join(dir, "keep-me.jpg"))
}

func TestOrganizeMissingFolder(t *testing.T) {
	t.Parallel()

	errs := &core.Errors{}
	res := New(twoCategories, false, nil, errs).Organize(context.Background(), filepath.Join(t.TempDir(), "nope"))

	assert.Zero(t, res.Organized())
	assert.Zero(t, errs.Len())
}

func TestUniqueName(t *testing.T) {
	t.Parallel()

	taken := map[string]bool{
		filepath.Join("d", "a.tar.gz"):     true,
		filepath.Join("d", "a.tar (1).gz"): true,
	}
	got := UniqueName("d", "a.tar.gz", func(p string) bool { return taken[p] })
	assert.Equal(t, filepath.Join("d", "a.tar (2).gz"), got)

	assert.Equal(t, filepath.Join("d", "free.txt"), UniqueName("d", "free.txt", func(string) bool { return false }))
}
