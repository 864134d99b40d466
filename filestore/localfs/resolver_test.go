package localfs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/fileserve/filestore"
	"github.com/rise-and-shine/fileserve/filestore/localfs"
)

var testExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// newStorageRoot lays out a storage tree for resolution tests:
//
//	root/
//	  img.png
//	  notes.txt
//	  both.png        (same stem as both.jpg)
//	  both.jpg
//	  nested/pic.jpg
//	outside.txt       (sibling of root, never servable)
func newStorageRoot(t *testing.T) (root, outside string) {
	t.Helper()

	parent := t.TempDir()
	root = filepath.Join(parent, "storage")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0o755))

	writeFile(t, filepath.Join(root, "img.png"), "png-bytes")
	writeFile(t, filepath.Join(root, "notes.txt"), "text-bytes")
	writeFile(t, filepath.Join(root, "both.png"), "png-wins")
	writeFile(t, filepath.Join(root, "both.jpg"), "jpg-loses")
	writeFile(t, filepath.Join(root, "nested", "pic.jpg"), "nested-bytes")

	outside = filepath.Join(parent, "outside.txt")
	writeFile(t, outside, "secret")

	return root, outside
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewResolver(t *testing.T) {
	t.Run("rejects missing root", func(t *testing.T) {
		_, err := localfs.NewResolver(filepath.Join(t.TempDir(), "missing"), testExts)
		assert.Error(t, err)
	})

	t.Run("rejects file as root", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		writeFile(t, file, "x")

		_, err := localfs.NewResolver(file, testExts)
		assert.Error(t, err)
	})

	t.Run("canonicalizes relative roots", func(t *testing.T) {
		root, _ := newStorageRoot(t)

		r, err := localfs.NewResolver(root, testExts)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(r.Root()))
	})
}

func TestResolve(t *testing.T) {
	root, _ := newStorageRoot(t)
	r, err := localfs.NewResolver(root, testExts)
	require.NoError(t, err)

	tests := []struct {
		name      string
		requested string
		wantRel   string // empty means not found
	}{
		{
			name:      "exact match",
			requested: "img.png",
			wantRel:   "img.png",
		},
		{
			name:      "nested file",
			requested: "nested/pic.jpg",
			wantRel:   "nested/pic.jpg",
		},
		{
			name:      "backslash separators are normalized",
			requested: `nested\pic.jpg`,
			wantRel:   "nested/pic.jpg",
		},
		{
			name:      "extension auto-detected",
			requested: "img",
			wantRel:   "img.png",
		},
		{
			name:      "auto-detection picks the first configured extension",
			requested: "both",
			wantRel:   "both.png",
		},
		{
			name:      "no auto-detection when an extension is present",
			requested: "img.jpg",
			wantRel:   "",
		},
		{
			name:      "non-image extensions resolve too",
			requested: "notes.txt",
			wantRel:   "notes.txt",
		},
		{
			name:      "missing file",
			requested: "ghost.png",
			wantRel:   "",
		},
		{
			name:      "missing stem with auto-detection",
			requested: "ghost",
			wantRel:   "",
		},
		{
			name:      "directory is not a file",
			requested: "nested",
			wantRel:   "",
		},
		{
			name:      "parent traversal",
			requested: "../outside.txt",
			wantRel:   "",
		},
		{
			name:      "deep traversal through a valid prefix",
			requested: "nested/../../outside.txt",
			wantRel:   "",
		},
		{
			name:      "absolute path is treated as root-relative",
			requested: "/img.png",
			wantRel:   "img.png",
		},
		{
			name:      "absolute system path",
			requested: "/etc/passwd",
			wantRel:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rf, err := r.Resolve(tc.requested)
			require.NoError(t, err)

			if tc.wantRel == "" {
				assert.Nil(t, rf, "expected a miss")
				return
			}

			require.NotNil(t, rf)
			assert.Equal(t, tc.wantRel, rf.RelativePath)
			assert.True(t, filepath.IsAbs(rf.AbsolutePath))
		})
	}
}

func TestResolveEmptyPath(t *testing.T) {
	root, _ := newStorageRoot(t)
	r, err := localfs.NewResolver(root, testExts)
	require.NoError(t, err)

	for _, requested := range []string{"", "   "} {
		rf, err := r.Resolve(requested)
		require.Error(t, err)
		assert.Nil(t, rf)
		assert.Equal(t, filestore.CodeEmptyPath, errx.AsErrorX(err).Code())
	}
}

func TestResolveSymlinkEscape(t *testing.T) {
	root, outside := newStorageRoot(t)

	// A symlink inside the root pointing outside must behave exactly like a
	// missing file.
	link := filepath.Join(root, "escape.txt")
	require.NoError(t, os.Symlink(outside, link))

	r, err := localfs.NewResolver(root, testExts)
	require.NoError(t, err)

	rf, err := r.Resolve("escape.txt")
	require.NoError(t, err)
	assert.Nil(t, rf)
}

func TestResolveSiblingPrefixRoot(t *testing.T) {
	// Root "/x/storage" must not grant access to "/x/storage-other".
	parent := t.TempDir()
	root := filepath.Join(parent, "storage")
	sibling := filepath.Join(parent, "storage-other")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.MkdirAll(sibling, 0o755))
	writeFile(t, filepath.Join(sibling, "leak.txt"), "secret")

	r, err := localfs.NewResolver(root, testExts)
	require.NoError(t, err)

	rf, err := r.Resolve("../storage-other/leak.txt")
	require.NoError(t, err)
	assert.Nil(t, rf)
}
