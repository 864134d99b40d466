package localfs

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/filestore"
)

// List walks the storage root depth-first and returns every entry with
// slash-separated paths relative to the root. The root itself is omitted.
func (s *Service) List(ctx context.Context) ([]filestore.ListEntry, error) {
	var entries []filestore.ListEntry

	root := s.resolver.Root()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		entry := filestore.ListEntry{
			Path:       filepath.ToSlash(rel),
			Name:       d.Name(),
			IsDir:      d.IsDir(),
			ModifiedAt: info.ModTime().UTC(),
		}
		if !d.IsDir() {
			entry.SizeBytes = info.Size()
			entry.ContentType = filestore.ClassifyPath(path).MIME
		}

		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, errx.Wrap(err, errx.WithType(errx.T_Internal))
	}

	return entries, nil
}
