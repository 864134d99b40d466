package localfs

import (
	"os"
	"path/filepath"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/filestore"
)

// describe stats a resolved file and builds its metadata. Existence was
// already confirmed by resolution, so a stat failure here is a race with
// deletion or a permission change and surfaces as an internal error.
func describe(rf *filestore.ResolvedFile) (*filestore.FileMetadata, error) {
	info, err := os.Stat(rf.AbsolutePath)
	if err != nil {
		return nil, errx.Wrap(err,
			errx.WithCode(filestore.CodeReadFailed),
			errx.WithType(errx.T_Internal),
		)
	}

	mt := filestore.Classify(rf.Extension)

	modified := info.ModTime().UTC()

	return &filestore.FileMetadata{
		Path:        rf.RelativePath,
		Name:        filepath.Base(rf.AbsolutePath),
		SizeBytes:   info.Size(),
		ContentType: mt.MIME,
		// File birth time is not portable; the modification time stands in.
		CreatedAt:  modified,
		ModifiedAt: modified,
	}, nil
}
