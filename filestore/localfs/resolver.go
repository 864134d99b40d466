package localfs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/filestore"
)

// Resolver turns client-supplied path strings into safe, canonical on-disk
// paths under a fixed storage root, optionally trying a list of candidate
// extensions when the request omits one.
type Resolver struct {
	// root is the canonical absolute storage root, without trailing
	// separator.
	root string

	// rootPrefix is root plus a trailing separator. The containment check
	// compares against this so a sibling directory sharing the root's name
	// as a prefix (root "/data/files" vs "/data/files-other") can never
	// pass.
	rootPrefix string

	candidateExts []string
}

// NewResolver canonicalizes rootPath and returns a Resolver bound to it.
// The root must exist and be a directory.
func NewResolver(rootPath string, candidateExts []string) (*Resolver, error) {
	abs, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	if !info.IsDir() {
		return nil, errx.New("storage root is not a directory: " + canonical)
	}

	return &Resolver{
		root:          canonical,
		rootPrefix:    canonical + string(os.PathSeparator),
		candidateExts: candidateExts,
	}, nil
}

// Root returns the canonical storage root.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve maps requested to a regular file under the storage root.
//
// It returns (nil, nil) when no file matches. A blocked escape attempt is
// deliberately indistinguishable from a missing file so the response leaks
// nothing about paths outside the root. An error is returned only for an
// empty request.
func (r *Resolver) Resolve(requested string) (*filestore.ResolvedFile, error) {
	if strings.TrimSpace(requested) == "" {
		return nil, errx.New(
			"requested path is empty",
			errx.WithCode(filestore.CodeEmptyPath),
			errx.WithType(errx.T_Validation),
		)
	}

	// Clients use forward slashes regardless of platform; backslashes are
	// normalized so they cannot smuggle separators past the join.
	normalized := filepath.FromSlash(strings.ReplaceAll(requested, "\\", "/"))

	if rf := r.tryCandidate(normalized); rf != nil {
		return rf, nil
	}

	// Extension auto-detection: only when the request has none, in the
	// configured order, first match wins.
	if filepath.Ext(normalized) == "" {
		for _, ext := range r.candidateExts {
			if rf := r.tryCandidate(normalized + ext); rf != nil {
				return rf, nil
			}
		}
	}

	return nil, nil
}

// tryCandidate joins the candidate onto the root, canonicalizes it and
// checks containment plus regular-file existence. It returns nil on any
// miss; textual traversal filtering is not the defense here, the
// canonicalized prefix check is.
func (r *Resolver) tryCandidate(candidate string) *filestore.ResolvedFile {
	joined := filepath.Join(r.root, candidate)

	canonical, err := filepath.EvalSymlinks(joined)
	if err != nil {
		// Missing file or broken symlink: a miss either way.
		return nil
	}

	if !r.contains(canonical) {
		return nil
	}

	info, err := os.Stat(canonical)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}

	rel, err := filepath.Rel(r.root, canonical)
	if err != nil {
		return nil
	}

	return &filestore.ResolvedFile{
		AbsolutePath: canonical,
		RelativePath: filepath.ToSlash(rel),
		Extension:    strings.ToLower(filepath.Ext(canonical)),
	}
}

// contains reports whether the canonical path lies within the storage root.
func (r *Resolver) contains(canonical string) bool {
	return canonical == r.root || strings.HasPrefix(canonical, r.rootPrefix)
}
