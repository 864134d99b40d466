package files

import (
	"cmp"
	"context"
	"strings"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/filestore"
	"github.com/rise-and-shine/fileserve/pagination"
	"github.com/rise-and-shine/fileserve/sorter"
)

// listSortFields are the fields a listing may be sorted by.
var listSortFields = []string{"path", "name", "size_bytes", "modified_at"}

// ListFilesInput carries optional sorting and pagination for a recursive
// listing of the storage root.
type ListFilesInput struct {
	pagination.Request

	// Sort is a comma-separated list of field:direction pairs,
	// e.g. "name:asc,modified_at:desc".
	Sort string `query:"sort" json:"sort,omitempty"`
}

// ListFiles walks the storage root and returns a sorted, paginated listing.
type ListFiles struct {
	store filestore.Retriever
}

func NewListFiles(store filestore.Retriever) *ListFiles {
	return &ListFiles{store: store}
}

func (uc *ListFiles) OperationID() string {
	return "files.list"
}

func (uc *ListFiles) Execute(
	ctx context.Context,
	in *ListFilesInput,
) (*pagination.Response[filestore.ListEntry], error) {
	entries, err := uc.store.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	opts := sorter.MakeFromStr(in.Sort, listSortFields...)
	sorter.Apply(entries, opts, compareListEntries)

	in.Request.Normalize()
	page := pagination.Paginate(entries, in.Request)

	resp := pagination.NewResponse(page, int64(len(entries)), in.Request)
	return &resp, nil
}

func compareListEntries(a, b filestore.ListEntry, field string) int {
	switch field {
	case "path":
		return strings.Compare(a.Path, b.Path)
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "size_bytes":
		return cmp.Compare(a.SizeBytes, b.SizeBytes)
	case "modified_at":
		return a.ModifiedAt.Compare(b.ModifiedAt)
	default:
		return 0
	}
}
