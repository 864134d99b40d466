package files_test

import (
	"context"
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/fileserve/files"
	"github.com/rise-and-shine/fileserve/filestore"
	"github.com/rise-and-shine/fileserve/pagination"
)

// fakeStore stubs the Retriever methods a test needs; calling anything else
// panics through the embedded nil interface.
type fakeStore struct {
	filestore.Retriever

	encoded *filestore.EncodedFile
	entries []filestore.ListEntry
	batch   *filestore.BatchResponse

	gotPaths     []string
	gotOp        filestore.BatchOperation
	gotOverrides filestore.DerivativeOverrides
}

func (f *fakeStore) GetBase64(_ context.Context, _ string) (*filestore.EncodedFile, error) {
	return f.encoded, nil
}

func (f *fakeStore) List(_ context.Context) ([]filestore.ListEntry, error) {
	return f.entries, nil
}

func (f *fakeStore) RunBatch(
	_ context.Context,
	paths []string,
	op filestore.BatchOperation,
	o filestore.DerivativeOverrides,
) (*filestore.BatchResponse, error) {
	f.gotPaths = paths
	f.gotOp = op
	f.gotOverrides = o
	return f.batch, nil
}

func TestGetBase64NotFoundMapping(t *testing.T) {
	uc := files.NewGetBase64(&fakeStore{encoded: nil})

	_, err := uc.Execute(context.Background(), &files.GetBase64Input{Path: "ghost.png"})
	require.Error(t, err)

	e := errx.AsErrorX(err)
	assert.Equal(t, files.CodeFileNotFound, e.Code())
	assert.Equal(t, errx.T_NotFound, e.Type())
}

func TestGetBase64Found(t *testing.T) {
	want := &filestore.EncodedFile{FileName: "a.png", ContentType: filestore.ContentTypePNG, Base64: "aGk="}
	uc := files.NewGetBase64(&fakeStore{encoded: want})

	got, err := uc.Execute(context.Background(), &files.GetBase64Input{Path: "a.png"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListFiles(t *testing.T) {
	now := time.Now()
	store := &fakeStore{entries: []filestore.ListEntry{
		{Path: "b.txt", Name: "b.txt", SizeBytes: 2, ModifiedAt: now},
		{Path: "a.txt", Name: "a.txt", SizeBytes: 3, ModifiedAt: now.Add(-time.Hour)},
		{Path: "c.txt", Name: "c.txt", SizeBytes: 1, ModifiedAt: now.Add(time.Hour)},
	}}

	uc := files.NewListFiles(store)

	t.Run("sorted by name", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &files.ListFilesInput{Sort: "name:asc"})
		require.NoError(t, err)

		require.Len(t, resp.PageContent, 3)
		assert.Equal(t, "a.txt", resp.PageContent[0].Name)
		assert.Equal(t, "b.txt", resp.PageContent[1].Name)
		assert.Equal(t, "c.txt", resp.PageContent[2].Name)
		assert.Equal(t, int64(3), resp.TotalCount)
	})

	t.Run("sorted by size descending", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &files.ListFilesInput{Sort: "size_bytes:desc"})
		require.NoError(t, err)

		assert.Equal(t, "a.txt", resp.PageContent[0].Name)
		assert.Equal(t, "c.txt", resp.PageContent[2].Name)
	})

	t.Run("paginated", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &files.ListFilesInput{
			Request: pagination.Request{PageNumber: 2, PageSize: 2},
			Sort:    "name:asc",
		})
		require.NoError(t, err)

		require.Len(t, resp.PageContent, 1)
		assert.Equal(t, "c.txt", resp.PageContent[0].Name)
		assert.Equal(t, 2, resp.PageCount)
		assert.Equal(t, int64(3), resp.TotalCount)
	})

	t.Run("disallowed sort field is ignored", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &files.ListFilesInput{Sort: "password:asc"})
		require.NoError(t, err)
		require.Len(t, resp.PageContent, 3)
		assert.Equal(t, "b.txt", resp.PageContent[0].Name, "original order preserved")
	})
}

func TestBatchFetchForwardsArguments(t *testing.T) {
	store := &fakeStore{batch: &filestore.BatchResponse{TotalRequested: 2}}
	uc := files.NewBatchFetch(store)

	resp, err := uc.Execute(context.Background(), &files.BatchFetchInput{
		Paths:     []string{"a.png", "b.png"},
		Operation: "mobile-base64",
		Width:     200,
		Quality:   50,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalRequested)

	assert.Equal(t, []string{"a.png", "b.png"}, store.gotPaths)
	assert.Equal(t, filestore.OpMobileBase64, store.gotOp)
	assert.Equal(t, filestore.DerivativeOverrides{Width: 200, Quality: 50}, store.gotOverrides)
}
