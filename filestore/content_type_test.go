package filestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/fileserve/filestore"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		ext      string
		wantMIME string
		wantFmt  filestore.Format
	}{
		{
			name:     "png with dot",
			ext:      ".png",
			wantMIME: filestore.ContentTypePNG,
			wantFmt:  filestore.FormatPNG,
		},
		{
			name:     "png without dot",
			ext:      "png",
			wantMIME: filestore.ContentTypePNG,
			wantFmt:  filestore.FormatPNG,
		},
		{
			name:     "jpg and jpeg share a media type",
			ext:      ".jpg",
			wantMIME: filestore.ContentTypeJPEG,
			wantFmt:  filestore.FormatJPEG,
		},
		{
			name:     "uppercase extension",
			ext:      ".JPEG",
			wantMIME: filestore.ContentTypeJPEG,
			wantFmt:  filestore.FormatJPEG,
		},
		{
			name:     "gif",
			ext:      ".gif",
			wantMIME: filestore.ContentTypeGIF,
			wantFmt:  filestore.FormatGIF,
		},
		{
			name:     "webp is raster but has no encoder",
			ext:      ".webp",
			wantMIME: filestore.ContentTypeWebP,
			wantFmt:  filestore.FormatWebP,
		},
		{
			name:     "svg is not raster",
			ext:      ".svg",
			wantMIME: filestore.ContentTypeSVG,
			wantFmt:  filestore.FormatOther,
		},
		{
			name:     "text",
			ext:      ".txt",
			wantMIME: filestore.ContentTypeText,
			wantFmt:  filestore.FormatOther,
		},
		{
			name:     "unknown extension falls back to octet-stream",
			ext:      ".bin",
			wantMIME: filestore.ContentTypeOctetStream,
			wantFmt:  filestore.FormatOther,
		},
		{
			name:     "empty extension falls back to octet-stream",
			ext:      "",
			wantMIME: filestore.ContentTypeOctetStream,
			wantFmt:  filestore.FormatOther,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mt := filestore.Classify(tc.ext)
			assert.Equal(t, tc.wantMIME, mt.MIME)
			assert.Equal(t, tc.wantFmt, mt.Format)
		})
	}
}

func TestClassifyPath(t *testing.T) {
	assert.Equal(t, filestore.ContentTypePNG, filestore.ClassifyPath("nested/dir/photo.png").MIME)
	assert.Equal(t, filestore.ContentTypeOctetStream, filestore.ClassifyPath("no-extension").MIME)
}

func TestFormatRaster(t *testing.T) {
	assert.True(t, filestore.FormatPNG.Raster())
	assert.True(t, filestore.FormatJPEG.Raster())
	assert.True(t, filestore.FormatGIF.Raster())
	assert.True(t, filestore.FormatWebP.Raster())
	assert.False(t, filestore.FormatOther.Raster())
}

func TestBatchOperationValid(t *testing.T) {
	assert.True(t, filestore.OpRawBase64.Valid())
	assert.True(t, filestore.OpThumbnailBase64.Valid())
	assert.True(t, filestore.OpMobileBase64.Valid())
	assert.False(t, filestore.BatchOperation("delete").Valid())
	assert.False(t, filestore.BatchOperation("").Valid())
}
