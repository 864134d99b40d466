package processor_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/fileserve/filestore"
	"github.com/rise-and-shine/fileserve/filestore/processor"
)

// newImage builds a gradient image so lossy encoders have real work to do.
func newImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image, quality int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}))
	return buf.Bytes()
}

func decodeBounds(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestTransformShrinksPreservingAspectRatio(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		maxW, maxH   int
		wantW, wantH int
	}{
		{
			name: "landscape bounded by width",
			srcW: 400, srcH: 200,
			maxW: 150, maxH: 150,
			wantW: 150, wantH: 75,
		},
		{
			name: "portrait bounded by height",
			srcW: 200, srcH: 400,
			maxW: 150, maxH: 150,
			wantW: 75, wantH: 150,
		},
		{
			name: "square",
			srcW: 300, srcH: 300,
			maxW: 150, maxH: 150,
			wantW: 150, wantH: 150,
		},
		{
			name: "asymmetric bounds",
			srcW: 1000, srcH: 500,
			maxW: 800, maxH: 100,
			wantW: 200, wantH: 100,
		},
	}

	p := processor.New()
	mt := filestore.Classify(".png")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := encodePNG(t, newImage(tc.srcW, tc.srcH))

			out, err := p.Transform(src, mt, filestore.DerivativeSpec{
				MaxWidth:  tc.maxW,
				MaxHeight: tc.maxH,
				Quality:   75,
			})
			require.NoError(t, err)

			w, h := decodeBounds(t, out)
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
		})
	}
}

func TestTransformNeverUpscales(t *testing.T) {
	p := processor.New()
	src := encodePNG(t, newImage(100, 50))

	out, err := p.Transform(src, filestore.Classify(".png"), filestore.DerivativeSpec{
		MaxWidth:  150,
		MaxHeight: 150,
		Quality:   75,
	})

	require.NoError(t, err)
	assert.Equal(t, src, out, "an image that already fits must come back byte-identical")
}

func TestTransformExactFitIsUntouched(t *testing.T) {
	p := processor.New()
	src := encodePNG(t, newImage(150, 150))

	out, err := p.Transform(src, filestore.Classify(".png"), filestore.DerivativeSpec{
		MaxWidth:  150,
		MaxHeight: 150,
		Quality:   75,
	})

	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestTransformPassesThroughNonRaster(t *testing.T) {
	p := processor.New()
	src := []byte("just some text, definitely not an image")

	out, err := p.Transform(src, filestore.Classify(".txt"), filestore.DerivativeSpec{
		MaxWidth:  10,
		MaxHeight: 10,
		Quality:   75,
	})

	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestTransformWebPHasNoEncoder(t *testing.T) {
	p := processor.New()

	_, err := p.Transform([]byte("whatever"), filestore.Classify(".webp"), filestore.DerivativeSpec{
		MaxWidth:  150,
		MaxHeight: 150,
		Quality:   75,
	})

	require.Error(t, err)
	assert.Equal(t, filestore.CodeEncodeUnsupported, errx.AsErrorX(err).Code())
}

func TestTransformCorruptImageFails(t *testing.T) {
	p := processor.New()

	_, err := p.Transform([]byte("not a png at all"), filestore.Classify(".png"), filestore.DerivativeSpec{
		MaxWidth:  150,
		MaxHeight: 150,
		Quality:   75,
	})

	require.Error(t, err)
	assert.Equal(t, filestore.CodeTransformFailed, errx.AsErrorX(err).Code())
}

func TestTransformQualityAffectsJPEGSize(t *testing.T) {
	p := processor.New()
	mt := filestore.Classify(".jpg")
	src := encodeJPEG(t, newImage(1200, 900), 95)

	low, err := p.Transform(src, mt, filestore.DerivativeSpec{MaxWidth: 800, MaxHeight: 800, Quality: 10})
	require.NoError(t, err)

	high, err := p.Transform(src, mt, filestore.DerivativeSpec{MaxWidth: 800, MaxHeight: 800, Quality: 95})
	require.NoError(t, err)

	assert.Less(t, len(low), len(high))
}

func TestTransformIsIdempotent(t *testing.T) {
	p := processor.New()
	mt := filestore.Classify(".png")
	spec := filestore.DerivativeSpec{MaxWidth: 150, MaxHeight: 150, Quality: 75}

	src := encodePNG(t, newImage(600, 400))

	once, err := p.Transform(src, mt, spec)
	require.NoError(t, err)

	twice, err := p.Transform(once, mt, spec)
	require.NoError(t, err)

	assert.Equal(t, once, twice, "re-transforming an already-fitting derivative must be a no-op")
}
