package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeSVG(t *testing.T) {
	doc := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#ff0000"/></svg>`)

	img, err := RasterizeSVG(doc, 20, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())

	r, g, _, a := img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Zero(t, g)
	assert.Equal(t, uint32(0xFFFF), a)

	_, err = RasterizeSVG(doc, 0, 10)
	assert.Error(t, err)
}

func TestDefaultAssets(t *testing.T) {
	opts, err := DefaultOptionBrowserAssets(nil)
	require.NoError(t, err)
	assert.Equal(t, 552, opts.Background.Width())
	assert.Equal(t, 30, opts.EntryOver.Height())
	assert.Equal(t, 24, opts.Scrollbar.ArrowUp.Width())
	assert.NotEmpty(t, opts.ClickSound.Data())

	saves, err := DefaultSaveBrowserAssets(nil)
	require.NoError(t, err)
	assert.Equal(t, 240, saves.Entry.Width())
	assert.Equal(t, 80, saves.EntryOver.Height())
	assert.Equal(t, 64, saves.Preview.Width())
	assert.NotEmpty(t, saves.HoverSound.Data())
}
