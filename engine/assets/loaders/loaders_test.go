package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credits.txt")
	require.NoError(t, os.WriteFile(path, []byte("thanks for playing"), 0o644))

	res, err := (&TextLoader{}).Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "thanks for playing", res.Data)
	assert.Equal(t, uint64(18), res.DataSize)

	require.NoError(t, (&TextLoader{}).Unload(res))
	assert.Nil(t, res.Data)
}

func TestBinaryLoaderRaw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	res, err := (&BinaryLoader{}).Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, payload, res.Data)
	assert.Equal(t, uint64(4), res.DataSize)
}

func TestBinaryLoaderDecompressesLZ4(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.lz4")
	payload := []byte("compress me, but do it losslessly")

	f, err := os.Create(path)
	require.NoError(t, err)
	w := lz4.NewWriter(f)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	res, err := (&BinaryLoader{}).Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, payload, res.Data)
}

func TestImageLoaderDecodesPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pixel.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	res, err := (&ImageLoader{}).Load(path, nil)
	require.NoError(t, err)

	data, ok := res.Data.(*ImageData)
	require.True(t, ok)
	assert.Equal(t, uint32(2), data.Width)
	assert.Equal(t, uint32(1), data.Height)
	assert.Equal(t, uint8(4), data.ChannelCount)
	require.Len(t, data.Pixels, 8)
	assert.Equal(t, uint8(255), data.Pixels[0])
	assert.Equal(t, uint8(255), data.Pixels[6])
}

func TestLoadersFailOnMissingFiles(t *testing.T) {
	_, err := (&TextLoader{}).Load("does/not/exist.txt", nil)
	assert.Error(t, err)

	_, err = (&BinaryLoader{}).Load("does/not/exist.bin", nil)
	assert.Error(t, err)

	_, err = (&ImageLoader{}).Load("does/not/exist.png", nil)
	assert.Error(t, err)
}
