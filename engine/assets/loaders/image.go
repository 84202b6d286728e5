// Package loaders holds the built-in asset handlers registered with the
// resource loader. Each handler decodes one asset type; none of them know
// anything about the frame loop.
package loaders

import (
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/lumen3d/lumen/engine/assets"
)

// ImageData is the decoded pixel payload of an image asset, always RGBA.
type ImageData struct {
	Width        uint32
	Height       uint32
	ChannelCount uint8
	Pixels       []uint8
}

type ImageLoader struct{}

func (il *ImageLoader) Load(path string, params interface{}) (*assets.Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	data := &ImageData{
		Width:        uint32(bounds.Dx()),
		Height:       uint32(bounds.Dy()),
		ChannelCount: 4,
		Pixels:       rgba.Pix,
	}

	return &assets.Resource{
		FullPath: path,
		DataSize: uint64(len(rgba.Pix)),
		Data:     data,
	}, nil
}

func (il *ImageLoader) Unload(res *assets.Resource) error {
	res.Data = nil
	res.DataSize = 0
	return nil
}
