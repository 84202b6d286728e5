package loaders

import (
	"github.com/fzipp/bmfont"

	"github.com/lumen3d/lumen/engine/assets"
)

type FontGlyph struct {
	Codepoint rune
	X, Y      uint16
	Width     uint16
	Height    uint16
	XOffset   int16
	YOffset   int16
	XAdvance  int16
	PageID    uint8
}

type FontKerning struct {
	Codepoint0 rune
	Codepoint1 rune
	Amount     int16
}

type BitmapFontPage struct {
	ID   int8
	File string
}

// BitmapFontData is the decoded payload of a .fnt bitmap font asset.
type BitmapFontData struct {
	Face       string
	Size       uint32
	LineHeight int32
	Baseline   int32
	AtlasSizeX int32
	AtlasSizeY int32
	Glyphs     []*FontGlyph
	Kernings   []*FontKerning
	Pages      []*BitmapFontPage
}

type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string, params interface{}) (*assets.Resource, error) {
	font, err := bmfont.Load(path)
	if err != nil {
		return nil, err
	}

	data := &BitmapFontData{
		Face:       font.Descriptor.Info.Face,
		Size:       uint32(font.Descriptor.Info.Size),
		LineHeight: int32(font.Descriptor.Common.LineHeight),
		Baseline:   int32(font.Descriptor.Common.Base),
		AtlasSizeX: int32(font.Descriptor.Common.ScaleH),
		AtlasSizeY: int32(font.Descriptor.Common.ScaleW),
	}

	for _, p := range font.Descriptor.Pages {
		data.Pages = append(data.Pages, &BitmapFontPage{
			ID:   int8(p.ID),
			File: p.File,
		})
	}

	for _, g := range font.Descriptor.Chars {
		data.Glyphs = append(data.Glyphs, &FontGlyph{
			Codepoint: g.ID,
			X:         uint16(g.X),
			Y:         uint16(g.Y),
			Width:     uint16(g.Width),
			Height:    uint16(g.Height),
			XOffset:   int16(g.XOffset),
			YOffset:   int16(g.YOffset),
			XAdvance:  int16(g.XAdvance),
			PageID:    uint8(g.Page),
		})
	}

	for pair, k := range font.Descriptor.Kerning {
		data.Kernings = append(data.Kernings, &FontKerning{
			Codepoint0: pair.First,
			Codepoint1: pair.Second,
			Amount:     int16(k.Amount),
		})
	}

	return &assets.Resource{
		FullPath: path,
		DataSize: uint64(len(data.Glyphs)),
		Data:     data,
	}, nil
}

func (fl *BitmapFontLoader) Unload(res *assets.Resource) error {
	if data, ok := res.Data.(*BitmapFontData); ok {
		data.Glyphs = nil
		data.Kernings = nil
		data.Pages = nil
	}
	res.Data = nil
	res.DataSize = 0
	return nil
}
