package loaders

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4"

	"github.com/lumen3d/lumen/engine/assets"
)

// BinaryLoader reads raw byte payloads. Files with an .lz4 extension are
// transparently decompressed.
type BinaryLoader struct{}

func (bl *BinaryLoader) Load(path string, params interface{}) (*assets.Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == ".lz4" {
		r = lz4.NewReader(f)
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return &assets.Resource{
		FullPath: path,
		DataSize: uint64(len(buf)),
		Data:     buf,
	}, nil
}

func (bl *BinaryLoader) Unload(res *assets.Resource) error {
	res.Data = nil
	res.DataSize = 0
	return nil
}
