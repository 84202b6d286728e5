package loaders

import (
	"os"

	"github.com/lumen3d/lumen/engine/assets"
)

type TextLoader struct{}

func (tl *TextLoader) Load(path string, params interface{}) (*assets.Resource, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &assets.Resource{
		FullPath: path,
		DataSize: uint64(len(buf)),
		Data:     string(buf),
	}, nil
}

func (tl *TextLoader) Unload(res *assets.Resource) error {
	res.Data = nil
	res.DataSize = 0
	return nil
}
