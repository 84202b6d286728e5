package loaders

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/lumen3d/lumen/engine/assets"
)

type SystemFontFace struct {
	Name string
}

// SystemFontData is the decoded payload of a .fontcfg system font asset:
// a parsed opentype collection plus the face names declared in the config.
type SystemFontData struct {
	Faces      []*SystemFontFace
	Collection *sfnt.Collection
}

// SystemFontLoader parses a font config of `file=` and `face=` lines, the
// font file path being relative to the config file.
type SystemFontLoader struct{}

func (fl *SystemFontLoader) Load(path string, params interface{}) (*assets.Resource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data := &SystemFontData{}
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "file=") {
			filename := strings.TrimPrefix(line, "file=")
			fontBytes, err := os.ReadFile(filepath.Join(filepath.Dir(path), filename))
			if err != nil {
				return nil, err
			}
			collection, err := opentype.ParseCollection(fontBytes)
			if err != nil {
				return nil, err
			}
			data.Collection = collection
		} else if strings.HasPrefix(line, "face=") {
			data.Faces = append(data.Faces, &SystemFontFace{
				Name: strings.TrimPrefix(line, "face="),
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &assets.Resource{
		FullPath: path,
		DataSize: uint64(len(data.Faces)),
		Data:     data,
	}, nil
}

func (fl *SystemFontLoader) Unload(res *assets.Resource) error {
	res.Data = nil
	res.DataSize = 0
	return nil
}
