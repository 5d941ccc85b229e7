package pages

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"

	"github.com/tsawler/quill/core"
)

// Image is a JPEG picture ready to embed as an image XObject. The JPEG
// data passes straight into the output stream under the DCTDecode filter;
// only the header is parsed, for dimensions and color space.
type Image struct {
	Width  int
	Height int

	colorSpace core.Name
	data       []byte
}

// LoadJPEG parses a JPEG header and wraps the data for embedding. Other
// image formats are rejected with an error naming the format.
func LoadJPEG(data []byte) (*Image, error) {
	if name := sniffFormat(data); name != "JPEG" {
		return nil, fmt.Errorf("%s images are not supported; only JPEG can be embedded", name)
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading JPEG header: %w", err)
	}

	colorSpace := core.Name("DeviceRGB")
	switch cfg.ColorModel {
	case color.GrayModel:
		colorSpace = "DeviceGray"
	case color.CMYKModel:
		colorSpace = "DeviceCMYK"
	}

	return &Image{
		Width:      cfg.Width,
		Height:     cfg.Height,
		colorSpace: colorSpace,
		data:       data,
	}, nil
}

// sniffFormat identifies common image formats by signature.
func sniffFormat(data []byte) string {
	switch {
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return "JPEG"
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "PNG"
	case bytes.HasPrefix(data, []byte("GIF8")):
		return "GIF"
	case bytes.HasPrefix(data, []byte("BM")):
		return "BMP"
	case bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*")):
		return "TIFF"
	default:
		return "unrecognized"
	}
}

// Resource writes the image XObject stream and returns its reference.
func (img *Image) Resource(w *core.Writer) (core.Object, error) {
	dict := core.Dict{
		"Type":             core.Name("XObject"),
		"Subtype":          core.Name("Image"),
		"Width":            core.Int(img.Width),
		"Height":           core.Int(img.Height),
		"ColorSpace":       img.colorSpace,
		"BitsPerComponent": core.Int(8),
		"Filter":           core.Name("DCTDecode"),
	}
	return w.Add(core.NewStream(dict, img.data)), nil
}
