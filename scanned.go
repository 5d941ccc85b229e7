package quill

import (
	"fmt"
	"strings"

	"github.com/tsawler/quill/contentstream"
	"github.com/tsawler/quill/core"
	"github.com/tsawler/quill/ocr"
	"github.com/tsawler/quill/pages"
	"github.com/tsawler/quill/text"
)

// AddScannedPage adds a page holding the scanned JPEG at full page size,
// with the text Tesseract recognizes in it laid invisibly on top, making
// the scan searchable and selectable. Languages are "+"-separated
// Tesseract codes; the default is English.
//
// OCR support is compiled in with the "ocr" build tag and requires
// Tesseract on the system; without the tag this fails with
// ocr.ErrOCRNotEnabled.
func (d *Document) AddScannedPage(jpegData []byte, languages ...string) *Document {
	if d.err != nil {
		return d
	}

	img, err := pages.LoadJPEG(jpegData)
	if err != nil {
		d.err = err
		return d
	}

	client, err := ocr.New()
	if err != nil {
		d.err = err
		return d
	}
	defer client.Close()

	if lang := joinLanguages(languages); lang != "" {
		if err := client.SetLanguage(lang); err != nil {
			d.err = fmt.Errorf("setting OCR language: %w", err)
			return d
		}
	}

	recognized, err := client.RecognizeImage(jpegData)
	if err != nil {
		d.err = fmt.Errorf("recognizing scanned page: %w", err)
		return d
	}

	d.AddPage()
	p := d.currentPage()

	name, ok := d.imageNames[img]
	if !ok {
		name = core.Name(fmt.Sprintf("Im%d", len(d.imageNames)+1))
		d.imageNames[img] = name
	}
	p.UseImage(name, img)
	size := p.Size()
	p.AddContent(contentstream.EncodeImagePlacement(name, 0, 0, size.Width, size.Height))

	// Render mode 3 draws nothing; the glyphs exist only for search and
	// selection.
	d.err = text.Flow(d, d.active, text.Request{
		Text:       recognized,
		Font:       d.activeName,
		Size:       d.activeSize,
		RenderMode: 3,
	})
	return d
}

// joinLanguages combines Tesseract language codes into the "+"-separated
// form SetLanguage expects, dropping empty entries.
func joinLanguages(languages []string) string {
	var parts []string
	for _, l := range languages {
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, "+")
}
