package pages

import (
	"fmt"
	"sort"

	"github.com/tsawler/quill/core"
	"github.com/tsawler/quill/internal/filters"
)

// Assemble writes the pages into w: each content stream, the resource
// dictionaries, the page dictionaries, the page tree, and the catalog,
// which becomes the file's root. Resources shared between pages are
// written once. With compress set, content streams are flate-encoded.
func Assemble(w *core.Writer, pgs []*Page, compress bool) error {
	if len(pgs) == 0 {
		return fmt.Errorf("document has no pages")
	}

	treeRef := w.Reserve()
	written := make(map[Resource]core.Object)
	kids := make(core.Array, 0, len(pgs))

	for i, p := range pgs {
		data := p.content
		streamDict := core.Dict{}
		if compress {
			data = filters.FlateEncode(data)
			streamDict.Set("Filter", core.Name("FlateDecode"))
		}
		contentRef := w.Add(core.NewStream(streamDict, data))

		resources := core.Dict{}
		fontDict, err := resourceDict(w, p.fonts, written)
		if err != nil {
			return fmt.Errorf("page %d fonts: %w", i+1, err)
		}
		if len(fontDict) > 0 {
			resources.Set("Font", fontDict)
		}
		imageDict, err := resourceDict(w, p.images, written)
		if err != nil {
			return fmt.Errorf("page %d images: %w", i+1, err)
		}
		if len(imageDict) > 0 {
			resources.Set("XObject", imageDict)
		}

		pageRef := w.Add(core.Dict{
			"Type":      core.Name("Page"),
			"Parent":    treeRef,
			"MediaBox":  core.Array{core.Int(0), core.Int(0), core.Real(p.size.Width), core.Real(p.size.Height)},
			"Resources": resources,
			"Contents":  contentRef,
		})
		kids = append(kids, pageRef)
	}

	if err := w.Fill(treeRef, core.Dict{
		"Type":  core.Name("Pages"),
		"Kids":  kids,
		"Count": core.Int(len(pgs)),
	}); err != nil {
		return err
	}

	catalogRef := w.Add(core.Dict{
		"Type":  core.Name("Catalog"),
		"Pages": treeRef,
	})
	w.SetRoot(catalogRef)
	return nil
}

// resourceDict builds one resource subdictionary, writing each distinct
// resource only once.
func resourceDict(w *core.Writer, res map[core.Name]Resource, written map[Resource]core.Object) (core.Dict, error) {
	names := make([]string, 0, len(res))
	for name := range res {
		names = append(names, string(name))
	}
	sort.Strings(names)

	dict := core.Dict{}
	for _, name := range names {
		r := res[core.Name(name)]
		obj, ok := written[r]
		if !ok {
			var err error
			obj, err = r.Resource(w)
			if err != nil {
				return nil, fmt.Errorf("resource %s: %w", name, err)
			}
			written[r] = obj
		}
		dict.Set(name, obj)
	}
	return dict, nil
}
