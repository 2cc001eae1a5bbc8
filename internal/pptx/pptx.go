// Package pptx turns a deck into a PowerPoint 2007 document and reads such
// documents back.
package pptx

import (
	"io"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/xh3b4sd/tracer"

	"github.com/landrecords/landdeck/internal/deck"
	"github.com/landrecords/landdeck/internal/slides"
)

// Render lays out every slide of d, in order, on a new presentation.
func Render(d deck.Deck) (*ppt.Presentation, error) {
	if err := d.Validate(); err != nil {
		return nil, tracer.Mask(err)
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = d.Title
	p.GetDocumentProperties().Creator = d.Author

	for i, s := range d.Pages() {
		// ppt.New starts with one empty slide.
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}

		switch s.Layout {
		case slides.TitleLayout:
			titleSlide(slide, s.Title, s.Lines())
		case slides.TitleAndContentLayout:
			contentSlide(slide, s.Title, s.Lines())
		}
	}

	return p, nil
}

// Encode renders d and writes the document to w.
func Encode(d deck.Deck, w io.Writer) error {
	p, err := Render(d)
	if err != nil {
		return tracer.Mask(err)
	}

	pw, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return tracer.Mask(err)
	}

	if err := pw.(*ppt.PPTXWriter).WriteTo(w); err != nil {
		return tracer.Mask(err)
	}

	return nil
}

// Save writes d to path. The document is written to a temporary file next to
// path and renamed into place, so path either holds a complete document or is
// left untouched.
func Save(d deck.Deck, path string) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".landdeck-*.pptx")
	if err != nil {
		return tracer.Mask(err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = Encode(d, f); err != nil {
		return tracer.Mask(err)
	}
	if err = f.Sync(); err != nil {
		return tracer.Mask(err)
	}
	if err = f.Close(); err != nil {
		return tracer.Mask(err)
	}
	if err = os.Chmod(f.Name(), 0o644); err != nil {
		return tracer.Mask(err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return tracer.Mask(err)
	}

	return nil
}
