package pptx

import (
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/xh3b4sd/tracer"
)

// Page is the text of one slide read back from a document.
type Page struct {
	Title string
	Body  string
}

// Read opens the document at path and returns the title and body text of
// every slide in order.
func Read(path string) ([]Page, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, tracer.Mask(err)
	}

	return Pages(pres)
}

// Pages extracts the title and body text of every slide in pres. Shapes
// without any text, such as the accent bars, are skipped; the first text
// shape is the title and the second the body.
func Pages(pres *ppt.Presentation) ([]Page, error) {
	all := pres.GetAllSlides()
	if len(all) == 0 {
		return nil, tracer.Maskf(invalidPresentationError, "presentation has no slides")
	}

	pages := make([]Page, 0, len(all))
	for i, slide := range all {
		var texts []string
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			text, ok := shapeText(rts)
			if !ok {
				continue
			}
			texts = append(texts, text)
		}

		switch len(texts) {
		case 1:
			pages = append(pages, Page{Title: texts[0]})
		case 2:
			pages = append(pages, Page{Title: texts[0], Body: texts[1]})
		default:
			return nil, tracer.Maskf(invalidPresentationError, "slide %d has %d text shapes", i+1, len(texts))
		}
	}

	return pages, nil
}

// shapeText joins the paragraphs of rts with newlines. It reports false when
// the shape holds no text at all.
func shapeText(rts *ppt.RichTextShape) (string, bool) {
	var lines []string
	var found bool
	for _, para := range rts.GetParagraphs() {
		var b strings.Builder
		for _, elem := range para.GetElements() {
			if run, ok := elem.(*ppt.TextRun); ok {
				b.WriteString(run.GetText())
			}
		}
		if b.Len() > 0 {
			found = true
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n"), found
}
