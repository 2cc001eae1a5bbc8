package pptx

import (
	ppt "github.com/VantageDataChat/GoPPT"
)

// Geometry for the 16:9 slide GoPPT creates by default.
const (
	emuPerInch = 914400

	marginLeft   = int64(0.4 * emuPerInch)
	contentWidth = int64(9.2 * emuPerInch)
	slideWidth   = int64(10.0 * emuPerInch)

	fontTitle    = 36
	fontSubtitle = 20
	fontHeading  = 28

	// Body sizes step down as slides get longer.
	fontBody      = 18
	fontBodyDense = 14
	fontBodyTight = 11

	denseLines = 14
	tightLines = 22
)

const (
	colorAccent  = "FF3B82F6"
	colorHeading = "FF1E40AF"
	colorText    = "FF334155"
	colorMuted   = "FF475569"
)

func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

func bar(slide *ppt.Slide, y float64, height float64) {
	b := slide.CreateRichTextShape()
	b.SetOffsetX(0).SetOffsetY(int64(y * emuPerInch))
	b.SetWidth(slideWidth).SetHeight(int64(height * emuPerInch))
	b.SetFill(solidFill(colorAccent))
}

// writeLines writes one paragraph per line into shape. Empty lines keep an
// empty run so the paragraph survives a round trip.
func writeLines(shape *ppt.RichTextShape, lines []string, style func(*ppt.TextRun), centered bool) {
	for i, line := range lines {
		if i > 0 {
			shape.CreateParagraph()
		}
		tr := shape.CreateTextRun(line)
		style(tr)
		if centered {
			alignCenter(shape.GetActiveParagraph())
		}
	}
}

func styleBody(lines int) func(*ppt.TextRun) {
	return func(tr *ppt.TextRun) {
		font := tr.GetFont()
		switch {
		case lines > tightLines:
			font.SetSize(fontBodyTight)
		case lines > denseLines:
			font.SetSize(fontBodyDense)
		default:
			font.SetSize(fontBody)
		}
		font.SetColor(ppt.NewColor(colorText))
	}
}

func styleSubtitle(tr *ppt.TextRun) {
	tr.GetFont().SetSize(fontSubtitle).SetColor(ppt.NewColor(colorMuted))
}

// titleSlide lays out the title layout: accent bars at the top and bottom, a
// centred title and the body as a centred subtitle.
func titleSlide(slide *ppt.Slide, title string, lines []string) {
	bar(slide, 0, 0.15)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(1.2 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(1.2 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(fontTitle).SetBold(true).SetColor(ppt.NewColor(colorHeading))
	alignCenter(titleShape.GetActiveParagraph())

	subShape := slide.CreateRichTextShape()
	subShape.SetOffsetX(int64(1.0 * emuPerInch)).SetOffsetY(int64(2.6 * emuPerInch))
	subShape.SetWidth(int64(8.0 * emuPerInch)).SetHeight(int64(2.4 * emuPerInch))
	writeLines(subShape, lines, styleSubtitle, true)

	bar(slide, 5.5, 0.125)
}

// contentSlide lays out the title and content layout: an accent bar, the
// title and the body below it.
func contentSlide(slide *ppt.Slide, title string, lines []string) {
	bar(slide, 0, 0.08)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(0.25 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(0.7 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(fontHeading).SetBold(true).SetColor(ppt.NewColor(colorHeading))

	bodyShape := slide.CreateRichTextShape()
	bodyShape.SetOffsetX(marginLeft).SetOffsetY(int64(1.0 * emuPerInch))
	bodyShape.SetWidth(contentWidth).SetHeight(int64(4.4 * emuPerInch))
	writeLines(bodyShape, lines, styleBody(len(lines)), false)
}
