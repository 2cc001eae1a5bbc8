package deck

import (
	_ "embed"
	"os"
	"strings"

	"github.com/xh3b4sd/tracer"
	"gopkg.in/yaml.v2"

	"github.com/landrecords/landdeck/internal/slides"
)

//go:embed phase1.yaml
var phase1 []byte

// Deck is the ordered sequence of slides that becomes one presentation file.
type Deck struct {
	Title  string
	Author string

	slides []slides.Slide
}

type file struct {
	Title  string         `yaml:"title"`
	Author string         `yaml:"author"`
	Slides []slides.Slide `yaml:"slides"`
}

// Phase1 returns the Phase 1 proposal deck for the blockchain based land
// records system.
func Phase1() (Deck, error) {
	d, err := Parse(phase1)
	if err != nil {
		return Deck{}, tracer.Mask(err)
	}

	return d, nil
}

// Load reads a deck from a YAML file. An empty path loads the Phase 1 deck.
func Load(path string) (Deck, error) {
	if path == "" {
		return Phase1()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, tracer.Mask(err)
	}

	d, err := Parse(b)
	if err != nil {
		return Deck{}, tracer.Mask(err)
	}

	return d, nil
}

// Parse decodes and validates a YAML deck.
func Parse(b []byte) (Deck, error) {
	var f file
	if err := yaml.UnmarshalStrict(b, &f); err != nil {
		return Deck{}, tracer.Maskf(invalidDeckError, "%s", err.Error())
	}

	d := Deck{
		Title:  f.Title,
		Author: f.Author,
	}
	for _, s := range f.Slides {
		d.Add(s)
	}

	if err := d.Validate(); err != nil {
		return Deck{}, tracer.Mask(err)
	}

	return d, nil
}

// Add appends s to the end of the deck.
func (d *Deck) Add(s slides.Slide) {
	d.slides = append(d.slides, s)
}

func (d Deck) Len() int {
	return len(d.slides)
}

// Pages returns a copy of the slides in deck order.
func (d Deck) Pages() []slides.Slide {
	pages := make([]slides.Slide, len(d.slides))
	copy(pages, d.slides)
	return pages
}

// Validate checks that the deck has slides and that every slide has a known
// layout and a title.
func (d Deck) Validate() error {
	if len(d.slides) == 0 {
		return tracer.Maskf(invalidDeckError, "deck must have at least one slide")
	}

	for i, s := range d.slides {
		if !s.Layout.Valid() {
			return tracer.Maskf(invalidDeckError, "slide %d has no valid layout", i+1)
		}
		if strings.TrimSpace(s.Title) == "" {
			return tracer.Maskf(invalidDeckError, "slide %d must have a title", i+1)
		}
	}

	return nil
}
