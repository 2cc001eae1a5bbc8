package slides

import (
	"strings"

	"github.com/xh3b4sd/tracer"
)

// Layout selects which placeholder regions a slide has.
type Layout int

const (
	// TitleLayout has a title and a subtitle placeholder.
	TitleLayout Layout = iota + 1
	// TitleAndContentLayout has a title and a content placeholder.
	TitleAndContentLayout
)

var layoutNames = map[Layout]string{
	TitleLayout:           "title",
	TitleAndContentLayout: "title-and-content",
}

// ParseLayout returns the Layout for its text form.
func ParseLayout(s string) (Layout, error) {
	for l, name := range layoutNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return l, nil
		}
	}

	return 0, tracer.Maskf(invalidLayoutError, "unknown layout %q", s)
}

func (l Layout) String() string {
	name, ok := layoutNames[l]
	if !ok {
		return "unknown"
	}
	return name
}

// Valid reports whether l is one of the known layouts.
func (l Layout) Valid() bool {
	_, ok := layoutNames[l]
	return ok
}

func (l *Layout) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return tracer.Mask(err)
	}

	parsed, err := ParseLayout(s)
	if err != nil {
		return tracer.Mask(err)
	}
	*l = parsed

	return nil
}

func (l Layout) MarshalYAML() (interface{}, error) {
	if !l.Valid() {
		return nil, tracer.Maskf(invalidLayoutError, "unknown layout %d", int(l))
	}
	return l.String(), nil
}

// Slide is one page of a deck. Body is a single block of pre-formatted text;
// bullets are literal characters and lines are separated by "\n".
type Slide struct {
	Layout Layout `yaml:"layout"`
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
}

// Lines returns the body split into its lines.
func (s Slide) Lines() []string {
	return strings.Split(s.Body, "\n")
}

// Content is the searchable text of the slide.
func (s Slide) Content() string {
	return s.Title + "\n" + s.Body
}

// Markdown renders the slide for a terminal markdown renderer. Every body
// line ends in a hard break so the line structure survives rendering.
func (s Slide) Markdown() string {
	heading := "## "
	if s.Layout == TitleLayout {
		heading = "# "
	}

	var b strings.Builder
	b.WriteString(heading + s.Title + "\n\n")
	for _, line := range s.Lines() {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(line + "  \n")
	}

	return b.String()
}
