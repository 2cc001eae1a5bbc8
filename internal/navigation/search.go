package navigation

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/landrecords/landdeck/internal/slides"
)

// Model is the part of a presentation model that search needs.
type Model interface {
	CurrentPage() int
	SetPage(page int) tea.Cmd
	Pages() []slides.Slide
}

// Search finds the next slide whose title or body matches a regular
// expression. A trailing "/i" makes the match case insensitive.
type Search struct {
	Active          bool
	SearchTextInput textinput.Model
}

// NewSearch creates a Search with a prompt ready to be rendered.
func NewSearch() Search {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Prompt = "/"
	ti.CharLimit = 64
	return Search{SearchTextInput: ti}
}

func (s *Search) Query() string {
	return s.SearchTextInput.Value()
}

func (s *Search) SetQuery(query string) {
	s.SearchTextInput.SetValue(query)
}

// Begin activates search mode with an empty query.
func (s *Search) Begin() {
	s.Active = true
	s.SetQuery("")
}

// Done leaves search mode.
func (s *Search) Done() {
	s.Active = false
}

// Execute moves m to the next slide after the current one that matches the
// query, wrapping around to the start of the deck.
func (s *Search) Execute(m Model) {
	defer s.Done()

	expr := s.Query()
	if expr == "" {
		return
	}
	if strings.HasSuffix(expr, "/i") {
		expr = "(?i)" + strings.TrimSuffix(expr, "/i")
	}

	pattern, err := regexp.Compile(expr)
	if err != nil {
		return
	}

	pages := m.Pages()
	check := func(i int) bool {
		if !pattern.MatchString(pages[i].Content()) {
			return false
		}
		m.SetPage(i)
		return true
	}

	for i := m.CurrentPage() + 1; i < len(pages); i++ {
		if check(i) {
			return
		}
	}
	for i := 0; i < m.CurrentPage(); i++ {
		if check(i) {
			return
		}
	}
}
