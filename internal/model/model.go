package model

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/landrecords/landdeck/internal/deck"
	"github.com/landrecords/landdeck/internal/navigation"
	"github.com/landrecords/landdeck/internal/slides"
	"github.com/landrecords/landdeck/styles"
)

var tabSpaces = strings.Repeat(" ", 4)

const defaultPaging = "Slide %d / %d"

// Model represents the model of this presentation, which contains all the
// state related to the current slides.
type Model struct {
	Slides []slides.Slide
	Page   int
	Author string
	Title  string
	Theme  glamour.TermRendererOption
	Paging string

	viewport viewport.Model
	buffer   string
	// VirtualText is used for additional information that is not part of the
	// original slides, it will be displayed on a slide and reset on page change
	VirtualText string
	Search      navigation.Search
}

// New creates a Model presenting d.
func New(d deck.Deck, theme glamour.TermRendererOption) Model {
	return Model{
		Slides: d.Pages(),
		Author: d.Author,
		Title:  d.Title,
		Theme:  theme,
		Paging: defaultPaging,
		Search: navigation.NewSearch(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize sets the dimensions the slides are rendered for.
func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
}

// Update updates the presentation model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.VirtualText = ""
		return m, tea.ClearScreen

	case tea.KeyMsg:
		keyPress := msg.String()

		if m.Search.Active {
			switch msg.Type {
			case tea.KeyEnter:
				if m.Search.Query() != "" {
					m.Search.Execute(&m)
				} else {
					m.Search.Done()
				}
				return m, nil
			case tea.KeyCtrlC, tea.KeyEscape:
				m.Search.SetQuery("")
				m.Search.Done()
				return m, nil
			}

			var cmd tea.Cmd
			m.Search.SearchTextInput, cmd = m.Search.SearchTextInput.Update(msg)
			return m, cmd
		}

		switch keyPress {
		case "/":
			m.Search.Begin()
			m.Search.SearchTextInput.Focus()
			return m, nil
		case "ctrl+n":
			m.Search.Execute(&m)
			return m, nil
		case "ctrl+x":
			m.VirtualText = ""
			return m, tea.ClearScreen
		case "y":
			if err := clipboard.WriteAll(m.Slides[m.Page].Body); err != nil {
				m.VirtualText = "\n" + err.Error()
				return m, nil
			}
			m.VirtualText = "\ncopied slide body to clipboard"
			return m, nil
		case "ctrl+c", "q":
			return m, tea.Quit
		default:
			newState := navigation.Navigate(navigation.State{
				Buffer:      m.buffer,
				Page:        m.Page,
				TotalSlides: len(m.Slides),
			}, keyPress)
			m.buffer = newState.Buffer
			return m, m.SetPage(newState.Page)
		}
	}

	return m, nil
}

// GetSlide renders the current slide.
func (m Model) GetSlide() string {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(m.Theme, glamour.WithWordWrap(width))
	if err != nil {
		return fmt.Sprintf("Error: Could not create renderer! (%v)", err)
	}

	slide, err := r.Render(m.Slides[m.Page].Markdown())
	if err != nil {
		return fmt.Sprintf("Error: Could not render markdown! (%v)", err)
	}
	slide = strings.ReplaceAll(slide, "\t", tabSpaces)
	slide += m.VirtualText

	return styles.Slide.Render(slide)
}

func (m Model) GetStatusLine() string {
	var left string
	if m.Search.Active {
		left = m.Search.SearchTextInput.View()
	} else {
		left = styles.Author.Render(m.Author) + styles.Date.Render(m.Title)
	}

	right := styles.Page.Render(m.paging())
	return styles.Status.Render(styles.JoinHorizontal(left, right, m.viewport.Width))
}

// View renders the current slide in the presentation and the status bar which
// contains the author, deck title, and pagination information.
func (m Model) View() string {
	slide := m.GetSlide()
	status := m.GetStatusLine()

	gap := m.viewport.Height - lipgloss.Height(slide) - lipgloss.Height(status)
	if gap < 0 {
		gap = 0
	}

	return slide + strings.Repeat("\n", gap) + status
}

func (m *Model) paging() string {
	switch strings.Count(m.Paging, "%d") {
	case 2:
		return fmt.Sprintf(m.Paging, m.Page+1, len(m.Slides))
	case 1:
		return fmt.Sprintf(m.Paging, m.Page+1)
	default:
		return m.Paging
	}
}

// CurrentPage returns the current page the presentation is on.
func (m *Model) CurrentPage() int {
	return m.Page
}

// SetPage sets which page the presentation should render.
func (m *Model) SetPage(page int) tea.Cmd {
	if m.Page == page {
		return nil
	}

	m.VirtualText = ""
	m.Page = page

	return tea.ClearScreen
}

// Pages returns all the slides in the presentation.
func (m *Model) Pages() []slides.Slide {
	return m.Slides
}
