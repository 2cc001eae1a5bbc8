package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/coral"
	"github.com/xh3b4sd/tracer"
	"golang.org/x/term"

	"github.com/landrecords/landdeck/internal/deck"
	"github.com/landrecords/landdeck/internal/model"
	"github.com/landrecords/landdeck/styles"
)

func newPreview() *coral.Command {
	f := &previewFlag{}

	cmd := &coral.Command{
		Use:   "preview",
		Short: "Page through the presentation in the terminal",
		Args:  coral.NoArgs,
		RunE: func(cmd *coral.Command, args []string) error {
			err := f.Validate()
			if err != nil {
				return tracer.Mask(err)
			}

			d, err := deck.Load(f.Deck)
			if err != nil {
				return tracer.Mask(err)
			}

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return printDeck(cmd, d)
			}

			m := model.New(d, styles.SelectTheme(f.Theme))
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			if err != nil {
				return tracer.Mask(err)
			}

			return nil
		},
	}
	f.Init(cmd)

	return cmd
}

// printDeck writes every slide without terminal styling, for pipes and files.
func printDeck(cmd *coral.Command, d deck.Deck) error {
	m := model.New(d, glamour.WithStandardStyle("notty"))
	m.SetSize(80, 0)

	for i := range m.Slides {
		m.Page = i
		fmt.Fprintln(cmd.OutOrStdout(), m.GetSlide())
	}

	return nil
}
