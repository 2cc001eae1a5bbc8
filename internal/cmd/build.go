package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/muesli/coral"
	"github.com/xh3b4sd/tracer"

	"github.com/landrecords/landdeck/internal/deck"
	"github.com/landrecords/landdeck/internal/pptx"
)

type build struct {
	flag *buildFlag
}

func (b *build) Run(cmd *coral.Command, args []string) error {
	err := b.flag.Validate()
	if err != nil {
		return tracer.Mask(err)
	}

	d, err := deck.Load(b.flag.Deck)
	if err != nil {
		return tracer.Mask(err)
	}
	log.Debug("loaded deck", "title", d.Title, "slides", d.Len())

	err = pptx.Save(d, b.flag.Output)
	if err != nil {
		return tracer.Mask(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "PowerPoint presentation created successfully: %s\n", b.flag.Output)

	return nil
}
