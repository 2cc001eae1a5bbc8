package cmd

import (
	"fmt"

	"github.com/muesli/coral"
	"github.com/xh3b4sd/tracer"

	"github.com/landrecords/landdeck/internal/pptx"
	"github.com/landrecords/landdeck/styles"
)

func newInspect() *coral.Command {
	return &coral.Command{
		Use:   "inspect <file.pptx>",
		Short: "Print the title and body of every slide in a presentation",
		Args:  coral.ExactArgs(1),
		RunE: func(cmd *coral.Command, args []string) error {
			pages, err := pptx.Read(args[0])
			if err != nil {
				return tracer.Mask(err)
			}

			w := cmd.OutOrStdout()
			for i, p := range pages {
				fmt.Fprintln(w, styles.Index.Render(fmt.Sprint(i+1))+styles.Heading.Render(p.Title))
				if p.Body != "" {
					fmt.Fprintln(w, styles.Body.Render(p.Body))
				}
			}

			return nil
		},
	}
}
