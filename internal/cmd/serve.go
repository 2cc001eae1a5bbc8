package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/coral"
	"github.com/xh3b4sd/tracer"

	"github.com/landrecords/landdeck/internal/deck"
	"github.com/landrecords/landdeck/internal/model"
	"github.com/landrecords/landdeck/internal/server"
	"github.com/landrecords/landdeck/styles"
)

const shutdownGracePeriod = 30 * time.Second

func newServe() *coral.Command {
	f := &serveFlag{}

	cmd := &coral.Command{
		Use:   "serve",
		Short: "Serve the presentation over SSH",
		Args:  coral.NoArgs,
		RunE: func(cmd *coral.Command, args []string) error {
			err := f.Validate()
			if err != nil {
				return tracer.Mask(err)
			}

			return runServe(f)
		},
	}
	f.Init(cmd)

	return cmd
}

func runServe(f *serveFlag) error {
	d, err := deck.Load(f.Deck)
	if err != nil {
		return tracer.Mask(err)
	}

	var s *server.Server
	{
		c := server.Config{
			Host:         f.Host,
			Port:         f.Port,
			KeyPath:      f.KeyPath,
			Presentation: model.New(d, styles.SelectTheme(f.Theme)),
		}

		s, err = server.New(c)
		if err != nil {
			return tracer.Mask(err)
		}
	}

	var errCha chan error
	var sigCha chan os.Signal
	{
		errCha = make(chan error, 1)
		sigCha = make(chan os.Signal, 2)
	}

	go func() {
		errCha <- s.Start()
	}()

	{
		signal.Notify(sigCha, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCha)

		select {
		case err := <-errCha:
			if err != nil {
				return tracer.Mask(err)
			}
			return nil

		case <-sigCha:
			log.Info("stopping ssh server")

			ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
			defer cancel()

			err := s.Shutdown(ctx)
			if err != nil {
				return tracer.Mask(err)
			}

			return nil
		}
	}
}
