package cmd

import (
	"path/filepath"

	"github.com/muesli/coral"
	"github.com/xh3b4sd/tracer"
)

const (
	defaultOutput  = "Phase1_Presentation.pptx"
	defaultHost    = "localhost"
	defaultPort    = 53531
	defaultKeyPath = "landdeck_ed25519"
)

type buildFlag struct {
	Deck   string
	Output string
}

func (f *buildFlag) Init(cmd *coral.Command) {
	cmd.Flags().StringVarP(&f.Deck, "deck", "", "", "YAML deck to build instead of the Phase 1 deck.")
	cmd.Flags().StringVarP(&f.Output, "output", "o", defaultOutput, "The path the presentation is written to.")
}

func (f *buildFlag) Validate() error {
	if f.Output == "" {
		return tracer.Maskf(invalidFlagError, "--output must not be empty")
	}
	if filepath.Ext(f.Output) != ".pptx" {
		return tracer.Maskf(invalidFlagError, "--output must end in .pptx")
	}

	return nil
}

type previewFlag struct {
	Deck  string
	Theme string
}

func (f *previewFlag) Init(cmd *coral.Command) {
	cmd.Flags().StringVarP(&f.Deck, "deck", "", "", "YAML deck to preview instead of the Phase 1 deck.")
	cmd.Flags().StringVarP(&f.Theme, "theme", "t", "", "Glamour style name or path to a style file.")
}

func (f *previewFlag) Validate() error {
	return nil
}

type serveFlag struct {
	previewFlag

	Host    string
	Port    int
	KeyPath string
}

func (f *serveFlag) Init(cmd *coral.Command) {
	f.previewFlag.Init(cmd)

	cmd.Flags().StringVarP(&f.Host, "host", "", defaultHost, "The host for binding the ssh server to.")
	cmd.Flags().IntVarP(&f.Port, "port", "p", defaultPort, "The port for binding the ssh server to.")
	cmd.Flags().StringVarP(&f.KeyPath, "keyPath", "k", defaultKeyPath, "The path to the ssh host key, created if missing.")
}

func (f *serveFlag) Validate() error {
	if err := f.previewFlag.Validate(); err != nil {
		return tracer.Mask(err)
	}

	if f.Host == "" {
		return tracer.Maskf(invalidFlagError, "--host must not be empty")
	}
	if f.Port <= 0 || f.Port > 65535 {
		return tracer.Maskf(invalidFlagError, "--port must be between 1 and 65535")
	}
	if f.KeyPath == "" {
		return tracer.Maskf(invalidFlagError, "--keyPath must not be empty")
	}

	return nil
}
