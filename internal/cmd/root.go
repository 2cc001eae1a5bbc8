package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/muesli/coral"
)

// Root returns the landdeck command. Run without a subcommand it builds the
// presentation.
func Root() *coral.Command {
	var debug bool

	root := &coral.Command{
		Use:   "landdeck",
		Short: "Build the Phase 1 land records proposal presentation",
		Long: "landdeck writes the fifteen slide Phase 1 proposal deck for the " +
			"blockchain based land records management system as a PPTX file.",
		Args:          coral.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *coral.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging.")

	b := &build{flag: &buildFlag{}}
	b.flag.Init(root)
	root.RunE = b.Run

	root.AddCommand(
		newInspect(),
		newPreview(),
		newServe(),
	)

	return root
}
