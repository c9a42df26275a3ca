package commands

import (
	"latlng-api/internal/logging"
	"latlng-api/internal/service"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	// coordinates backs every subcommand.
	coordinates = service.NewCoordinateService(nil)
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "latlng",
		Short:        "Parse and convert latitude/longitude text",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logging.Setup(level, true)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(parseCmd(), dmmCmd(), degCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
