package commands

import (
	"errors"
	"fmt"
	"strings"

	"latlng-api/internal/latlng"
	"latlng-api/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errNotACoordinate = errors.New("not a latitude/longitude near Japan")

func parseCmd() *cobra.Command {
	var asDMM bool

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse coordinate text in DEG or DMM notation",
		Example: `  latlng parse "36.2,N, 138.6,E"
  latlng parse --dmm "35.68097,139.76601"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// arguments split by the shell are joined back into one field
			text := strings.Join(args, " ")

			res, err := coordinates.Parse(cmd.Context(), text)
			if errors.Is(err, service.ErrInvalidCoordinate) {
				return fmt.Errorf("%q: %w", text, errNotACoordinate)
			}
			if err != nil {
				return err
			}
			log.Debug().Str("format", string(res.Format)).Msg("parsed")

			out := latlng.TextDEG(res.LatLng)
			if asDMM {
				out = latlng.TextDMM(res.LatLng)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asDMM, "dmm", false, "print in DMM notation")
	return cmd
}
