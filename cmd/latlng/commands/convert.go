package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func dmmCmd() *cobra.Command {
	return convertCmd("dmm <deg>", "Convert decimal degrees to DMM", coordinates.ToDMM)
}

func degCmd() *cobra.Command {
	return convertCmd("deg <dmm>", "Convert DMM to decimal degrees", coordinates.ToDeg)
}

func convertCmd(use, short string, conv func(float64) (float64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", args[0])
			}

			out, err := conv(v)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(out, 'f', 8, 64))
			return nil
		},
	}
}
