package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func ResetCmd(opts *Options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every project, file and note record (folders on disk are kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return a.store.ClearAll(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm")
	return cmd
}
