package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ExtractCmd(opts *Options) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Print the text extracted from a project's files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			asst, err := a.assistant(false)
			if err != nil {
				return err
			}

			report, err := asst.Extract(cmd.Context(), projectID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.Context)
			for _, f := range report.Failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "failed: %s\n", f.Error())
			}
			for _, name := range report.Skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
