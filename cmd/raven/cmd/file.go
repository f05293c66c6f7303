package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/31d4r/Raven/internal/media"
)

func FileCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Add, list and delete project files",
	}

	cmd.AddCommand(fileAddCmd(opts))
	cmd.AddCommand(fileListCmd(opts))
	cmd.AddCommand(fileDeleteCmd(opts))
	return cmd
}

func fileAddCmd(opts *Options) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "add PATH...",
		Short: "Copy files into a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.store.AddFiles(cmd.Context(), projectID, args)
			if err != nil {
				return err
			}
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", r.ID, r.Name, media.Classify(r.FileType))
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func fileListCmd(opts *Options) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's files, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			files, err := a.store.Files(cmd.Context(), projectID)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tKIND\tADDED")
			for _, f := range files {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", f.ID, f.Name, media.Classify(f.FileType), f.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func fileDeleteCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a file and its stored copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return a.store.DeleteFile(cmd.Context(), id)
		},
	}
}
