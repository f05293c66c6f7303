package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func ProjectCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Create, list, rename and delete projects",
	}

	cmd.AddCommand(projectCreateCmd(opts))
	cmd.AddCommand(projectListCmd(opts))
	cmd.AddCommand(projectShowCmd(opts))
	cmd.AddCommand(projectRenameCmd(opts))
	cmd.AddCommand(projectDeleteCmd(opts))
	return cmd
}

func projectCreateCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project and its folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.store.CreateProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", p.ID, p.Name, p.FolderPath)
			return nil
		},
	}
}

func projectListCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			projects, err := a.store.Projects(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCREATED\tFOLDER")
			for _, p := range projects {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.CreatedAt.Local().Format("2006-01-02 15:04"), p.FolderPath)
			}
			return tw.Flush()
		},
	}
}

func projectShowCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a project with its file and note counts",
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

			ctx := cmd.Context()
			p, err := a.store.Project(ctx, id)
			if err != nil {
				return err
			}
			files, err := a.store.FileCount(ctx, id)
			if err != nil {
				return err
			}
			notes, err := a.store.Notes(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:      %d\n", p.ID)
			fmt.Fprintf(out, "Name:    %s\n", p.Name)
			fmt.Fprintf(out, "Created: %s\n", p.CreatedAt.Local().Format("2006-01-02 15:04"))
			fmt.Fprintf(out, "Folder:  %s\n", p.FolderPath)
			fmt.Fprintf(out, "Files:   %d\n", files)
			fmt.Fprintf(out, "Notes:   %d\n", len(notes))
			return nil
		},
	}
}

func projectRenameCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a project (its folder stays put)",
		Args:  cobra.ExactArgs(2),
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

			p, err := a.store.RenameProject(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", p.ID, p.Name)
			return nil
		},
	}
}

func projectDeleteCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a project with its folder, files and notes",
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

			return a.store.DeleteProject(cmd.Context(), id)
		},
	}
}
