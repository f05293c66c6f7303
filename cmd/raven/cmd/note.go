package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/31d4r/Raven/internal/export"
)

func NoteCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage project notes",
	}

	cmd.AddCommand(noteAddCmd(opts))
	cmd.AddCommand(noteListCmd(opts))
	cmd.AddCommand(noteEditCmd(opts))
	cmd.AddCommand(noteDeleteCmd(opts))
	cmd.AddCommand(noteExportCmd(opts))
	return cmd
}

func noteAddCmd(opts *Options) *cobra.Command {
	var (
		projectID int64
		title     string
		content   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note (content from --content or stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("content") {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read content: %w", err)
				}
				content = strings.TrimRight(string(data), "\n")
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.store.CreateNote(cmd.Context(), projectID, title, content)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", n.ID, n.Title)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project id")
	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVar(&content, "content", "", "note content")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func noteListCmd(opts *Options) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print a project's notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			notes, err := a.store.Notes(cmd.Context(), projectID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, n := range notes {
				fmt.Fprintf(out, "#%d %s (%s)\n%s\n\n", n.ID, n.Title, n.CreatedAt.Local().Format("2006-01-02 15:04"), n.Content)
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func noteEditCmd(opts *Options) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a note's title or content",
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
			n, err := a.store.Note(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				n.Title = title
			}
			if cmd.Flags().Changed("content") {
				n.Content = content
			}

			_, err = a.store.UpdateNote(ctx, id, n.Title, n.Content)
			return err
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVar(&content, "content", "", "new content")
	return cmd
}

func noteDeleteCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a note",
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

			return a.store.DeleteNote(cmd.Context(), id)
		},
	}
}

func noteExportCmd(opts *Options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Write a note to a .docx file",
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

			n, err := a.store.Note(cmd.Context(), id)
			if err != nil {
				return err
			}
			return export.Markdown(n.Title, n.Content, output)
		},
	}

	cmd.Flags().StringVarP(&output, "docx", "o", "note.docx", "output file")
	return cmd
}
