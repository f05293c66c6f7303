package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/31d4r/Raven/internal/assistant"
	"github.com/31d4r/Raven/internal/export"
	"github.com/31d4r/Raven/internal/prompt"
)

func AskCmd(opts *Options) *cobra.Command {
	var (
		projectID int64
		docx      string
	)

	cmd := &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Answer a question from a project's files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			asst, err := a.assistant(true)
			if err != nil {
				return err
			}

			question := strings.Join(args, " ")
			answer, err := asst.Ask(cmd.Context(), projectID, question)
			if err != nil {
				return err
			}

			printAnswer(cmd.OutOrStdout(), answer)
			if docx != "" {
				return export.Markdown(question, answer.Text, docx)
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project id")
	cmd.Flags().StringVar(&docx, "docx", "", "also write the answer to this .docx file")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func PodcastCmd(opts *Options) *cobra.Command {
	var (
		projectID int64
		style     string
		length    string
		docx      string
	)

	cmd := &cobra.Command{
		Use:   "podcast",
		Short: "Write a two-host podcast script about a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			asst, err := a.assistant(true)
			if err != nil {
				return err
			}

			answer, err := asst.Podcast(cmd.Context(), projectID, prompt.Style(style), prompt.Length(length))
			if err != nil {
				return err
			}

			printAnswer(cmd.OutOrStdout(), answer)
			if docx != "" {
				return export.PodcastScript(answer.Project.Name+" podcast", answer.Text, docx)
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project id")
	cmd.Flags().StringVar(&style, "style", string(prompt.StyleCasual), "host style: "+choices(prompt.Styles()))
	cmd.Flags().StringVar(&length, "length", string(prompt.LengthMedium), "episode length: "+choices(prompt.Lengths()))
	cmd.Flags().StringVar(&docx, "docx", "", "also write the script to this .docx file")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func choices[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

func printAnswer(w io.Writer, answer *assistant.Answer) {
	fmt.Fprintln(w, strings.TrimSpace(answer.Text))
	if len(answer.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Some files could not be read:")
		for _, warn := range answer.Warnings {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}
}
