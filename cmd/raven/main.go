package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/31d4r/Raven/cmd/raven/cmd"
)

func main() {
	opts := &cmd.Options{}

	rootCmd := &cobra.Command{
		Use:          "raven",
		Short:        "Ask questions about your documents, recordings and videos",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "config.yaml", "path to config file")

	rootCmd.AddCommand(cmd.ProjectCmd(opts))
	rootCmd.AddCommand(cmd.FileCmd(opts))
	rootCmd.AddCommand(cmd.NoteCmd(opts))
	rootCmd.AddCommand(cmd.ExtractCmd(opts))
	rootCmd.AddCommand(cmd.AskCmd(opts))
	rootCmd.AddCommand(cmd.PodcastCmd(opts))
	rootCmd.AddCommand(cmd.WatchCmd(opts))
	rootCmd.AddCommand(cmd.ResetCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
