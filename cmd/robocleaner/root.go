package main

import (
	"fmt"
	"os"

	"github.com/cbodonnell/robocleaner/pkg/config"
	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/version"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "robocleaner",
		Short:        "Robot cleaner game server and controller",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCmd(config.New()),
		newControlCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Get())
			return err
		},
	}
}

// setupLogger installs the default logger for a command.
func setupLogger(level string) error {
	parsedLogLevel, err := log.ParseLogLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Debug("Log level set to %s", parsedLogLevel)
	return nil
}
