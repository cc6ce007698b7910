package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cbodonnell/robocleaner/pkg/client"
	"github.com/cbodonnell/robocleaner/pkg/messages"
	"github.com/cbodonnell/robocleaner/pkg/queue"
	"github.com/spf13/cobra"
)

func newControlCmd() *cobra.Command {
	var (
		serverURL string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "control",
		Short: "Drive a running robocleaner server",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogger(logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&serverURL, "server", client.DefaultServerURL, "Server URL")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")

	newClient := func() (*client.Client, error) {
		return client.NewClient(client.NewClientOptions{ServerURL: serverURL})
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:       "move <forward|rotate_left|rotate_right>",
			Short:     "Submit a move goal",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"forward", "rotate_left", "rotate_right"},
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				resp, err := c.SubmitGoal(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		},
		&cobra.Command{
			Use:   "cancel <goal-id>",
			Short: "Cancel a move goal",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				resp, err := c.CancelGoal(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		},
		&cobra.Command{
			Use:   "goal <goal-id>",
			Short: "Show a move goal",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				resp, err := c.GetGoal(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		},
		&cobra.Command{
			Use:   "battery",
			Short: "Show the battery status",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				resp, err := c.BatteryStatus(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		},
		&cobra.Command{
			Use:   "initial-state",
			Short: "Query the initial robot state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				resp, err := c.InitialState(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		},
		&cobra.Command{
			Use:       "report <revealed|cleaned>",
			Short:     "Report that the field map was revealed or cleaned",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"revealed", "cleaned"},
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				switch args[0] {
				case "revealed":
					return c.FieldMapRevealed(cmd.Context())
				case "cleaned":
					return c.FieldMapCleaned(cmd.Context())
				default:
					return fmt.Errorf("unknown report %q", args[0])
				}
			},
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Print the feedback stream until the session shuts down",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				return watch(cmd.Context(), c, cmd.OutOrStdout())
			},
		},
	)

	return cmd
}

func watch(ctx context.Context, c *client.Client, out io.Writer) error {
	messageQueue := queue.NewInMemoryQueue[*messages.Message](0)
	stream, err := c.DialFeedback(ctx, messageQueue)
	if err != nil {
		return err
	}

	streamErr := make(chan error, 1)
	go func() {
		streamErr <- stream.Start(ctx)
		messageQueue.Close()
	}()

	for {
		for _, msg := range messageQueue.ReadAllMessages() {
			if err := printJSON(out, msg); err != nil {
				return err
			}
		}
		select {
		case <-messageQueue.Ready():
		case err := <-streamErr:
			for _, msg := range messageQueue.ReadAllMessages() {
				if err := printJSON(out, msg); err != nil {
					return err
				}
			}
			return err
		}
	}
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
