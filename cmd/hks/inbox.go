package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hacksolana/hks/internal/config"
	"github.com/hacksolana/hks/internal/database"
)

// NewInboxCmd creates the inbox command.
func NewInboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "List contact messages stored by the server",
		Long: `Inbox lists the contact form submissions kept by "hks serve --inbox",
newest first.

Examples:
  # Show the latest messages
  hks inbox

  # Show the latest 5 messages from a custom directory
  hks inbox --limit 5 --inbox-dir /var/lib/hks

  # Read the directory from the same config file as the server
  hks inbox -c /etc/hks/hks.yaml`,
		Args: cobra.NoArgs,
		RunE: runInboxCmd,
	}

	cmd.Flags().IntP("limit", "n", database.DefaultListLimit, "Maximum number of messages to list")
	cmd.Flags().String("inbox-dir", config.XDGDataDir(), "Directory of the inbox database")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .hks in current or home directory)")

	return cmd
}

// runInboxCmd executes the inbox command.
func runInboxCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	dir, err := inboxDir(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	inbox, err := database.Open(dir, database.ReadOnlyOptions())
	if err != nil {
		if errors.Is(err, database.ErrInboxNotFound) {
			fmt.Fprintf(out, "No inbox found in %s (start the server with --inbox).\n", dir)
			return nil
		}
		return fmt.Errorf("failed to open inbox: %w", err)
	}
	defer inbox.Close()

	ctx := cmd.Context()
	total, err := inbox.CountContactMessages(ctx)
	if err != nil {
		return err
	}
	messages, err := inbox.ListContactMessages(ctx, limit)
	if err != nil {
		return err
	}

	return printInbox(out, messages, total)
}

// inboxDir resolves the inbox directory the way serve does: defaults, then
// server.inboxDir from the config file, then --inbox-dir.
func inboxDir(cmd *cobra.Command) (string, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return "", err
	}
	if _, err := config.Load(cfg); err != nil {
		return "", err
	}

	if cmd.Flags().Changed("inbox-dir") {
		return cmd.Flags().GetString("inbox-dir")
	}
	return cfg.InboxDir, nil
}

func printInbox(w io.Writer, messages []database.StoredMessage, total int) error {
	if total == 0 {
		_, err := fmt.Fprintln(w, "Inbox is empty.")
		return err
	}

	header := color.New(color.FgGreen, color.Bold)
	_, _ = header.Fprintf(w, "%d message(s), showing %d\n\n", total, len(messages))

	for _, m := range messages {
		_, _ = header.Fprintf(w, "#%d  %s\n", m.ID, m.ReceivedAt.Local().Format(time.DateTime))
		fmt.Fprintf(w, "From:    %s <%s>\n", m.Name, m.Email)
		fmt.Fprintf(w, "Message: %s\n\n", m.Message)
	}
	return nil
}
