package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage the account's active sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active sessions across devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		sessions, err := client.Auth.ActiveSessions(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(sessions)
		}

		for _, s := range sessions {
			marker := " "
			if s.IsCurrent {
				marker = "*"
			}
			last := time.UnixMilli(s.LastAccessedAt).Format(time.RFC3339)
			fmt.Printf("%s %s  last active %s  %s\n", marker, s.SessionID, last, s.UserAgent)
		}
		return nil
	},
}

var sessionsRevokeCmd = &cobra.Command{
	Use:   "revoke <session-id>",
	Short: "End one session by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := client.Auth.RevokeSession(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Session %s revoked\n", args[0])
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsRevokeCmd)
	rootCmd.AddCommand(sessionsCmd)
}
