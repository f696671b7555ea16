package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
)

var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Manage connected social platforms",
}

var socialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List connected platforms",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		platforms, err := client.Social.ConnectedPlatformList(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(platforms)
		}

		for _, p := range platforms.Connected {
			fmt.Printf("%-10s @%-20s %d followers  synced %s\n",
				p.Platform, p.Username, p.FollowersCount, p.LastSyncedAt)
		}
		for _, p := range platforms.Disconnected {
			fmt.Printf("%-10s not connected\n", p)
		}
		return nil
	},
}

var socialSyncCmd = &cobra.Command{
	Use:   "sync [platform]",
	Short: "Refresh platform metrics",
	Long: `Refreshes metrics for one platform, or for every connected platform when
no argument is given. Syncs call out to the platform APIs and run with a
longer timeout than regular requests.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		syncTimeout := apiclient.WithTimeout(2 * time.Minute)

		if len(args) == 1 {
			result, err := client.Social.Sync(cmd.Context(), args[0], syncTimeout)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(result)
			}
			fmt.Printf("%s synced at %s\n", result.Platform, result.SyncedAt)
			return nil
		}

		result, err := client.Social.SyncAll(cmd.Context(), syncTimeout)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(result)
		}
		for _, r := range result.Results {
			status := "ok"
			if !r.Success {
				status = "failed: " + r.Error
			}
			fmt.Printf("%-10s %s\n", r.Platform, status)
		}
		return nil
	},
}

func init() {
	socialCmd.AddCommand(socialListCmd)
	socialCmd.AddCommand(socialSyncCmd)
	rootCmd.AddCommand(socialCmd)
}
