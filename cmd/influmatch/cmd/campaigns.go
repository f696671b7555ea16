package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	influmatch "github.com/influmatch/influmatch-go"
)

var (
	campaignsActive bool
	campaignsQuery  string
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Browse campaigns",
}

var campaignsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns visible to the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		var campaigns []influmatch.Campaign
		switch {
		case campaignsQuery != "":
			campaigns, err = client.Campaigns.Search(cmd.Context(), campaignsQuery)
		case campaignsActive:
			campaigns, err = client.Campaigns.ListActive(cmd.Context())
		default:
			campaigns, err = client.Campaigns.List(cmd.Context())
		}
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(campaigns)
		}

		for _, c := range campaigns {
			fmt.Printf("%s  %-10s %-10s $%.0f  %s\n",
				c.ID, c.Platform, c.Status, c.Budget, c.Title)
		}
		return nil
	},
}

var campaignsShowCmd = &cobra.Command{
	Use:   "show <campaign-id>",
	Short: "Show one campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		campaign, err := client.Campaigns.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(campaign)
		}

		fmt.Printf("%s\n", campaign.Title)
		fmt.Printf("  Platform:  %s\n", campaign.Platform)
		fmt.Printf("  Category:  %s\n", campaign.Category)
		fmt.Printf("  Status:    %s\n", campaign.Status)
		fmt.Printf("  Budget:    $%.2f (spent $%.2f)\n", campaign.Budget, campaign.TotalSpent)
		fmt.Printf("  Runs:      %s to %s\n", campaign.StartDate, campaign.EndDate)
		fmt.Printf("  Creators:  %d (reach %d)\n", campaign.TotalCreators, campaign.TotalReach)
		return nil
	},
}

func init() {
	campaignsListCmd.Flags().BoolVar(&campaignsActive, "active", false, "only currently running campaigns")
	campaignsListCmd.Flags().StringVar(&campaignsQuery, "search", "", "filter campaigns by text query")
	campaignsCmd.AddCommand(campaignsListCmd)
	campaignsCmd.AddCommand(campaignsShowCmd)
	rootCmd.AddCommand(campaignsCmd)
}
