package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var whoamiRemote bool

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	Long: `Prints the locally cached account by default. With --remote the profile
is fetched from the backend instead, which also verifies the stored
credentials are still accepted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		if !client.Auth.IsAuthenticated() {
			return fmt.Errorf("not logged in")
		}

		user := client.Auth.CurrentUser(cmd.Context())
		if whoamiRemote {
			user, err = client.Auth.Profile(cmd.Context())
			if err != nil {
				return err
			}
		}
		if user == nil {
			return fmt.Errorf("no cached profile; run whoami --remote")
		}

		if jsonOutput {
			return printJSON(user)
		}

		fmt.Printf("%s (%s)\n", user.Email, user.Role)
		if expiry := client.Session().TokenExpiresAt(); !expiry.IsZero() {
			fmt.Printf("Token expires %s (%s)\n",
				expiry.Format(time.RFC3339), time.Until(expiry).Round(time.Second))
		}
		return nil
	},
}

func init() {
	whoamiCmd.Flags().BoolVar(&whoamiRemote, "remote", false, "fetch the profile from the backend")
	rootCmd.AddCommand(whoamiCmd)
}
