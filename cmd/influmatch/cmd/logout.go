package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutAll bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session and remove stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		if logoutAll {
			count, err := client.Auth.LogoutAllDevices(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Revoked %d sessions\n", count)
			return nil
		}

		if err := client.Auth.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	logoutCmd.Flags().BoolVar(&logoutAll, "all", false, "revoke every session of the account")
	rootCmd.AddCommand(logoutCmd)
}
