package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	influmatch "github.com/influmatch/influmatch-go"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store credentials",
	Long: `Authenticates against the backend and writes the issued session ID and
access token into the credential store. The password is read from the
--password flag, or from stdin when the flag is omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		password := loginPassword
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		auth, err := client.Auth.Login(cmd.Context(), influmatch.Credentials{
			Email:    loginEmail,
			Password: password,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(auth)
		}
		fmt.Printf("Logged in as %s (%s)\n", auth.User.Email, auth.User.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (read from stdin when omitted)")
	_ = loginCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(loginCmd)
}
