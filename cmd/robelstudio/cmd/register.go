package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/abiy5791/RobelStudio-sub001/api"
	"github.com/abiy5791/RobelStudio-sub001/users"
)

var registerOpts api.RegisterRequest

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a studio account (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return routeGuard.Protect(cmd.Context(), func(ctx context.Context, user *users.Profile) error {
			// The server enforces this too; rejecting here saves the
			// round trip and gives a clearer message.
			if !user.IsAdmin {
				return errors.New("only admin accounts can register new users")
			}

			fmt.Print("Password for new account: ")
			password, err := terminal.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return errors.Wrap(err, "[register] read password")
			}
			registerOpts.Password = string(password)

			data, err := sess.Register(ctx, registerOpts)
			if err != nil {
				return err
			}
			fmt.Printf("Registered and switched to %s\n", data.User.Username)
			return nil
		})
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerOpts.Username, "username", "", "username for the new account")
	registerCmd.Flags().StringVar(&registerOpts.Email, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerOpts.FirstName, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&registerOpts.LastName, "last-name", "", "last name")
	_ = registerCmd.MarkFlagRequired("username")
	rootCmd.AddCommand(registerCmd)
}
