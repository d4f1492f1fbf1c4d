package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/abiy5791/RobelStudio-sub001/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to a studio account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return loginPrompt(cmd.Context())
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored tokens",
	Run: func(cmd *cobra.Command, args []string) {
		sess.Logout()
		fmt.Println("Logged out")
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

// loginPrompt collects credentials on the terminal and signs the session
// in. It doubles as the guard's redirect target, so a protected command
// run while anonymous lands here and then continues where it left off.
func loginPrompt(ctx context.Context) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return errors.Wrap(err, "[loginPrompt] read username")
	}

	fmt.Print("Password: ")
	password, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return errors.Wrap(err, "[loginPrompt] read password")
	}

	data, err := sess.Login(ctx, api.Credentials{
		Username: strings.TrimSpace(username),
		Password: string(password),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", data.User.DisplayName())
	return nil
}
