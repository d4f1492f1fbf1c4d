package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Run: func(cmd *cobra.Command, args []string) {
		sess.Initialize(cmd.Context())

		user := sess.User()
		if user == nil {
			fmt.Println("Not logged in")
			return
		}

		fmt.Printf("%s (%s)\n", user.DisplayName(), user.Username)
		if user.Email != "" {
			fmt.Printf("Email:   %s\n", user.Email)
		}
		if user.IsAdmin {
			fmt.Println("Role:    admin")
		}
		if exp := sess.AccessTokenExpiresAt(); !exp.IsZero() {
			fmt.Printf("Token:   expires %s\n", exp.Local().Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
