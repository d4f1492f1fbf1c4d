package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abiy5791/RobelStudio-sub001/api"
	"github.com/abiy5791/RobelStudio-sub001/credentials"
	"github.com/abiy5791/RobelStudio-sub001/guard"
	"github.com/abiy5791/RobelStudio-sub001/internal/config"
	"github.com/abiy5791/RobelStudio-sub001/session"
)

// Application root: config, API client, session manager, and route guard
// are built once here and shared by every command. The session manager is
// deliberately not a package-level singleton anywhere else.
var (
	cfg        config.Config
	client     *api.Client
	sess       *session.Manager
	routeGuard *guard.Guard
)

var rootCmd = &cobra.Command{
	Use:           "robelstudio",
	Short:         "Terminal client for the Robel Studio QR photo album service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

func initApp() error {
	cfg = config.New()
	store := credentials.NewFileStore(filepath.Join(cfg.GetDataFolder(), "credentials.json"))
	client = api.New(cfg.GetAPIBaseURL(), store)

	var err error
	if sess, err = session.NewManager(client, store); err != nil {
		return err
	}
	routeGuard, err = guard.New(sess, loginPrompt)
	return err
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
	return err
}
