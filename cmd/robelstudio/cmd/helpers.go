package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abiy5791/RobelStudio-sub001/users"
)

// protect runs the command body behind the route guard for commands that
// need a session but not the profile itself.
func protect(cmd *cobra.Command, run func(cmd *cobra.Command) error) error {
	return routeGuard.Protect(cmd.Context(), func(ctx context.Context, _ *users.Profile) error {
		return run(cmd)
	})
}
