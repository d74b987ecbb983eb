package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newHelpTableCmd fetches the server's route reference. Named "usage"
// so it does not collide with cobra's built-in help command.
func newHelpTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show the server's argument reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := client.GetTable("/help", displayQuery())
			if err != nil {
				return fmt.Errorf("fetch usage: %w", err)
			}
			fmt.Print(body)
			return nil
		},
	}
}
