package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSourcesCmd() *cobra.Command {
	var (
		category string
		language string
	)

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List queryable news outlets",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := displayQuery()
			if category != "" {
				q.Set("category", category)
			}
			if language != "" {
				q.Set("language", language)
			}

			body, err := client.GetTable("/sources", q)
			if err != nil {
				return fmt.Errorf("fetch sources: %w", err)
			}
			fmt.Print(body)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Source category")
	cmd.Flags().StringVar(&language, "language", "", "Source language code")

	return cmd
}
