package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newHeadlinesCmd() *cobra.Command {
	var (
		count    int
		page     int
		category string
	)

	cmd := &cobra.Command{
		Use:   "headlines [query...]",
		Short: "Fetch top headlines",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			// The path argument string is the server's native input:
			// free-text chunk first, then key=value chunks.
			var chunks []string
			if len(cmdArgs) > 0 {
				chunks = append(chunks, url.PathEscape(strings.Join(cmdArgs, "+")))
			}
			if count > 0 {
				chunks = append(chunks, "n="+strconv.Itoa(count))
			}
			if page > 0 {
				chunks = append(chunks, "page="+strconv.Itoa(page))
			}
			if category != "" {
				chunks = append(chunks, "category="+category)
			}

			body, err := client.GetTable("/"+strings.Join(chunks, ","), displayQuery())
			if err != nil {
				return fmt.Errorf("fetch headlines: %w", err)
			}
			fmt.Print(body)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "number", "n", 0, "Show at most this many articles")
	cmd.Flags().IntVar(&page, "page", 0, "Upstream result page")
	cmd.Flags().StringVar(&category, "category", "", "Headline category")

	return cmd
}
