package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"news-collector/fetcher"
	"news-collector/repository"
	"news-collector/service"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch one page of a category and write output.json",
	Long: `Fetch a single page of articles from one category and write them as
a JSON document under the "newsArticles" key.

Examples:
  news-collector fetch                          # defaults: category 83, page 2, count 5
  news-collector fetch --category 81 --page 1 --count 10
  news-collector fetch --output sports.json`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().IntP("category", "c", 83, "provider category ID")
	fetchCmd.Flags().IntP("page", "p", 2, "page number")
	fetchCmd.Flags().IntP("count", "n", 5, "articles per page")
	fetchCmd.Flags().StringP("output", "o", "output.json", "output file path")
}

func runFetch(cmd *cobra.Command, args []string) error {
	category := flagOrConfigInt(cmd, "category", cfg.Fetch.CategoryID)
	page := flagOrConfigInt(cmd, "page", cfg.Fetch.Page)
	count := flagOrConfigInt(cmd, "count", cfg.Fetch.Count)
	output := flagOrConfigString(cmd, "output", cfg.Output.Path)

	converter, err := service.NewConverter(cfg, log)
	if err != nil {
		return err
	}

	collector := service.NewCollector(
		log,
		fetcher.New(cfg, log),
		converter,
		repository.NewOutputWriter(log),
	)

	result, err := collector.Run(cmd.Context(), category, page, count, output)
	if err != nil {
		return err
	}

	fmt.Printf("Fetched %d articles, wrote %d to %s (%d skipped)\n",
		result.FetchedCount, result.MappedCount, result.OutputPath, result.SkippedCount)

	return nil
}

// flagOrConfigInt prefers an explicitly set flag over the configured value.
func flagOrConfigInt(cmd *cobra.Command, name string, configured int) int {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetInt(name)
		return value
	}
	return configured
}

func flagOrConfigString(cmd *cobra.Command, name string, configured string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return configured
}
