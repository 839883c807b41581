package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"news-collector/domain"
	"news-collector/fetcher"
	"news-collector/htmlutil"
	"news-collector/repository"
	"news-collector/service"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <category|all>",
	Short: "Fetch pages of one or all categories into the article archive",
	Long: `Fetch pages 1..N for a category (or every known category) and save
each article as its own JSON file under the archive directory, organized by
category. Archived bodies keep their paragraph structure.

Categories: local, sports, foreign, business, all

Examples:
  news-collector archive sports --pages 5
  news-collector archive all --pages 3 --per-page 10`,
	Args: cobra.ExactArgs(1),
	RunE: runArchive,
}

func init() {
	rootCmd.AddCommand(archiveCmd)

	archiveCmd.Flags().Int("pages", 3, "number of pages to fetch per category")
	archiveCmd.Flags().Int("per-page", 10, "articles per page")
}

func runArchive(cmd *cobra.Command, args []string) error {
	pages, _ := cmd.Flags().GetInt("pages")
	perPage, _ := cmd.Flags().GetInt("per-page")

	if pages <= 0 || perPage <= 0 {
		return fmt.Errorf("pages and per-page must be positive")
	}

	converter, err := service.NewConverterWithExtractor(cfg, log, htmlutil.ExtractText)
	if err != nil {
		return err
	}

	collector := service.NewArchiveCollector(
		log,
		fetcher.New(cfg, log),
		converter,
		repository.NewArchiveWriter(cfg.Output.ArchiveDir, log),
	)

	var result *service.ArchiveResult

	if args[0] == "all" {
		result, err = collector.ArchiveAll(cmd.Context(), pages, perPage)
	} else {
		var category domain.Category
		category, err = domain.CategoryByName(args[0])
		if err != nil {
			return err
		}
		result, err = collector.Archive(cmd.Context(), category, pages, perPage)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Archived %d articles from %d pages (%d pages failed, %d records skipped)\n",
		result.SavedCount, result.PagesFetched, result.PagesFailed, result.SkippedCount)

	return nil
}
