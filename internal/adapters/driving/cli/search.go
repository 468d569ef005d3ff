package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
)

// Flags for search.
var (
	searchLimit      int
	searchJSON       bool
	searchVisibility string
	searchFolder     string
	searchLanguage   string
	searchTags       []string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a one-shot search over your gists",
	Long: `Scans every indexed gist and prints the ranked matches.

An empty query lists all gists. Filters narrow the scanned set before
matching; an unrecognised visibility value simply matches nothing.

Examples:
  gistfind search react
  gistfind search "use effect" --language javascript
  gistfind search deploy --folder ops --tag oncall --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default from config)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVar(&searchVisibility, "visibility", "", "filter by visibility (public or private)")
	searchCmd.Flags().StringVar(&searchFolder, "folder", "", "filter by folder path segment")
	searchCmd.Flags().StringVar(&searchLanguage, "language", "", "filter by file language")
	searchCmd.Flags().StringArrayVar(&searchTags, "tag", nil, "require a tag (repeatable, all must match)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	opts := domain.SearchOptions{}
	if settingsService != nil {
		opts = settingsService.SearchOptions()
	}
	if searchLimit > 0 {
		opts.MaxResults = searchLimit
	}
	opts.Filters = domain.Filters{
		Visibility: searchVisibility,
		Folder:     searchFolder,
		Language:   searchLanguage,
		Tags:       searchTags,
	}

	results, err := searchService.Search(context.Background(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.RankedResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.RankedResult) error {
	if len(results) == 0 {
		cmd.Println("No gists indexed.")
		return nil
	}

	if results[0].IsSentinel() {
		cmd.Println(results[0].Preview)
		return nil
	}

	for i := range results {
		r := &results[i]

		label := r.Name
		if folder := strings.Join(r.FolderPath, "/"); folder != "" {
			label = folder + "/" + label
		}

		cmd.Printf("  [%d] %s (%s, %s match)\n", r.Rank+1, label, r.Visibility, r.FieldKind)
		if r.SubKey != "" && r.FieldKind != domain.FieldTag {
			if r.LineNumber > 0 {
				cmd.Printf("      %s:%d\n", r.SubKey, r.LineNumber)
			} else {
				cmd.Printf("      %s\n", r.SubKey)
			}
		}
		if r.Preview != "" && r.Preview != r.Name {
			cmd.Printf("      %s\n", r.Preview)
		}
		if len(r.Tags) > 0 {
			cmd.Printf("      #%s\n", strings.Join(r.Tags, " #"))
		}
		cmd.Println()
	}

	return nil
}
