package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the gist index",
}

var indexRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Fetch all gists and rebuild the index",
	RunE:  runIndexRebuild,
}

var indexListCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed gists",
	RunE:  runIndexList,
}

func init() {
	indexCmd.AddCommand(indexRebuildCmd)
	indexCmd.AddCommand(indexListCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexRebuild(cmd *cobra.Command, _ []string) error {
	if indexer == nil {
		return errors.New("indexer not configured")
	}

	if err := indexer.Rebuild(context.Background()); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	docs, err := indexer.Documents(context.Background())
	if err != nil {
		return fmt.Errorf("read index: %w", err)
	}

	cmd.Printf("Indexed %d gists.\n", len(docs))
	return nil
}

func runIndexList(cmd *cobra.Command, _ []string) error {
	if indexer == nil {
		return errors.New("indexer not configured")
	}

	docs, err := indexer.Documents(context.Background())
	if err != nil {
		return fmt.Errorf("read index: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No gists indexed.")
		return nil
	}

	for i := range docs {
		d := &docs[i]
		label := d.Name
		if folder := d.Folder(); folder != "" {
			label = folder + "/" + label
		}
		cmd.Printf("  %s (%s, %d files)\n", label, d.Visibility, len(d.Files))
	}
	return nil
}
