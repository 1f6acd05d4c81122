package cli

import (
	"encoding/json"
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

var (
	facetsLimit int
	facetsJSON  bool
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List filter categories with counts",
	Long: `List the categories accepted by 'list --filter'.

Styles are the most common tags in the data file. Tools are the fixed set of
generators, with the number of prompts made by each.`,
	Args: cobra.NoArgs,
	RunE: runFacets,
}

func init() {
	facetsCmd.Flags().IntVarP(&facetsLimit, "limit", "n", 0, "maximum number of styles (0 = from settings)")
	facetsCmd.Flags().BoolVar(&facetsJSON, "json", false, "output facets as JSON")
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, _ []string) error {
	if facetsLimit < 0 {
		return fmt.Errorf("limit %d: %w", facetsLimit, domain.ErrInvalidInput)
	}
	if err := loadRecords(cmd.Context()); err != nil {
		return fmt.Errorf("loading prompts: %w", err)
	}

	facets, err := catalogService.Facets(cmd.Context(), facetsLimit)
	if err != nil {
		return fmt.Errorf("listing facets: %w", err)
	}

	if facetsJSON {
		data, err := json.MarshalIndent(facets, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal facets: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Styles")
	cmd.Println(facetTable(facets.Style))
	cmd.Println()
	cmd.Println("Tools")
	cmd.Println(facetTable(facets.Tool))
	return nil
}

func facetTable(facets []domain.Facet) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	if len(facets) == 0 {
		tbl.AddRow("  (none)")
		return tbl
	}
	for _, f := range facets {
		tbl.AddRow("  "+f.Key, f.Count)
	}
	tbl.RightAlign(1)
	return tbl
}
