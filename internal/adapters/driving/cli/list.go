package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/textutil"
)

// listPromptWidth caps the prompt column of the list table.
const listPromptWidth = 60

var (
	listFilter string
	listSearch string
	listPage   int
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompts",
	Long: `List prompts one page window at a time.

--filter selects a category: a tag (matched by substring), a style or a tool
name. --search matches prompts, tags, authors and tools, ignoring case.
--page N shows the first N pages, like pressing "load more" N-1 times.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "category key (tag, style or tool)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "search text")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "number of pages to show")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(listCmd)
}

// listEntry is the JSON shape of a list row.
type listEntry struct {
	Index  int      `json:"index"`
	Tool   string   `json:"tool"`
	Author string   `json:"author"`
	Prompt string   `json:"prompt"`
	Tags   []string `json:"tags,omitempty"`
	Image  string   `json:"image,omitempty"`
}

// listOutput is the JSON shape of the list command.
type listOutput struct {
	Filter    string      `json:"filter"`
	Query     string      `json:"query"`
	Page      int         `json:"page"`
	Matched   int         `json:"matched"`
	Total     int         `json:"total"`
	Exhausted bool        `json:"exhausted"`
	Prompts   []listEntry `json:"prompts"`
}

func runList(cmd *cobra.Command, _ []string) error {
	if listPage < 1 {
		return fmt.Errorf("page %d: %w", listPage, domain.ErrInvalidInput)
	}
	if err := loadRecords(cmd.Context()); err != nil {
		return fmt.Errorf("loading prompts: %w", err)
	}

	view, err := catalogService.Query(cmd.Context(), domain.GalleryQuery{
		Filter: listFilter,
		Query:  listSearch,
		Page:   listPage,
	})
	if err != nil {
		return fmt.Errorf("listing prompts: %w", err)
	}

	if listJSON {
		return outputListJSON(cmd, view)
	}
	outputListTable(cmd, view)
	return nil
}

func outputListJSON(cmd *cobra.Command, view domain.GalleryView) error {
	out := listOutput{
		Filter:    view.Filter.Filter,
		Query:     view.Filter.Query,
		Page:      view.Page,
		Matched:   view.Matched,
		Total:     view.StoreCount,
		Exhausted: view.Exhausted,
		Prompts:   make([]listEntry, len(view.Visible)),
	}
	for i, entry := range view.Visible {
		out.Prompts[i] = listEntry{
			Index:  entry.Index,
			Tool:   entry.Record.Tool,
			Author: entry.Record.Author,
			Prompt: entry.Record.Prompt,
			Tags:   entry.Record.Tags,
			Image:  entry.Record.Image(),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputListTable(cmd *cobra.Command, view domain.GalleryView) {
	if view.Empty() {
		cmd.Println("No prompts match your filters.")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("#", "TOOL", "AUTHOR", "PROMPT", "TAGS")
	for _, entry := range view.Visible {
		tbl.AddRow(
			entry.Index,
			entry.Record.Tool,
			entry.Record.Author,
			textutil.Summary(entry.Record.Prompt, listPromptWidth),
			strings.Join(entry.Record.Tags, ", "),
		)
	}
	tbl.RightAlign(0)
	cmd.Println(tbl)
	cmd.Println()
	cmd.Println(listFooter(view))
}

// listFooter reports how much of the filtered sequence is shown.
func listFooter(view domain.GalleryView) string {
	shown := len(view.Visible)
	if view.Exhausted {
		return fmt.Sprintf("Showing all %d prompts", view.Matched)
	}
	return fmt.Sprintf("Showing %d of %d prompts (use --page %d for more)", shown, view.Matched, view.Page+1)
}
