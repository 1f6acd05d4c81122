package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/textutil"
)

// showWrapWidth is the width prompts are wrapped to.
const showWrapWidth = 80

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <index|deep-link>",
	Short: "Show a single prompt",
	Long: `Show the full text and metadata of a prompt.

The argument is either the prompt's index, as printed by 'list', or a deep
link such as http://localhost:8080/?id=12.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the prompt as JSON")
	rootCmd.AddCommand(showCmd)
}

// showOutput is the JSON shape of the show command.
type showOutput struct {
	Index  int           `json:"index"`
	Record domain.Record `json:"record"`
	Link   string        `json:"link"`
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := loadRecords(cmd.Context()); err != nil {
		return fmt.Errorf("loading prompts: %w", err)
	}

	index, err := resolveIndex(cmd, args[0])
	if err != nil {
		return err
	}

	rec, err := catalogService.Record(cmd.Context(), index)
	if err != nil {
		return fmt.Errorf("getting prompt: %w", err)
	}
	link, err := catalogService.Link(index)
	if err != nil {
		return fmt.Errorf("building link: %w", err)
	}

	if showJSON {
		data, err := json.MarshalIndent(showOutput{Index: index, Record: rec, Link: link}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal prompt: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	outputRecord(cmd, index, &rec, link, time.Now())
	return nil
}

// resolveIndex accepts a global index or a deep link. Deep links are
// restored on a fresh gallery, so only links that open a record resolve.
func resolveIndex(cmd *cobra.Command, arg string) (int, error) {
	if index, err := strconv.Atoi(arg); err == nil {
		return index, nil
	}
	if !strings.Contains(arg, "://") && !strings.HasPrefix(arg, "?") {
		return 0, fmt.Errorf("%q is neither an index nor a link: %w", arg, domain.ErrInvalidInput)
	}

	view, err := catalogService.Query(cmd.Context(), domain.GalleryQuery{Link: arg})
	if err != nil {
		return 0, fmt.Errorf("resolving link: %w", err)
	}
	if !view.HasOpen() {
		return 0, fmt.Errorf("link %q does not name a prompt: %w", arg, domain.ErrNotFound)
	}
	return view.OpenIndex, nil
}

func outputRecord(cmd *cobra.Command, index int, rec *domain.Record, link string, now time.Time) {
	header := fmt.Sprintf("Prompt #%d  %s", index, rec.Tool)
	if rec.Author != "" {
		header += " · " + rec.Author
	}
	if rec.IsNew(now) {
		header += "  [NEW]"
	}
	cmd.Println(header)
	cmd.Println()
	for _, line := range textutil.Wrap(rec.Prompt, showWrapWidth) {
		cmd.Println("  " + line)
	}
	cmd.Println()

	tbl := uitable.New()
	tbl.Separator = "  "
	if len(rec.Tags) > 0 {
		tbl.AddRow("Tags:", strings.Join(rec.Tags, ", "))
	}
	if rec.Style != "" {
		tbl.AddRow("Style:", rec.Style)
	}
	if created, ok := rec.Created(); ok {
		tbl.AddRow("Created:", created.Format("2006-01-02"))
	}
	tbl.AddRow("Characters:", rec.CharCount())
	if img := rec.Image(); img != "" {
		tbl.AddRow("Image:", img)
	}
	if rec.HasSource() {
		tbl.AddRow("Source:", rec.SourceURL)
	}
	tbl.AddRow("Link:", link)
	cmd.Println(tbl)
}
