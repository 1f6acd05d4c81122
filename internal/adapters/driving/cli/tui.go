package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/promptvault/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui"
)

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("the interactive UI needs a terminal; use 'list' or 'show' instead")

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var tuiLink string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive gallery.

--link opens the gallery at a deep link, e.g. --link "http://localhost:8080/?id=12"
shows prompt 12 as soon as the data has loaded.

Controls:
  ↑/k, ↓/j    - Move through cards (scrolling near the end loads more)
  /           - Focus search
  Tab         - Next category, Shift+Tab previous
  Enter       - Open prompt
  ←/h, →/l    - Previous / next prompt (or drag sideways)
  y, L, o     - Copy prompt, copy link, open source
  m           - Load more
  c           - Clear filters
  Esc         - Close prompt / clear search
  s           - Settings
  ?           - Toggle help
  q           - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLink, "link", "", "deep link to open (default: the configured base URL)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if !isTerminal() {
		return errNotTerminal
	}

	link := firstNonEmpty(tuiLink, catalogService.Settings().BaseURL)
	loc, err := memory.NewLocation(link)
	if err != nil {
		return fmt.Errorf("invalid link: %w", err)
	}

	ports := tui.NewPorts(catalogService, actionService, settingsService)
	app, err := tui.NewApp(ports, loc)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
