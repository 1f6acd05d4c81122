package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/web"
)

var (
	serveAddr string
	serveRate float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the gallery as a JSON API",
	Long: `Serve a read-only JSON API over the loaded prompts.

Endpoints:
  GET /api/prompts?filter=&q=&page=&id=   page window, plus the deep-linked prompt
  GET /api/prompts/{index}                a single prompt
  GET /api/facets?limit=                  style and tool categories
  GET /api/status                         load state and record count

Requests beyond --rate per second are answered with 429.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings)")
	serveCmd.Flags().Float64Var(&serveRate, "rate", 0, "requests per second (default from settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := loadRecords(cmd.Context()); err != nil {
		return fmt.Errorf("loading prompts: %w", err)
	}

	settings := catalogService.Settings()
	addr := firstNonEmpty(serveAddr, settings.ServeAddr)
	rate := serveRate
	if !cmd.Flags().Changed("rate") {
		rate = settings.ServeRate
	}

	server, err := web.NewServer(&web.Ports{Catalog: catalogService}, rate)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Serving %d prompts on %s\n", catalogService.Count(), addr)
	return server.Run(ctx, addr)
}
