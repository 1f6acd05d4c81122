// Package cli provides the cobra command tree for promptvault. It is the
// composition root: it builds the driven adapters and core services and
// hands them to the driving adapters (TUI, MCP, HTTP API).
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/promptvault/internal/adapters/driven/clock"
	"github.com/custodia-labs/promptvault/internal/adapters/driven/config/file"
	"github.com/custodia-labs/promptvault/internal/adapters/driven/source"
	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driving"
	"github.com/custodia-labs/promptvault/internal/core/services"
	"github.com/custodia-labs/promptvault/internal/logger"
)

// Environment variables read after .env is loaded.
const (
	EnvData   = "PROMPTVAULT_DATA"
	EnvConfig = "PROMPTVAULT_CONFIG"
)

// annotationNoServices marks commands that run without the core services.
const annotationNoServices = "promptvault/no-services"

var version = "dev"

var (
	dataRef   string
	configDir string
	verbose   bool
)

// Services shared by the commands. Tests inject their own before Execute.
var (
	catalogService  driving.CatalogService
	actionService   driving.RecordActionService
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "promptvault",
	Short: "Browse a gallery of image-generation prompts",
	Long: `PromptVault is a searchable, filterable gallery of image-generation prompts.

Records are loaded once from a JSON or YAML data file (local path or URL).
Browse them interactively with 'promptvault tui', query them from scripts
with 'list', 'show' and 'facets', or expose them to AI assistants and other
programs with 'mcp serve' and 'serve'.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	cobra.OnInitialize(loadEnv)

	rootCmd.PersistentFlags().StringVar(&dataRef, "data", "",
		"data file path or URL (env "+EnvData+")")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "",
		"config directory (env "+EnvConfig+", default ~/"+file.DefaultDirName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// loadEnv reads .env from the working directory. Existing variables win.
func loadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("reading .env: %v", err)
	}
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}
	if catalogService != nil {
		return nil
	}
	return wireServices()
}

// wireServices builds the services from the config file, environment and
// flags. Flags override the environment, which overrides the config file.
func wireServices() error {
	logger.Section("Setup")

	dir := firstNonEmpty(configDir, os.Getenv(EnvConfig))
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	logger.Debug("config: %s", store.Path())

	settings := services.LoadGallerySettings(store)
	if ref := firstNonEmpty(dataRef, os.Getenv(EnvData)); ref != "" {
		settings.DataSource = ref
	}
	logger.Debug("data: %s", settings.DataSource)

	catalogService = services.NewCatalogService(source.New(settings.DataSource), settings, clock.System{})
	actionService = services.NewRecordActionService()
	settingsService = services.NewSettingsService(store)
	return nil
}

// loadRecords populates the record store unless it already is.
func loadRecords(ctx context.Context) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	if err := catalogService.Load(ctx); err != nil && !errors.Is(err, domain.ErrAlreadyLoaded) {
		return err
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
