package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptvault/internal/adapters/driven/clock"
	"github.com/custodia-labs/promptvault/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driving"
	"github.com/custodia-labs/promptvault/internal/core/services"
	"github.com/custodia-labs/promptvault/internal/logger"
)

// mockActionService records the actions the commands trigger.
type mockActionService struct{}

func (m *mockActionService) CopyPrompt(_ context.Context, _ *domain.Record) error { return nil }
func (m *mockActionService) CopyLink(_ context.Context, _ string) error           { return nil }
func (m *mockActionService) OpenSource(_ context.Context, _ *domain.Record) error { return nil }

// testRecords returns n records. Every fourth is tagged "poster" and made
// with Flux; record 1 carries a style and a source link.
func testRecords(n int) []domain.Record {
	records := make([]domain.Record, n)
	for i := range records {
		records[i] = domain.Record{
			Prompt:    fmt.Sprintf("prompt %d", i),
			Images:    []string{fmt.Sprintf("https://img.example.com/%d.jpg", i)},
			Tool:      "Midjourney",
			Author:    "tester",
			CreatedAt: "2024-01-02",
		}
		if i%4 == 0 {
			records[i].Tags = []string{"poster"}
			records[i].Tool = "Flux"
		}
	}
	if n > 1 {
		records[1].Style = "3D"
		records[1].SourceURL = "https://example.com/post/1"
	}
	return records
}

// setupTestServices injects loaded in-memory services for n records and
// removes them when the test ends.
func setupTestServices(t *testing.T, n int) *services.CatalogService {
	t.Helper()
	catalog := services.NewCatalogService(
		memory.NewRecordSource(testRecords(n)),
		domain.DefaultGallerySettings(),
		clock.System{},
	)
	require.NoError(t, catalog.Load(context.Background()))
	injectServices(t, catalog)
	return catalog
}

func injectServices(t *testing.T, catalog driving.CatalogService) {
	t.Helper()
	catalogService = catalog
	actionService = &mockActionService{}
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	t.Cleanup(func() {
		catalogService = nil
		actionService = nil
		settingsService = nil
	})
}

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetContext(context.Background())
		resetFlags(rootCmd)
		logger.SetVerbose(false)
	})

	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}

// resetFlags restores every flag in the tree to its default, since the
// command tree is package state shared by all tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
