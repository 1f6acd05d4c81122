package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure RecordActionService implements the interface.
var _ driving.RecordActionService = (*RecordActionService)(nil)

// commandRunner starts an OS command, feeding it stdin when non-empty.
type commandRunner func(cmd *exec.Cmd, stdin string) error

// RecordActionService provides actions on an opened record.
type RecordActionService struct {
	goos string
	run  commandRunner
	look func(string) (string, error)
}

// NewRecordActionService creates a new record action service.
func NewRecordActionService() *RecordActionService {
	return &RecordActionService{
		goos: runtime.GOOS,
		run:  runCommand,
		look: exec.LookPath,
	}
}

// CopyPrompt copies the record's prompt to the system clipboard.
func (s *RecordActionService) CopyPrompt(_ context.Context, record *domain.Record) error {
	if record == nil {
		return fmt.Errorf("record is nil: %w", domain.ErrInvalidInput)
	}
	return s.copyToClipboard(record.Prompt)
}

// CopyLink copies a deep link to the system clipboard.
func (s *RecordActionService) CopyLink(_ context.Context, link string) error {
	if link == "" {
		return fmt.Errorf("empty link: %w", domain.ErrInvalidInput)
	}
	return s.copyToClipboard(link)
}

// OpenSource opens the record's source URL in the default browser.
func (s *RecordActionService) OpenSource(_ context.Context, record *domain.Record) error {
	if record == nil {
		return fmt.Errorf("record is nil: %w", domain.ErrInvalidInput)
	}
	if !record.HasSource() {
		return domain.ErrNoSourceURL
	}
	return s.openURL(record.SourceURL)
}

// copyToClipboard copies text to the system clipboard using OS-specific commands.
func (s *RecordActionService) copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch s.goos {
	case osDarwin:
		cmd = exec.Command("pbcopy")
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := s.look("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := s.look("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard utility found (install xclip or xsel)")
		}
	case osWindows:
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, s.goos)
	}

	return s.run(cmd, text)
}

// openURL opens url with the platform's default handler.
func (s *RecordActionService) openURL(url string) error {
	var cmd *exec.Cmd

	switch s.goos {
	case osDarwin:
		cmd = exec.Command("open", url)
	case osLinux:
		cmd = exec.Command("xdg-open", url)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, s.goos)
	}

	return s.run(cmd, "")
}

func runCommand(cmd *exec.Cmd, stdin string) error {
	if stdin == "" {
		return cmd.Start()
	}
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.Run()
}
