package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/foxfind/internal/core/domain"
	"github.com/custodia-labs/foxfind/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides the two fixed actions on a search
// result: open the URL in the default browser and copy it to the
// system clipboard.
type ResultActionService struct{}

// NewResultActionService creates a new result action service.
func NewResultActionService() *ResultActionService {
	return &ResultActionService{}
}

// Open hands the URL to the platform launcher.
func (s *ResultActionService) Open(_ context.Context, url string) error {
	if url == "" {
		return fmt.Errorf("%w: empty URL", domain.ErrInvalidInput)
	}
	return openURL(url)
}

// Copy places the URL on the system clipboard.
func (s *ResultActionService) Copy(_ context.Context, url string) error {
	if url == "" {
		return fmt.Errorf("%w: empty URL", domain.ErrInvalidInput)
	}
	return copyToClipboard(url)
}

// openURL launches the URL with the OS-specific opener.
func openURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", url)
	case osLinux:
		cmd = exec.Command("xdg-open", url)
	case osWindows:
		cmd = exec.Command("cmd", "/c", "start", "", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// copyToClipboard copies text to the system clipboard using OS-specific commands.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("pbcopy")
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard utility found (install xclip or xsel)")
		}
	case osWindows:
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
