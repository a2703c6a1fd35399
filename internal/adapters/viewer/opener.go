package viewer

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"matchreview/internal/ports"
)

// Opener implements ports.ImageViewer with the OS opener or a configured command
type Opener struct {
	command []string
	goos    string
}

// Ensure Opener implements ImageViewer
var _ ports.ImageViewer = (*Opener)(nil)

// NewOpener creates a new opener. command is split on whitespace and
// the target is appended as last argument; empty means the OS default.
func NewOpener(command string) *Opener {
	return &Opener{
		command: strings.Fields(command),
		goos:    runtime.GOOS,
	}
}

// Open opens an image path or a link without waiting for the viewer to exit
func (o *Opener) Open(target string) error {
	cmd, err := o.BuildCommand(target)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}
	go cmd.Wait()
	return nil
}

// BuildCommand constructs the command that opens target
func (o *Opener) BuildCommand(target string) (*exec.Cmd, error) {
	target, err := normalizeTarget(target)
	if err != nil {
		return nil, err
	}

	if len(o.command) > 0 {
		args := append(append([]string(nil), o.command[1:]...), target)
		return exec.Command(o.command[0], args...), nil
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", target), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

// normalizeTarget accepts http(s) links and local paths, made absolute
func normalizeTarget(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("nothing to open")
	}

	if u, err := url.Parse(target); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		if u.Scheme != "http" && u.Scheme != "https" {
			return "", fmt.Errorf("unsupported link scheme: %s", u.Scheme)
		}
		if u.Host == "" {
			return "", fmt.Errorf("link has no host: %s", target)
		}
		return u.String(), nil
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	return abs, nil
}
