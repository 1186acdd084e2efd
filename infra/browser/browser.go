// Package browser opens links in the user's web browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsafeURL is returned for anything that is not an absolute http(s) URL.
var ErrUnsafeURL = errors.New("refusing to open non-http url")

// EnvOpener opens URLs using $BROWSER, falling back to the platform opener
// (open on macOS, xdg-open elsewhere). The command is started, not waited on.
type EnvOpener struct {
	goos   string
	getenv func(string) string
	start  func(*exec.Cmd) error
}

// NewEnvOpener creates an EnvOpener for the running platform.
func NewEnvOpener() *EnvOpener {
	return &EnvOpener{
		goos:   runtime.GOOS,
		getenv: os.Getenv,
		start:  (*exec.Cmd).Start,
	}
}

// Cmd prepares the command that would open rawURL.
func (o *EnvOpener) Cmd(rawURL string) (*exec.Cmd, error) {
	if !IsSafeURL(rawURL) {
		return nil, fmt.Errorf("%w: %q", ErrUnsafeURL, rawURL)
	}
	if b := strings.TrimSpace(o.getenv("BROWSER")); b != "" {
		// $BROWSER may be a colon-separated list; the first entry wins.
		first := strings.Fields(strings.Split(b, ":")[0])
		if len(first) > 0 {
			return exec.Command(first[0], append(first[1:], rawURL)...), nil
		}
	}
	switch o.goos {
	case "darwin":
		return exec.Command("open", rawURL), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL), nil
	default:
		return exec.Command("xdg-open", rawURL), nil
	}
}

// Open starts the browser for rawURL.
func (o *EnvOpener) Open(rawURL string) error {
	cmd, err := o.Cmd(rawURL)
	if err != nil {
		return err
	}
	if err := o.start(cmd); err != nil {
		return fmt.Errorf("starting %s: %w", cmd.Args[0], err)
	}
	return nil
}

// IsSafeURL accepts only absolute http and https URLs with a host.
func IsSafeURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
