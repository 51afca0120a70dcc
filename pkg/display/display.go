// Package display opens rendered images in the desktop's default viewer.
//
// [Detect] finds a viewer command for the running platform. On Linux and
// the BSDs it also requires a graphical session (DISPLAY or WAYLAND_DISPLAY),
// so headless hosts report UNAVAILABLE instead of failing later.
package display

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/graphvis/pkg/errors"
)

// Viewer is a command that opens a file in a graphical application.
type Viewer struct {
	Path string   // resolved executable
	Args []string // arguments placed before the file path
}

// Open hands path to the viewer and waits for the launcher to exit.
// Launchers such as xdg-open return as soon as the application has started.
func (v *Viewer) Open(ctx context.Context, path string) error {
	args := append(append([]string{}, v.Args...), path)
	cmd := exec.CommandContext(ctx, v.Path, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("open %s with %s: %w: %s", path, filepath.Base(v.Path), err, out)
	}
	return nil
}

type environment struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// Detect returns the viewer for the current platform, or an UNAVAILABLE
// error when none can be used.
func Detect() (*Viewer, error) {
	return environment{
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}.detect()
}

func (e environment) detect() (*Viewer, error) {
	var name string
	var args []string
	switch e.goos {
	case "darwin":
		name = "open"
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		if e.getenv("DISPLAY") == "" && e.getenv("WAYLAND_DISPLAY") == "" {
			return nil, errors.New(errors.ErrCodeUnavailable, "no graphical session (DISPLAY and WAYLAND_DISPLAY are unset)")
		}
		name = "xdg-open"
	}

	path, err := e.lookPath(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "no image viewer found")
	}
	return &Viewer{Path: path, Args: args}, nil
}

const tempPrefix = "graphvis-"

// TempPath returns a fresh file path in dir (os.TempDir() if empty) for an
// image with the given extension, e.g. "/tmp/graphvis-<uuid>.svg".
//
// The viewer reads the file after Open returns, so it cannot be deleted by
// the run that created it. [RemoveStale] clears old ones.
func TempPath(dir, ext string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, tempPrefix+uuid.NewString()+ext)
}

// RemoveStale deletes regular files created by [TempPath] in dir
// (os.TempDir() if empty) that were last modified more than maxAge ago.
// It returns the number of files removed.
func RemoveStale(dir string, maxAge time.Duration) (int, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	matches, err := filepath.Glob(filepath.Join(dir, tempPrefix+"*"))
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, path := range matches {
		info, err := os.Lstat(path)
		if err != nil || !info.Mode().IsRegular() || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}
		removed++
	}
	return removed, nil
}
