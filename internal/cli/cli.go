// Package cli implements the graphvis command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphvis/pkg/buildinfo"
	"github.com/matzehuels/graphvis/pkg/display"
	"github.com/matzehuels/graphvis/pkg/graph"
	"github.com/matzehuels/graphvis/pkg/render/nodelink"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "graphvis"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// Capabilities
// =============================================================================

// graphRenderer draws a graph into an image. Implemented by *nodelink.Renderer.
type graphRenderer interface {
	Render(ctx context.Context, g *graph.Graph, format nodelink.Format, w io.Writer) error
	Close() error
}

// imageViewer shows an image file to the user. Implemented by *display.Viewer.
type imageViewer interface {
	Open(ctx context.Context, path string) error
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Stdin is read when --edges is "-". Stdout receives the adjacency list
	// and status lines; logs go to the Logger's writer. Stderr is used for
	// the progress spinner only.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	newRenderer  func(ctx context.Context, opts nodelink.Options) (graphRenderer, error)
	detectViewer func() (imageViewer, error)
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		newRenderer: func(ctx context.Context, opts nodelink.Options) (graphRenderer, error) {
			return nodelink.New(ctx, opts)
		},
		detectViewer: func() (imageViewer, error) {
			return display.Detect()
		},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself visualizes a graph.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.visualizeCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}
