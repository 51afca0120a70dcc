package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphvis/pkg/display"
	"github.com/matzehuels/graphvis/pkg/errors"
	"github.com/matzehuels/graphvis/pkg/graph"
	gio "github.com/matzehuels/graphvis/pkg/io"
	"github.com/matzehuels/graphvis/pkg/observability"
	"github.com/matzehuels/graphvis/pkg/render/nodelink"
	"github.com/matzehuels/graphvis/pkg/render/text"
)

// graphInput holds the flags that describe the graph itself.
type graphInput struct {
	n        int
	edges    string
	offByOne bool
}

// addGraphFlags registers --n, --edges and --offbyone on cmd.
func addGraphFlags(cmd *cobra.Command, in *graphInput) {
	cmd.Flags().IntVar(&in.n, "n", 0, "number of nodes; nodes are numbered 0..n-1")
	cmd.Flags().StringVar(&in.edges, "edges", "", `edges as a JSON 2D list, e.g. '[[0,1],[1,2]]' ("-" reads stdin)`)
	cmd.Flags().BoolVar(&in.offByOne, "offbyone", false, "treat edge indices as 1-based and shift them down by one")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("edges")
}

// staleImageAge is how long a temp image shown in the viewer is kept before
// a later run removes it.
const staleImageAge = 24 * time.Hour

// visualizeOptions holds everything the root command needs after flag parsing.
type visualizeOptions struct {
	input    graphInput
	output   string
	layout   string
	textOnly bool
	render   nodelink.Options
}

// visualizeCommand creates the root command that draws a graph.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		opts       visualizeOptions
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Visualize small undirected graphs",
		Long: `Visualize small undirected graphs.

Nodes are numbered 0..n-1. Edges are given as a JSON 2D list, either inline
or on standard input with --edges -. The graph is laid out with Graphviz and
either opened in the default image viewer or written to --out.

Without --out the image is written to a temporary graphvis-<uuid>.svg file;
files older than a day are removed by later runs.

When no renderer or viewer is available, an adjacency list is printed instead:

  0: 2 3 6
  1: 2 6

Edges that reference a node outside 0..n-1 are dropped with a warning.`,
		Example: `  graphvis --n 4 --edges '[[0,1],[1,2],[2,3],[3,0]]'
  cat edges.json | graphvis --n 10 --edges - --out graph.png
  graphvis --n 3 --edges '[[1,2],[2,3]]' --offbyone --text`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("layout") && cfg.Layout != "" {
				opts.layout = cfg.Layout
			}
			if err := errors.ValidateLayout(opts.layout); err != nil {
				return err
			}
			if opts.output != "" {
				if _, err := nodelink.FormatFromPath(opts.output); err != nil {
					return err
				}
			}
			opts.render = cfg.renderOptions(opts.layout)
			return c.runVisualize(cmd.Context(), opts)
		},
	}

	addGraphFlags(cmd, &opts.input)
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "save the image to this file (svg, png, jpg, dot, pdf) instead of opening a viewer")
	cmd.Flags().StringVar(&opts.layout, "layout", errors.LayoutSpring, "layout algorithm: spring, circular")
	cmd.Flags().BoolVar(&opts.textOnly, "text", false, "print the adjacency list instead of rendering")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphvis/config.toml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	_ = cmd.RegisterFlagCompletionFunc("layout", cobra.FixedCompletions(
		[]string{errors.LayoutSpring, errors.LayoutCircular}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runVisualize builds the graph and renders it, falling back to the
// adjacency list when rendering is unavailable.
func (c *CLI) runVisualize(ctx context.Context, opts visualizeOptions) error {
	g, err := c.loadGraph(ctx, opts.input)
	if err != nil {
		return err
	}

	if opts.textOnly {
		return c.printAdjacency(g)
	}

	err = c.renderGraph(ctx, g, opts)
	if errors.Is(err, errors.ErrCodeUnavailable) {
		reason := errors.UserMessage(err)
		c.Logger.Debug("rendering unavailable, printing adjacency list", "code", errors.GetCode(err), "reason", reason)
		observability.Pipeline().OnFallback(ctx, reason)
		return c.printAdjacency(g)
	}
	return err
}

// loadGraph parses the edge input and builds the graph, warning about every
// edge that falls outside the node range.
func (c *CLI) loadGraph(ctx context.Context, in graphInput) (*graph.Graph, error) {
	if err := errors.ValidateNodeCount(in.n); err != nil {
		return nil, err
	}

	start := time.Now()
	pairs, err := gio.LoadEdges(ctx, in.edges, c.Stdin)
	observability.Pipeline().OnParseComplete(ctx, len(pairs), time.Since(start), err)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && stderrors.Is(err, ctxErr) {
			return nil, err
		}
		var malformed *gio.MalformedInputError
		if stderrors.As(err, &malformed) {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "parse --edges")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read --edges")
	}
	delta := 0
	if in.offByOne {
		delta = -1
	}

	g, dropped := graph.Build(in.n, graph.Shift(pairs, delta))
	// report edges as the user wrote them
	for _, p := range graph.Shift(dropped, -delta) {
		c.Logger.Warn("ignoring edge that references a node outside 0..n-1", "edge", p.String(), "n", in.n)
	}
	observability.Pipeline().OnBuildComplete(ctx, g.NodeCount(), g.EdgeCount(), len(dropped))
	c.Logger.Debug("built graph", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "dropped", len(dropped))
	return g, nil
}

func (c *CLI) printAdjacency(g *graph.Graph) error {
	if err := text.WriteAdjacency(c.Stdout, g); err != nil {
		return fmt.Errorf("write adjacency list: %w", err)
	}
	return nil
}

// renderGraph draws g to opts.output, or to a temp file shown in the image
// viewer when no output is given. Missing capabilities surface as
// UNAVAILABLE errors.
func (c *CLI) renderGraph(ctx context.Context, g *graph.Graph, opts visualizeOptions) error {
	var viewer imageViewer
	if opts.output == "" {
		v, err := c.detectViewer()
		if err != nil {
			return err
		}
		viewer = v
	}

	r, err := c.newRenderer(ctx, opts.render)
	if err != nil {
		return err
	}
	defer r.Close()

	path, format := opts.output, nodelink.FormatSVG
	if path != "" {
		if format, err = nodelink.FormatFromPath(path); err != nil {
			return err
		}
	} else {
		if n, err := display.RemoveStale("", staleImageAge); err != nil {
			c.Logger.Debug("could not remove old temp images", "err", err)
		} else if n > 0 {
			c.Logger.Debug("removed old temp images", "count", n)
		}
		path = display.TempPath("", ".svg")
	}

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, c.Stderr, fmt.Sprintf("Rendering %d nodes...", g.NodeCount()))
	spinner.Start()

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.render.Layout, string(format), g.NodeCount())

	var buf bytes.Buffer
	err = r.Render(ctx, g, format, &buf)
	spinner.Stop()
	hooks.OnRenderComplete(ctx, string(format), time.Since(prog.start), err)
	if spinner.Cancelled() {
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", format))

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if viewer == nil {
		printSuccess(c.Stdout, "Saved image to: %s", path)
		printStats(c.Stdout, g.NodeCount(), g.EdgeCount())
		return nil
	}

	if err := viewer.Open(ctx, path); err != nil {
		return errors.Wrap(errors.ErrCodeUnavailable, err, "open image viewer")
	}
	printInfo(c.Stdout, "Opened graph in image viewer")
	printFile(c.Stdout, path)
	return nil
}
