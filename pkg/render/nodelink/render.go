package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphvis/pkg/errors"
	"github.com/matzehuels/graphvis/pkg/graph"
	"github.com/matzehuels/graphvis/pkg/render"
)

// Layout names accepted in [Options.Layout].
const (
	LayoutSpring   = errors.LayoutSpring
	LayoutCircular = errors.LayoutCircular
)

// Format is an output image format.
type Format string

// Supported output formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatJPG Format = "jpg"
	FormatDOT Format = "dot" // DOT source annotated with computed positions
	FormatPDF Format = "pdf" // via SVG and rsvg-convert
)

// FormatFromPath infers the output format from a file extension.
// Returns an INVALID_FORMAT error for unknown extensions.
func FormatFromPath(path string) (Format, error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG, nil
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPG, nil
	case ".dot", ".gv":
		return FormatDOT, nil
	case ".pdf":
		return FormatPDF, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported output path %q", path)
}

// engines maps layout names to Graphviz layout engines.
var engines = map[string]graphviz.Layout{
	LayoutSpring:   graphviz.NEATO,
	LayoutCircular: graphviz.CIRCO,
}

// Renderer lays out and draws graphs with an in-process Graphviz engine.
// A Renderer is not safe for concurrent use; call Close when done.
type Renderer struct {
	gv   *graphviz.Graphviz
	opts Options
}

// New starts a Graphviz engine configured for opts.
//
// It returns an INVALID_LAYOUT error for an unknown layout, and an
// UNAVAILABLE error if the engine cannot be started. Callers treat the
// latter as "rendering is not possible here" and fall back to text output.
func New(ctx context.Context, opts Options) (*Renderer, error) {
	opts = opts.withDefaults()
	if err := errors.ValidateLayout(opts.Layout); err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "start graphviz")
	}
	gv.SetLayout(engines[opts.Layout])

	return &Renderer{gv: gv, opts: opts}, nil
}

// Close releases the Graphviz engine.
func (r *Renderer) Close() error {
	return r.gv.Close()
}

// Render lays out g and writes it to w in the given format.
//
// PDF output is converted from SVG by [render.ToPDF] and returns an
// UNAVAILABLE error when rsvg-convert is not installed.
func (r *Renderer) Render(ctx context.Context, g *graph.Graph, format Format, w io.Writer) error {
	dot := ToDOT(g, r.opts)

	var out []byte
	switch format {
	case FormatSVG:
		svg, err := r.render(ctx, dot, graphviz.SVG)
		if err != nil {
			return err
		}
		out = normalizeViewBox(svg)
	case FormatPNG:
		b, err := r.render(ctx, dot, graphviz.PNG)
		if err != nil {
			return err
		}
		out = b
	case FormatJPG:
		b, err := r.render(ctx, dot, graphviz.JPG)
		if err != nil {
			return err
		}
		out = b
	case FormatDOT:
		b, err := r.render(ctx, dot, graphviz.XDOT)
		if err != nil {
			return err
		}
		out = b
	case FormatPDF:
		svg, err := r.render(ctx, dot, graphviz.SVG)
		if err != nil {
			return err
		}
		pdf, err := render.ToPDF(svg)
		if err != nil {
			return err
		}
		out = pdf
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

func (r *Renderer) render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := r.gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
