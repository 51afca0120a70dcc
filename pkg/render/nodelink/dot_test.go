package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/graphvis/pkg/errors"
	"github.com/matzehuels/graphvis/pkg/graph"
)

func TestToDOT_Basic(t *testing.T) {
	g, _ := graph.Build(3, []graph.Pair{{1, 0}})

	dot := ToDOT(g, Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() output missing undirected graph declaration")
	}
	for _, id := range []string{`"0";`, `"1";`, `"2";`} {
		if !strings.Contains(dot, id) {
			t.Errorf("ToDOT() output missing node %s", id)
		}
	}
	if !strings.Contains(dot, `"0" -- "1";`) {
		t.Error("ToDOT() output missing normalized edge")
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() output contains directed edge")
	}
}

func TestToDOT_Defaults(t *testing.T) {
	dot := ToDOT(graph.New(1), Options{})

	if !strings.Contains(dot, `fillcolor="skyblue"`) {
		t.Error("ToDOT() missing default node color")
	}
	if !strings.Contains(dot, `edge [color="gray"`) {
		t.Error("ToDOT() missing default edge color")
	}
	if !strings.Contains(dot, "fontsize=14") {
		t.Error("ToDOT() missing default font size")
	}
}

func TestToDOT_CustomColors(t *testing.T) {
	dot := ToDOT(graph.New(1), Options{NodeColor: "#ff8800", EdgeColor: "black", FontSize: 20})

	if !strings.Contains(dot, `fillcolor="#ff8800"`) {
		t.Error("ToDOT() ignored NodeColor")
	}
	if !strings.Contains(dot, `edge [color="black"`) {
		t.Error("ToDOT() ignored EdgeColor")
	}
	if !strings.Contains(dot, "fontsize=20") {
		t.Error("ToDOT() ignored FontSize")
	}
}

func TestToDOT_Stable(t *testing.T) {
	pairs := []graph.Pair{{3, 2}, {0, 1}, {2, 0}, {1, 3}}
	a, _ := graph.Build(4, pairs)
	b, _ := graph.Build(4, []graph.Pair{pairs[3], pairs[1], pairs[0], pairs[2]})

	if ToDOT(a, Options{}) != ToDOT(b, Options{}) {
		t.Error("ToDOT() output depends on edge insertion order")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"graph.svg", FormatSVG, false},
		{"graph.PNG", FormatPNG, false},
		{"graph.jpg", FormatJPG, false},
		{"graph.jpeg", FormatJPG, false},
		{"graph.dot", FormatDOT, false},
		{"graph.gv", FormatDOT, false},
		{"graph.pdf", FormatPDF, false},
		{"graph.bmp", "", true},
		{"graph", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	input := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)

	got := string(normalizeViewBox(input))

	if !strings.Contains(got, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("normalizeViewBox() = %s", got)
	}
	if !strings.Contains(got, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox() did not set pixel size: %s", got)
	}
}

func TestNormalizeViewBox_NoViewBox(t *testing.T) {
	input := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(input); !bytes.Equal(got, input) {
		t.Errorf("normalizeViewBox() = %s, want unchanged", got)
	}
}

func TestNewInvalidLayout(t *testing.T) {
	_, err := New(context.Background(), Options{Layout: "kamada"})
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("New() error = %v, want %s", err, errors.ErrCodeInvalidLayout)
	}
}

func newTestRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := New(context.Background(), opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRenderSVG(t *testing.T) {
	for _, layout := range []string{LayoutSpring, LayoutCircular} {
		t.Run(layout, func(t *testing.T) {
			r := newTestRenderer(t, Options{Layout: layout})
			g, _ := graph.Build(4, []graph.Pair{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

			var buf bytes.Buffer
			if err := r.Render(context.Background(), g, FormatSVG, &buf); err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if !strings.Contains(buf.String(), "<svg") {
				t.Error("Render() output missing <svg> tag")
			}
		})
	}
}

func TestRenderPNG(t *testing.T) {
	r := newTestRenderer(t, Options{})
	g, _ := graph.Build(2, []graph.Pair{{0, 1}})

	var buf bytes.Buffer
	if err := r.Render(context.Background(), g, FormatPNG, &buf); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("Render() output is not a PNG")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	r := newTestRenderer(t, Options{})

	var buf bytes.Buffer
	err := r.Render(context.Background(), graph.New(1), Format("bmp"), &buf)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render() error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}
