package io

import (
	"context"
	"errors"
	"io"
	"math"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/matzehuels/graphvis/pkg/graph"
)

func TestParseEdges(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []graph.Pair
	}{
		{"readme sample", "[[4,5],[1,6]]", []graph.Pair{{4, 5}, {1, 6}}},
		{"whitespace", " [ [0, 1] ,\n [1,2] ]\n", []graph.Pair{{0, 1}, {1, 2}}},
		{"negative", "[[-1,3]]", []graph.Pair{{-1, 3}}},
		{"self loop", "[[2,2]]", []graph.Pair{{2, 2}}},
		{"empty array", "[]", []graph.Pair{}},
		{"blank", "   \n", nil},
		{"order preserved", "[[9,4],[0,2]]", []graph.Pair{{9, 4}, {0, 2}}},
		{"huge index", "[[0,99999999999999999999]]", []graph.Pair{{0, math.MaxInt}}},
		{"huge negative index", "[[-99999999999999999999,1]]", []graph.Pair{{math.MinInt, 1}}},
		{"negative zero", "[[0,-0]]", []graph.Pair{{0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEdges(tt.text)
			if err != nil {
				t.Fatalf("ParseEdges(%q) error: %v", tt.text, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseEdges(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseEdgesMalformed(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantElement int
	}{
		{"not json", "not json", -1},
		{"truncated", "[[0,1]", -1},
		{"object", `{"edges":[[0,1]]}`, -1},
		{"null", "null", -1},
		{"flat array", "[0,1]", 0},
		{"three elements", "[[0,1],[1,2,3]]", 1},
		{"one element", "[[0]]", 0},
		{"float", "[[0,1.5]]", 0},
		{"integral float", "[[0,1.0]]", 0},
		{"exponent", "[[0,1e3]]", 0},
		{"huge exponent", "[[0,1E400]]", 0},
		{"string index", `[[0,"1"]]`, 0},
		{"null index", "[[null,1]]", 0},
		{"trailing data", "[[0,1]] [[1,2]]", -1},
		{"trailing bracket", "[[0,1]]]", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEdges(tt.text)
			if err == nil {
				t.Fatalf("ParseEdges(%q) = %v, want error", tt.text, got)
			}
			var mErr *MalformedInputError
			if !errors.As(err, &mErr) {
				t.Fatalf("ParseEdges(%q) error = %T, want *MalformedInputError", tt.text, err)
			}
			if mErr.Element != tt.wantElement {
				t.Errorf("Element = %d, want %d", mErr.Element, tt.wantElement)
			}
			if !strings.HasPrefix(err.Error(), "malformed edge list") {
				t.Errorf("Error() = %q, want malformed edge list prefix", err.Error())
			}
		})
	}
}

func TestMalformedInputErrorUnwrap(t *testing.T) {
	_, err := ParseEdges("[[0,")
	var mErr *MalformedInputError
	if !errors.As(err, &mErr) {
		t.Fatalf("error = %v, want *MalformedInputError", err)
	}
	if mErr.Unwrap() == nil {
		t.Error("Unwrap() = nil, want decoder error")
	}
}

func TestLoadEdgesStdinEquivalence(t *testing.T) {
	text := "[[4,5],[1,6],[6,4],[5,3],[3,6],[0,2],[5,8],[0,6],[3,0],[6,8],[2,8],[1,2],[9,4]]"

	literal, err := LoadEdges(context.Background(), text, strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("LoadEdges(literal) error: %v", err)
	}
	fromStdin, err := LoadEdges(context.Background(), StdinArg, strings.NewReader(text+"\n"))
	if err != nil {
		t.Fatalf("LoadEdges(stdin) error: %v", err)
	}

	if !slices.Equal(literal, fromStdin) {
		t.Errorf("stdin = %v, literal = %v", fromStdin, literal)
	}
}

func TestLoadEdgesStdinMalformed(t *testing.T) {
	_, err := LoadEdges(context.Background(), StdinArg, strings.NewReader("not json"))
	var mErr *MalformedInputError
	if !errors.As(err, &mErr) {
		t.Errorf("error = %v, want *MalformedInputError", err)
	}
}

func TestReadEdgesReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ReadEdges(context.Background(), iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped read error", err)
	}
	var mErr *MalformedInputError
	if errors.As(err, &mErr) {
		t.Error("read failure should not be reported as malformed input")
	}
}

func TestReadEdgesCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := ReadEdges(ctx, pr)
		errc <- err
	}()

	cancel()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ReadEdges() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ReadEdges() still blocked after cancellation")
	}
}
