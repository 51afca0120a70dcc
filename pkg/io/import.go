package io

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/matzehuels/graphvis/pkg/graph"
)

// StdinArg is the --edges value that means "read the edge list from standard input".
const StdinArg = "-"

// MalformedInputError reports edge text that is not valid JSON or is not a
// list of two-element integer arrays.
type MalformedInputError struct {
	// Element is the index of the offending top-level element,
	// or -1 when the document as a whole is malformed.
	Element int
	Msg     string
	Err     error // underlying decoder error, if any
}

func (e *MalformedInputError) Error() string {
	if e.Element >= 0 {
		return fmt.Sprintf("malformed edge list: element %d: %s", e.Element, e.Msg)
	}
	return fmt.Sprintf("malformed edge list: %s", e.Msg)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

func malformed(msg string, err error) *MalformedInputError {
	return &MalformedInputError{Element: -1, Msg: msg, Err: err}
}

// ParseEdges decodes a JSON edge list such as [[4,5],[1,6]].
//
// The document must be a single JSON array whose elements are arrays of
// exactly two integers. Anything else, including trailing data after the
// array, returns a [*MalformedInputError]. Blank text is an empty edge list.
//
// Indices are returned as written; range checks happen in [graph.Build].
func ParseEdges(text string) ([]graph.Pair, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, malformed(fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset), err)
		}
		return nil, malformed("invalid JSON", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed("unexpected data after edge list", err)
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, malformed(fmt.Sprintf("expected a JSON array of pairs, got %s", kindOf(doc)), nil)
	}

	pairs := make([]graph.Pair, 0, len(items))
	for i, item := range items {
		p, err := parsePair(item)
		if err != nil {
			return nil, &MalformedInputError{Element: i, Msg: err.Error()}
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func parsePair(item any) (graph.Pair, error) {
	arr, ok := item.([]any)
	if !ok {
		return graph.Pair{}, fmt.Errorf("expected a two-element array, got %s", kindOf(item))
	}
	if len(arr) != 2 {
		return graph.Pair{}, fmt.Errorf("expected a two-element array, got %d elements", len(arr))
	}

	var p graph.Pair
	for i, v := range arr {
		num, ok := v.(json.Number)
		if !ok {
			return graph.Pair{}, fmt.Errorf("expected an integer, got %s", kindOf(v))
		}
		n, err := toIndex(num)
		if err != nil {
			return graph.Pair{}, err
		}
		p[i] = n
	}
	return p, nil
}

// toIndex converts a JSON number to a node index. Integers too large for an
// int saturate to math.MaxInt or math.MinInt, which no graph contains, so
// such edges are dropped later instead of failing the parse.
func toIndex(num json.Number) (int, error) {
	s := num.String()
	if strings.ContainsAny(s, ".eE") {
		return 0, fmt.Errorf("expected an integer, got %s", s)
	}
	n, err := num.Int64()
	if err == nil && n >= math.MinInt && n <= math.MaxInt {
		return int(n), nil
	}
	if strings.HasPrefix(s, "-") {
		return math.MinInt, nil
	}
	return math.MaxInt, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

// ReadEdges reads r until EOF and parses the content with [ParseEdges].
// ReadEdges does not close r.
//
// If ctx is done before r reaches EOF, ReadEdges returns ctx.Err() at once.
// The read itself cannot be interrupted and continues in the background
// until r returns.
func ReadEdges(ctx context.Context, r io.Reader) ([]graph.Pair, error) {
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("read edges: %w", res.err)
		}
		return ParseEdges(string(res.data))
	}
}

// LoadEdges resolves an --edges argument. [StdinArg] reads the list from
// stdin; any other value is parsed as literal JSON. Both paths produce the
// same pairs for the same text.
func LoadEdges(ctx context.Context, arg string, stdin io.Reader) ([]graph.Pair, error) {
	if arg == StdinArg {
		return ReadEdges(ctx, stdin)
	}
	return ParseEdges(arg)
}
