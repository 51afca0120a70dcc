package render

import (
	"testing"

	"github.com/matzehuels/graphvis/pkg/errors"
)

func TestToPDFMissingConverter(t *testing.T) {
	old := rsvgBinary
	rsvgBinary = "graphvis-no-such-converter"
	defer func() { rsvgBinary = old }()

	_, err := ToPDF([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
	if !errors.Is(err, errors.ErrCodeUnavailable) {
		t.Errorf("ToPDF() error = %v, want %s", err, errors.ErrCodeUnavailable)
	}
}
