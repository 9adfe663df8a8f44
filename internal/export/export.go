package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/monkeysim/internal/layout"
	"github.com/san-kum/monkeysim/internal/scene"
)

type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatSVG, FormatPNG, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want svg, png or json)", ErrUnknownFormat, s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	default:
		return "application/json"
	}
}

// Write encodes frame f, rendered from p into v, in the given format.
func Write(w io.Writer, format Format, f layout.Frame, p scene.Params, v scene.Viewport) error {
	switch format {
	case FormatSVG:
		return WriteSVG(w, f.Shapes, v)
	case FormatPNG:
		return WritePNG(w, f.Shapes, v)
	case FormatJSON:
		return WriteJSON(w, NewDocument(f, p, v))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
