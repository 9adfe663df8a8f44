package export

import (
	"io"

	"github.com/bytedance/sonic"

	"github.com/san-kum/monkeysim/internal/layout"
	"github.com/san-kum/monkeysim/internal/scene"
)

// Document is the JSON dump of one frame.
type Document struct {
	Viewport scene.Viewport   `json:"viewport"`
	Params   scene.Params     `json:"params"`
	Scales   scene.ScaleState `json:"scales"`
	Bounds   scene.Bounds     `json:"bounds"`
	Origin   scene.Point      `json:"origin"`
	GroundY  float64          `json:"ground_y"`
	Shapes   []scene.Shape    `json:"shapes"`
}

func NewDocument(f layout.Frame, p scene.Params, v scene.Viewport) Document {
	return Document{
		Viewport: v,
		Params:   p,
		Scales:   f.Scales,
		Bounds:   f.Bounds,
		Origin:   f.Origin,
		GroundY:  f.GroundY,
		Shapes:   f.Shapes,
	}
}

func MarshalJSON(doc Document) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(doc, "", "  ")
}

func WriteJSON(w io.Writer, doc Document) error {
	data, err := MarshalJSON(doc)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
