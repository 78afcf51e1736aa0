package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

// Layout is a placed cloud: the center it was laid out around and its
// rectangles in placement order.
type Layout struct {
	Center geom.Vector
	Rects  []geom.Rect
}

type layoutJSON struct {
	Center centerJSON `json:"center"`
	Rects  []rectJSON `json:"rects"`
}

type centerJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type rectJSON struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func toJSON(l Layout) layoutJSON {
	out := layoutJSON{
		Center: centerJSON{X: l.Center.X, Y: l.Center.Y},
		Rects:  make([]rectJSON, len(l.Rects)),
	}
	for i, r := range l.Rects {
		out.Rects[i] = rectJSON{X: r.Min.X, Y: r.Min.Y, Width: r.Size.Width, Height: r.Size.Height}
	}
	return out
}

// MarshalLayout encodes l as indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(toJSON(l), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return data, nil
}

// WriteLayout encodes l as JSON and writes it to w.
// The output can be re-imported with [ReadLayout].
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(l)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportLayout writes l as JSON to the file at path, creating or
// truncating it.
func ExportLayout(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteLayout(l, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
