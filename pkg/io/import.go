package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
)

// ReadLayout decodes a layout written by [WriteLayout].
//
// Every rectangle must have a positive size; a violation is reported as
// INVALID_SIZE naming the rectangle index. Overlap is not re-checked: the
// file is trusted to hold the output of a layout run.
func ReadLayout(r io.Reader) (Layout, error) {
	var data layoutJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}
	return fromJSON(data)
}

// UnmarshalLayout is [ReadLayout] over an in-memory document.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l layoutJSON
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}
	return fromJSON(l)
}

func fromJSON(data layoutJSON) (Layout, error) {
	l := Layout{
		Center: geom.Vec(data.Center.X, data.Center.Y),
		Rects:  make([]geom.Rect, len(data.Rects)),
	}
	if !geom.IsFinite(l.Center) {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "center is not finite")
	}
	for i, r := range data.Rects {
		if r.Width <= 0 || r.Height <= 0 {
			return Layout{}, errors.New(errors.ErrCodeInvalidSize,
				"rect %d: size must be positive, got %dx%d", i, r.Width, r.Height)
		}
		l.Rects[i] = geom.R(r.X, r.Y, r.Width, r.Height)
	}
	return l, nil
}

// ImportLayout reads the layout file at path.
func ImportLayout(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	l, err := ReadLayout(f)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}
