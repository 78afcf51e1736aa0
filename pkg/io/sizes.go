package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
)

// Size list formats.
const (
	FormatText = "txt"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// SizeFormats lists the accepted size list formats.
var SizeFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatTOML: true,
}

// SizeList is the input to a layout run.
type SizeList struct {
	Sizes []geom.Size
	// Center is set only when the input names one (TOML).
	Center *geom.Point
}

type sizeJSON struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

type sizeTOML struct {
	Center *struct {
		X int `toml:"x"`
		Y int `toml:"y"`
	} `toml:"center"`
	Rects []sizeJSON `toml:"rect"`
}

// FormatFromPath derives the size list format from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if err := errors.ValidateFormat(ext, SizeFormats); err != nil {
		return "", err
	}
	return ext, nil
}

// ReadSizes decodes a size list in the given format from r.
func ReadSizes(r io.Reader, format string) (SizeList, error) {
	switch format {
	case FormatText:
		return readText(r)
	case FormatJSON:
		return readJSON(r)
	case FormatTOML:
		return readTOML(r)
	}
	return SizeList{}, errors.ValidateFormat(format, SizeFormats)
}

// ImportSizes reads the size list at path, choosing the format from its
// extension.
func ImportSizes(path string) (SizeList, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return SizeList{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return SizeList{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return SizeList{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sl, err := ReadSizes(f, format)
	if err != nil {
		return SizeList{}, fmt.Errorf("%s: %w", path, err)
	}
	return sl, nil
}

func readText(r io.Reader) (SizeList, error) {
	var sl SizeList
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line, _, _ := strings.Cut(sc.Text(), "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		w, h, err := parseSize(line)
		if err != nil {
			return SizeList{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", n)
		}
		if err := errors.ValidateSize(w, h); err != nil {
			return SizeList{}, fmt.Errorf("line %d: %w", n, err)
		}
		sl.Sizes = append(sl.Sizes, geom.Sz(w, h))
	}
	if err := sc.Err(); err != nil {
		return SizeList{}, fmt.Errorf("read: %w", err)
	}
	return sl, nil
}

// parseSize accepts "WxH", "WXH" and "W H".
func parseSize(s string) (int, int, error) {
	var fields []string
	if ws, hs, ok := strings.Cut(strings.ToLower(s), "x"); ok {
		fields = []string{strings.TrimSpace(ws), strings.TrimSpace(hs)}
	} else {
		fields = strings.Fields(s)
	}
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("malformed size %q", s)
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("height: %w", err)
	}
	return w, h, nil
}

func readJSON(r io.Reader) (SizeList, error) {
	var data []sizeJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return SizeList{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode sizes")
	}
	sizes, err := toSizes(data)
	return SizeList{Sizes: sizes}, err
}

func readTOML(r io.Reader) (SizeList, error) {
	var data sizeTOML
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return SizeList{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode sizes")
	}
	sizes, err := toSizes(data.Rects)
	if err != nil {
		return SizeList{}, err
	}
	sl := SizeList{Sizes: sizes}
	if data.Center != nil {
		c := geom.Pt(data.Center.X, data.Center.Y)
		sl.Center = &c
	}
	return sl, nil
}

func toSizes(data []sizeJSON) ([]geom.Size, error) {
	sizes := make([]geom.Size, len(data))
	for i, s := range data {
		if err := errors.ValidateSize(s.Width, s.Height); err != nil {
			return nil, fmt.Errorf("rect %d: %w", i, err)
		}
		sizes[i] = geom.Sz(s.Width, s.Height)
	}
	return sizes, nil
}
